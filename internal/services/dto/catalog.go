package dto

// Admin requests for shared reference data.

type CatalogItemRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type SocialNetworkRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	BaseURL string `json:"base_url" binding:"required,url"`
	IconURL string `json:"icon_url" binding:"required,url"`
	Suffix  string `json:"suffix" binding:"omitempty,max=100"`
}

type CountryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type StateRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Abbreviation string `json:"abbreviation" binding:"required,len=2"`
	CountryID    string `json:"country_id" binding:"required,uuid"`
}

type CityRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	StateID string `json:"state_id" binding:"required,uuid"`
}

type InstitutionRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Acronym string `json:"acronym" binding:"required,max=10"`
	CityID  string `json:"city_id" binding:"required,uuid"`
}

type CVLanguageRequest struct {
	Language string `json:"language" binding:"required,max=5"`
	Name     string `json:"name" binding:"required,max=100"`
}
