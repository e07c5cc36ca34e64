package models

// Shared geographic reference data. Catalog entities: never deleted as a
// side effect of user deletion.

type Country struct {
	BaseModel
	Name   string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	States []State `gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE" json:"states,omitempty"`
}

func (Country) TableName() string { return "core_countries" }

type State struct {
	BaseModel
	Name         string `gorm:"size:100;not null;uniqueIndex:idx_state_name_country" json:"name"`
	Abbreviation string `gorm:"size:2;uniqueIndex;not null" json:"abbreviation"`
	CountryID    string `gorm:"type:uuid;not null;uniqueIndex:idx_state_name_country" json:"country_id"`
	Country      *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Cities       []City   `gorm:"foreignKey:StateID;constraint:OnDelete:CASCADE" json:"cities,omitempty"`
}

func (State) TableName() string { return "core_states" }

type City struct {
	BaseModel
	Name    string `gorm:"size:100;not null;uniqueIndex:idx_city_name_state" json:"name"`
	StateID string `gorm:"type:uuid;not null;uniqueIndex:idx_city_name_state" json:"state_id"`
	State   *State `gorm:"foreignKey:StateID" json:"state,omitempty"`
}

func (City) TableName() string { return "core_cities" }

// Country walks up the hierarchy; nil-safe for unloaded associations.
func (c *City) Country() *Country {
	if c.State == nil {
		return nil
	}
	return c.State.Country
}
