package dto

// GenerateCVRequest is one generation submission. The skill selection is
// fixed-size: exactly ten, no duplicates, all owned by the caller.
type GenerateCVRequest struct {
	LanguageID   string   `json:"language_id" binding:"required,uuid"`
	RoleID       string   `json:"role_id" binding:"required,uuid"`
	SkillIDs     []string `json:"skill_ids" binding:"required,len=10,unique,dive,uuid"`
	Brief        string   `json:"brief" binding:"omitempty,max=255"`
	CompanyName  string   `json:"company_name" binding:"omitempty,max=100"`
	CompanyBrief string   `json:"company_brief" binding:"omitempty,max=255"`
}

// GeneratedCV is the artifact handed back to the HTTP layer.
type GeneratedCV struct {
	Filename string
	PDF      []byte
}
