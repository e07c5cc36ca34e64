package dto

// Facet requests. End dates are optional everywhere: an absent end date
// means "still ongoing".

type ExperienceRequest struct {
	CompanyID   string  `json:"company_id" binding:"required,uuid"`
	RoleID      string  `json:"role_id" binding:"required,uuid"`
	Description string  `json:"description" binding:"omitempty"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type EducationRequest struct {
	InstitutionID string  `json:"institution_id" binding:"required,uuid"`
	CourseID      string  `json:"course_id" binding:"required,uuid"`
	DegreeID      string  `json:"degree_id" binding:"required,uuid"`
	StartDate     string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type ProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"omitempty"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type UserSkillRequest struct {
	SkillID string `json:"skill_id" binding:"required,uuid"`
}

type UserLanguageRequest struct {
	LanguageID string `json:"language_id" binding:"required,uuid"`
	Level      string `json:"level" binding:"required,oneof=A1 A2 B1 B2 C1 C2"`
	IsNative   bool   `json:"is_native"`
}

type UserSocialNetworkRequest struct {
	SocialNetworkID string `json:"social_network_id" binding:"required,uuid"`
	Username        string `json:"username" binding:"required,max=100"`
}

type UserRoleRequest struct {
	RoleID string `json:"role_id" binding:"required,uuid"`
}
