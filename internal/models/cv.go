package models

import "gorm.io/datatypes"

// CVLanguage is a document-output language: the language the rendered
// document is written in, distinct from a user's spoken languages. The
// set is closed but lives in data, so adding a locale needs no change
// to the assembler.
type CVLanguage struct {
	BaseModel
	Language string `gorm:"size:5;uniqueIndex;not null" json:"language"` // e.g. "en-us", "pt-br"
	Name     string `gorm:"size:100;not null" json:"name"`
}

func (CVLanguage) TableName() string { return "core_cv_languages" }

// Company is a normalized record of a company a CV was targeted at,
// created lazily on first use.
type Company struct {
	BaseModel
	Name  string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Brief string `gorm:"size:255" json:"brief,omitempty"`
}

func (Company) TableName() string { return "core_companies" }

// Brief records "this brief was used when applying to this company for
// this role", unique per (user role, company).
type Brief struct {
	BaseModel
	UserRoleID string    `gorm:"type:uuid;not null;uniqueIndex:idx_brief_role_company" json:"user_role_id"`
	CompanyID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_brief_role_company" json:"company_id"`
	UserRole   *UserRole `gorm:"foreignKey:UserRoleID" json:"user_role,omitempty"`
	Company    *Company  `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Brief      string    `gorm:"size:255" json:"brief,omitempty"`
}

func (Brief) TableName() string { return "core_briefs" }

// Cv is the append-only provenance record of one generation: who, in
// which output language, for which role and brief, with which skills.
// Context snapshots the rendering inputs as JSON for reporting.
type Cv struct {
	BaseModel
	UserID       string         `gorm:"type:uuid;not null;index" json:"user_id"`
	CVLanguageID string         `gorm:"type:uuid;not null" json:"cv_language_id"`
	RoleID       string         `gorm:"type:uuid;not null" json:"role_id"`
	BriefID      string         `gorm:"type:uuid;not null" json:"brief_id"`
	User         *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CVLanguage   *CVLanguage    `gorm:"foreignKey:CVLanguageID" json:"cv_language,omitempty"`
	Role         *Role          `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Brief        *Brief         `gorm:"foreignKey:BriefID" json:"brief,omitempty"`
	Skills       []Skill        `gorm:"many2many:core_cv_skills" json:"skills,omitempty"`
	Context      datatypes.JSON `gorm:"type:jsonb" json:"context,omitempty"`
}

func (Cv) TableName() string { return "core_cvs" }
