package models

import "time"

type ExperienceCompany struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (ExperienceCompany) TableName() string { return "core_experience_companies" }

type ExperienceRole struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

func (ExperienceRole) TableName() string { return "core_experience_roles" }

// Experience is one work-history entry, unique per (user, company, role).
type Experience struct {
	BaseModel
	UserID      string             `gorm:"type:uuid;not null;uniqueIndex:idx_experience" json:"user_id"`
	CompanyID   string             `gorm:"type:uuid;not null;uniqueIndex:idx_experience" json:"company_id"`
	RoleID      string             `gorm:"type:uuid;not null;uniqueIndex:idx_experience" json:"role_id"`
	Company     *ExperienceCompany `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Role        *ExperienceRole    `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	StartDate   time.Time          `gorm:"type:date;not null" json:"start_date"`
	EndDate     *time.Time         `gorm:"type:date" json:"end_date,omitempty"`
}

func (Experience) TableName() string { return "core_experiences" }

// IsCurrent reports whether this is the user's ongoing position.
func (e *Experience) IsCurrent() bool {
	return e.EndDate == nil
}
