package models

import "time"

// Project is a user's personal or professional project, unique per
// (user, name).
type Project struct {
	BaseModel
	UserID      string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_project" json:"user_id"`
	Name        string     `gorm:"size:100;not null;uniqueIndex:idx_user_project" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
}

func (Project) TableName() string { return "core_projects" }

// IsCompleted mirrors the original display rule: true when the end date
// is absent.
func (p *Project) IsCompleted() bool {
	return p.EndDate == nil
}
