package models

type Skill struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Skill) TableName() string { return "core_skills" }

// UserSkill records a user's adoption of a catalog skill.
type UserSkill struct {
	BaseModel
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill" json:"user_id"`
	SkillID string `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill" json:"skill_id"`
	Skill   *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (UserSkill) TableName() string { return "core_user_skills" }
