package models

import "gorm.io/gorm"

type Language struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Language) TableName() string { return "core_languages" }

// LanguageLevel is the six-tier CEFR proficiency scale.
type LanguageLevel string

const (
	LevelA1 LanguageLevel = "A1" // Beginner
	LevelA2 LanguageLevel = "A2" // Elementary
	LevelB1 LanguageLevel = "B1" // Intermediate
	LevelB2 LanguageLevel = "B2" // Upper Intermediate
	LevelC1 LanguageLevel = "C1" // Advanced
	LevelC2 LanguageLevel = "C2" // Proficient
)

func (l LanguageLevel) Valid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

type UserLanguage struct {
	BaseModel
	UserID     string        `gorm:"type:uuid;not null;uniqueIndex:idx_user_language" json:"user_id"`
	LanguageID string        `gorm:"type:uuid;not null;uniqueIndex:idx_user_language" json:"language_id"`
	Language   *Language     `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Level      LanguageLevel `gorm:"size:2;not null" json:"level"`
	IsNative   bool          `gorm:"default:false" json:"is_native"`
}

func (UserLanguage) TableName() string { return "core_user_languages" }

// BeforeSave forces native speakers to the top tier, whatever the raw
// level value was.
func (ul *UserLanguage) BeforeSave(tx *gorm.DB) error {
	if ul.IsNative {
		ul.Level = LevelC2
	}
	return nil
}

// LevelDisplay returns the i18n key for the displayed proficiency:
// "native" for native speakers, the level code otherwise.
func (ul *UserLanguage) LevelDisplay() string {
	if ul.IsNative {
		return "native"
	}
	return string(ul.Level)
}
