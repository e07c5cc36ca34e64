package models

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	BaseModel
	FirstName    string    `gorm:"size:50;not null" json:"first_name"`
	MiddleName   string    `gorm:"size:50;not null" json:"middle_name"`
	LastName     string    `gorm:"size:50;not null" json:"last_name"`
	BirthDate    time.Time `gorm:"type:date;not null" json:"birth_date"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Tel          string    `gorm:"size:14;uniqueIndex;not null" json:"tel"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsSuperuser  bool      `gorm:"default:false" json:"is_superuser"`
	CityID       *string   `gorm:"type:uuid" json:"city_id,omitempty"`
	City         *City     `gorm:"foreignKey:CityID" json:"city,omitempty"`

	// Facets, exclusively owned: removed together with the user.
	Experiences    []Experience        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"experiences,omitempty"`
	Educations     []Education         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"educations,omitempty"`
	Skills         []UserSkill         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Languages      []UserLanguage      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"languages,omitempty"`
	SocialNetworks []UserSocialNetwork `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"social_networks,omitempty"`
	Projects       []Project           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"projects,omitempty"`
	Roles          []UserRole          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"roles,omitempty"`
	RefreshTokens  []RefreshToken      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "core_users" }

// FullName is used for the download filename and the document header.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

func (u *User) String() string {
	if u.MiddleName == "" {
		return u.FullName()
	}
	return fmt.Sprintf("%s %s. %s", u.FirstName, u.MiddleName[:1], u.LastName)
}

// Age in whole years, derived from the birth date.
func (u *User) Age() int {
	return int(time.Since(u.BirthDate).Hours()/24) / 365
}

// FormatTel renders the stored raw digits in display form, e.g.
// 5511987654321 -> (11) 9 8765-4321. A leading country code, with or
// without '+', is tolerated; anything shorter than a full mobile number
// is returned unchanged.
func (u *User) FormatTel() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, u.Tel)

	if len(digits) < 11 {
		return u.Tel
	}

	d := digits[len(digits)-11:]
	return fmt.Sprintf("(%s) %s %s-%s", d[0:2], d[2:3], d[3:7], d[7:])
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
