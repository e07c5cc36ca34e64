package models

import "time"

type EducationInstitution struct {
	BaseModel
	Name    string `gorm:"size:100;not null;uniqueIndex:idx_institution_name_city" json:"name"`
	Acronym string `gorm:"size:10;not null" json:"acronym"`
	CityID  string `gorm:"type:uuid;not null;uniqueIndex:idx_institution_name_city" json:"city_id"`
	City    *City  `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (EducationInstitution) TableName() string { return "core_education_institutions" }

type EducationDegree struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (EducationDegree) TableName() string { return "core_education_degrees" }

type EducationCourse struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (EducationCourse) TableName() string { return "core_education_courses" }

// Education is one academic-history entry, unique per
// (user, institution, course, degree).
type Education struct {
	BaseModel
	UserID        string                `gorm:"type:uuid;not null;uniqueIndex:idx_education" json:"user_id"`
	InstitutionID string                `gorm:"type:uuid;not null;uniqueIndex:idx_education" json:"institution_id"`
	CourseID      string                `gorm:"type:uuid;not null;uniqueIndex:idx_education" json:"course_id"`
	DegreeID      string                `gorm:"type:uuid;not null;uniqueIndex:idx_education" json:"degree_id"`
	Institution   *EducationInstitution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	Course        *EducationCourse      `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Degree        *EducationDegree      `gorm:"foreignKey:DegreeID" json:"degree,omitempty"`
	StartDate     time.Time             `gorm:"type:date;not null" json:"start_date"`
	EndDate       *time.Time            `gorm:"type:date" json:"end_date,omitempty"`
}

func (Education) TableName() string { return "core_education" }

// IsCompleted mirrors the original display rule: true when the end date
// is absent.
func (e *Education) IsCompleted() bool {
	return e.EndDate == nil
}
