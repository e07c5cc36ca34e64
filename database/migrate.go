package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cvgen_backend/internal/config"
	"cvgen_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the shared GORM connection using the configured DSN.
// TranslateError maps driver uniqueness violations onto
// gorm.ErrDuplicatedKey, which the get-or-create paths depend on.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model. Parents first so FK constraints can
// be created in one pass.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Country{},
		&models.State{},
		&models.City{},
		&models.User{},
		&models.RefreshToken{},
		&models.Skill{},
		&models.UserSkill{},
		&models.Language{},
		&models.UserLanguage{},
		&models.Role{},
		&models.UserRole{},
		&models.ExperienceCompany{},
		&models.ExperienceRole{},
		&models.Experience{},
		&models.EducationInstitution{},
		&models.EducationDegree{},
		&models.EducationCourse{},
		&models.Education{},
		&models.SocialNetwork{},
		&models.UserSocialNetwork{},
		&models.Project{},
		&models.CVLanguage{},
		&models.Company{},
		&models.Brief{},
		&models.Cv{},
	)
}
