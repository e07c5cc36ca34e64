package repositories

import (
	"errors"

	"gorm.io/gorm"

	"cvgen_backend/internal/models"
)

// ProfileRepository serves the user-owned facets: work history, academic
// history, skills, spoken languages, social links, projects and claimed
// roles. Lists come back in the domain display order: most recent first
// for time-ranged facets, alphabetical for catalog-like facets, native
// speakers and higher proficiency first for spoken languages.
type ProfileRepository interface {
	ListExperiences(db *gorm.DB, userID string) ([]models.Experience, error)
	CreateExperience(db *gorm.DB, exp *models.Experience) error
	UpdateExperience(db *gorm.DB, exp *models.Experience) error
	DeleteExperience(db *gorm.DB, userID, id string) error

	ListEducations(db *gorm.DB, userID string) ([]models.Education, error)
	CreateEducation(db *gorm.DB, edu *models.Education) error
	UpdateEducation(db *gorm.DB, edu *models.Education) error
	DeleteEducation(db *gorm.DB, userID, id string) error

	ListProjects(db *gorm.DB, userID string) ([]models.Project, error)
	CreateProject(db *gorm.DB, project *models.Project) error
	UpdateProject(db *gorm.DB, project *models.Project) error
	DeleteProject(db *gorm.DB, userID, id string) error

	ListSkills(db *gorm.DB, userID string) ([]models.UserSkill, error)
	AddSkill(db *gorm.DB, us *models.UserSkill) error
	RemoveSkill(db *gorm.DB, userID, id string) error
	CountOwnedSkills(db *gorm.DB, userID string, skillIDs []string) (int64, error)

	ListLanguages(db *gorm.DB, userID string) ([]models.UserLanguage, error)
	AddLanguage(db *gorm.DB, ul *models.UserLanguage) error
	UpdateLanguage(db *gorm.DB, ul *models.UserLanguage) error
	RemoveLanguage(db *gorm.DB, userID, id string) error

	ListSocialNetworks(db *gorm.DB, userID string) ([]models.UserSocialNetwork, error)
	AddSocialNetwork(db *gorm.DB, usn *models.UserSocialNetwork) error
	RemoveSocialNetwork(db *gorm.DB, userID, id string) error

	ListRoles(db *gorm.DB, userID string) ([]models.UserRole, error)
	AddRole(db *gorm.DB, ur *models.UserRole) error
	RemoveRole(db *gorm.DB, userID, id string) error
	GetUserRole(db *gorm.DB, userID, roleID string) (*models.UserRole, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// Experiences

func (r *ProfileRepositoryImpl) ListExperiences(db *gorm.DB, userID string) ([]models.Experience, error) {
	var items []models.Experience
	err := db.Preload("Company").Preload("Role").
		Where("user_id = ?", userID).
		Order("start_date DESC, end_date DESC").
		Find(&items).Error
	return items, err
}

func (r *ProfileRepositoryImpl) CreateExperience(db *gorm.DB, exp *models.Experience) error {
	return translateError(db.Create(exp).Error, ErrRecordNotFound)
}

func (r *ProfileRepositoryImpl) UpdateExperience(db *gorm.DB, exp *models.Experience) error {
	return updateOwned(db, exp, exp.UserID, exp.ID, map[string]interface{}{
		"company_id":  exp.CompanyID,
		"role_id":     exp.RoleID,
		"description": exp.Description,
		"start_date":  exp.StartDate,
		"end_date":    exp.EndDate,
	})
}

func (r *ProfileRepositoryImpl) DeleteExperience(db *gorm.DB, userID, id string) error {
	return deleteOwned[models.Experience](db, userID, id)
}

// Educations

func (r *ProfileRepositoryImpl) ListEducations(db *gorm.DB, userID string) ([]models.Education, error) {
	var items []models.Education
	err := db.Preload("Institution.City").Preload("Course").Preload("Degree").
		Where("user_id = ?", userID).
		Order("start_date DESC, end_date DESC").
		Find(&items).Error
	return items, err
}

func (r *ProfileRepositoryImpl) CreateEducation(db *gorm.DB, edu *models.Education) error {
	return translateError(db.Create(edu).Error, ErrRecordNotFound)
}

func (r *ProfileRepositoryImpl) UpdateEducation(db *gorm.DB, edu *models.Education) error {
	return updateOwned(db, edu, edu.UserID, edu.ID, map[string]interface{}{
		"institution_id": edu.InstitutionID,
		"course_id":      edu.CourseID,
		"degree_id":      edu.DegreeID,
		"start_date":     edu.StartDate,
		"end_date":       edu.EndDate,
	})
}

func (r *ProfileRepositoryImpl) DeleteEducation(db *gorm.DB, userID, id string) error {
	return deleteOwned[models.Education](db, userID, id)
}

// Projects

func (r *ProfileRepositoryImpl) ListProjects(db *gorm.DB, userID string) ([]models.Project, error) {
	var items []models.Project
	err := db.Where("user_id = ?", userID).
		Order("start_date DESC, end_date DESC").
		Find(&items).Error
	return items, err
}

func (r *ProfileRepositoryImpl) CreateProject(db *gorm.DB, project *models.Project) error {
	return translateError(db.Create(project).Error, ErrRecordNotFound)
}

func (r *ProfileRepositoryImpl) UpdateProject(db *gorm.DB, project *models.Project) error {
	return updateOwned(db, project, project.UserID, project.ID, map[string]interface{}{
		"name":        project.Name,
		"description": project.Description,
		"start_date":  project.StartDate,
		"end_date":    project.EndDate,
	})
}

func (r *ProfileRepositoryImpl) DeleteProject(db *gorm.DB, userID, id string) error {
	return deleteOwned[models.Project](db, userID, id)
}

// Skills

func (r *ProfileRepositoryImpl) ListSkills(db *gorm.DB, userID string) ([]models.UserSkill, error) {
	var items []models.UserSkill
	err := db.Joins("Skill").
		Where("core_user_skills.user_id = ?", userID).
		Order(`"Skill".name`).
		Find(&items).Error
	return items, err
}

func (r *ProfileRepositoryImpl) AddSkill(db *gorm.DB, us *models.UserSkill) error {
	return translateError(db.Create(us).Error, ErrRecordNotFound)
}

func (r *ProfileRepositoryImpl) RemoveSkill(db *gorm.DB, userID, id string) error {
	return deleteOwned[models.UserSkill](db, userID, id)
}

// CountOwnedSkills counts how many of skillIDs are actually claimed by
// the user. Used by the assembler to reject foreign skills.
func (r *ProfileRepositoryImpl) CountOwnedSkills(db *gorm.DB, userID string, skillIDs []string) (int64, error) {
	var count int64
	err := db.Model(&models.UserSkill{}).
		Where("user_id = ? AND skill_id IN ?", userID, skillIDs).
		Count(&count).Error
	return count, err
}

// Languages

func (r *ProfileRepositoryImpl) ListLanguages(db *gorm.DB, userID string) ([]models.UserLanguage, error) {
	var items []models.UserLanguage
	err := db.Joins("Language").
		Where("core_user_languages.user_id = ?", userID).
		Order(`is_native DESC, level DESC, "Language".name`).
		Find(&items).Error
	return items, err
}

func (r *ProfileRepositoryImpl) AddLanguage(db *gorm.DB, ul *models.UserLanguage) error {
	return translateError(db.Create(ul).Error, ErrRecordNotFound)
}

func (r *ProfileRepositoryImpl) UpdateLanguage(db *gorm.DB, ul *models.UserLanguage) error {
	// Pass through Save so the BeforeSave hook can force native speakers
	// to the top tier.
	result := db.Model(ul).Where("user_id = ?", ul.UserID).Select("level", "is_native").Updates(ul)
	if result.Error != nil {
		return translateError(result.Error, ErrRecordNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) RemoveLanguage(db *gorm.DB, userID, id string) error {
	return deleteOwned[models.UserLanguage](db, userID, id)
}

// Social networks

func (r *ProfileRepositoryImpl) ListSocialNetworks(db *gorm.DB, userID string) ([]models.UserSocialNetwork, error) {
	var items []models.UserSocialNetwork
	err := db.Joins("SocialNetwork").
		Where("core_user_social_networks.user_id = ?", userID).
		Order(`"SocialNetwork".name`).
		Find(&items).Error
	return items, err
}

func (r *ProfileRepositoryImpl) AddSocialNetwork(db *gorm.DB, usn *models.UserSocialNetwork) error {
	return translateError(db.Create(usn).Error, ErrRecordNotFound)
}

func (r *ProfileRepositoryImpl) RemoveSocialNetwork(db *gorm.DB, userID, id string) error {
	return deleteOwned[models.UserSocialNetwork](db, userID, id)
}

// Roles

func (r *ProfileRepositoryImpl) ListRoles(db *gorm.DB, userID string) ([]models.UserRole, error) {
	var items []models.UserRole
	err := db.Joins("Role").
		Where("core_user_roles.user_id = ?", userID).
		Order(`"Role".name`).
		Find(&items).Error
	return items, err
}

func (r *ProfileRepositoryImpl) AddRole(db *gorm.DB, ur *models.UserRole) error {
	return translateError(db.Create(ur).Error, ErrRecordNotFound)
}

func (r *ProfileRepositoryImpl) RemoveRole(db *gorm.DB, userID, id string) error {
	return deleteOwned[models.UserRole](db, userID, id)
}

// GetUserRole resolves the user's claim on a role; ErrRecordNotFound
// when the role is not among the user's claimed roles.
func (r *ProfileRepositoryImpl) GetUserRole(db *gorm.DB, userID, roleID string) (*models.UserRole, error) {
	var ur models.UserRole
	err := db.Preload("Role").
		First(&ur, "user_id = ? AND role_id = ?", userID, roleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &ur, nil
}

// Helpers shared by the facet kinds: ownership is enforced in the WHERE
// clause, never trusted from the payload.

func updateOwned[T any](db *gorm.DB, model *T, userID, id string, fields map[string]interface{}) error {
	result := db.Model(model).Where("id = ? AND user_id = ?", id, userID).Updates(fields)
	if result.Error != nil {
		return translateError(result.Error, ErrRecordNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func deleteOwned[T any](db *gorm.DB, userID, id string) error {
	var item T
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&item)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
