package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"cvgen_backend/internal/logger"
	"cvgen_backend/internal/models"
	"cvgen_backend/internal/repositories"
	"cvgen_backend/internal/services/dto"
	"cvgen_backend/pkg/apperrors"
)

// ProfileService manages the user-owned facets. Ownership is always
// taken from the authenticated caller, never from the payload.
type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Experiences

func (s *ProfileService) ListExperiences(ctx context.Context, db *gorm.DB, userID string) ([]models.Experience, error) {
	items, err := s.profileRepo.ListExperiences(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ProfileService) AddExperience(ctx context.Context, db *gorm.DB, userID string, req *dto.ExperienceRequest) (*models.Experience, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		UserID:      userID,
		CompanyID:   req.CompanyID,
		RoleID:      req.RoleID,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	}
	if err := s.profileRepo.CreateExperience(db, exp); err != nil {
		return nil, mapFacetError(err, "profile", "Experience already recorded for this company and role")
	}
	logger.CtxDebug(ctx, "experience added", "experience_id", exp.ID)
	return exp, nil
}

func (s *ProfileService) UpdateExperience(ctx context.Context, db *gorm.DB, userID, id string, req *dto.ExperienceRequest) (*models.Experience, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		UserID:      userID,
		CompanyID:   req.CompanyID,
		RoleID:      req.RoleID,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	}
	exp.ID = id
	if err := s.profileRepo.UpdateExperience(db, exp); err != nil {
		return nil, mapFacetError(err, "profile", "Experience already recorded for this company and role")
	}
	return exp, nil
}

func (s *ProfileService) DeleteExperience(ctx context.Context, db *gorm.DB, userID, id string) error {
	return mapFacetError(s.profileRepo.DeleteExperience(db, userID, id), "profile", "")
}

// Educations

func (s *ProfileService) ListEducations(ctx context.Context, db *gorm.DB, userID string) ([]models.Education, error) {
	items, err := s.profileRepo.ListEducations(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ProfileService) AddEducation(ctx context.Context, db *gorm.DB, userID string, req *dto.EducationRequest) (*models.Education, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		UserID:        userID,
		InstitutionID: req.InstitutionID,
		CourseID:      req.CourseID,
		DegreeID:      req.DegreeID,
		StartDate:     start,
		EndDate:       end,
	}
	if err := s.profileRepo.CreateEducation(db, edu); err != nil {
		return nil, mapFacetError(err, "profile", "Education already recorded for this course")
	}
	logger.CtxDebug(ctx, "education added", "education_id", edu.ID)
	return edu, nil
}

func (s *ProfileService) UpdateEducation(ctx context.Context, db *gorm.DB, userID, id string, req *dto.EducationRequest) (*models.Education, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		UserID:        userID,
		InstitutionID: req.InstitutionID,
		CourseID:      req.CourseID,
		DegreeID:      req.DegreeID,
		StartDate:     start,
		EndDate:       end,
	}
	edu.ID = id
	if err := s.profileRepo.UpdateEducation(db, edu); err != nil {
		return nil, mapFacetError(err, "profile", "Education already recorded for this course")
	}
	return edu, nil
}

func (s *ProfileService) DeleteEducation(ctx context.Context, db *gorm.DB, userID, id string) error {
	return mapFacetError(s.profileRepo.DeleteEducation(db, userID, id), "profile", "")
}

// Projects

func (s *ProfileService) ListProjects(ctx context.Context, db *gorm.DB, userID string) ([]models.Project, error) {
	items, err := s.profileRepo.ListProjects(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ProfileService) AddProject(ctx context.Context, db *gorm.DB, userID string, req *dto.ProjectRequest) (*models.Project, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	}
	if err := s.profileRepo.CreateProject(db, project); err != nil {
		return nil, mapFacetError(err, "profile", "Project with this name already recorded")
	}
	return project, nil
}

func (s *ProfileService) UpdateProject(ctx context.Context, db *gorm.DB, userID, id string, req *dto.ProjectRequest) (*models.Project, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	}
	project.ID = id
	if err := s.profileRepo.UpdateProject(db, project); err != nil {
		return nil, mapFacetError(err, "profile", "Project with this name already recorded")
	}
	return project, nil
}

func (s *ProfileService) DeleteProject(ctx context.Context, db *gorm.DB, userID, id string) error {
	return mapFacetError(s.profileRepo.DeleteProject(db, userID, id), "profile", "")
}

// Skills

func (s *ProfileService) ListSkills(ctx context.Context, db *gorm.DB, userID string) ([]models.UserSkill, error) {
	items, err := s.profileRepo.ListSkills(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ProfileService) AddSkill(ctx context.Context, db *gorm.DB, userID string, req *dto.UserSkillRequest) (*models.UserSkill, error) {
	us := &models.UserSkill{UserID: userID, SkillID: req.SkillID}
	if err := s.profileRepo.AddSkill(db, us); err != nil {
		return nil, mapFacetError(err, "profile", "Skill already claimed")
	}
	return us, nil
}

func (s *ProfileService) RemoveSkill(ctx context.Context, db *gorm.DB, userID, id string) error {
	return mapFacetError(s.profileRepo.RemoveSkill(db, userID, id), "profile", "")
}

// Languages

func (s *ProfileService) ListLanguages(ctx context.Context, db *gorm.DB, userID string) ([]models.UserLanguage, error) {
	items, err := s.profileRepo.ListLanguages(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ProfileService) AddLanguage(ctx context.Context, db *gorm.DB, userID string, req *dto.UserLanguageRequest) (*models.UserLanguage, error) {
	ul := &models.UserLanguage{
		UserID:     userID,
		LanguageID: req.LanguageID,
		Level:      models.LanguageLevel(req.Level),
		IsNative:   req.IsNative,
	}
	if err := s.profileRepo.AddLanguage(db, ul); err != nil {
		return nil, mapFacetError(err, "profile", "Language already claimed")
	}
	return ul, nil
}

func (s *ProfileService) UpdateLanguage(ctx context.Context, db *gorm.DB, userID, id string, req *dto.UserLanguageRequest) (*models.UserLanguage, error) {
	ul := &models.UserLanguage{
		UserID:     userID,
		LanguageID: req.LanguageID,
		Level:      models.LanguageLevel(req.Level),
		IsNative:   req.IsNative,
	}
	ul.ID = id
	if err := s.profileRepo.UpdateLanguage(db, ul); err != nil {
		return nil, mapFacetError(err, "profile", "Language already claimed")
	}
	return ul, nil
}

func (s *ProfileService) RemoveLanguage(ctx context.Context, db *gorm.DB, userID, id string) error {
	return mapFacetError(s.profileRepo.RemoveLanguage(db, userID, id), "profile", "")
}

// Social networks

func (s *ProfileService) ListSocialNetworks(ctx context.Context, db *gorm.DB, userID string) ([]models.UserSocialNetwork, error) {
	items, err := s.profileRepo.ListSocialNetworks(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ProfileService) AddSocialNetwork(ctx context.Context, db *gorm.DB, userID string, req *dto.UserSocialNetworkRequest) (*models.UserSocialNetwork, error) {
	usn := &models.UserSocialNetwork{
		UserID:          userID,
		SocialNetworkID: req.SocialNetworkID,
		Username:        req.Username,
	}
	if err := s.profileRepo.AddSocialNetwork(db, usn); err != nil {
		return nil, mapFacetError(err, "profile", "Social network already linked")
	}
	return usn, nil
}

func (s *ProfileService) RemoveSocialNetwork(ctx context.Context, db *gorm.DB, userID, id string) error {
	return mapFacetError(s.profileRepo.RemoveSocialNetwork(db, userID, id), "profile", "")
}

// Roles

func (s *ProfileService) ListRoles(ctx context.Context, db *gorm.DB, userID string) ([]models.UserRole, error) {
	items, err := s.profileRepo.ListRoles(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ProfileService) AddRole(ctx context.Context, db *gorm.DB, userID string, req *dto.UserRoleRequest) (*models.UserRole, error) {
	ur := &models.UserRole{UserID: userID, RoleID: req.RoleID}
	if err := s.profileRepo.AddRole(db, ur); err != nil {
		return nil, mapFacetError(err, "profile", "Role already claimed")
	}
	return ur, nil
}

func (s *ProfileService) RemoveRole(ctx context.Context, db *gorm.DB, userID, id string) error {
	return mapFacetError(s.profileRepo.RemoveRole(db, userID, id), "profile", "")
}

// parseDateRange parses a required start date and an optional end date.
func parseDateRange(start string, end *string) (time.Time, *time.Time, error) {
	startDate, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return time.Time{}, nil, apperrors.ValidationError(map[string]string{"start_date": "invalid date"})
	}

	var endDate *time.Time
	if end != nil && *end != "" {
		parsed, err := time.Parse(time.DateOnly, *end)
		if err != nil {
			return time.Time{}, nil, apperrors.ValidationError(map[string]string{"end_date": "invalid date"})
		}
		if parsed.Before(startDate) {
			return time.Time{}, nil, apperrors.ValidationError(map[string]string{"end_date": "must not precede start_date"})
		}
		endDate = &parsed
	}
	return startDate, endDate, nil
}

// mapFacetError translates repository sentinels to API errors. The
// conflictMsg is used for uniqueness violations; an empty message keeps
// a generic one.
func mapFacetError(err error, domain, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrRecordNotFound):
		return apperrors.NotFoundError(domain, "Record not found")
	case repositories.IsDuplicate(err):
		if conflictMsg == "" {
			conflictMsg = "Record already exists"
		}
		return apperrors.ConflictError(domain, conflictMsg)
	default:
		return apperrors.InternalError(err)
	}
}
