package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cvgen_backend/internal/events"
	"cvgen_backend/internal/logger"
	"cvgen_backend/internal/models"
	"cvgen_backend/internal/renderer"
	"cvgen_backend/internal/repositories"
	"cvgen_backend/internal/services/dto"
	"cvgen_backend/pkg/apperrors"
)

// requiredSkillCount is the fixed size of the skill selection on every
// generation.
const requiredSkillCount = 10

// CVService assembles and renders one document per request: it checks
// the selection against the caller's profile, gathers the facets in
// display order, renders the localized HTML, prints it to PDF, records
// provenance and hands the artifact to the dispatcher for delivery.
type CVService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	cvRepo      repositories.CvRepository
	template    *renderer.CVTemplate
	pdf         renderer.PDFRenderer
	dispatcher  *events.Dispatcher
}

func NewCVService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	cvRepo repositories.CvRepository,
	template *renderer.CVTemplate,
	pdf renderer.PDFRenderer,
	dispatcher *events.Dispatcher,
) *CVService {
	return &CVService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		cvRepo:      cvRepo,
		template:    template,
		pdf:         pdf,
		dispatcher:  dispatcher,
	}
}

// Generate runs one full generation for the authenticated user. The
// returned artifact is complete or the error is fatal: no partial
// document is ever handed back.
func (s *CVService) Generate(ctx context.Context, db *gorm.DB, userID string, req *dto.GenerateCVRequest) (*dto.GeneratedCV, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFoundError("cv", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	lang, err := s.cvRepo.GetCVLanguage(db, req.LanguageID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.ValidationError(map[string]string{"language_id": "unknown output language"})
		}
		return nil, apperrors.InternalError(err)
	}

	userRole, err := s.profileRepo.GetUserRole(db, userID, req.RoleID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.ValidationError(map[string]string{"role_id": "role is not among your claimed roles"})
		}
		return nil, apperrors.InternalError(err)
	}

	skills, err := s.resolveSkills(db, userID, req.SkillIDs)
	if err != nil {
		return nil, err
	}

	data, err := s.gatherProfile(db, user, lang, userRole, skills, req.Brief, req.CompanyName)
	if err != nil {
		return nil, err
	}

	html, err := s.template.Render(data)
	if err != nil {
		logger.CtxWithError(ctx, "template rendering failed", err, "user_id", userID)
		return nil, apperrors.RenderingError(err)
	}

	brief, err := s.recordBrief(db, userRole.ID, req)
	if err != nil {
		return nil, err
	}

	pdf, err := s.pdf.RenderPDF(ctx, html)
	if err != nil {
		logger.CtxWithError(ctx, "pdf rendering failed", err, "user_id", userID)
		return nil, apperrors.RenderingError(err)
	}

	if err := s.recordProvenance(ctx, db, user, lang, userRole, brief, skills, data); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s - %s.pdf", user.FullName(), lang.Language)

	s.dispatcher.Publish(events.CVGenerated{
		User:     user,
		Locale:   lang.Language,
		Filename: filename,
		PDF:      pdf,
	})

	logger.CtxInfo(ctx, "cv generated",
		"user_id", userID,
		"language", lang.Language,
		"role", userRole.Role.Name,
		"pdf_bytes", len(pdf))

	return &dto.GeneratedCV{Filename: filename, PDF: pdf}, nil
}

// resolveSkills enforces the fixed-size selection: exactly ten skills,
// all claimed by the caller. Ownership is re-checked here no matter
// what the binding layer already validated.
func (s *CVService) resolveSkills(db *gorm.DB, userID string, skillIDs []string) ([]models.Skill, error) {
	if len(skillIDs) != requiredSkillCount {
		return nil, apperrors.ValidationError(map[string]string{
			"skill_ids": fmt.Sprintf("exactly %d skills must be selected", requiredSkillCount),
		})
	}

	owned, err := s.profileRepo.CountOwnedSkills(db, userID, skillIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if owned != requiredSkillCount {
		return nil, apperrors.ValidationError(map[string]string{
			"skill_ids": "all selected skills must be among your claimed skills",
		})
	}

	skills, err := s.cvRepo.GetSkillsByIDs(db, skillIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skills, nil
}

// gatherProfile loads the remaining facets and builds the rendering
// context. Collections come back from the repositories already in
// display order.
func (s *CVService) gatherProfile(db *gorm.DB, user *models.User, lang *models.CVLanguage, userRole *models.UserRole, skills []models.Skill, brief, companyName string) (*renderer.TemplateData, error) {
	experiences, err := s.profileRepo.ListExperiences(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	educations, err := s.profileRepo.ListEducations(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	languages, err := s.profileRepo.ListLanguages(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	socials, err := s.profileRepo.ListSocialNetworks(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	skillNames := make([]string, len(skills))
	for i, skill := range skills {
		skillNames[i] = skill.Name
	}

	return &renderer.TemplateData{
		Locale:      lang.Language,
		User:        user,
		Tel:         user.FormatTel(),
		Age:         user.Age(),
		Role:        userRole.Role.Name,
		Brief:       brief,
		CompanyName: companyName,
		Skills:      skillNames,
		Socials:     socials,
		Experiences: experiences,
		Educations:  educations,
		Languages:   languages,
	}, nil
}

// recordBrief resolves the Company/Brief pair for this submission in
// one transaction. The company name may be empty: such submissions all
// share one anonymous company row, matching the lazily created
// catalog's uniqueness rule.
func (s *CVService) recordBrief(db *gorm.DB, userRoleID string, req *dto.GenerateCVRequest) (*models.Brief, error) {
	var brief *models.Brief
	err := db.Transaction(func(tx *gorm.DB) error {
		company, err := s.cvRepo.GetOrCreateCompany(tx, req.CompanyName, req.CompanyBrief)
		if err != nil {
			return err
		}
		brief, err = s.cvRepo.GetOrCreateBrief(tx, userRoleID, company.ID, req.Brief)
		return err
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return brief, nil
}

// recordProvenance appends the generation log entry. A re-generation
// with identical inputs is fine and simply adds another row; only a
// uniqueness race on the skill join is swallowed. Every other failure
// propagates: a generation the log cannot account for is an error.
func (s *CVService) recordProvenance(ctx context.Context, db *gorm.DB, user *models.User, lang *models.CVLanguage, userRole *models.UserRole, brief *models.Brief, skills []models.Skill, data *renderer.TemplateData) error {
	snapshot, err := json.Marshal(map[string]interface{}{
		"role":     data.Role,
		"brief":    data.Brief,
		"company":  data.CompanyName,
		"language": lang.Language,
		"skills":   data.Skills,
	})
	if err != nil {
		logger.CtxWithError(ctx, "provenance snapshot failed", err, "user_id", user.ID)
		snapshot = nil
	}

	cv := &models.Cv{
		UserID:       user.ID,
		CVLanguageID: lang.ID,
		RoleID:       userRole.RoleID,
		BriefID:      brief.ID,
		Skills:       skills,
		Context:      snapshot,
	}

	if err := s.cvRepo.CreateCv(db, cv); err != nil {
		if repositories.IsDuplicate(err) {
			logger.CtxDebug(ctx, "generation already recorded", "user_id", user.ID)
			return nil
		}
		logger.CtxWithError(ctx, "provenance write failed", err, "user_id", user.ID)
		return apperrors.InternalError(err)
	}
	return nil
}

// History lists the caller's past generations, newest first.
func (s *CVService) History(ctx context.Context, db *gorm.DB, userID string, limit, offset int) ([]models.Cv, int64, error) {
	cvs, err := s.cvRepo.ListCvsByUser(db, userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	total, err := s.cvRepo.CountCvsByUser(db, userID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return cvs, total, nil
}

// HistoryAll lists every user's generations. Admin only.
func (s *CVService) HistoryAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]models.Cv, error) {
	cvs, err := s.cvRepo.ListAllCvs(db, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cvs, nil
}
