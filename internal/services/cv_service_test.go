package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cvgen_backend/internal/models"
	"cvgen_backend/internal/repositories"
	"cvgen_backend/internal/services/dto"
	"cvgen_backend/pkg/apperrors"
)

// Stubs embed the repository interfaces so only the methods a test path
// touches need overriding.

type stubUserRepo struct {
	repositories.UserRepository
	user *models.User
}

func (s *stubUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, repositories.ErrUserNotFound
	}
	return s.user, nil
}

type stubProfileRepo struct {
	repositories.ProfileRepository
	userRole *models.UserRole
	owned    int64
}

func (s *stubProfileRepo) GetUserRole(_ *gorm.DB, userID, roleID string) (*models.UserRole, error) {
	if s.userRole == nil || s.userRole.UserID != userID || s.userRole.RoleID != roleID {
		return nil, repositories.ErrRecordNotFound
	}
	return s.userRole, nil
}

func (s *stubProfileRepo) CountOwnedSkills(_ *gorm.DB, _ string, _ []string) (int64, error) {
	return s.owned, nil
}

type stubCvRepo struct {
	repositories.CvRepository
	lang *models.CVLanguage
}

func (s *stubCvRepo) GetCVLanguage(_ *gorm.DB, id string) (*models.CVLanguage, error) {
	if s.lang == nil || s.lang.ID != id {
		return nil, repositories.ErrRecordNotFound
	}
	return s.lang, nil
}

func tenSkillIDs() []string {
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	return ids
}

func newTestCVService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository, cvRepo repositories.CvRepository) *CVService {
	return NewCVService(userRepo, profileRepo, cvRepo, nil, nil, nil)
}

func testUser() *models.User {
	user := &models.User{FirstName: "Ada", LastName: "Lovelace"}
	user.ID = "user-1"
	return user
}

func TestGenerateRejectsUnknownLanguage(t *testing.T) {
	svc := newTestCVService(
		&stubUserRepo{user: testUser()},
		&stubProfileRepo{},
		&stubCvRepo{},
	)

	_, err := svc.Generate(context.Background(), nil, "user-1", &dto.GenerateCVRequest{
		LanguageID: "lang-x",
		RoleID:     "role-1",
		SkillIDs:   tenSkillIDs(),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestGenerateRejectsUnclaimedRole(t *testing.T) {
	lang := &models.CVLanguage{Language: "en-us"}
	lang.ID = "lang-1"

	svc := newTestCVService(
		&stubUserRepo{user: testUser()},
		&stubProfileRepo{},
		&stubCvRepo{lang: lang},
	)

	_, err := svc.Generate(context.Background(), nil, "user-1", &dto.GenerateCVRequest{
		LanguageID: "lang-1",
		RoleID:     "role-1",
		SkillIDs:   tenSkillIDs(),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Contains(t, appErr.Details.(map[string]string), "role_id")
}

func TestGenerateRejectsForeignSkills(t *testing.T) {
	lang := &models.CVLanguage{Language: "en-us"}
	lang.ID = "lang-1"
	userRole := &models.UserRole{UserID: "user-1", RoleID: "role-1", Role: &models.Role{Name: "Backend Engineer"}}

	svc := newTestCVService(
		&stubUserRepo{user: testUser()},
		&stubProfileRepo{userRole: userRole, owned: 9},
		&stubCvRepo{lang: lang},
	)

	_, err := svc.Generate(context.Background(), nil, "user-1", &dto.GenerateCVRequest{
		LanguageID: "lang-1",
		RoleID:     "role-1",
		SkillIDs:   tenSkillIDs(),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Contains(t, appErr.Details.(map[string]string), "skill_ids")
}

func TestGenerateRejectsWrongSelectionSize(t *testing.T) {
	lang := &models.CVLanguage{Language: "en-us"}
	lang.ID = "lang-1"
	userRole := &models.UserRole{UserID: "user-1", RoleID: "role-1", Role: &models.Role{Name: "Backend Engineer"}}

	svc := newTestCVService(
		&stubUserRepo{user: testUser()},
		&stubProfileRepo{userRole: userRole, owned: 10},
		&stubCvRepo{lang: lang},
	)

	_, err := svc.Generate(context.Background(), nil, "user-1", &dto.GenerateCVRequest{
		LanguageID: "lang-1",
		RoleID:     "role-1",
		SkillIDs:   tenSkillIDs()[:9],
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestGenerateRejectsUnknownUser(t *testing.T) {
	svc := newTestCVService(&stubUserRepo{}, &stubProfileRepo{}, &stubCvRepo{})

	_, err := svc.Generate(context.Background(), nil, "ghost", &dto.GenerateCVRequest{
		LanguageID: "lang-1",
		RoleID:     "role-1",
		SkillIDs:   tenSkillIDs(),
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
