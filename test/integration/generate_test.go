package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cvgen_backend/internal/models"
	"cvgen_backend/internal/services/dto"
	"cvgen_backend/test/helpers"
)

type generationFixture struct {
	languageID string
	roleID     string
	skillIDs   []string
}

// seedGeneration prepares the catalog and profile rows one generation
// needs: an output language, a claimed role and ten claimed skills.
func seedGeneration(t *testing.T, tx *gorm.DB, userID string) generationFixture {
	t.Helper()

	lang := &models.CVLanguage{Language: "en-us", Name: "English"}
	require.NoError(t, tx.Create(lang).Error)

	role := &models.Role{Name: "Backend Engineer"}
	require.NoError(t, tx.Create(role).Error)
	require.NoError(t, tx.Create(&models.UserRole{UserID: userID, RoleID: role.ID}).Error)

	skillIDs := make([]string, 10)
	for i := range skillIDs {
		skill := &models.Skill{Name: fmt.Sprintf("Skill %02d", i)}
		require.NoError(t, tx.Create(skill).Error)
		require.NoError(t, tx.Create(&models.UserSkill{UserID: userID, SkillID: skill.ID}).Error)
		skillIDs[i] = skill.ID
	}

	return generationFixture{languageID: lang.ID, roleID: role.ID, skillIDs: skillIDs}
}

func TestGenerateCV(t *testing.T) {
	db := helpers.OpenTestDB(t)
	tx := helpers.BeginTx(t, db)
	router := helpers.NewServer(t, tx)

	session := registerUser(t, router, "ada.generate@example.com")
	fixture := seedGeneration(t, tx, session.User.ID)

	req := dto.GenerateCVRequest{
		LanguageID:   fixture.languageID,
		RoleID:       fixture.roleID,
		SkillIDs:     fixture.skillIDs,
		Brief:        "Built analytical engines",
		CompanyName:  "Analytical Engines Ltd",
		CompanyBrief: "Computing pioneer",
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/cvs/generate", session.AccessToken, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `"Ada Lovelace - en-us.pdf"`)
	assert.NotEmpty(t, w.Body.Bytes())

	var companies, briefs, cvs int64
	require.NoError(t, tx.Model(&models.Company{}).Count(&companies).Error)
	require.NoError(t, tx.Model(&models.Brief{}).Count(&briefs).Error)
	require.NoError(t, tx.Model(&models.Cv{}).Count(&cvs).Error)
	assert.Equal(t, int64(1), companies)
	assert.Equal(t, int64(1), briefs)
	assert.Equal(t, int64(1), cvs)

	// An identical second call reuses the Company/Brief pair but still
	// logs another generation.
	w = doJSON(t, router, http.MethodPost, "/api/v1/cvs/generate", session.AccessToken, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, tx.Model(&models.Company{}).Count(&companies).Error)
	require.NoError(t, tx.Model(&models.Brief{}).Count(&briefs).Error)
	require.NoError(t, tx.Model(&models.Cv{}).Count(&cvs).Error)
	assert.Equal(t, int64(1), companies)
	assert.Equal(t, int64(1), briefs)
	assert.Equal(t, int64(2), cvs)
}

func TestGenerateValidation(t *testing.T) {
	db := helpers.OpenTestDB(t)
	tx := helpers.BeginTx(t, db)
	router := helpers.NewServer(t, tx)

	session := registerUser(t, router, "ada.validate@example.com")
	fixture := seedGeneration(t, tx, session.User.ID)

	t.Run("nine skills", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/cvs/generate", session.AccessToken, dto.GenerateCVRequest{
			LanguageID: fixture.languageID,
			RoleID:     fixture.roleID,
			SkillIDs:   fixture.skillIDs[:9],
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unclaimed role", func(t *testing.T) {
		other := &models.Role{Name: "Frontend Engineer"}
		require.NoError(t, tx.Create(other).Error)

		w := doJSON(t, router, http.MethodPost, "/api/v1/cvs/generate", session.AccessToken, dto.GenerateCVRequest{
			LanguageID: fixture.languageID,
			RoleID:     other.ID,
			SkillIDs:   fixture.skillIDs,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("foreign skill", func(t *testing.T) {
		foreign := &models.Skill{Name: "Unclaimed Skill"}
		require.NoError(t, tx.Create(foreign).Error)

		ids := append([]string{}, fixture.skillIDs[:9]...)
		ids = append(ids, foreign.ID)

		w := doJSON(t, router, http.MethodPost, "/api/v1/cvs/generate", session.AccessToken, dto.GenerateCVRequest{
			LanguageID: fixture.languageID,
			RoleID:     fixture.roleID,
			SkillIDs:   ids,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("history lists generations newest first", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/cvs/generate", session.AccessToken, dto.GenerateCVRequest{
			LanguageID: fixture.languageID,
			RoleID:     fixture.roleID,
			SkillIDs:   fixture.skillIDs,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, router, http.MethodGet, "/api/v1/cvs", session.AccessToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []models.Cv `json:"items"`
			Total int64       `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.Total)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, session.User.ID, resp.Items[0].UserID)
	})
}
