package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvgen_backend/internal/models"
	"cvgen_backend/internal/services/dto"
	"cvgen_backend/test/helpers"
)

func TestExperienceCRUD(t *testing.T) {
	db := helpers.OpenTestDB(t)
	tx := helpers.BeginTx(t, db)
	router := helpers.NewServer(t, tx)

	session := registerUser(t, router, "ada.profile@example.com")

	company := &models.ExperienceCompany{Name: "Analytical Engines Ltd"}
	require.NoError(t, tx.Create(company).Error)
	role := &models.ExperienceRole{Name: "Engineer"}
	require.NoError(t, tx.Create(role).Error)

	payload := dto.ExperienceRequest{
		CompanyID:   company.ID,
		RoleID:      role.ID,
		Description: "Designed the mill",
		StartDate:   "2020-03-01",
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/profile/experiences", session.AccessToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Experience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	t.Run("duplicate entry conflicts", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/profile/experiences", session.AccessToken, payload)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("list returns the entry", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/profile/experiences", session.AccessToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var items []models.Experience
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Analytical Engines Ltd", items[0].Company.Name)
		assert.True(t, items[0].IsCurrent())
	})

	t.Run("update sets the end date", func(t *testing.T) {
		end := "2023-06-30"
		updated := payload
		updated.EndDate = &end

		w := doJSON(t, router, http.MethodPut, "/api/v1/profile/experiences/"+created.ID, session.AccessToken, updated)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("cannot touch another user's entry", func(t *testing.T) {
		other := registerUser(t, router, "grace.profile@example.com")

		w := doJSON(t, router, http.MethodDelete, "/api/v1/profile/experiences/"+created.ID, other.AccessToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/v1/profile/experiences/"+created.ID, session.AccessToken, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/v1/profile/experiences", session.AccessToken, nil)
		var items []models.Experience
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Empty(t, items)
	})
}

func TestSpokenLanguageOrdering(t *testing.T) {
	db := helpers.OpenTestDB(t)
	tx := helpers.BeginTx(t, db)
	router := helpers.NewServer(t, tx)

	session := registerUser(t, router, "ada.langs@example.com")

	names := []string{"English", "French", "German"}
	ids := make(map[string]string, len(names))
	for _, name := range names {
		lang := &models.Language{Name: name}
		require.NoError(t, tx.Create(lang).Error)
		ids[name] = lang.ID
	}

	add := func(langID, level string, native bool) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/profile/languages", session.AccessToken, dto.UserLanguageRequest{
			LanguageID: langID,
			Level:      level,
			IsNative:   native,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	add(ids["French"], "B1", false)
	add(ids["German"], "C1", false)
	add(ids["English"], "A1", true) // native: level forced to C2

	w := doJSON(t, router, http.MethodGet, "/api/v1/profile/languages", session.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.UserLanguage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 3)

	assert.Equal(t, "English", items[0].Language.Name, "native speaker first")
	assert.Equal(t, models.LevelC2, items[0].Level, "native level forced to C2")
	assert.Equal(t, "German", items[1].Language.Name, "then by level descending")
	assert.Equal(t, "French", items[2].Language.Name)
}
