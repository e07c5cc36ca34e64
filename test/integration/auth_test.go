package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvgen_backend/internal/services/dto"
	"cvgen_backend/test/helpers"
)

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, email string) dto.AuthResponse {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		FirstName:  "Ada",
		MiddleName: "King",
		LastName:   "Lovelace",
		BirthDate:  "1990-12-10",
		Email:      email,
		Tel:        fmt.Sprintf("+55119%08d", len(email)*1234567%100000000),
		Password:   "analytical-engine",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	return resp
}

func TestAuthFlow(t *testing.T) {
	db := helpers.OpenTestDB(t)
	tx := helpers.BeginTx(t, db)
	router := helpers.NewServer(t, tx)

	session := registerUser(t, router, "ada.auth@example.com")

	t.Run("login with valid credentials", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
			Email:    "ada.auth@example.com",
			Password: "analytical-engine",
		})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("login with wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
			Email:    "ada.auth@example.com",
			Password: "difference-engine",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh rotates the token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshTokenRequest{
			RefreshToken: session.RefreshToken,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rotated dto.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rotated))
		assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

		// The consumed token is gone.
		w = doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshTokenRequest{
			RefreshToken: session.RefreshToken,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me requires a token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/users/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/v1/users/me", session.AccessToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var me dto.UserDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
		assert.Equal(t, "ada.auth@example.com", me.Email)
	})

	t.Run("admin group is closed to regular users", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/admin/users", session.AccessToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
