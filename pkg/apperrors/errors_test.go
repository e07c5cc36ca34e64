package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestMarshalHidesInternals(t *testing.T) {
	err := InternalError(errors.New("secret detail"))

	data, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.NotContains(t, string(data), "secret detail")
	assert.Contains(t, string(data), string(CodeInternalError))
}

func TestAsAppError(t *testing.T) {
	appErr := NotFoundError("cv", "Not found")

	got, ok := AsAppError(appErr)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, got.HTTPCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorTaxonomy(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ValidationError(nil).HTTPCode)
	assert.Equal(t, http.StatusConflict, ConflictError("profile", "dup").HTTPCode)
	assert.Equal(t, http.StatusInternalServerError, RenderingError(errors.New("chrome crashed")).HTTPCode)
	assert.Equal(t, CodeRenderingFailed, RenderingError(errors.New("x")).Code)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("no").HTTPCode)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("no").HTTPCode)
}
