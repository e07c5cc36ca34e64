package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvgen_backend/internal/repositories"
	"cvgen_backend/pkg/apperrors"
)

func TestParseDateRange(t *testing.T) {
	end := "2023-06-30"

	start, parsedEnd, err := parseDateRange("2020-03-01", &end)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), start)
	require.NotNil(t, parsedEnd)
	assert.Equal(t, time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), *parsedEnd)
}

func TestParseDateRangeOpenEnded(t *testing.T) {
	start, end, err := parseDateRange("2020-03-01", nil)
	require.NoError(t, err)
	assert.False(t, start.IsZero())
	assert.Nil(t, end)

	empty := ""
	_, end, err = parseDateRange("2020-03-01", &empty)
	require.NoError(t, err)
	assert.Nil(t, end)
}

func TestParseDateRangeRejectsInvertedRange(t *testing.T) {
	end := "2019-01-01"
	_, _, err := parseDateRange("2020-03-01", &end)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestParseDateRangeRejectsMalformedDates(t *testing.T) {
	_, _, err := parseDateRange("01/03/2020", nil)
	assert.Error(t, err)

	bad := "yesterday"
	_, _, err = parseDateRange("2020-03-01", &bad)
	assert.Error(t, err)
}

func TestMapFacetError(t *testing.T) {
	assert.NoError(t, mapFacetError(nil, "profile", ""))

	notFound := mapFacetError(repositories.ErrRecordNotFound, "profile", "")
	appErr, ok := apperrors.AsAppError(notFound)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	conflict := mapFacetError(repositories.ErrDuplicateRecord, "profile", "Skill already claimed")
	appErr, ok = apperrors.AsAppError(conflict)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
	assert.Equal(t, "Skill already claimed", appErr.Message)
}
