package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageLevelValid(t *testing.T) {
	for _, level := range []LanguageLevel{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2} {
		assert.True(t, level.Valid(), string(level))
	}
	assert.False(t, LanguageLevel("D1").Valid())
	assert.False(t, LanguageLevel("").Valid())
}

func TestUserLanguageNativeForcesTopTier(t *testing.T) {
	ul := &UserLanguage{Level: LevelA1, IsNative: true}
	require.NoError(t, ul.BeforeSave(nil))
	assert.Equal(t, LevelC2, ul.Level)

	nonNative := &UserLanguage{Level: LevelB2}
	require.NoError(t, nonNative.BeforeSave(nil))
	assert.Equal(t, LevelB2, nonNative.Level)
}

func TestLevelDisplay(t *testing.T) {
	native := &UserLanguage{Level: LevelC2, IsNative: true}
	assert.Equal(t, "native", native.LevelDisplay())

	learner := &UserLanguage{Level: LevelB1}
	assert.Equal(t, "B1", learner.LevelDisplay())
}
