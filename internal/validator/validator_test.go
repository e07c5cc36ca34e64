package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type telPayload struct {
	Tel string `json:"tel" validate:"required,tel_digits"`
}

func TestTelDigitsRule(t *testing.T) {
	v := New()

	valid := []string{"5511987654321", "+5511987654321", "11987654321"}
	for _, tel := range valid {
		assert.NoError(t, v.Validate(&telPayload{Tel: tel}), tel)
	}

	invalid := []string{
		"987654321",        // too short
		"12345678901234",   // too long
		"55 11 98765-4321", // formatting characters
		"11987654321+",     // plus not leading
		"abc11987654321",   // letters
	}
	for _, tel := range invalid {
		assert.Error(t, v.Validate(&telPayload{Tel: tel}), tel)
	}
}

type selectionPayload struct {
	SkillIDs []string `json:"skill_ids" validate:"required,len=10,unique"`
}

func TestFixedSizeSelection(t *testing.T) {
	v := New()

	ten := make([]string, 10)
	for i := range ten {
		ten[i] = string(rune('a' + i))
	}
	assert.NoError(t, v.Validate(&selectionPayload{SkillIDs: ten}))

	assert.Error(t, v.Validate(&selectionPayload{SkillIDs: ten[:9]}))

	dup := append([]string{}, ten...)
	dup[9] = dup[0]
	assert.Error(t, v.Validate(&selectionPayload{SkillIDs: dup}))
}

func TestValidationErrorUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&telPayload{})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors, "tel")
	assert.Equal(t, "This field is required", verr.Errors["tel"])
}
