package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompletionDerivedFromEndDate(t *testing.T) {
	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)

	edu := &Education{}
	assert.True(t, edu.IsCompleted(), "education without end date reads as completed")
	edu.EndDate = &end
	assert.False(t, edu.IsCompleted())

	project := &Project{}
	assert.True(t, project.IsCompleted())
	project.EndDate = &end
	assert.False(t, project.IsCompleted())
}

func TestExperienceIsCurrent(t *testing.T) {
	exp := &Experience{}
	assert.True(t, exp.IsCurrent())

	end := time.Now()
	exp.EndDate = &end
	assert.False(t, exp.IsCurrent())
}
