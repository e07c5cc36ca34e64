package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvgen_backend/internal/i18n"
	"cvgen_backend/internal/models"
)

func sampleData() *TemplateData {
	user := &models.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		BirthDate: time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		Email:     "ada@example.com",
		Tel:       "5511987654321",
	}

	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)

	return &TemplateData{
		Locale: "en-us",
		User:   user,
		Tel:    user.FormatTel(),
		Age:    user.Age(),
		Role:   "Backend Engineer",
		Brief:  "Built analytical engines",
		Skills: []string{"Go", "PostgreSQL"},
		Socials: []models.UserSocialNetwork{
			{
				Username:      "ada",
				SocialNetwork: &models.SocialNetwork{Name: "GitHub", BaseURL: "https://github.com"},
			},
		},
		Experiences: []models.Experience{
			{
				Company:   &models.ExperienceCompany{Name: "Analytical Engines Ltd"},
				Role:      &models.ExperienceRole{Name: "Engineer"},
				StartDate: start,
				EndDate:   &end,
			},
			{
				Company:   &models.ExperienceCompany{Name: "Difference Machines"},
				Role:      &models.ExperienceRole{Name: "Lead Engineer"},
				StartDate: end,
			},
		},
		Educations: []models.Education{
			{
				Institution: &models.EducationInstitution{Name: "University of London", Acronym: "UoL"},
				Course:      &models.EducationCourse{Name: "Mathematics"},
				Degree:      &models.EducationDegree{Name: "BSc"},
				StartDate:   start,
			},
		},
		Languages: []models.UserLanguage{
			{Language: &models.Language{Name: "English"}, Level: models.LevelC2, IsNative: true},
			{Language: &models.Language{Name: "French"}, Level: models.LevelB1},
		},
	}
}

func TestRenderEnglish(t *testing.T) {
	tmpl, err := NewCVTemplate(i18n.New("en-us"))
	require.NoError(t, err)

	html, err := tmpl.Render(sampleData())
	require.NoError(t, err)

	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, "Backend Engineer")
	assert.Contains(t, html, "(11) 9 8765-4321")
	assert.Contains(t, html, "Skills")
	assert.Contains(t, html, "Engineer at Analytical Engines Ltd")
	assert.Contains(t, html, "Mar 2020 - Aug 2022")
	assert.Contains(t, html, "present", "open-ended experience shows present")
	assert.Contains(t, html, "in progress", "education without end date shows in progress")
	assert.Contains(t, html, "English - native")
	assert.Contains(t, html, "French - B1")
	assert.Contains(t, html, `href="https://github.com/ada"`)
}

func TestRenderLocalized(t *testing.T) {
	tmpl, err := NewCVTemplate(i18n.New("en-us"))
	require.NoError(t, err)

	data := sampleData()
	data.Locale = "pt-br"

	html, err := tmpl.Render(data)
	require.NoError(t, err)

	assert.Contains(t, html, "Habilidades")
	assert.Contains(t, html, "Experiência")
	assert.Contains(t, html, "nativo")
	assert.NotContains(t, html, "<h2>Skills</h2>")
}

func TestRenderUnknownLocaleFallsBack(t *testing.T) {
	tmpl, err := NewCVTemplate(i18n.New("en-us"))
	require.NoError(t, err)

	data := sampleData()
	data.Locale = "fr-fr"

	html, err := tmpl.Render(data)
	require.NoError(t, err)
	assert.Contains(t, html, "Skills")
	assert.Contains(t, html, `lang="en-us"`)
}
