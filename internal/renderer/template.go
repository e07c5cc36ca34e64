package renderer

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"cvgen_backend/internal/i18n"
	"cvgen_backend/internal/models"
)

//go:embed templates/cv.html
var templateFS embed.FS

// TemplateData is the full rendering context the assembler gathers for
// one document. Collections arrive already ordered by the repositories.
type TemplateData struct {
	Locale      string
	User        *models.User
	Tel         string
	Age         int
	Role        string
	Brief       string
	CompanyName string
	Skills      []string
	Socials     []models.UserSocialNetwork
	Experiences []models.Experience
	Educations  []models.Education
	Languages   []models.UserLanguage
}

// CVTemplate renders the localized HTML document. The locale travels in
// the data, never in shared state.
type CVTemplate struct {
	tmpl       *template.Template
	translator *i18n.Translator
}

func NewCVTemplate(translator *i18n.Translator) (*CVTemplate, error) {
	// Date funcs accept both time.Time and *time.Time: start dates are
	// required, end dates are optional.
	funcs := template.FuncMap{
		"t":     translator.T,
		"fdate": formatDate("Jan 2006"),
		"fyear": formatDate("2006"),
	}

	tmpl, err := template.New("cv.html").Funcs(funcs).ParseFS(templateFS, "templates/cv.html")
	if err != nil {
		return nil, err
	}

	return &CVTemplate{tmpl: tmpl, translator: translator}, nil
}

func formatDate(layout string) func(v any) string {
	return func(v any) string {
		switch d := v.(type) {
		case time.Time:
			return d.Format(layout)
		case *time.Time:
			if d != nil {
				return d.Format(layout)
			}
		}
		return ""
	}
}

func (t *CVTemplate) Render(data *TemplateData) (string, error) {
	data.Locale = t.translator.Resolve(data.Locale)

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
