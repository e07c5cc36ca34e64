package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tr := New("en-us")

	assert.Equal(t, "en-us", tr.Resolve("en-us"))
	assert.Equal(t, "pt-br", tr.Resolve("PT-BR"))
	assert.Equal(t, "pt-br", tr.Resolve("pt"), "bare language tag matches the regional variant")
	assert.Equal(t, "en-us", tr.Resolve("fr-fr"), "unknown locales fall back to the default")
	assert.Equal(t, "en-us", tr.Resolve(""))
	assert.Equal(t, "en-us", tr.Resolve("not a locale"))
}

func TestTranslate(t *testing.T) {
	tr := New("en-us")

	assert.Equal(t, "Skills", tr.T("en-us", "skills"))
	assert.Equal(t, "Habilidades", tr.T("pt-br", "skills"))
	assert.Equal(t, "Skills", tr.T("de-de", "skills"), "unknown locale uses the default table")
	assert.Equal(t, "no_such_key", tr.T("en-us", "no_such_key"), "missing keys come back verbatim")
}

func TestRegisterExtendsLocales(t *testing.T) {
	tr := New("en-us")
	tr.Register("es-es", map[string]string{"skills": "Habilidades"})

	assert.Contains(t, tr.Supported(), "es-es")
	assert.Equal(t, "es-es", tr.Resolve("es"))
	assert.Equal(t, "Habilidades", tr.T("es-es", "skills"))
	assert.Equal(t, "Experience", tr.T("es-es", "experience"),
		"keys missing from a partial table fall back to the default locale")
}

func TestConcurrentTranslationIsLocaleScoped(t *testing.T) {
	tr := New("en-us")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			assert.Equal(t, "Educação", tr.T("pt-br", "education"))
		}
	}()
	for i := 0; i < 200; i++ {
		assert.Equal(t, "Education", tr.T("en-us", "education"))
	}
	<-done
}
