package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator resolves UI strings for a locale passed explicitly by the
// caller. No process-wide active locale exists: concurrent requests can
// render in different languages safely.
type Translator struct {
	mu            sync.RWMutex
	defaultLocale string
	tags          []language.Tag
	locales       []string
	messages      map[string]map[string]string
	matcher       language.Matcher
}

// New builds a translator with the built-in locale tables.
func New(defaultLocale string) *Translator {
	t := &Translator{
		defaultLocale: normalize(defaultLocale),
		messages:      map[string]map[string]string{},
	}
	t.Register("en-us", enUS)
	t.Register("pt-br", ptBR)
	return t
}

// Register adds or replaces a locale table. Adding an output language is
// a data change: the assembler never needs to know the locale list.
func (t *Translator) Register(locale string, messages map[string]string) {
	locale = normalize(locale)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.messages[locale]; !exists {
		t.locales = append(t.locales, locale)
		t.tags = append(t.tags, language.Make(locale))
	}
	t.messages[locale] = messages
	t.matcher = language.NewMatcher(t.tags)
}

// Supported lists the registered locale codes.
func (t *Translator) Supported() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.locales))
	copy(out, t.locales)
	return out
}

// Resolve maps an arbitrary locale string onto a registered locale,
// falling back to the default.
func (t *Translator) Resolve(locale string) string {
	locale = normalize(locale)

	t.mu.RLock()
	defer t.mu.RUnlock()

	if _, ok := t.messages[locale]; ok {
		return locale
	}

	tag, err := language.Parse(locale)
	if err == nil && t.matcher != nil {
		_, idx, conf := t.matcher.Match(tag)
		if conf > language.No {
			return t.locales[idx]
		}
	}
	return t.defaultLocale
}

// T translates key for the given locale. Unknown keys come back verbatim
// so a missing translation never breaks rendering.
func (t *Translator) T(locale, key string) string {
	resolved := t.Resolve(locale)

	t.mu.RLock()
	defer t.mu.RUnlock()

	if msg, ok := t.messages[resolved][key]; ok {
		return msg
	}
	if msg, ok := t.messages[t.defaultLocale][key]; ok {
		return msg
	}
	return key
}

func normalize(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}
