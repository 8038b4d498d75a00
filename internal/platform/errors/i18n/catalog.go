// Package i18n provides localized user-facing messages for error codes.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// DefaultLocale is the fallback locale for error messages.
const DefaultLocale = "en-US"

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{
		DefaultLocale: enUSCatalog,
	}
)

// GetCatalog returns the catalog best matching the given locale tag.
// Falls back to en-US when the locale is empty, unparsable, or unregistered.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		return enUSCatalog
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return enUSCatalog
	}

	catalogsMu.RLock()
	defer catalogsMu.RUnlock()

	tags := make([]language.Tag, 0, len(catalogs))
	locales := make([]string, 0, len(catalogs))
	for registered := range catalogs {
		parsed, parseErr := language.Parse(registered)
		if parseErr != nil {
			continue
		}
		tags = append(tags, parsed)
		locales = append(locales, registered)
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No || index >= len(locales) {
		return enUSCatalog
	}
	return catalogs[locales[index]]
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Templates are always executed even with nil/empty metadata so template
// variables without metadata render as empty rather than failing.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// RegisterCatalog registers a catalog for the given locale, replacing any
// existing registration. Intended for init-time or test setup.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}
