// Package i18n holds the user-facing strings of the TUI and CLI.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

// loadBundle parses every embedded locale file once. English is the
// fallback language.
func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			bundleErr = fmt.Errorf("read locales dir: %w", err)
			return
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			data, err := localeFS.ReadFile("locales/" + e.Name())
			if err != nil {
				bundleErr = fmt.Errorf("read locale file %s: %w", e.Name(), err)
				return
			}
			if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
				bundleErr = fmt.Errorf("parse locale file %s: %w", e.Name(), err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Languages returns the tags of every embedded locale.
func Languages() []string {
	b, err := loadBundle()
	if err != nil {
		return nil
	}
	var out []string
	for _, tag := range b.LanguageTags() {
		out = append(out, tag.String())
	}
	return out
}

// Translator localizes messages for one language. Unknown languages fall
// back to English.
type Translator struct {
	lang string
	loc  *i18n.Localizer
}

func New(lang string) (*Translator, error) {
	if _, err := language.Parse(lang); err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}
	return &Translator{lang: lang, loc: i18n.NewLocalizer(b, lang, "en")}, nil
}

// English returns the fallback translator. It panics only if the embedded
// locales are broken.
func English() *Translator {
	t, err := New("en")
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Translator) Lang() string { return t.lang }

// T translates a message by ID. A missing message yields its ID.
func (t *Translator) T(msgID string) string {
	return t.localize(&i18n.LocalizeConfig{MessageID: msgID})
}

// Td translates a message by ID with template data.
func (t *Translator) Td(msgID string, data map[string]any) string {
	return t.localize(&i18n.LocalizeConfig{MessageID: msgID, TemplateData: data})
}

// Tp translates a pluralized message; Count is available to the template.
func (t *Translator) Tp(msgID string, count int) string {
	return t.localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}

func (t *Translator) localize(cfg *i18n.LocalizeConfig) string {
	if t == nil || t.loc == nil {
		return cfg.MessageID
	}
	s, err := t.loc.Localize(cfg)
	if err != nil {
		return cfg.MessageID
	}
	return s
}
