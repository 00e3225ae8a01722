package localization

import (
	"chat-dispatch/domain/chat"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// Key identifies a notice text.
type Key string

const (
	KeyWaitBeforeSpeaking  Key = "wait_before_speaking"
	KeyUnknownLanguage     Key = "unknown_language"
	KeyLanguageNotLearned  Key = "language_not_learned"
	KeyAwayDefault         Key = "away_default"
	KeyDoNotDisturbDefault Key = "dnd_default"
	KeyFloodMuted          Key = "flood_muted"
)

// BaseLocale is used for locales without a catalog and for missing keys.
const BaseLocale = chat.LocaleEnUS

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the notice texts of every supported locale.
type Catalog struct {
	messages map[chat.Locale]map[Key]struct{}
	printers map[chat.Locale]*message.Printer
}

func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS reads locales/*.yaml. The base locale is mandatory.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	builder := catalog.NewBuilder()
	c := &Catalog{
		messages: make(map[chat.Locale]map[Key]struct{}),
		printers: make(map[chat.Locale]*message.Printer),
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		locale := chat.Locale(strings.TrimSpace(file.Locale))
		if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); string(locale) != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name", p, locale)
		}
		tag, err := languageTag(locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
		keys := make(map[Key]struct{}, len(file.Messages))
		for key, text := range file.Messages {
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", p, key, err)
			}
			keys[Key(key)] = struct{}{}
		}
		c.messages[locale] = keys
		c.printers[locale] = message.NewPrinter(tag, message.Catalog(builder))
	}
	if _, ok := c.printers[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return c, nil
}

// languageTag turns a client locale such as "frFR" into "fr-FR".
func languageTag(locale chat.Locale) (language.Tag, error) {
	s := string(locale)
	if len(s) != 4 {
		return language.Und, fmt.Errorf("bad locale %q", s)
	}
	return language.Parse(s[:2] + "-" + s[2:])
}

// Text prints a notice in the locale, falling back to the base locale.
func (c *Catalog) Text(locale chat.Locale, key Key, args ...any) string {
	if _, ok := c.messages[locale][key]; !ok {
		locale = BaseLocale
	}
	return c.printers[locale].Sprintf(string(key), args...)
}

// Wait formats a mute duration the way notices print it.
func Wait(d time.Duration) string {
	if d < time.Second {
		d = time.Second
	}
	return d.Round(time.Second).String()
}
