// Package i18n provides the string-lookup capability injected into the
// presentation layer. Catalogs are embedded JSON files, one per locale.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"

	"counterapp/internal/jsonutil"
)

// Text keys
const (
	KeyTitle     = "title"
	KeyIncrement = "increment"
	KeyDecrement = "decrement"
	KeyRange     = "range"
	KeyAtMin     = "at_min"
	KeyAtMax     = "at_max"
	KeyCelebrate = "celebrate"
	KeyHelp      = "help"
	KeyTheme     = "theme"
	KeyLocale    = "locale"
	KeyQuit      = "quit"
)

// DefaultLocale is the fallback catalog for missing keys.
const DefaultLocale = "en"

// ErrUnknownLocale is returned when no supported locale matches.
var ErrUnknownLocale = errors.New("unknown locale")

//go:embed locales/*.json
var catalogs embed.FS

// Supported lists the embedded locales. The first entry is the matcher default.
var Supported = []string{"en", "ar", "es", "hi", "zh"}

var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, len(Supported))
	for i, s := range Supported {
		tags[i] = language.MustParse(s)
	}
	return language.NewMatcher(tags)
}

// Provider looks up localized strings by key.
type Provider interface {
	T(key string) string
}

// Localizer is a Provider backed by one catalog plus the English fallback.
type Localizer struct {
	locale   string
	texts    map[string]string
	fallback map[string]string
}

// Ensure Localizer implements Provider.
var _ Provider = (*Localizer)(nil)

// Match resolves a BCP 47 (or POSIX-style) locale to a supported one.
// An empty locale resolves to DefaultLocale.
func Match(locale string) (string, error) {
	locale = normalize(locale)
	if locale == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("locale %q: %w", locale, ErrUnknownLocale)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("locale %q: %w", locale, ErrUnknownLocale)
	}
	return Supported[idx], nil
}

// New loads the catalog best matching locale.
func New(locale string) (*Localizer, error) {
	name, err := Match(locale)
	if err != nil {
		return nil, err
	}
	fallback, err := load(DefaultLocale)
	if err != nil {
		return nil, err
	}
	texts := fallback
	if name != DefaultLocale {
		if texts, err = load(name); err != nil {
			return nil, err
		}
	}
	return &Localizer{locale: name, texts: texts, fallback: fallback}, nil
}

// Locale returns the resolved locale name.
func (l *Localizer) Locale() string {
	return l.locale
}

// T returns the text for key, falling back to English and then to the key itself.
func (l *Localizer) T(key string) string {
	if s, ok := l.texts[key]; ok && s != "" {
		return s
	}
	if s, ok := l.fallback[key]; ok && s != "" {
		return s
	}
	return key
}

// Next returns the supported locale after current, wrapping around.
func Next(current string) string {
	for i, s := range Supported {
		if s == current {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return DefaultLocale
}

// FromEnv returns the locale named by LC_ALL, LC_MESSAGES or LANG, in that order.
func FromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := normalize(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func load(name string) (map[string]string, error) {
	data, err := catalogs.ReadFile("locales/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", name, err)
	}
	return jsonutil.UnmarshalStringMap(data, "locale "+name)
}

// normalize turns POSIX locale strings ("pt_BR.UTF-8@euro") into BCP 47 form.
func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
