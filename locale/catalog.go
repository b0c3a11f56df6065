// Package locale loads the UI message catalogs and hands out printers
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to
const BaseLocale = "en-US"

var (
	// ErrNoBaseLocale is returned when the catalogs do not define BaseLocale
	ErrNoBaseLocale = errors.New("locale: base locale missing")

	// ErrUnknownLocale is returned when a printer is requested for an unloaded locale
	ErrUnknownLocale = errors.New("locale: unknown locale")
)

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale's messages
type Bundle struct {
	locales map[string]map[string]string
	builder *catalog.Builder
}

// LoadEmbedded loads the catalogs shipped with the binary
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files and registers them
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.addFile(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoBaseLocale, BaseLocale)
	}
	if err := b.register(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	dirLocale := path.Base(path.Dir(p))
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != dirLocale {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, dirLocale)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	msgs, ok := b.locales[locale]
	if !ok {
		msgs = map[string]string{}
		b.locales[locale] = msgs
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, dup := msgs[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		msgs[key] = value
	}
	return nil
}

// register builds a private x/text catalog; missing keys are filled from BaseLocale
func (b *Bundle) register() error {
	b.builder = catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	base := b.locales[BaseLocale]

	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		msgs := b.locales[locale]
		for _, key := range sortedKeys(base) {
			value, ok := msgs[key]
			if !ok {
				value = base[key]
			}
			if err := b.builder.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
		for _, key := range sortedKeys(msgs) {
			if _, ok := base[key]; ok {
				continue
			}
			if err := b.builder.SetString(tag, key, msgs[key]); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	return nil
}

// Locales returns the loaded locale identifiers, sorted
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for l := range b.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// HasLocale reports whether a locale was loaded
func (b *Bundle) HasLocale(locale string) bool {
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Message returns the raw message for a key with base-locale fallback
func (b *Bundle) Message(locale, key string) (string, bool) {
	if msgs, ok := b.locales[strings.TrimSpace(locale)]; ok {
		if v, ok := msgs[key]; ok {
			return v, true
		}
	}
	v, ok := b.locales[BaseLocale][key]
	return v, ok
}

// Printer formats catalog messages for one locale
type Printer struct {
	locale string
	p      *message.Printer
}

// Printer returns a printer for locale, or ErrUnknownLocale
func (b *Bundle) Printer(locale string) (*Printer, error) {
	locale = strings.TrimSpace(locale)
	if !b.HasLocale(locale) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	tag := language.MustParse(locale)
	return &Printer{
		locale: locale,
		p:      message.NewPrinter(tag, message.Catalog(b.builder)),
	}, nil
}

// Locale returns the printer's locale
func (p *Printer) Locale() string {
	return p.locale
}

// T formats the message for key with args
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
