package locale

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Equal(t, []string{"en-US", "ru-RU"}, b.Locales())
	assert.True(t, b.HasLocale("ru-RU"))
	assert.False(t, b.HasLocale("de-DE"))
}

func TestEmbeddedLocalesCoverBase(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)

	// Every locale key must exist in the base catalog
	for _, l := range b.Locales() {
		for key := range b.locales[l] {
			_, ok := b.locales[BaseLocale][key]
			assert.True(t, ok, "%s: %s not in base", l, key)
		}
	}
}

func TestPrinter_Formats(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)

	en, err := b.Printer("en-US")
	require.NoError(t, err)
	assert.Equal(t, "en-US", en.Locale())
	assert.Equal(t, "Level 3/5", en.T("hud.level", 3, 5))
	assert.Equal(t, "75%", en.T("hud.health", 75))
	assert.Equal(t, "FINAL LEVEL", en.T("banner.final"))

	ru, err := b.Printer("ru-RU")
	require.NoError(t, err)
	assert.Equal(t, "УРОВЕНЬ 2/5", ru.T("banner.level", 2, 5))
	assert.Equal(t, "МИССИЯ ЗАВЕРШЕНА", ru.T("credits.title"))
}

func TestPrinter_FallsBackToBase(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)

	ru, err := b.Printer("ru-RU")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", ru.T("debug.title"))

	v, ok := b.Message("ru-RU", "status.silent")
	assert.True(t, ok)
	assert.Equal(t, "NO AUDIO", v)

	_, ok = b.Message("ru-RU", "no.such.key")
	assert.False(t, ok)
}

func TestPrinter_UnknownLocale(t *testing.T) {
	b, err := LoadEmbedded()
	require.NoError(t, err)
	_, err = b.Printer("xx-YY")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestLoadFromFS_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
		is    error
	}{
		{
			name:  "empty",
			files: fstest.MapFS{},
		},
		{
			name: "no base locale",
			files: fstest.MapFS{
				"locales/ru-RU/ui.yaml": {Data: []byte("locale: \"ru-RU\"\nmessages:\n  \"a\": \"b\"\n")},
			},
			is: ErrNoBaseLocale,
		},
		{
			name: "locale path mismatch",
			files: fstest.MapFS{
				"locales/en-US/ui.yaml": {Data: []byte("locale: \"ru-RU\"\nmessages:\n  \"a\": \"b\"\n")},
			},
		},
		{
			name: "invalid yaml",
			files: fstest.MapFS{
				"locales/en-US/ui.yaml": {Data: []byte("locale: [unclosed\n")},
			},
		},
		{
			name: "duplicate key across namespaces",
			files: fstest.MapFS{
				"locales/en-US/a.yaml": {Data: []byte("locale: \"en-US\"\nmessages:\n  \"k\": \"1\"\n")},
				"locales/en-US/b.yaml": {Data: []byte("locale: \"en-US\"\nmessages:\n  \"k\": \"2\"\n")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFS(tt.files)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
