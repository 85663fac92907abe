package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandertv/gophertunnel/minecraft/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBundledEnglish(t *testing.T) {
	require.NoError(t, RegisterBundled(language.English))

	assert.Equal(t, "<green>Kit added</green>", TranslateL(language.English, "kit.added"))
	assert.Equal(t, "<green> archer</green>", TranslateL(language.English, "kit.list.entry", "archer"))
	assert.Equal(t, text.Colourf("%s", "<green>Kit added</green>"), Translate("kit.added"))
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	require.NoError(t, RegisterBundled(language.English))
	assert.Equal(t, "<green>Kit removed</green>", TranslateL(language.German, "kit.removed"))
}

func TestTranslateMissingKey(t *testing.T) {
	require.NoError(t, RegisterBundled(language.English))
	assert.Equal(t, "missing translation for 'no.such.key'", TranslateL(language.English, "no.such.key"))
}

func TestRegisterFromDirectory(t *testing.T) {
	dir := t.TempDir()
	content := "# comment\n\nbroken line\ngreeting = Hello %1 and %2, not %10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.lang"), []byte(content), 0o644))

	require.NoError(t, Register(language.French, dir))
	assert.Equal(t, "Hello a and b, not j", TranslateL(language.French, "greeting",
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"))

	assert.Error(t, Register(language.Spanish, dir))
}

func TestTranslateKeepsPercentInArguments(t *testing.T) {
	require.NoError(t, RegisterBundled(language.English))
	assert.Equal(t, text.Colourf("<green> 100%% kit</green>"), Translate("kit.list.entry", "100% kit"))
	assert.Equal(t, text.Colourf("%s", "<green> 100% kit</green>"), Translate("kit.list.entry", "100% kit"))
}
