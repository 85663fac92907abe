// Package locale provides the chat message catalogue of the server.
package locale

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sandertv/gophertunnel/minecraft/text"
	"golang.org/x/text/language"
)

// bundled holds the language files shipped with the server.
//
//go:embed lang/*.lang
var bundled embed.FS

// localeData represents a mapping of translation keys to their respective values for a specific language.
type localeData map[string]string

var (
	// locales is a map of registered locales keyed by language tags.
	locales   = make(map[language.Tag]localeData)
	localesMu sync.RWMutex
)

// RegisterBundled registers the language files embedded in the binary for the languages passed.
func RegisterBundled(langs ...language.Tag) error {
	for _, lang := range langs {
		if err := RegisterFS(lang, bundled, "lang"); err != nil {
			return err
		}
	}
	return nil
}

// Register registers a new locale from the language file "<lang>.lang" in the directory passed,
// replacing any keys already registered for the language.
func Register(lang language.Tag, dir string) error {
	return RegisterFS(lang, os.DirFS(dir), ".")
}

// RegisterFS registers a new locale from the language file "<lang>.lang" in dir of fsys.
// The language file should be in the format "key=value"; lines starting with '#' are ignored.
func RegisterFS(lang language.Tag, fsys fs.FS, dir string) error {
	file, err := fsys.Open(filepath.ToSlash(filepath.Join(dir, lang.String()+".lang")))
	if err != nil {
		return fmt.Errorf("could not open lang file: %w", err)
	}
	defer file.Close()

	data, err := parse(file)
	if err != nil {
		return err
	}

	localesMu.Lock()
	defer localesMu.Unlock()
	existing, ok := locales[lang]
	if !ok {
		locales[lang] = data
		return nil
	}
	for k, v := range data {
		existing[k] = v
	}
	return nil
}

// parse ...
func parse(r io.Reader) (localeData, error) {
	data := make(localeData)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) < 2 {
			continue
		}
		data[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lang file: %w", err)
	}
	return data, nil
}

// Translate translates a key to the default language (English), formats it with the provided
// arguments and resolves its colour tags.
func Translate(key string, args ...any) string {
	return text.Colourf("%s", TranslateL(language.English, key, args...))
}

// TranslateL translates a key to a specified language and formats it with the provided arguments.
// If the language data is unavailable, it falls back to the English translation.
// Placeholders %1, %2, ... in the translation are replaced by the arguments in order.
func TranslateL(lang language.Tag, key string, args ...any) string {
	localesMu.RLock()
	locale, ok := locales[lang]
	if !ok {
		locale = locales[language.English]
	}
	translation, ok := locale[key]
	localesMu.RUnlock()
	if !ok {
		return fmt.Sprintf("missing translation for '%s'", key)
	}

	// Replace the highest placeholders first so that %1 does not eat into %10.
	for i := len(args) - 1; i >= 0; i-- {
		placeholder := fmt.Sprintf("%%%d", i+1)
		translation = strings.ReplaceAll(translation, placeholder, fmt.Sprint(args[i]))
	}
	return translation
}
