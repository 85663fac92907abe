package kit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/restartfu/gophig"
)

// Profiles is the content of the profiles file: every kit by name, the kit each player prefers
// and the members of the team.
type Profiles struct {
	Kits        map[string]Data   `toml:"kits"`
	Preferences map[string]string `toml:"preferences"`
	Team        []string          `toml:"team"`
}

// Store reads and writes Profiles to a TOML file.
type Store struct {
	path string
	g    *gophig.Gophig[Profiles]
}

// NewStore returns a Store backed by the file at the path passed.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		g:    gophig.NewGophig[Profiles](path, gophig.TOMLMarshaler{}, os.ModePerm),
	}
}

// Path returns the path of the profiles file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the profiles file. A missing file yields empty Profiles and no error.
func (s *Store) Load() (Profiles, error) {
	p, err := s.g.LoadConf()
	if errors.Is(err, os.ErrNotExist) {
		return Profiles{}, nil
	}
	if err != nil {
		return Profiles{}, fmt.Errorf("load profiles %s: %w", s.path, err)
	}
	return p, nil
}

// Save writes the profiles file, creating its directory if needed.
func (s *Store) Save(p Profiles) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("save profiles %s: %w", s.path, err)
		}
	}
	if err := s.g.SaveConf(p); err != nil {
		return fmt.Errorf("save profiles %s: %w", s.path, err)
	}
	return nil
}
