package kit

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

var (
	// NotFound is returned when a kit with the name passed does not exist.
	NotFound = fmt.Errorf("kit with this name doesn't exist")
	// AlreadyExists is returned when a kit is added under a name that is already taken.
	AlreadyExists = fmt.Errorf("kit with this name already exists")
	// NoInventory is returned when a kit is created from a source without a player inventory.
	NoInventory = fmt.Errorf("source has no player inventory")
)

// Registry holds the kits defined on the server and the kit each player prefers. Kit names keep
// the case they were added with but are unique and looked up regardless of case.
type Registry struct {
	mu          sync.RWMutex
	kits        map[string]Kit
	preferences map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		kits:        make(map[string]Kit),
		preferences: make(map[string]string),
	}
}

// Create captures the inventory of the Holder as a new kit with the name passed and makes it
// the preferred kit of the player.
func (r *Registry) Create(player string, h Holder, name string) error {
	if h == nil {
		return NoInventory
	}
	return r.Add(player, name, FromHolder(h))
}

// Add stores the kit passed under the name passed and makes it the preferred kit of the player.
// An empty player name leaves the preferences untouched.
func (r *Registry) Add(player, name string, k Kit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.resolve(name); ok {
		return fmt.Errorf("add %q (as %q): %w", name, existing, AlreadyExists)
	}
	r.kits[name] = k
	if player != "" {
		r.preferences[player] = name
	}
	return nil
}

// Use makes the kit with the name passed the preferred kit of the player.
func (r *Registry) Use(player, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.resolve(name)
	if !ok {
		return fmt.Errorf("use %q: %w", name, NotFound)
	}
	r.preferences[player] = stored
	return nil
}

// Remove deletes the kit with the name passed. Preferences naming the kit are kept and ignored
// until the player selects another kit.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.resolve(name)
	if !ok {
		return fmt.Errorf("remove %q: %w", name, NotFound)
	}
	delete(r.kits, stored)
	return nil
}

// Names returns the sorted names of all kits. The slice is empty, never nil, if there are none.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := lo.Keys(r.kits)
	r.mu.RUnlock()

	slices.Sort(names)
	if names == nil {
		names = []string{}
	}
	return names
}

// Kit returns the kit with the name passed.
func (r *Registry) Kit(name string) (Kit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.resolve(name)
	if !ok {
		return Kit{}, false
	}
	return r.kits[name], true
}

// Preference returns the name of the kit preferred by the player.
func (r *Registry) Preference(player string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.preferences[player]
	return name, ok
}

// Preferred returns the kit preferred by the player, if the player has a preference and the kit
// still exists.
func (r *Registry) Preferred(player string) (Kit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.preferences[player]
	if !ok {
		return Kit{}, false
	}
	if name, ok = r.resolve(name); !ok {
		return Kit{}, false
	}
	return r.kits[name], true
}

// resolve returns the name under which the kit passed is stored, matching case-insensitively.
// The caller must hold r.mu.
func (r *Registry) resolve(name string) (string, bool) {
	if _, ok := r.kits[name]; ok {
		return name, true
	}
	for stored := range r.kits {
		if strings.EqualFold(stored, name) {
			return stored, true
		}
	}
	return "", false
}

// ApplyPreferred applies the kit preferred by the player to the Holder. It reports false and
// leaves the Holder untouched if there is no such kit.
func (r *Registry) ApplyPreferred(player string, h Holder) bool {
	k, ok := r.Preferred(player)
	if !ok || h == nil {
		return false
	}
	Apply(k, h)
	return true
}

// Profiles returns the persisted form of the kits and preferences in the Registry.
func (r *Registry) Profiles() Profiles {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := Profiles{
		Kits:        make(map[string]Data, len(r.kits)),
		Preferences: maps.Clone(r.preferences),
	}
	for name, k := range r.kits {
		p.Kits[name] = Encode(k)
	}
	return p
}

// LoadProfiles replaces the kits and preferences of the Registry with those of p. Kits that
// cannot be decoded, and kits whose name differs only in case from one loaded before them in
// sorted order, are skipped and their errors returned joined.
func (r *Registry) LoadProfiles(p Profiles) error {
	kits := make(map[string]Kit, len(p.Kits))
	loaded := make(map[string]string, len(p.Kits))
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(p.Kits)) {
		if first, ok := loaded[strings.ToLower(name)]; ok {
			errs = append(errs, fmt.Errorf("kit %q: %w as %q", name, AlreadyExists, first))
			continue
		}
		k, err := Decode(p.Kits[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("kit %q: %w", name, err))
			continue
		}
		kits[name] = k
		loaded[strings.ToLower(name)] = name
	}

	preferences := maps.Clone(p.Preferences)
	if preferences == nil {
		preferences = make(map[string]string)
	}

	r.mu.Lock()
	r.kits = kits
	r.preferences = preferences
	r.mu.Unlock()
	return errors.Join(errs...)
}
