// Package team provides the team that gates the PvP death and respawn sequence.
package team

import (
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Team is a named set of players. Membership is keyed by lower-cased player name.
type Team struct {
	name string

	mu      sync.RWMutex
	members map[string]struct{}
}

// New creates a new team with the name and initial members passed.
func New(name string, members ...string) *Team {
	t := &Team{
		name:    name,
		members: make(map[string]struct{}, len(members)),
	}
	for _, m := range members {
		t.members[key(m)] = struct{}{}
	}
	return t
}

// Name returns the name of the team.
func (t *Team) Name() string {
	return t.name
}

// Join adds the player to the team. It reports false if the player was already a member.
func (t *Team) Join(player string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	k := key(player)
	if _, ok := t.members[k]; ok {
		return false
	}
	t.members[k] = struct{}{}
	return true
}

// Leave removes the player from the team. It reports false if the player was not a member.
func (t *Team) Leave(player string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	k := key(player)
	if _, ok := t.members[k]; !ok {
		return false
	}
	delete(t.members, k)
	return true
}

// Member reports if the player is part of the team.
func (t *Team) Member(player string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.members[key(player)]
	return ok
}

// Members returns the sorted names of all members.
func (t *Team) Members() []string {
	t.mu.RLock()
	members := lo.Keys(t.members)
	t.mu.RUnlock()

	slices.Sort(members)
	return members
}

// Replace sets the members of the team to those passed.
func (t *Team) Replace(members []string) {
	set := lo.SliceToMap(members, func(m string) (string, struct{}) {
		return key(m), struct{}{}
	})
	t.mu.Lock()
	t.members = set
	t.mu.Unlock()
}

// key ...
func key(player string) string {
	return strings.ToLower(strings.TrimSpace(player))
}
