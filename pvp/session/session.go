// Package session provides per-player state kept between a death and the following respawn.
package session

import (
	"github.com/df-mc/atomic"
	"github.com/go-gl/mathgl/mgl64"
)

// Session tracks where a player last died and whether they are waiting to be respawned by the
// PvP sequence.
type Session struct {
	deathPosition atomic.Value[mgl64.Vec3]
	hasDied       atomic.Bool
	respawning    atomic.Bool
}

// New creates a new Session with no recorded death.
func New() *Session {
	s := &Session{}
	s.deathPosition.Store(mgl64.Vec3{})
	s.hasDied.Store(false)
	s.respawning.Store(false)
	return s
}

// DeathPosition returns the position of the last recorded death, and false if there is none.
func (s *Session) DeathPosition() (mgl64.Vec3, bool) {
	return s.deathPosition.Load(), s.hasDied.Load()
}

// SetDeathPosition records the position the player died at and marks them as respawning.
func (s *Session) SetDeathPosition(pos mgl64.Vec3) {
	s.deathPosition.Store(pos)
	s.hasDied.Store(true)
	s.respawning.Store(true)
}

// Respawning reports if the player died and has not been restored yet.
func (s *Session) Respawning() bool {
	return s.respawning.Load()
}

// Restored marks the player as no longer waiting to be respawned. The death position is kept.
func (s *Session) Restored() {
	s.respawning.Store(false)
}

// Reset clears all recorded state.
func (s *Session) Reset() {
	s.deathPosition.Store(mgl64.Vec3{})
	s.hasDied.Store(false)
	s.respawning.Store(false)
}
