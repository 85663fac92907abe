// Package combat provides the death and respawn sequence applied to members of the PvP team.
package combat

import (
	"time"

	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/jwegrzyn/pvp/pvp/kit"
	"github.com/jwegrzyn/pvp/pvp/session"
	"github.com/jwegrzyn/pvp/pvp/team"
)

// Combatant is the part of *player.Player that the sequence drives.
type Combatant interface {
	kit.Holder

	Name() string
	Position() mgl64.Vec3
	Health() float64
	GameMode() world.GameMode
	SetGameMode(mode world.GameMode)
	Teleport(pos mgl64.Vec3)
	AddEffect(e effect.Effect)
}

// DefaultRespawnDelay is the delay between a respawn and the restore step, 20 ticks.
const DefaultRespawnDelay = time.Second

// Sequence applies the death and respawn reactions to members of a team.
type Sequence struct {
	kits  *kit.Registry
	team  *team.Team
	delay time.Duration
}

// NewSequence creates a new Sequence for the members of the team passed. Restored members get
// the kit they prefer in the registry.
func NewSequence(kits *kit.Registry, t *team.Team, delay time.Duration) *Sequence {
	if delay < 0 {
		delay = 0
	}
	return &Sequence{kits: kits, team: t, delay: delay}
}

// Delay returns the time to wait after a respawn before Restore should run.
func (s *Sequence) Delay() time.Duration {
	return s.delay
}

// Enrolled reports if the Combatant is a member of the team.
func (s *Sequence) Enrolled(c Combatant) bool {
	return s.team.Member(c.Name())
}

// Died switches a dead member to spectator mode and records where they died. If exactly two
// players are online, the one left standing receives the survivor effects and is returned.
func (s *Sequence) Died(c Combatant, sess *session.Session, online []Combatant) (Combatant, bool) {
	if !s.Enrolled(c) {
		return nil, false
	}
	c.SetGameMode(world.GameModeSpectator)
	sess.SetDeathPosition(c.Position())

	if len(online) != 2 {
		return nil, false
	}
	for _, other := range online {
		if other.Name() == c.Name() {
			continue
		}
		addEffects(other, SurvivorEffects())
		return other, true
	}
	return nil, false
}

// ShouldRestore reports if a respawning Combatant is a member still in spectator mode.
func (s *Sequence) ShouldRestore(c Combatant) bool {
	return s.Enrolled(c) && c.GameMode() == world.GameModeSpectator
}

// Restore teleports the Combatant back to where they died, puts them back in survival mode,
// applies the respawn effects and finally their preferred kit. It reports if a kit was applied.
func (s *Sequence) Restore(c Combatant, sess *session.Session) bool {
	if pos, ok := sess.DeathPosition(); ok {
		c.Teleport(pos)
	}
	c.SetGameMode(world.GameModeSurvival)
	addEffects(c, RespawnEffects())
	sess.Restored()

	return s.kits.ApplyPreferred(c.Name(), c)
}

// addEffects ...
func addEffects(c Combatant, effects []effect.Effect) {
	for _, e := range effects {
		c.AddEffect(e)
	}
}
