package combat

import (
	"time"

	"github.com/df-mc/dragonfly/server/entity/effect"
)

const (
	// survivorBuffDuration is how long the survivor of a duel keeps regeneration and saturation.
	survivorBuffDuration = 5 * time.Second
	// survivorSpeedDuration is how long the survivor of a duel keeps speed.
	survivorSpeedDuration = 10 * time.Second

	// spawnProtectionDuration covers invisibility and resistance after a respawn.
	spawnProtectionDuration = 5 * time.Second
	// respawnBuffDuration covers fire resistance and haste after a respawn.
	respawnBuffDuration = 10 * time.Second
)

// SurvivorEffects returns the effects given to the last player standing in a duel.
func SurvivorEffects() []effect.Effect {
	return []effect.Effect{
		effect.New(effect.Regeneration, 2, survivorBuffDuration),
		effect.New(effect.Saturation, 1, survivorBuffDuration),
		effect.New(effect.Speed, 2, survivorSpeedDuration),
	}
}

// RespawnEffects returns the effects given to a member once they are restored after a death.
func RespawnEffects() []effect.Effect {
	return []effect.Effect{
		effect.New(effect.Invisibility, 1, spawnProtectionDuration).WithoutParticles(),
		effect.New(effect.Resistance, 5, spawnProtectionDuration),
		effect.New(effect.FireResistance, 1, respawnBuffDuration),
		effect.New(effect.Haste, 2, respawnBuffDuration),
	}
}
