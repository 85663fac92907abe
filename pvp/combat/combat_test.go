package combat

import (
	"testing"
	"time"

	_ "github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwegrzyn/pvp/pvp/kit"
	"github.com/jwegrzyn/pvp/pvp/session"
	"github.com/jwegrzyn/pvp/pvp/team"
)

// nopChange ...
func nopChange(int, item.Stack, item.Stack) {}

// fakeCombatant ...
type fakeCombatant struct {
	name     string
	pos      mgl64.Vec3
	health   float64
	mode     world.GameMode
	effects  []effect.Effect
	teleport []mgl64.Vec3

	inv    *inventory.Inventory
	armour *inventory.Armour
}

// newFakeCombatant ...
func newFakeCombatant(name string) *fakeCombatant {
	return &fakeCombatant{
		name:   name,
		pos:    mgl64.Vec3{10, 70, 10},
		health: 20,
		mode:   world.GameModeSurvival,
		inv:    inventory.New(36, nopChange),
		armour: inventory.NewArmour(nopChange),
	}
}

func (f *fakeCombatant) Name() string                    { return f.name }
func (f *fakeCombatant) Position() mgl64.Vec3            { return f.pos }
func (f *fakeCombatant) Health() float64                 { return f.health }
func (f *fakeCombatant) GameMode() world.GameMode        { return f.mode }
func (f *fakeCombatant) SetGameMode(mode world.GameMode) { f.mode = mode }
func (f *fakeCombatant) AddEffect(e effect.Effect)       { f.effects = append(f.effects, e) }
func (f *fakeCombatant) Inventory() *inventory.Inventory { return f.inv }
func (f *fakeCombatant) Armour() *inventory.Armour       { return f.armour }

// Teleport ...
func (f *fakeCombatant) Teleport(pos mgl64.Vec3) {
	f.teleport = append(f.teleport, pos)
	f.pos = pos
}

// appliedEffect ...
type appliedEffect struct {
	typ       effect.Type
	level     int
	duration  time.Duration
	particles bool
}

// describe ...
func describe(effects []effect.Effect) []appliedEffect {
	out := make([]appliedEffect, 0, len(effects))
	for _, e := range effects {
		out = append(out, appliedEffect{
			typ:       e.Type(),
			level:     e.Level(),
			duration:  e.Duration(),
			particles: !e.ParticlesHidden(),
		})
	}
	return out
}

func TestSurvivorEffects(t *testing.T) {
	assert.Equal(t, []appliedEffect{
		{typ: effect.Regeneration, level: 2, duration: 5 * time.Second, particles: true},
		{typ: effect.Saturation, level: 1, duration: 5 * time.Second, particles: true},
		{typ: effect.Speed, level: 2, duration: 10 * time.Second, particles: true},
	}, describe(SurvivorEffects()))
}

func TestRespawnEffects(t *testing.T) {
	assert.Equal(t, []appliedEffect{
		{typ: effect.Invisibility, level: 1, duration: 5 * time.Second},
		{typ: effect.Resistance, level: 5, duration: 5 * time.Second, particles: true},
		{typ: effect.FireResistance, level: 1, duration: 10 * time.Second, particles: true},
		{typ: effect.Haste, level: 2, duration: 10 * time.Second, particles: true},
	}, describe(RespawnEffects()))
}

// newTestSequence ...
func newTestSequence(members ...string) (*Sequence, *kit.Registry) {
	reg := kit.NewRegistry()
	return NewSequence(reg, team.New("pvp", members...), DefaultRespawnDelay), reg
}

func TestDiedIgnoresNonMembers(t *testing.T) {
	seq, _ := newTestSequence("Steve")
	alex, steve := newFakeCombatant("Alex"), newFakeCombatant("Steve")
	sess := session.New()

	_, ok := seq.Died(alex, sess, []Combatant{alex, steve})
	assert.False(t, ok)
	assert.Equal(t, world.GameModeSurvival, alex.mode)
	assert.False(t, sess.Respawning())
	assert.Empty(t, steve.effects)
}

func TestDiedSwitchesToSpectatorAndRecordsPosition(t *testing.T) {
	seq, _ := newTestSequence("Steve")
	steve := newFakeCombatant("Steve")
	steve.pos = mgl64.Vec3{-4, 12, 99}
	sess := session.New()

	_, ok := seq.Died(steve, sess, []Combatant{steve})
	assert.False(t, ok)
	assert.Equal(t, world.GameModeSpectator, steve.mode)

	pos, recorded := sess.DeathPosition()
	require.True(t, recorded)
	assert.Equal(t, mgl64.Vec3{-4, 12, 99}, pos)
	assert.True(t, sess.Respawning())
}

func TestDiedBuffsSurvivorOnlyInDuel(t *testing.T) {
	tests := []struct {
		name         string
		online       int
		wantSurvivor bool
	}{
		{name: "alone", online: 1},
		{name: "duel", online: 2, wantSurvivor: true},
		{name: "three players", online: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, _ := newTestSequence("Steve")
			steve := newFakeCombatant("Steve")
			online := []Combatant{steve}
			others := make([]*fakeCombatant, 0, tt.online-1)
			for i := 1; i < tt.online; i++ {
				o := newFakeCombatant(string(rune('A' + i)))
				others = append(others, o)
				online = append(online, o)
			}

			survivor, ok := seq.Died(steve, session.New(), online)
			assert.Equal(t, tt.wantSurvivor, ok)
			if !tt.wantSurvivor {
				for _, o := range others {
					assert.Empty(t, o.effects)
				}
				return
			}
			require.Len(t, others, 1)
			assert.Same(t, others[0], survivor)
			assert.Equal(t, describe(SurvivorEffects()), describe(others[0].effects))
			assert.Empty(t, steve.effects)
		})
	}
}

func TestShouldRestore(t *testing.T) {
	seq, _ := newTestSequence("Steve")
	steve, alex := newFakeCombatant("Steve"), newFakeCombatant("Alex")

	assert.False(t, seq.ShouldRestore(steve))
	steve.mode = world.GameModeSpectator
	assert.True(t, seq.ShouldRestore(steve))

	alex.mode = world.GameModeSpectator
	assert.False(t, seq.ShouldRestore(alex))
}

func TestRestoreAppliesEffectsAndPreferredKit(t *testing.T) {
	seq, reg := newTestSequence("Steve")
	loadout := inventory.New(36, nopChange)
	require.NoError(t, loadout.SetItem(0, item.NewStack(item.Sword{Tier: item.ToolTierIron}, 1)))
	require.NoError(t, loadout.SetItem(1, item.NewStack(item.Apple{}, 16)))
	require.NoError(t, reg.Add("Steve", "duelist", kit.FromInventory(loadout)))

	steve := newFakeCombatant("Steve")
	require.NoError(t, steve.inv.SetItem(20, item.NewStack(item.Arrow{}, 3)))
	sess := session.New()
	_, _ = seq.Died(steve, sess, []Combatant{steve})
	steve.pos = mgl64.Vec3{0, 0, 0}

	assert.True(t, seq.Restore(steve, sess))
	assert.Equal(t, []mgl64.Vec3{{10, 70, 10}}, steve.teleport)
	assert.Equal(t, world.GameModeSurvival, steve.mode)
	assert.Equal(t, describe(RespawnEffects()), describe(steve.effects))
	assert.False(t, sess.Respawning())

	apples, err := steve.inv.Item(1)
	require.NoError(t, err)
	assert.Equal(t, 16, apples.Count())
	arrows, err := steve.inv.Item(20)
	require.NoError(t, err)
	assert.True(t, arrows.Empty())
}

func TestRestoreWithoutKitKeepsInventory(t *testing.T) {
	seq, _ := newTestSequence("Steve")
	steve := newFakeCombatant("Steve")
	require.NoError(t, steve.inv.SetItem(3, item.NewStack(item.Arrow{}, 3)))

	assert.False(t, seq.Restore(steve, session.New()))
	assert.Empty(t, steve.teleport)
	arrows, err := steve.inv.Item(3)
	require.NoError(t, err)
	assert.Equal(t, 3, arrows.Count())
}

func TestNewSequenceClampsNegativeDelay(t *testing.T) {
	seq := NewSequence(kit.NewRegistry(), team.New("pvp"), -5)
	assert.Zero(t, seq.Delay())
}
