package handler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/player/chat"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/jwegrzyn/pvp/pvp/combat"
	"github.com/jwegrzyn/pvp/pvp/locale"
	"github.com/jwegrzyn/pvp/pvp/session"
)

// PlayerHandler drives the PvP death and respawn sequence for a single player.
type PlayerHandler struct {
	log  *slog.Logger
	seq  *combat.Sequence
	sess *session.Session

	// chat receives the survivor broadcast and after schedules the delayed restore.
	chat  *chat.Chat
	after func(d time.Duration, f func())

	player.NopHandler
}

// NewPlayerHandler ...
func NewPlayerHandler(log *slog.Logger, seq *combat.Sequence) *PlayerHandler {
	return &PlayerHandler{
		log:   log,
		seq:   seq,
		sess:  session.New(),
		chat:  chat.Global,
		after: afterFunc,
	}
}

// afterFunc ...
func afterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Session returns the death state of the player handled.
func (h *PlayerHandler) Session() *session.Session {
	return h.sess
}

// HandleJoin ...
func (h *PlayerHandler) HandleJoin(p *player.Player) {
	p.Inventory().Handle(NewInventoryHandler(h.sess))
	h.join(p)
}

// join puts a member who left while dead, and so comes back in spectator mode with nothing left
// to restore them, back in survival mode.
func (h *PlayerHandler) join(c combat.Combatant) {
	if h.seq.ShouldRestore(c) {
		c.SetGameMode(world.GameModeSurvival)
	}
}

// HandleDeath ...
func (h *PlayerHandler) HandleDeath(p *player.Player, _ world.DamageSource, keepInv *bool) {
	tx := p.Tx()
	online := make([]combat.Combatant, 0, 2)
	for ent := range tx.Players() {
		if other, ok := ent.(*player.Player); ok {
			online = append(online, other)
		}
	}
	if h.death(p, keepInv, online) {
		tx.AddEntity(entity.NewLightningWithDamage(world.EntitySpawnOpts{Position: p.Position()}, 0, false, 0))
	}
}

// death runs the death step of the sequence for c and reports if c is a member. Members keep
// their inventory, and the survivor of a duel has their health broadcast.
func (h *PlayerHandler) death(c combat.Combatant, keepInv *bool, online []combat.Combatant) bool {
	if !h.seq.Enrolled(c) {
		return false
	}
	*keepInv = true

	survivor, ok := h.seq.Died(c, h.sess, online)
	h.log.Debug("pvp member died", "player", c.Name(), "online", len(online))
	if ok {
		health := fmt.Sprintf("%.1f", survivor.Health())
		_, _ = h.chat.WriteString(locale.Translate("combat.survivor.health", survivor.Name(), health))
	}
	return true
}

// HandleRespawn ...
func (h *PlayerHandler) HandleRespawn(p *player.Player, _ *mgl64.Vec3, _ **world.World) {
	handle := p.H()
	h.respawn(p, func(f func(c combat.Combatant)) {
		handle.ExecWorld(func(_ *world.Tx, e world.Entity) {
			if p, ok := e.(*player.Player); ok {
				f(p)
			}
		})
	})
}

// respawn schedules the restore step of the sequence for c after the sequence delay. exec runs
// the step against the live Combatant, if there still is one. The step is skipped if the session
// was reset in the meantime.
func (h *PlayerHandler) respawn(c combat.Combatant, exec func(f func(c combat.Combatant))) {
	if !h.seq.ShouldRestore(c) {
		return
	}
	h.after(h.seq.Delay(), func() {
		exec(func(c combat.Combatant) {
			if !h.sess.Respawning() {
				return
			}
			applied := h.seq.Restore(c, h.sess)
			h.log.Debug("pvp member restored", "player", c.Name(), "kit", applied)
		})
	})
}

// HandleItemDrop ...
func (h *PlayerHandler) HandleItemDrop(ctx *player.Context, _ item.Stack) {
	cancelWhileRespawning(h.sess, ctx)
}

// HandleQuit ...
func (h *PlayerHandler) HandleQuit(*player.Player) {
	h.sess.Reset()
}
