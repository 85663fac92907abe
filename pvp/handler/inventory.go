// Package handler provides handlers for the server.
package handler

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"

	"github.com/jwegrzyn/pvp/pvp/session"
)

// canceller is an event context that can be cancelled, such as *inventory.Context and
// *player.Context.
type canceller interface {
	Cancel()
}

// cancelWhileRespawning cancels ctx if the session is waiting to be respawned.
func cancelWhileRespawning(sess *session.Session, ctx canceller) {
	if sess.Respawning() {
		ctx.Cancel()
	}
}

// InventoryHandler locks the inventory of a player while they wait to be respawned, so that the
// kit they are restored with is the only thing that changes it.
type InventoryHandler struct {
	inventory.NopHandler

	sess *session.Session
}

// NewInventoryHandler ...
func NewInventoryHandler(sess *session.Session) InventoryHandler {
	return InventoryHandler{sess: sess}
}

// HandleTake ...
func (h InventoryHandler) HandleTake(ctx *inventory.Context, _ int, _ item.Stack) {
	cancelWhileRespawning(h.sess, ctx)
}

// HandlePlace ...
func (h InventoryHandler) HandlePlace(ctx *inventory.Context, _ int, _ item.Stack) {
	cancelWhileRespawning(h.sess, ctx)
}

// HandleDrop ...
func (h InventoryHandler) HandleDrop(ctx *inventory.Context, _ int, _ item.Stack) {
	cancelWhileRespawning(h.sess, ctx)
}
