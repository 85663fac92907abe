// Package kit provides player-defined inventory loadouts for the server.
package kit

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"
)

// Holder is anything that owns a main inventory and armour, such as *player.Player.
type Holder interface {
	Inventory() *inventory.Inventory
	Armour() *inventory.Armour
}

// Kit is a snapshot of inventory slot contents. The slot at index i of the kit is reapplied
// to slot i of the destination inventory. Empty stacks stand for empty slots.
type Kit struct {
	slots  []item.Stack
	armour []item.Stack
}

// New returns a kit holding the slots passed. The slice is copied.
func New(slots []item.Stack) Kit {
	return Kit{slots: clone(slots)}
}

// FromInventory captures every slot of the inventory passed, by index.
func FromInventory(inv *inventory.Inventory) Kit {
	return Kit{slots: capture(inv)}
}

// FromHolder captures the main inventory and armour of a Holder.
func FromHolder(h Holder) Kit {
	return Kit{
		slots:  capture(h.Inventory()),
		armour: capture(h.Armour().Inventory()),
	}
}

// capture ...
func capture(inv *inventory.Inventory) []item.Stack {
	size := inv.Size()
	slots := make([]item.Stack, size)
	for i := 0; i < size; i++ {
		it, err := inv.Item(i)
		if err != nil {
			continue
		}
		slots[i] = it
	}
	return slots
}

// Len returns the number of main inventory slots held by the kit.
func (k Kit) Len() int {
	return len(k.slots)
}

// Slots returns a copy of the main inventory slots of the kit.
func (k Kit) Slots() []item.Stack {
	return clone(k.slots)
}

// Armour returns a copy of the armour slots of the kit. It is empty if the kit was not captured
// from a Holder.
func (k Kit) Armour() []item.Stack {
	return clone(k.armour)
}

// HasArmour reports if the kit carries an armour section.
func (k Kit) HasArmour() bool {
	return len(k.armour) > 0
}

// ApplyTo overwrites the slots of inv with the slots of the kit. Slots of the kit beyond the
// size of inv are ignored, and slots of inv beyond the size of the kit are left untouched.
func (k Kit) ApplyTo(inv *inventory.Inventory) {
	overwrite(inv, k.slots)
}

// overwrite ...
func overwrite(inv *inventory.Inventory, slots []item.Stack) {
	size := inv.Size()
	for slot, it := range slots {
		if slot >= size {
			break
		}
		_ = inv.SetItem(slot, it)
	}
}

// Apply clears the inventory of the Holder and applies the kit to it. Armour is only cleared and
// replaced if the kit carries armour.
func Apply(k Kit, h Holder) {
	inv := h.Inventory()
	inv.Clear()
	k.ApplyTo(inv)

	if !k.HasArmour() {
		return
	}
	armour := h.Armour().Inventory()
	armour.Clear()
	overwrite(armour, k.armour)
}

// clone ...
func clone(slots []item.Stack) []item.Stack {
	if slots == nil {
		return nil
	}
	out := make([]item.Stack, len(slots))
	copy(out, slots)
	return out
}
