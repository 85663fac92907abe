package kit

import (
	"encoding/base64"
	"fmt"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// Data is the persisted form of a Kit. Only non-empty slots are listed.
type Data struct {
	Size       int         `toml:"size" json:"size"`
	Items      []StackData `toml:"items" json:"items"`
	ArmourSize int         `toml:"armour_size,omitempty" json:"armour_size,omitempty"`
	Armour     []StackData `toml:"armour,omitempty" json:"armour,omitempty"`
}

// StackData is the persisted form of a single non-empty slot.
type StackData struct {
	Slot         int               `toml:"slot" json:"slot"`
	Name         string            `toml:"name" json:"name"`
	Meta         int16             `toml:"meta,omitempty" json:"meta,omitempty"`
	Count        int               `toml:"count" json:"count"`
	CustomName   string            `toml:"custom_name,omitempty" json:"custom_name,omitempty"`
	Lore         []string          `toml:"lore,omitempty" json:"lore,omitempty"`
	Damage       int               `toml:"damage,omitempty" json:"damage,omitempty"`
	Unbreakable  bool              `toml:"unbreakable,omitempty" json:"unbreakable,omitempty"`
	AnvilCost    int               `toml:"anvil_cost,omitempty" json:"anvil_cost,omitempty"`
	Enchantments []EnchantmentData `toml:"enchantments,omitempty" json:"enchantments,omitempty"`

	// NBT holds item specific data, such as dye colours or armour trims, and Values the custom
	// values of the stack. Both are base64 encoded little endian NBT.
	NBT    string `toml:"nbt,omitempty" json:"nbt,omitempty"`
	Values string `toml:"values,omitempty" json:"values,omitempty"`
}

// EnchantmentData is the persisted form of an enchantment on a stack.
type EnchantmentData struct {
	ID    int `toml:"id" json:"id"`
	Level int `toml:"level" json:"level"`
}

// Encode converts a Kit to its persisted form.
func Encode(k Kit) Data {
	d := Data{
		Size:  len(k.slots),
		Items: encodeSlots(k.slots),
	}
	if k.HasArmour() {
		d.ArmourSize = len(k.armour)
		d.Armour = encodeSlots(k.armour)
	}
	return d
}

// Decode converts the persisted form of a Kit back into a Kit. It fails if a slot lies outside
// the recorded size or names an item that is not registered.
func Decode(d Data) (Kit, error) {
	slots, err := decodeSlots(d.Size, d.Items)
	if err != nil {
		return Kit{}, err
	}
	k := Kit{slots: slots}
	if d.ArmourSize > 0 {
		if k.armour, err = decodeSlots(d.ArmourSize, d.Armour); err != nil {
			return Kit{}, fmt.Errorf("armour: %w", err)
		}
	}
	return k, nil
}

// encodeSlots ...
func encodeSlots(slots []item.Stack) []StackData {
	out := make([]StackData, 0, len(slots))
	for slot, s := range slots {
		if s.Empty() {
			continue
		}
		out = append(out, EncodeStack(slot, s))
	}
	return out
}

// decodeSlots ...
func decodeSlots(size int, data []StackData) ([]item.Stack, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative kit size %d", size)
	}
	slots := make([]item.Stack, size)
	for _, sd := range data {
		if sd.Slot < 0 || sd.Slot >= size {
			return nil, fmt.Errorf("slot %d out of range [0, %d)", sd.Slot, size)
		}
		s, err := DecodeStack(sd)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", sd.Slot, err)
		}
		slots[sd.Slot] = s
	}
	return slots, nil
}

// EncodeStack converts a non-empty stack in the slot passed to its persisted form. Custom values
// of the stack that cannot be written as NBT are left out.
func EncodeStack(slot int, s item.Stack) StackData {
	name, meta := s.Item().EncodeItem()
	sd := StackData{
		Slot:        slot,
		Name:        name,
		Meta:        meta,
		Count:       s.Count(),
		CustomName:  s.CustomName(),
		Lore:        s.Lore(),
		Unbreakable: s.Unbreakable(),
		AnvilCost:   s.AnvilCost(),
	}
	if maxDurability := s.MaxDurability(); maxDurability > 0 {
		sd.Damage = maxDurability - s.Durability()
	}
	for _, e := range s.Enchantments() {
		id, ok := item.EnchantmentID(e.Type())
		if !ok {
			continue
		}
		sd.Enchantments = append(sd.Enchantments, EnchantmentData{ID: id, Level: e.Level()})
	}
	if enc, ok := s.Item().(world.NBTer); ok {
		if m := enc.EncodeNBT(); len(m) > 0 {
			sd.NBT, _ = encodeNBT(m)
		}
	}
	if values := encodableValues(s.Values()); len(values) > 0 {
		sd.Values, _ = encodeNBT(values)
	}
	return sd
}

// DecodeStack converts the persisted form of a stack back into an item.Stack.
func DecodeStack(sd StackData) (item.Stack, error) {
	it, ok := world.ItemByName(sd.Name, sd.Meta)
	if !ok {
		return item.Stack{}, fmt.Errorf("unknown item %s:%d", sd.Name, sd.Meta)
	}
	if sd.Count <= 0 {
		return item.Stack{}, fmt.Errorf("invalid count %d for %s", sd.Count, sd.Name)
	}

	if sd.NBT != "" {
		m, err := decodeNBT(sd.NBT)
		if err != nil {
			return item.Stack{}, fmt.Errorf("nbt of %s: %w", sd.Name, err)
		}
		if dec, ok := it.(world.NBTer); ok {
			if decoded, ok := dec.DecodeNBT(m).(world.Item); ok {
				it = decoded
			}
		}
	}

	s := item.NewStack(it, sd.Count)
	if sd.Values != "" {
		values, err := decodeNBT(sd.Values)
		if err != nil {
			return item.Stack{}, fmt.Errorf("values of %s: %w", sd.Name, err)
		}
		for k, v := range values {
			s = s.WithValue(k, v)
		}
	}
	if sd.Unbreakable {
		s = s.AsUnbreakable()
	}
	if sd.AnvilCost > 0 {
		s = s.WithAnvilCost(sd.AnvilCost)
	}
	if sd.CustomName != "" {
		s = s.WithCustomName(sd.CustomName)
	}
	if len(sd.Lore) > 0 {
		s = s.WithLore(sd.Lore...)
	}
	if sd.Damage > 0 && s.MaxDurability() > 0 {
		s = s.WithDurability(s.MaxDurability() - sd.Damage)
	}
	for _, ed := range sd.Enchantments {
		t, ok := item.EnchantmentByID(ed.ID)
		if !ok {
			return item.Stack{}, fmt.Errorf("unknown enchantment %d on %s", ed.ID, sd.Name)
		}
		s = s.WithEnchantments(item.NewEnchantment(t, ed.Level))
	}
	return s, nil
}

// encodableValues returns the custom values of a stack that can be written as NBT.
func encodableValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if _, err := nbt.MarshalEncoding(map[string]any{k: v}, nbt.LittleEndian); err != nil {
			continue
		}
		out[k] = v
	}
	return out
}

// encodeNBT ...
func encodeNBT(m map[string]any) (string, error) {
	b, err := nbt.MarshalEncoding(m, nbt.LittleEndian)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// decodeNBT ...
func decodeNBT(s string) (map[string]any, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	if err = nbt.UnmarshalEncoding(b, &m, nbt.LittleEndian); err != nil {
		return nil, err
	}
	return m, nil
}
