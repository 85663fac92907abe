package kit

import (
	"image/color"
	"testing"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/enchantment"
	"github.com/df-mc/dragonfly/server/item/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleKit ...
func sampleKit(t *testing.T) Kit {
	t.Helper()
	h := newTestHolder()
	sword := item.NewStack(item.Sword{Tier: item.ToolTierDiamond}, 1).
		WithCustomName("Duelist").
		WithLore("first blood").
		WithEnchantments(item.NewEnchantment(enchantment.Sharpness, 3))
	sword = sword.WithDurability(sword.MaxDurability() - 40)

	require.NoError(t, h.inv.SetItem(0, sword))
	require.NoError(t, h.inv.SetItem(8, item.NewStack(item.Apple{}, 12)))
	require.NoError(t, h.inv.SetItem(35, item.NewStack(item.Arrow{}, 64)))
	require.NoError(t, h.armour.Inventory().SetItem(1, item.NewStack(item.Chestplate{Tier: item.ArmourTierDiamond{}}, 1)))
	return FromHolder(h)
}

func TestEncodeListsOnlyNonEmptySlots(t *testing.T) {
	d := Encode(sampleKit(t))

	assert.Equal(t, 36, d.Size)
	require.Len(t, d.Items, 3)
	assert.Equal(t, []int{0, 8, 35}, []int{d.Items[0].Slot, d.Items[1].Slot, d.Items[2].Slot})
	assert.Equal(t, "minecraft:apple", d.Items[1].Name)
	assert.Equal(t, 12, d.Items[1].Count)

	sword := d.Items[0]
	assert.Equal(t, "Duelist", sword.CustomName)
	assert.Equal(t, []string{"first blood"}, sword.Lore)
	assert.Equal(t, 40, sword.Damage)
	require.Len(t, sword.Enchantments, 1)
	assert.Equal(t, 3, sword.Enchantments[0].Level)

	assert.Equal(t, 4, d.ArmourSize)
	require.Len(t, d.Armour, 1)
	assert.Equal(t, 1, d.Armour[0].Slot)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kit  func(t *testing.T) Kit
	}{
		{name: "empty kit", kit: func(*testing.T) Kit { return New(nil) }},
		{name: "empty inventory", kit: func(*testing.T) Kit { return FromInventory(inventory.New(36, nopChange)) }},
		{name: "full holder", kit: sampleKit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := Encode(tt.kit(t))

			k, err := Decode(want)
			require.NoError(t, err)
			assert.Equal(t, want, Encode(k))
			assert.Equal(t, want.Size, k.Len())
		})
	}
}

// assertSameStacks ...
func assertSameStacks(t *testing.T, want, got []item.Stack) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Truef(t, want[i].Equal(got[i]), "slot %d: want %v, got %v", i, want[i], got[i])
	}
}

func TestDecodeRestoresEqualStacks(t *testing.T) {
	k := sampleKit(t)
	got, err := Decode(Encode(k))
	require.NoError(t, err)

	assertSameStacks(t, k.Slots(), got.Slots())
	assertSameStacks(t, k.Armour(), got.Armour())
}

func TestDecodeRestoresItemState(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	dyed := item.NewStack(item.Chestplate{Tier: item.ArmourTierLeather{Colour: red}}, 1)
	tagged := item.NewStack(item.Apple{}, 3).WithValue("kit", "duelist")
	unbreakable := item.NewStack(item.Sword{Tier: item.ToolTierIron}, 1).AsUnbreakable().WithAnvilCost(2)

	inv := inventory.New(36, nopChange)
	require.NoError(t, inv.SetItem(0, dyed))
	require.NoError(t, inv.SetItem(1, tagged))
	require.NoError(t, inv.SetItem(2, unbreakable))
	k := FromInventory(inv)

	d := Encode(k)
	require.Len(t, d.Items, 3)
	assert.NotEmpty(t, d.Items[0].NBT)
	assert.NotEmpty(t, d.Items[1].Values)
	assert.True(t, d.Items[2].Unbreakable)
	assert.Equal(t, 2, d.Items[2].AnvilCost)

	got, err := Decode(d)
	require.NoError(t, err)
	assertSameStacks(t, k.Slots(), got.Slots())

	chestplate, ok := got.Slots()[0].Item().(item.Chestplate)
	require.True(t, ok)
	assert.Equal(t, item.ArmourTierLeather{Colour: red}, chestplate.Tier)

	v, ok := got.Slots()[1].Value("kit")
	require.True(t, ok)
	assert.Equal(t, "duelist", v)
}

func TestDecodeRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data Data
	}{
		{name: "unknown item", data: Data{Size: 1, Items: []StackData{{Slot: 0, Name: "minecraft:not_an_item", Count: 1}}}},
		{name: "slot out of range", data: Data{Size: 1, Items: []StackData{{Slot: 1, Name: "minecraft:apple", Count: 1}}}},
		{name: "negative slot", data: Data{Size: 1, Items: []StackData{{Slot: -1, Name: "minecraft:apple", Count: 1}}}},
		{name: "zero count", data: Data{Size: 1, Items: []StackData{{Slot: 0, Name: "minecraft:apple"}}}},
		{name: "negative size", data: Data{Size: -1}},
		{name: "corrupt nbt", data: Data{Size: 1, Items: []StackData{{Slot: 0, Name: "minecraft:apple", Count: 1, NBT: "not base64!"}}}},
		{name: "corrupt values", data: Data{Size: 1, Items: []StackData{{Slot: 0, Name: "minecraft:apple", Count: 1, Values: "%%"}}}},
		{name: "unknown enchantment", data: Data{Size: 1, Items: []StackData{{
			Slot: 0, Name: "minecraft:apple", Count: 1, Enchantments: []EnchantmentData{{ID: -42, Level: 1}},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.Error(t, err)
		})
	}
}
