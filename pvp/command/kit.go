package command

import (
	"github.com/df-mc/atomic"
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"

	"github.com/jwegrzyn/pvp/pvp/kit"
	"github.com/jwegrzyn/pvp/pvp/locale"
)

// completions holds the kit registry whose names are offered for kit arguments. dragonfly builds
// enum options from the zero value of the argument type, so only one registry can back them.
var completions = atomic.NewValue[*kit.Registry](nil)

// NewKit creates the pvp-kit command, also available as select-kit, operating on the registry
// passed. The registry also replaces the one whose names complete kit arguments of any pvp-kit
// command created before.
func NewKit(kits *kit.Registry) cmd.Command {
	completions.Store(kits)
	return cmd.New("pvp-kit", "Create, select, remove or list PvP kits", []string{"select-kit"},
		KitUse{kits: kits},
		KitAdd{kits: kits},
		KitRemove{kits: kits},
		KitList{kits: kits},
	)
}

// kitName is a kit argument completed with the names of the registered kits.
type kitName string

// Type ...
func (kitName) Type() string {
	return "PvPKit"
}

// Options ...
func (kitName) Options(cmd.Source) []string {
	if kits := completions.Load(); kits != nil {
		return kits.Names()
	}
	return nil
}

// KitUse selects a kit as the preferred kit of the source.
type KitUse struct {
	Use  cmd.SubCommand `name:"use"`
	Name kitName        `name:"kit"`

	kits *kit.Registry
}

// Run ...
func (k KitUse) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	name, _ := sourceName(src)
	holder, _ := src.(kit.Holder)
	useKit(k.kits, o, name, holder, string(k.Name))
}

// KitAdd captures the inventory of the source as a new kit.
type KitAdd struct {
	Add  cmd.SubCommand `name:"add"`
	Name string         `name:"name"`

	kits *kit.Registry
}

// Run ...
func (k KitAdd) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	name, _ := sourceName(src)
	holder, _ := src.(kit.Holder)
	addKit(k.kits, o, name, holder, k.Name)
}

// KitRemove deletes a kit.
type KitRemove struct {
	Remove cmd.SubCommand `name:"remove"`
	Name   kitName        `name:"kit"`

	kits *kit.Registry
}

// Run ...
func (k KitRemove) Run(_ cmd.Source, o *cmd.Output, _ *world.Tx) {
	removeKit(k.kits, o, string(k.Name))
}

// KitList lists the names of all kits.
type KitList struct {
	List cmd.SubCommand `name:"list"`

	kits *kit.Registry
}

// Run ...
func (k KitList) Run(_ cmd.Source, o *cmd.Output, _ *world.Tx) {
	listKits(k.kits, o)
}

// useKit makes the kit the preferred kit of the player and, if the player has an inventory,
// applies it straight away.
func useKit(kits *kit.Registry, o *cmd.Output, player string, h kit.Holder, name string) {
	if err := kits.Use(player, name); err != nil {
		o.Error(kitError(err))
		return
	}
	if h != nil && kits.ApplyPreferred(player, h) {
		o.Print(locale.Translate("kit.assigned.applied", name))
		return
	}
	o.Print(locale.Translate("kit.assigned"))
}

// addKit ...
func addKit(kits *kit.Registry, o *cmd.Output, player string, h kit.Holder, name string) {
	if _, exists := kits.Kit(name); exists {
		o.Error(kitError(kit.AlreadyExists))
		return
	}
	if h == nil {
		o.Error(kitError(kit.NoInventory))
		return
	}
	if err := kits.Create(player, h, name); err != nil {
		o.Error(kitError(err))
		return
	}
	o.Print(locale.Translate("kit.added"))
}

// removeKit ...
func removeKit(kits *kit.Registry, o *cmd.Output, name string) {
	if err := kits.Remove(name); err != nil {
		o.Error(kitError(err))
		return
	}
	o.Print(locale.Translate("kit.removed"))
}

// listKits ...
func listKits(kits *kit.Registry, o *cmd.Output) {
	names := kits.Names()
	if len(names) == 0 {
		o.Print(locale.Translate("kit.list.empty"))
		return
	}
	o.Print(locale.Translate("kit.list.header"))
	for _, name := range names {
		o.Print(locale.Translate("kit.list.entry", name))
	}
}
