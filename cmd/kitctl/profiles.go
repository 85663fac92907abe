package main

import (
	"slices"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"

	"github.com/jwegrzyn/pvp/pvp/kit"
)

// kitNames returns the sorted names of the kits in p.
func kitNames(p kit.Profiles) []string {
	names := lo.Keys(p.Kits)
	slices.Sort(names)
	return names
}

// removeKit returns p without the kit passed. Preferences for the kit are left as they are.
func removeKit(p kit.Profiles, name string) kit.Profiles {
	p.Kits = lo.OmitByKeys(p.Kits, []string{name})
	return p
}

// prunePreferences returns p without the preferences pointing at kits that do not exist, along
// with the sorted names of the players whose preference was dropped.
func prunePreferences(p kit.Profiles) (kit.Profiles, []string) {
	kept := lo.PickBy(p.Preferences, func(_ string, name string) bool {
		_, ok := p.Kits[name]
		return ok
	})
	dropped := lo.Filter(lo.Keys(p.Preferences), func(player string, _ int) bool {
		_, ok := kept[player]
		return !ok
	})
	slices.Sort(dropped)

	p.Preferences = kept
	return p, dropped
}

// validateKits decodes every kit in p, advancing the bar once per kit, and returns the errors of
// the kits that could not be decoded by name.
func validateKits(p kit.Profiles, bar *progressbar.ProgressBar) map[string]error {
	broken := make(map[string]error)
	for _, name := range kitNames(p) {
		if _, err := kit.Decode(p.Kits[name]); err != nil {
			broken[name] = err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return broken
}
