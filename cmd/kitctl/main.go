// Command kitctl maintains the profiles file of a stopped PvP server: it lists and removes kits,
// prunes preferences pointing at removed kits and checks that every kit can still be loaded.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/AlecAivazis/survey/v2"
	_ "github.com/df-mc/dragonfly/server/block"
	"github.com/schollz/progressbar/v3"

	"github.com/jwegrzyn/pvp/pvp/kit"
)

const (
	actionList     = "List kits"
	actionRemove   = "Remove a kit"
	actionPrune    = "Prune preferences"
	actionValidate = "Validate kits"
	actionSave     = "Save and exit"
	actionQuit     = "Exit without saving"
)

// main ...
func main() {
	log := slog.Default()

	path := "pvp-profiles.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	store := kit.NewStore(path)
	p, err := store.Load()
	if err != nil {
		log.Error("failed to read profiles", "path", path, "error", err)
		os.Exit(1)
	}
	log.Info("Loaded profiles", "path", path, "kits", len(p.Kits), "preferences", len(p.Preferences))

	var changed bool
	for {
		var action string
		prompt := &survey.Select{
			Message: "What do you want to do?",
			Options: []string{actionList, actionRemove, actionPrune, actionValidate, actionSave, actionQuit},
		}
		if err = survey.AskOne(prompt, &action); err != nil {
			log.Error("prompt failed", "error", err)
			os.Exit(1)
		}

		switch action {
		case actionList:
			names := kitNames(p)
			if len(names) == 0 {
				fmt.Println("There are no defined kits")
			}
			for _, name := range names {
				fmt.Printf(" %s (%d slots)\n", name, p.Kits[name].Size)
			}
		case actionRemove:
			names := kitNames(p)
			if len(names) == 0 {
				fmt.Println("There are no defined kits")
				continue
			}
			var name string
			if err = survey.AskOne(&survey.Select{Message: "Kit to remove:", Options: names}, &name); err != nil {
				log.Error("prompt failed", "error", err)
				continue
			}
			p = removeKit(p, name)
			changed = true
			log.Info("Removed kit", "kit", name)
		case actionPrune:
			var dropped []string
			p, dropped = prunePreferences(p)
			changed = changed || len(dropped) > 0
			log.Info("Pruned preferences", "players", dropped)
		case actionValidate:
			bar := progressbar.Default(int64(len(p.Kits)), "Validating kits")
			for name, err := range validateKits(p, bar) {
				log.Warn("broken kit", "kit", name, "error", err)
			}
		case actionSave:
			if !changed {
				return
			}
			if err = store.Save(p); err != nil {
				log.Error("failed to save profiles", "path", path, "error", err)
				os.Exit(1)
			}
			log.Info("Saved profiles", "path", path)
			return
		case actionQuit:
			if changed {
				discard := false
				prompt := &survey.Confirm{Message: "Discard unsaved changes?", Default: false}
				if err = survey.AskOne(prompt, &discard); err != nil || !discard {
					continue
				}
			}
			return
		}
	}
}
