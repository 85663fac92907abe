// Package command provides commands for the server.
package command

import (
	"errors"

	"github.com/df-mc/dragonfly/server/cmd"

	"github.com/jwegrzyn/pvp/pvp/kit"
	"github.com/jwegrzyn/pvp/pvp/locale"
)

// named ...
type named interface {
	Name() string
}

// sourceName returns the name of the source, or false if it has none.
func sourceName(src cmd.Source) (string, bool) {
	n, ok := src.(named)
	if !ok {
		return "", false
	}
	return n.Name(), true
}

// kitError translates an error returned by the kit registry to a chat message.
func kitError(err error) string {
	switch {
	case errors.Is(err, kit.NotFound):
		return locale.Translate("kit.error.not.found")
	case errors.Is(err, kit.AlreadyExists):
		return locale.Translate("kit.error.exists")
	case errors.Is(err, kit.NoInventory):
		return locale.Translate("kit.error.no.inventory")
	default:
		return err.Error()
	}
}
