package command

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"

	"github.com/jwegrzyn/pvp/pvp/locale"
	"github.com/jwegrzyn/pvp/pvp/team"
)

// NewTeam creates the pvp-team command used to join, leave or list the team passed.
func NewTeam(t *team.Team) cmd.Command {
	return cmd.New("pvp-team", "Join, leave or list the PvP team", nil,
		TeamJoin{team: t},
		TeamLeave{team: t},
		TeamList{team: t},
	)
}

// TeamJoin adds the source to the team.
type TeamJoin struct {
	Join cmd.SubCommand `name:"join"`

	team *team.Team
}

// Run ...
func (j TeamJoin) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	name, ok := sourceName(src)
	if !ok {
		o.Error(locale.Translate("team.error.not.player"))
		return
	}
	joinTeam(j.team, o, name)
}

// TeamLeave removes the source from the team.
type TeamLeave struct {
	Leave cmd.SubCommand `name:"leave"`

	team *team.Team
}

// Run ...
func (l TeamLeave) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	name, ok := sourceName(src)
	if !ok {
		o.Error(locale.Translate("team.error.not.player"))
		return
	}
	leaveTeam(l.team, o, name)
}

// TeamList lists the members of the team.
type TeamList struct {
	List cmd.SubCommand `name:"list"`

	team *team.Team
}

// Run ...
func (l TeamList) Run(_ cmd.Source, o *cmd.Output, _ *world.Tx) {
	listTeam(l.team, o)
}

// joinTeam ...
func joinTeam(t *team.Team, o *cmd.Output, player string) {
	if !t.Join(player) {
		o.Print(locale.Translate("team.joined.already", t.Name()))
		return
	}
	o.Print(locale.Translate("team.joined", t.Name()))
}

// leaveTeam ...
func leaveTeam(t *team.Team, o *cmd.Output, player string) {
	if !t.Leave(player) {
		o.Print(locale.Translate("team.left.not.member", t.Name()))
		return
	}
	o.Print(locale.Translate("team.left", t.Name()))
}

// listTeam ...
func listTeam(t *team.Team, o *cmd.Output) {
	members := t.Members()
	if len(members) == 0 {
		o.Print(locale.Translate("team.list.empty", t.Name()))
		return
	}
	o.Print(locale.Translate("team.list.header", t.Name()))
	for _, m := range members {
		o.Print(locale.Translate("team.list.entry", m))
	}
}
