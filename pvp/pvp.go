// Package pvp runs a dragonfly server with player-defined kits and the PvP death and respawn
// sequence.
package pvp

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/getsentry/sentry-go"
	"golang.org/x/text/language"

	"github.com/jwegrzyn/pvp/pvp/api"
	"github.com/jwegrzyn/pvp/pvp/combat"
	"github.com/jwegrzyn/pvp/pvp/command"
	"github.com/jwegrzyn/pvp/pvp/handler"
	"github.com/jwegrzyn/pvp/pvp/kit"
	"github.com/jwegrzyn/pvp/pvp/locale"
	"github.com/jwegrzyn/pvp/pvp/team"
)

// PvP represents the main server struct.
// It holds the configuration, the kit registry and the team, and manages their persistence.
type PvP struct {
	log  *slog.Logger
	conf Config

	srv   *server.Server
	api   *api.Server
	store *kit.Store
	kits  *kit.Registry
	team  *team.Team
	seq   *combat.Sequence

	closeOnce sync.Once
}

// New creates a new instance of PvP and enables it, loading the kits, preferences and team
// members from the profiles file.
func New(log *slog.Logger, conf Config) (*PvP, error) {
	log.Info("Starting Server...")

	c, err := conf.UserConfig.Config(log)
	if err != nil {
		return nil, err
	}

	pvp := &PvP{
		log:   log,
		conf:  conf,
		store: kit.NewStore(conf.PvP.ProfilesPath),
		kits:  kit.NewRegistry(),
		team:  team.New(conf.PvP.TeamName, conf.PvP.TeamMembers...),
	}
	pvp.seq = combat.NewSequence(pvp.kits, pvp.team, conf.PvP.RespawnDelay.Std())

	if err = pvp.loadLocales(); err != nil {
		return nil, err
	}
	pvp.loadProfiles()
	pvp.loadCommands()
	pvp.setupAPI()

	pvp.srv = c.New()
	pvp.srv.CloseOnProgramEnd()
	return pvp, nil
}

// Start begins the server's main loop, accepting connections and handling players.
// It blocks until the server is closed.
func (pvp *PvP) Start() {
	pvp.srv.Listen()
	if pvp.api != nil {
		go pvp.api.ListenAndServe()
	}

	for p := range pvp.srv.Accept() {
		pvp.accept(p)
	}

	pvp.Close()
}

// loadLocales registers the bundled locales and, if configured, the locale files overriding them.
func (pvp *PvP) loadLocales() error {
	locales := []language.Tag{
		language.English,
	}
	if err := locale.RegisterBundled(locales...); err != nil {
		return err
	}
	path := pvp.conf.PvP.LocalePath
	if path == "" {
		return nil
	}
	for _, l := range locales {
		if err := locale.Register(l, path); err != nil {
			pvp.log.Warn("failed to load locale overrides", "lang", l, "path", path, "error", err)
		}
	}
	return nil
}

// loadProfiles reads the kits, preferences and team members from the profiles file. Failures
// leave the server with whatever could be loaded.
func (pvp *PvP) loadProfiles() {
	p, err := pvp.store.Load()
	if err != nil {
		pvp.log.Warn("failed to read profiles, starting without kits", "path", pvp.store.Path(), "error", err)
		return
	}
	if err = pvp.kits.LoadProfiles(p); err != nil {
		pvp.log.Warn("skipped broken kits", "path", pvp.store.Path(), "error", err)
	}
	if len(p.Team) > 0 {
		pvp.team.Replace(p.Team)
	}
	pvp.log.Info("Loaded profiles", "kits", len(pvp.kits.Names()), "members", len(pvp.team.Members()))
}

// saveProfiles writes the kits, preferences and team members to the profiles file.
func (pvp *PvP) saveProfiles() {
	p := pvp.kits.Profiles()
	p.Team = pvp.team.Members()
	if err := pvp.store.Save(p); err != nil {
		pvp.log.Error("failed to save profiles", "path", pvp.store.Path(), "error", err)
		sentry.CaptureException(err)
		return
	}
	pvp.log.Debug("Saved profiles", "path", pvp.store.Path())
}

// loadCommands registers all the commands on the server.
func (pvp *PvP) loadCommands() {
	cmd.Register(command.NewKit(pvp.kits))
	cmd.Register(command.NewTeam(pvp.team))
}

// setupAPI sets up the kit API if an address is configured.
func (pvp *PvP) setupAPI() {
	addr := pvp.conf.Service.APIAddress
	if addr == "" {
		return
	}
	pvp.api = api.New(pvp.log, addr, pvp.conf.Service.APIKey, pvp.kits)
}

// accept handles a new player joining the server.
func (pvp *PvP) accept(p *player.Player) {
	h := handler.NewPlayerHandler(pvp.log, pvp.seq)
	p.Handle(h)
	h.HandleJoin(p)
}

// Close saves the profiles and stops the kit API. It is safe to call more than once.
func (pvp *PvP) Close() {
	pvp.closeOnce.Do(func() {
		pvp.log.Debug("Saving Profiles...")
		pvp.saveProfiles()

		if pvp.api != nil {
			pvp.log.Debug("Closing Kit API...")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := pvp.api.Shutdown(ctx); err != nil {
				pvp.log.Error("failed to close kit API", "error", err)
			}
		}
	})
}

// World returns the default world.
func (pvp *PvP) World() *world.World {
	return pvp.srv.World()
}
