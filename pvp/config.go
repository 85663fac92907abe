package pvp

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/df-mc/dragonfly/server"
	"github.com/restartfu/gophig"
	"github.com/sandertv/gophertunnel/minecraft/text"

	"github.com/jwegrzyn/pvp/pvp/util"
)

// Config holds the server configuration, including the PvP settings and the kit API.
type Config struct {
	PvP struct {
		SentryDsn    string
		LogLevel     string // Can be "debug", "info", "warn", "error"
		ProfilesPath string
		LocalePath   string // Optional directory of .lang files overriding the bundled ones.
		TeamName     string
		TeamMembers  []string
		RespawnDelay util.Duration
	}
	Service struct {
		APIAddress string // The kit API is disabled if empty.
		APIKey     string
	}
	server.UserConfig
}

// DefaultConfig returns a config with prefilled default values.
func DefaultConfig() Config {
	c := Config{}

	c.PvP.SentryDsn = ""
	c.PvP.LogLevel = "info"
	c.PvP.ProfilesPath = "pvp-profiles.toml"
	c.PvP.TeamName = "pvp"
	c.PvP.RespawnDelay = util.Ticks(20)

	c.Service.APIAddress = ""
	c.Service.APIKey = "secret-key"

	userConfig := server.DefaultConfig()
	userConfig.Server.Name = text.Colourf("<red>PvP</red>")
	userConfig.World.Folder = "world"
	userConfig.Players.Folder = "player_data"

	c.UserConfig = userConfig
	return c
}

// ParseLogLevel returns the appropriate slog.Level based on string configuration.
// Returns an error if the provided log level string is not recognized.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unrecognized log level: %q", level)
	}
}

// ReadConfig loads the server configuration from the path passed, usually ./config.toml.
// If the file doesn't exist, it creates a new one with default values.
func ReadConfig(path string) (Config, error) {
	g := gophig.NewGophig[Config](path, gophig.TOMLMarshaler{}, os.ModePerm)
	_, err := g.LoadConf()
	if errors.Is(err, os.ErrNotExist) {
		if err = g.SaveConf(DefaultConfig()); err != nil {
			return Config{}, err
		}
	}
	c, err := g.LoadConf()
	if err != nil {
		return Config{}, err
	}
	if c.PvP.TeamName == "" {
		c.PvP.TeamName = "pvp"
	}
	if c.PvP.ProfilesPath == "" {
		c.PvP.ProfilesPath = "pvp-profiles.toml"
	}
	return c, nil
}
