package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/df-mc/dragonfly/server/player/chat"
	"github.com/getsentry/sentry-go"

	"github.com/jwegrzyn/pvp/pvp"
)

// init ...
func init() {
	chat.Global.Subscribe(chat.StdoutSubscriber{})
}

// main ...
func main() {
	conf, err := pvp.ReadConfig("./config.toml")
	if err != nil {
		panic(err)
	}

	level, err := pvp.ParseLogLevel(conf.PvP.LogLevel)
	if err != nil {
		slog.Warn("invalid log level, using info", "error", err)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if dsn := conf.PvP.SentryDsn; dsn != "" {
		if err = sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Error("failed to initialise sentry", "error", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	srv, err := pvp.New(log, conf)
	if err != nil {
		sentry.CaptureException(err)
		panic(err)
	}

	srv.Start()
}
