package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"github.com/silbinarywolf/fish-fiesta/internal/app"
	"github.com/silbinarywolf/fish-fiesta/internal/config"
	"github.com/silbinarywolf/fish-fiesta/internal/logging"
)

func main() {
	logging.Setup(os.Stderr, false)

	flags, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	cfg, err := config.LoadOrCreate(flags.SettingsPath)
	if err != nil {
		// note: keep going with the defaults, a broken settings file
		// shouldn't stop someone from playing
		logging.Errorf("%v, using default settings", err)
	}
	cfg = flags.Apply(cfg)
	logging.SetDebug(os.Stderr, cfg.Debug)
	logging.Debugf("settings: %+v", cfg)

	if err := app.StartApp(cfg); err != nil {
		logging.Errorf("%+v", err)
		os.Exit(1)
	}
}
