// config holds the window and gameplay settings, loaded from a JSON
// settings file and overridden by command-line flags
package config

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

const DefaultSettingsPath = "settings.json"

type Config struct {
	// WindowWidth and WindowHeight are also the spawn area for the fish
	WindowWidth  int    `json:"windowWidth"`
	WindowHeight int    `json:"windowHeight"`
	WindowTitle  string `json:"windowTitle"`
	// Borderless removes window decorations
	Borderless bool `json:"borderless"`
	Vsync      bool `json:"vsync"`
	// RunInBackground keeps the game ticking while the window is unfocused
	RunInBackground bool `json:"runInBackground"`
	// TPS is the fixed update rate
	TPS int `json:"tps"`
	// FishScaleMin and FishScaleMax bound the random scale the fish
	// gets every time it respawns
	FishScaleMin float64 `json:"fishScaleMin"`
	FishScaleMax float64 `json:"fishScaleMax"`
	// Seed for the random source, 0 seeds from the clock
	Seed  int64 `json:"seed"`
	Debug bool  `json:"debug"`
}

// Default returns the settings used when there is no settings file
func Default() Config {
	return Config{
		WindowWidth:  1600,
		WindowHeight: 900,
		WindowTitle:  "The Fantastic Fish Fiesta",
		Borderless:   true,
		Vsync:        true,
		TPS:          60,
		FishScaleMin: 0.5,
		FishScaleMax: 1.5,
	}
}

// Load reads settings from path on top of the defaults.
//
// A missing file is not an error, the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "unable to read settings file: %s", path)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, "unable to decode settings file: %s", path)
	}
	return cfg.sanitize(), nil
}

// LoadOrCreate is Load, but writes the defaults to path first if there is
// no settings file yet so players have something to edit
func LoadOrCreate(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Default().Save(path); err != nil {
			return Default(), err
		}
	}
	return Load(path)
}

// Save writes the settings to path as indented JSON
func (cfg Config) Save(path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode settings")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "unable to write settings file: %s", path)
	}
	return nil
}

// Flags parses command-line overrides for the settings.
//
// The settings file path is parsed first so the caller can Load it, then
// Apply is called with the loaded config.
type Flags struct {
	fs           *flag.FlagSet
	SettingsPath string
	width        int
	height       int
	seed         int64
	debug        bool
	windowed     bool
}

// ParseFlags parses args (without the program name)
func ParseFlags(name string, args []string) (*Flags, error) {
	f := &Flags{
		fs: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	f.fs.StringVar(&f.SettingsPath, "settings", DefaultSettingsPath, "path to the JSON settings file")
	f.fs.IntVar(&f.width, "width", 0, "window width, overrides the settings file")
	f.fs.IntVar(&f.height, "height", 0, "window height, overrides the settings file")
	f.fs.Int64Var(&f.seed, "seed", 0, "random seed, overrides the settings file")
	f.fs.BoolVar(&f.debug, "debug", false, "verbose/debug logging")
	f.fs.BoolVar(&f.windowed, "windowed", false, "show window decorations")
	if err := f.fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "unable to parse flags")
	}
	return f, nil
}

// Apply returns cfg with any flags that were given on the command line applied
func (f *Flags) Apply(cfg Config) Config {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.WindowWidth = f.width
		case "height":
			cfg.WindowHeight = f.height
		case "seed":
			cfg.Seed = f.seed
		case "debug":
			cfg.Debug = f.debug
		case "windowed":
			cfg.Borderless = !f.windowed
		}
	})
	return cfg.sanitize()
}

// sanitize replaces nonsensical values with defaults
func (cfg Config) sanitize() Config {
	def := Default()
	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = def.WindowWidth
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = def.WindowHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = def.TPS
	}
	if cfg.FishScaleMin <= 0 {
		cfg.FishScaleMin = def.FishScaleMin
	}
	if cfg.FishScaleMax < cfg.FishScaleMin {
		cfg.FishScaleMax = cfg.FishScaleMin
	}
	return cfg
}
