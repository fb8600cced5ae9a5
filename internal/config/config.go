// Package config loads gradviz settings from flags, environment and an
// optional YAML file through viper.
//
// Precedence, highest first: command line flags, GRADVIZ_* environment
// variables, the config file, built-in defaults. Keys are dotted
// ("run.epochs"); the matching environment variable replaces dots with
// underscores (GRADVIZ_RUN_EPOCHS).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/born-ml/gradviz/internal/logging"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "gradviz"
	// ConfigName is the file looked up when no --config is given.
	ConfigName = "gradviz"
	// PathEnv names an extra directory searched for the config file.
	PathEnv = "GRADVIZ_CFG_PATH"
)

// Config keys.
const (
	KeyEpochs     = "run.epochs"
	KeyLR         = "run.lr"
	KeyEvery      = "run.every"
	KeyInterval   = "run.interval"
	KeyOut        = "run.out"
	KeySeed       = "run.seed"
	KeyBatch      = "run.batch"
	KeyWidth      = "render.width"
	KeyHeight     = "render.height"
	KeyScale      = "render.scale"
	KeyStride     = "render.stride"
	KeyWorkers    = "render.workers"
	KeyHideAxis   = "render.no_axis"
	KeyLogLevel   = "log.level"
	KeyLogFile    = "log.file"
	KeyLogConsole = "log.console"
)

// Run holds the training schedule.
type Run struct {
	Epochs   int
	LR       float64 // 0 selects the demo default
	Every    int
	Interval time.Duration
	Out      string
	Seed     int64
	Batch    int
}

// Render holds frame settings.
type Render struct {
	Width    int
	Height   int
	Scale    float64
	Stride   int
	Workers  int
	HideAxis bool
}

// Config is the full set of settings.
type Config struct {
	Run    Run
	Render Render
	Log    logging.Config
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the built-in defaults.
func SetDefaults(v *viper.Viper) {
	log := logging.DefaultConfig()
	v.SetDefault(KeyEpochs, 500)
	v.SetDefault(KeyLR, 0.0)
	v.SetDefault(KeyEvery, 50)
	v.SetDefault(KeyInterval, time.Duration(0))
	v.SetDefault(KeyOut, "frames")
	v.SetDefault(KeySeed, int64(0))
	v.SetDefault(KeyBatch, 0)
	v.SetDefault(KeyWidth, 480)
	v.SetDefault(KeyHeight, 360)
	v.SetDefault(KeyScale, 1.0)
	v.SetDefault(KeyStride, 4)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyHideAxis, false)
	v.SetDefault(KeyLogLevel, log.Level)
	v.SetDefault(KeyLogFile, log.File)
	v.SetDefault(KeyLogConsole, log.Console)
}

// BindFlags binds command line flags to config keys.
//
// flagKeys maps a flag name to its key. Flags missing from fs are an error.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, flagKeys map[string]string) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("flag %q not defined", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// ReadFile loads the config file.
//
// An explicit path must exist. Without one, gradviz.yaml is looked up in
// $GRADVIZ_CFG_PATH and the working directory, and its absence is not an
// error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	if alt := os.Getenv(PathEnv); alt != "" {
		v.AddConfigPath(alt)
	}
	v.AddConfigPath(".")
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load resolves every key into a Config.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Run: Run{
			Epochs:   v.GetInt(KeyEpochs),
			LR:       v.GetFloat64(KeyLR),
			Every:    v.GetInt(KeyEvery),
			Interval: v.GetDuration(KeyInterval),
			Out:      v.GetString(KeyOut),
			Seed:     v.GetInt64(KeySeed),
			Batch:    v.GetInt(KeyBatch),
		},
		Render: Render{
			Width:    v.GetInt(KeyWidth),
			Height:   v.GetInt(KeyHeight),
			Scale:    v.GetFloat64(KeyScale),
			Stride:   v.GetInt(KeyStride),
			Workers:  v.GetInt(KeyWorkers),
			HideAxis: v.GetBool(KeyHideAxis),
		},
		Log: logging.DefaultConfig(),
	}
	cfg.Log.Level = v.GetString(KeyLogLevel)
	cfg.Log.File = v.GetString(KeyLogFile)
	cfg.Log.Console = v.GetBool(KeyLogConsole)

	return cfg, cfg.Validate()
}

// Validate rejects settings no run can use.
func (c Config) Validate() error {
	switch {
	case c.Run.LR < 0:
		return fmt.Errorf("%s must not be negative, got %g", KeyLR, c.Run.LR)
	case c.Run.Every < 0:
		return fmt.Errorf("%s must not be negative, got %d", KeyEvery, c.Run.Every)
	case c.Render.Width < 0 || c.Render.Height < 0:
		return fmt.Errorf("render size must not be negative, got %dx%d", c.Render.Width, c.Render.Height)
	case c.Render.Scale < 0:
		return fmt.Errorf("%s must not be negative, got %g", KeyScale, c.Render.Scale)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
