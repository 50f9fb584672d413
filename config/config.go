package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CHECKERS_ROUNDS.
const EnvPrefix = "CHECKERS"

type Config struct {
	Mode        string        `mapstructure:"mode"`
	Player      string        `mapstructure:"player"`
	Bots        []string      `mapstructure:"bots"`
	Size        int           `mapstructure:"size"`
	Rounds      int           `mapstructure:"rounds"`
	Verbose     bool          `mapstructure:"verbose"`
	OutputDir   string        `mapstructure:"output_dir"`
	Seed        string        `mapstructure:"seed"`
	Export      bool          `mapstructure:"export"`
	MoveTimeout time.Duration `mapstructure:"move_timeout"`
	DBPath      string        `mapstructure:"db"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFormat   string        `mapstructure:"log_format"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"mode":         "mode",
	"player":       "player",
	"bots":         "bots",
	"size":         "size",
	"rounds":       "rounds",
	"verbose":      "verbose",
	"output-dir":   "output_dir",
	"seed":         "seed",
	"export":       "export",
	"move-timeout": "move_timeout",
	"db":           "db",
	"log-level":    "log_level",
	"log-format":   "log_format",
}

// NewFlagSet declares every command line flag.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "Path to a config file (yaml, json or toml)")
	fs.String("mode", "all", "Tournament mode: all (every bot against every other) or one (player against every bot)")
	fs.String("player", "", "Challenger bot, required in one mode")
	fs.StringSlice("bots", []string{"RandomBot", "FirstMover"}, "Comma separated list of bots")
	fs.Int("size", 8, "Board size")
	fs.Int("rounds", 1, "Rounds per pairing, each round plays both colour orders")
	fs.Bool("verbose", false, "Record a move log for every game")
	fs.String("output-dir", ".", "Directory the results folder is created in")
	fs.String("seed", "", "Notation file replayed at the start of every game")
	fs.Bool("export", false, "Write the notation of every game into the results folder")
	fs.Duration("move-timeout", 0, "Maximum time a bot may think per move, 0 for no limit")
	fs.String("db", "", "SQLite file to store results in, empty to disable")
	fs.String("log-level", "info", "Log level")
	fs.String("log-format", "auto", "Log format: auto, console or json")
	return fs
}

// Load parses args and merges them over environment variables, the config file and the
// defaults, in that order of precedence.
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("checkers")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Bots = splitList(cfg.Bots)
	return &cfg, nil
}

// splitList accepts both repeated values and a single comma separated value.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	var errs []error

	switch c.Mode {
	case "all":
		if c.Player != "" {
			errs = append(errs, errors.New("player should not be set in all mode"))
		}
	case "one":
		if c.Player == "" {
			errs = append(errs, errors.New("player must be set in one mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("mode %q not recognised, expected all or one", c.Mode))
	}
	if len(c.Bots) == 0 {
		errs = append(errs, errors.New("bot list is empty"))
	}
	if c.Size < 4 || c.Size%2 != 0 {
		errs = append(errs, fmt.Errorf("board size must be even and at least 4, got %d", c.Size))
	}
	if c.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be at least 1, got %d", c.Rounds))
	}
	if c.MoveTimeout < 0 {
		errs = append(errs, fmt.Errorf("move timeout must not be negative, got %s", c.MoveTimeout))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level: %w", err))
	}
	switch c.LogFormat {
	case "auto", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q not recognised, expected auto, console or json", c.LogFormat))
	}

	return errors.Join(errs...)
}
