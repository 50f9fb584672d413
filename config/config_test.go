package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	require.Equal(t, "all", cfg.Mode)
	require.Empty(t, cfg.Player)
	require.Equal(t, []string{"RandomBot", "FirstMover"}, cfg.Bots)
	require.Equal(t, 8, cfg.Size)
	require.Equal(t, 1, cfg.Rounds)
	require.False(t, cfg.Verbose)
	require.Equal(t, ".", cfg.OutputDir)
	require.Zero(t, cfg.MoveTimeout, "Bots may think forever by default")
	require.Empty(t, cfg.DBPath)
	require.False(t, cfg.Export)
	require.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--mode", "one",
		"--player", "MinimaxBot",
		"--bots", "RandomBot,GreedyBot",
		"--size", "10",
		"--rounds", "3",
		"--verbose",
		"--move-timeout", "250ms",
		"--output-dir", "out",
		"--seed", "opening.txt",
		"--export",
	})
	require.NoError(t, err)

	require.Equal(t, "one", cfg.Mode)
	require.Equal(t, "MinimaxBot", cfg.Player)
	require.Equal(t, []string{"RandomBot", "GreedyBot"}, cfg.Bots)
	require.Equal(t, 10, cfg.Size)
	require.Equal(t, 3, cfg.Rounds)
	require.True(t, cfg.Verbose)
	require.Equal(t, 250*time.Millisecond, cfg.MoveTimeout)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, "opening.txt", cfg.Seed)
	require.True(t, cfg.Export)
	require.NoError(t, cfg.Validate())
}

func TestEnvironment(t *testing.T) {
	t.Setenv("CHECKERS_ROUNDS", "5")
	t.Setenv("CHECKERS_OUTPUT_DIR", "results")

	cfg, err := Load([]string{"--size", "6"})
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Rounds)
	require.Equal(t, "results", cfg.OutputDir)
	require.Equal(t, 6, cfg.Size)

	cfg, err = Load([]string{"--rounds", "2"})
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Rounds, "Flags win over the environment")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkers.yaml")
	content := "mode: one\nplayer: GreedyBot\nbots:\n  - RandomBot\n  - MinimaxBot\nrounds: 4\nmove_timeout: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load([]string{"--config", path, "--rounds", "7"})
	require.NoError(t, err)

	require.Equal(t, "one", cfg.Mode)
	require.Equal(t, "GreedyBot", cfg.Player)
	require.Equal(t, []string{"RandomBot", "MinimaxBot"}, cfg.Bots)
	require.Equal(t, 7, cfg.Rounds)
	require.Equal(t, 2*time.Second, cfg.MoveTimeout)

	_, err = Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Mode: "all", Bots: []string{"RandomBot"}, Size: 8, Rounds: 1, LogLevel: "info", LogFormat: "auto"}
	}
	require.NoError(t, valid().Validate())

	for name, mutate := range map[string]func(c *Config){
		"unknown mode":        func(c *Config) { c.Mode = "some" },
		"player in all mode":  func(c *Config) { c.Player = "RandomBot" },
		"one mode, no player": func(c *Config) { c.Mode = "one" },
		"no bots":             func(c *Config) { c.Bots = nil },
		"odd size":            func(c *Config) { c.Size = 7 },
		"tiny size":           func(c *Config) { c.Size = 2 },
		"no rounds":           func(c *Config) { c.Rounds = 0 },
		"negative timeout":    func(c *Config) { c.MoveTimeout = -time.Second },
		"bad level":           func(c *Config) { c.LogLevel = "loud" },
		"bad format":          func(c *Config) { c.LogFormat = "xml" },
	} {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			require.Error(t, c.Validate())
		})
	}
}

func TestSetupLogger(t *testing.T) {
	defer func() {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}()

	var buf bytes.Buffer
	require.NoError(t, setupLogger(&buf, false, "warn", "auto"))
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"message":"shown"`, "Non terminals get JSON")

	buf.Reset()
	require.NoError(t, setupLogger(&buf, false, "info", "console"))
	log.Info().Msg("plain")
	require.Contains(t, buf.String(), "plain")
	require.NotContains(t, buf.String(), `"message"`)

	require.Error(t, setupLogger(&buf, false, "loud", "json"))
}
