package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"checkers/agent"
	"checkers/config"
	"checkers/engine"
	"checkers/store"
	"checkers/tournament"
	"checkers/tournament/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := config.SetupLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("failed to set up logger")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	mode, err := tournament.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	writer, err := report.NewWriter(cfg.OutputDir, startedAt)
	if err != nil {
		return err
	}

	exportDir := ""
	if cfg.Export {
		exportDir = writer.Dir()
	}

	var options []tournament.Option
	if cfg.DBPath != "" {
		s, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer s.Close()

		runID, err := s.BeginRun(ctx, cfg.Mode, cfg.Size, cfg.Rounds, startedAt)
		if err != nil {
			return err
		}
		log.Info().Msgf("recording results as run %s in %s", runID, cfg.DBPath)
		options = append(options, tournament.WithResultHook(func(ctx context.Context, r engine.GameResult) error {
			return s.RecordGame(ctx, runID, r)
		}))
	}

	controller, err := tournament.NewController(agent.DefaultRegistry(), tournament.Settings{
		Mode:        mode,
		Player:      cfg.Player,
		Bots:        cfg.Bots,
		Size:        cfg.Size,
		Rounds:      cfg.Rounds,
		Verbose:     cfg.Verbose,
		SeedFile:    cfg.Seed,
		ExportDir:   exportDir,
		MoveTimeout: cfg.MoveTimeout,
	}, options...)
	if err != nil {
		return err
	}

	results, err := controller.Run(ctx)
	if err != nil {
		return err
	}

	if err := writer.WriteAll(results, tournament.Stats(results, controller.Keys())); err != nil {
		return err
	}
	log.Info().Msgf("stored %d game results in %s", len(results), writer.Dir())

	for name, rating := range controller.Ratings() {
		log.Info().Msgf("final rating of %s: %.0f", name, rating)
	}
	return nil
}
