package tournament

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"checkers/agent"
	"checkers/engine"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

// Settings describe one tournament run.
type Settings struct {
	Mode        Mode
	Player      string // challenger, required in ModeOne only
	Bots        []string
	Size        int
	Rounds      int
	Verbose     bool
	Seed        string // notation text replayed at the start of every game
	SeedFile    string // notation file replayed at the start of every game
	ExportDir   string // directory each game's notation is written to, empty to skip
	MoveTimeout time.Duration
}

// NotationFile names the exported notation of one game inside Settings.ExportDir.
const NotationFile = "game_%d_notation.txt"

type Option func(c *Controller)

// WithResultHook calls fn after every finished game. An error from fn aborts the run.
func WithResultHook(fn func(ctx context.Context, result engine.GameResult) error) Option {
	return func(c *Controller) {
		c.onResult = fn
	}
}

// Controller schedules the games of a tournament and collects their results.
type Controller struct {
	settings   Settings
	challenger *agent.Tracker
	trackers   []*agent.Tracker
	onResult   func(ctx context.Context, result engine.GameResult) error

	gameID  int
	results []engine.GameResult
}

// NewController resolves every bot name against registry.
func NewController(registry *agent.Registry, settings Settings, options ...Option) (*Controller, error) {
	switch settings.Mode {
	case ModeAll:
		if settings.Player != "" {
			return nil, errors.New("player should not be set if running in all mode")
		}
	case ModeOne:
		if settings.Player == "" {
			return nil, errors.New("player must be set in one mode")
		}
	default:
		return nil, fmt.Errorf("mode %d not recognised", settings.Mode)
	}
	if settings.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be positive, got %d", settings.Rounds)
	}
	if settings.Size == 0 {
		settings.Size = game.DefaultSize
	}

	c := &Controller{settings: settings}
	if settings.Mode == ModeOne {
		tracker, err := registry.Tracker(settings.Player, agent.ChallengerID)
		if err != nil {
			return nil, err
		}
		c.challenger = tracker
	}
	for idx, name := range settings.Bots {
		tracker, err := registry.Tracker(name, idx)
		if err != nil {
			return nil, err
		}
		c.trackers = append(c.trackers, tracker)
	}
	for _, option := range options {
		option(c)
	}
	return c, nil
}

// Run plays the whole schedule. The first error aborts the run; results played so far
// are returned with it.
func (c *Controller) Run(ctx context.Context) ([]engine.GameResult, error) {
	log.Info().Msgf("starting %s tournament with %d bots over %d rounds...", c.settings.Mode, len(c.trackers), c.settings.Rounds)

	var err error
	switch c.settings.Mode {
	case ModeAll:
		err = c.runAll(ctx)
	case ModeOne:
		err = c.runOne(ctx)
	}
	if err != nil {
		return c.results, err
	}

	log.Info().Msgf("completed %s tournament after %d games", c.settings.Mode, len(c.results))
	return c.results, nil
}

// Keys lists every participant's unique name: the challenger first, then the bot list in
// order.
func (c *Controller) Keys() []string {
	keys := make([]string, 0, len(c.trackers)+1)
	if c.challenger != nil {
		keys = append(keys, c.challenger.UniqueName())
	}
	for _, t := range c.trackers {
		keys = append(keys, t.UniqueName())
	}
	return keys
}

// Ratings maps every participant's unique name to its current rating.
func (c *Controller) Ratings() map[string]float64 {
	ratings := make(map[string]float64, len(c.trackers)+1)
	if c.challenger != nil {
		ratings[c.challenger.UniqueName()] = c.challenger.Rating()
	}
	for _, t := range c.trackers {
		ratings[t.UniqueName()] = t.Rating()
	}
	return ratings
}

func (c *Controller) runAll(ctx context.Context) error {
	for i, bot := range c.trackers {
		for j, other := range c.trackers {
			if i == j {
				continue
			}
			if err := c.runGames(ctx, bot, other); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Controller) runOne(ctx context.Context) error {
	for _, other := range c.trackers {
		if err := c.runGames(ctx, c.challenger, other); err != nil {
			return err
		}
	}
	return nil
}

// runGames plays every round of a pairing, swapping colours within each round.
func (c *Controller) runGames(ctx context.Context, bot, other *agent.Tracker) error {
	log.Info().Msgf("starting matchup between %s and %s...", bot.UniqueName(), other.UniqueName())

	for round := 1; round <= c.settings.Rounds; round++ {
		if err := c.runGame(ctx, bot, other, round); err != nil {
			return err
		}
		if err := c.runGame(ctx, other, bot, round); err != nil {
			return err
		}
	}

	log.Info().Msgf("completed matchup between %s and %s", bot.UniqueName(), other.UniqueName())
	return nil
}

func (c *Controller) runGame(ctx context.Context, white, black *agent.Tracker, round int) error {
	c.gameID++
	board, err := game.NewBoard(c.settings.Size)
	if err != nil {
		return err
	}

	g, err := engine.New(c.gameID, round, white, black, board,
		engine.WithVerbose(c.settings.Verbose),
		engine.WithSeed(c.settings.Seed),
		engine.WithSeedFile(c.settings.SeedFile),
		engine.WithMoveTimeout(c.settings.MoveTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to set up game %d: %w", c.gameID, err)
	}

	result, err := g.Run(ctx)
	if err != nil {
		return err
	}
	agent.UpdateRatings(white, black, result.Score())
	c.results = append(c.results, result)

	log.Info().Msgf("completed game %d round %d with result %s after %d plies", result.GameID, round, result.Result, result.NumMoves)

	if err := c.export(g, result); err != nil {
		return err
	}

	if c.onResult != nil {
		if err := c.onResult(ctx, result); err != nil {
			return fmt.Errorf("failed to handle result of game %d: %w", result.GameID, err)
		}
	}
	return nil
}

// export writes the notation of a finished game. Games with a chain capture have no
// notation that replays them and are skipped.
func (c *Controller) export(g *engine.Game, result engine.GameResult) error {
	if c.settings.ExportDir == "" {
		return nil
	}
	if result.Notation == "" {
		log.Debug().Msgf("game %d has no replayable notation, skipping export", result.GameID)
		return nil
	}
	return g.ExportToPath(filepath.Join(c.settings.ExportDir, fmt.Sprintf(NotationFile, result.GameID)))
}
