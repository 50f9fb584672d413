package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"checkers/agent"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

// AutoDrawMoveCount is the number of plies without a capture or promotion after which the
// game is drawn.
const AutoDrawMoveCount = game.InactivityLimit

type Option func(g *Game)

// WithVerbose records a move log with a board after every ply.
func WithVerbose(verbose bool) Option {
	return func(g *Game) {
		g.verbose = verbose
	}
}

// WithSeed replays notation text before the game starts.
func WithSeed(notation string) Option {
	return func(g *Game) {
		g.seed = notation
	}
}

// WithSeedFile replays the notation stored at path before the game starts. It cannot be
// combined with WithSeed.
func WithSeedFile(path string) Option {
	return func(g *Game) {
		g.seedFile = path
	}
}

// WithMoveTimeout bounds every bot call. A bot that does not answer in time commits a
// protocol violation. Zero waits forever.
func WithMoveTimeout(timeout time.Duration) Option {
	return func(g *Game) {
		if timeout > 0 {
			g.moveTimeout = timeout
		}
	}
}

// Game runs one match between two bots. It owns its board exclusively; bots only ever
// see copies.
type Game struct {
	id    int
	round int

	white    *agent.Tracker
	black    *agent.Tracker
	whiteBot agent.Bot
	blackBot agent.Bot

	board       *game.Board
	state       State
	result      Result
	currentTurn game.Colour
	history     []game.Move

	// Ply index of the most recent capture or promotion.
	lastActionMove int

	kingsMade [2]int
	captures  [2]int
	evals     [2]*float64

	verbose     bool
	seed        string
	seedFile    string
	moveTimeout time.Duration
	moves       strings.Builder
	metric      GameMetric
}

// New sets up a game on board, which the game takes ownership of. A seed or seed file, if
// given, is imported immediately and its errors returned.
func New(id, round int, white, black *agent.Tracker, board *game.Board, options ...Option) (*Game, error) {
	if white == nil || black == nil {
		panic("game needs two players")
	}
	if board == nil {
		panic("game needs a board")
	}

	g := &Game{
		id:          id,
		round:       round,
		white:       white,
		black:       black,
		board:       board,
		currentTurn: game.White,
	}
	for _, option := range options {
		option(g)
	}

	switch {
	case g.seed != "" && g.seedFile != "":
		return nil, errors.New("seed text and seed file are mutually exclusive")
	case g.seedFile != "":
		if err := g.ImportFile(g.seedFile); err != nil {
			return nil, err
		}
	case g.seed != "":
		if err := g.ImportText(g.seed); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Start spawns both bots. It is called by Run and by the first MakeMove.
func (g *Game) Start() {
	if g.state != StateNotStarted {
		return
	}
	g.whiteBot = g.white.Spawn()
	g.blackBot = g.black.Spawn()
	g.state = StateInProgress
	g.metric.StartTime = time.Now()

	log.Debug().Msgf("game %d round %d started: %s (white) vs %s (black), %s to move",
		g.id, g.round, g.white.UniqueName(), g.black.UniqueName(), g.currentTurn)
}

// Run plays the game to its end.
func (g *Game) Run(ctx context.Context) (GameResult, error) {
	g.Start()
	for {
		result, err := g.MakeMove(ctx)
		if err != nil {
			return GameResult{}, err
		}
		if result != ResultNone {
			return g.Result()
		}
	}
}

// MakeMove plays one ply and returns ResultNone while the game goes on.
func (g *Game) MakeMove(ctx context.Context) (Result, error) {
	g.Start()
	if g.state.Terminal() {
		return ResultNone, ErrGameOver
	}
	if err := ctx.Err(); err != nil {
		return ResultNone, err
	}

	turn := g.currentTurn
	tracker, bot := g.player(turn)

	moves := g.board.MoveList(turn)
	if len(moves) == 0 {
		return g.finish(WinFor(turn.Opposite())), nil
	}

	info := game.NewPlayMoveInfo(g.board, turn, moves, g.history, g.lastActionMove, g.evals[turn])
	started := time.Now()
	idx, err := g.ask(ctx, bot, info)
	g.metric.ThinkTime[turn] += time.Since(started)
	if err != nil {
		if errors.Is(err, ErrProtocolViolation) {
			return ResultNone, g.violation(tracker, turn, err)
		}
		return ResultNone, err
	}

	if idx < 0 || idx >= len(moves) {
		return ResultNone, g.violation(tracker, turn,
			fmt.Errorf("%w: bot has played an invalid move: index %d not in [0, %d)", ErrProtocolViolation, idx, len(moves)))
	}

	g.evals[turn] = annotation(bot)
	g.applyMove(moves[idx], false, g.evals[turn])

	if g.MoveNumber()-g.lastActionMove >= AutoDrawMoveCount {
		if g.verbose {
			fmt.Fprintf(&g.moves, "Automatic draw by %d-move rule!\n", AutoDrawMoveCount/2)
		}
		return g.finish(ResultDraw), nil
	}

	g.currentTurn = turn.Opposite()
	return ResultNone, nil
}

// Result summarises a finished game.
func (g *Game) Result() (GameResult, error) {
	if !g.state.Terminal() {
		return GameResult{}, fmt.Errorf("game %d is %s", g.id, g.state)
	}

	return GameResult{
		GameID:     g.id,
		Round:      g.round,
		Result:     g.result,
		White:      g.side(game.White),
		Black:      g.side(game.Black),
		NumMoves:   g.MoveNumber(),
		Moves:      g.moves.String(),
		Notation:   g.resultNotation(),
		GameMetric: g.metric,
	}, nil
}

func (g *Game) ID() int {
	return g.id
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) CurrentTurn() game.Colour {
	return g.currentTurn
}

// MoveNumber is the number of plies played so far.
func (g *Game) MoveNumber() int {
	return len(g.history)
}

func (g *Game) LastActionMove() int {
	return g.lastActionMove
}

// History returns a copy of the moves played.
func (g *Game) History() []game.Move {
	return append([]game.Move(nil), g.history...)
}

// Board returns a copy of the current position.
func (g *Game) Board() *game.Board {
	return g.board.Copy()
}

func (g *Game) MoveLog() string {
	return g.moves.String()
}

func (g *Game) KingsMade(colour game.Colour) int {
	return g.kingsMade[colour]
}

func (g *Game) Captures(colour game.Colour) int {
	return g.captures[colour]
}

func (g *Game) player(colour game.Colour) (*agent.Tracker, agent.Bot) {
	if colour == game.White {
		return g.white, g.whiteBot
	}
	return g.black, g.blackBot
}

// ask calls the bot, racing it against the move timeout when one is set. On timeout the
// bot keeps running on its own snapshot and its answer is discarded.
func (g *Game) ask(ctx context.Context, bot agent.Bot, info game.PlayMoveInfo) (int, error) {
	if g.moveTimeout <= 0 {
		return bot.PlayMove(info), nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.moveTimeout)
	defer cancel()

	answer := make(chan int, 1)
	go func() {
		answer <- bot.PlayMove(info)
	}()

	select {
	case idx := <-answer:
		return idx, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return 0, fmt.Errorf("%w after %s", ErrBotTimeout, g.moveTimeout)
		}
		return 0, ctx.Err()
	}
}

func (g *Game) violation(tracker *agent.Tracker, colour game.Colour, err error) error {
	return &MatchError{
		Kind:   KindProtocolViolation,
		Policy: AbortMatch,
		GameID: g.id,
		Colour: colour,
		Ply:    g.MoveNumber() + 1,
		Bot:    tracker.UniqueName(),
		Err:    err,
	}
}

func (g *Game) applyMove(m game.Move, fromImport bool, eval *float64) {
	g.history = append(g.history, m)
	captures, promoted := g.board.MovePiece(m)

	if captures > 0 || promoted {
		g.lastActionMove = g.MoveNumber()
		g.captures[g.currentTurn] += captures
		if promoted {
			g.kingsMade[g.currentTurn]++
		}
	}

	if !g.verbose {
		return
	}
	evalStr := ""
	if eval != nil {
		evalStr = fmt.Sprintf(". Bot's eval: %.2f", *eval)
	}
	fmt.Fprintf(&g.moves, "Move %d: %s's turn%s\n", g.MoveNumber(), g.currentTurn, evalStr)
	fmt.Fprintf(&g.moves, "Moved from %s to %s", m.Start(), m.End())
	if fromImport {
		g.moves.WriteString(" (Book Move)")
	}
	g.moves.WriteString("\n" + g.board.Display() + "\n")
}

func (g *Game) finish(result Result) Result {
	g.result = result
	g.state = result.state()
	g.metric.EndTime = time.Now()
	g.metric.Duration = g.metric.EndTime.Sub(g.metric.StartTime)

	log.Debug().Msgf("game %d finished after %d plies: %s", g.id, g.MoveNumber(), result)
	return result
}

func (g *Game) side(colour game.Colour) Side {
	tracker, _ := g.player(colour)
	return Side{
		Name:      tracker.UniqueName(),
		Colour:    colour,
		Rating:    roundRating(tracker.Rating()),
		KingsMade: g.kingsMade[colour],
		Captures:  g.captures[colour],
	}
}

func annotation(bot agent.Bot) *float64 {
	a, ok := bot.(agent.Annotator)
	if !ok {
		return nil
	}
	if v, ok := a.Eval(); ok {
		return &v
	}
	return nil
}
