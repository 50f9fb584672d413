package searcher

import (
	"sync"
	"time"

	"checkers/game"

	"golang.org/x/exp/rand"
)

// MaxCutoff effectively disables the rollout cutoff.
const MaxCutoff = 1 << 20

type Option func(mcts *MCTS)

// MCTS is a tree-parallel Monte Carlo tree search with virtual loss. A new tree is built
// for every call to Simulate.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	seed       uint64
	evaluate   func(b *game.Board, colour game.Colour) float64
	root       *node
	metrics    Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithCutoff stops rollouts after depth plies and scores the position with the
// evaluation function instead.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate func(b *game.Board, colour game.Colour) float64) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithSeed seeds the random rollout policy. Searches with one goroutine and a fixed
// episode count are then reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	if goroutines < 1 {
		goroutines = 1
	}
	m := &MCTS{ // Default values
		goroutines: goroutines,
		cutoff:     MaxCutoff,
		seed:       uint64(time.Now().UnixNano()),
		evaluate:   game.Evaluate,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from board with turn to move and returns the share of root visits per
// legal move, in MoveList order, along with the search metrics.
func (m *MCTS) Simulate(board *game.Board, turn game.Colour, sinceAction int) ([]float64, SearchMetric) {
	start := newPosition(board, turn, sinceAction)
	m.root = newNode(nil, start)

	// Run simulations to collect statistics
	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(start)
	} else {
		m.countdown(start)
	}
	metric := m.metrics.Complete()

	// Output move policy and move finding metrics
	return m.policy(), metric
}

// WinRate is the average reward of the root's most visited child from the searching
// side's perspective, or false before any search.
func (m *MCTS) WinRate() (float64, bool) {
	if m.root == nil {
		return 0, false
	}
	best := m.bestChild()
	if best < 0 {
		return 0, false
	}
	rewards, visits := m.root.children[best].stats()
	if visits == 0 {
		return 0, false
	}
	return rewards / float64(visits), true
}

func (m *MCTS) policy() []float64 {
	policy := make([]float64, len(m.root.moves))
	total := 0
	for i, child := range m.root.children {
		_, visits := child.stats()
		policy[i] = float64(visits)
		total += visits
	}
	if total == 0 {
		return policy
	}
	for i := range policy {
		policy[i] /= float64(total)
	}
	return policy
}

func (m *MCTS) bestChild() int {
	best, maxVisits := -1, -1
	for i, child := range m.root.children {
		if _, visits := child.stats(); visits > maxVisits {
			best, maxVisits = i, visits
		}
	}
	return best
}

func (m *MCTS) iterate(start *position) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				m.simulate(start, rng)
				m.metrics.AddEpisode()
			}
		}(rand.New(rand.NewSource(m.seed + uint64(i))))
	}

	wg.Wait()
}

func (m *MCTS) countdown(start *position) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(start, rng)
					m.metrics.AddEpisode()
				}
			}
		}(rand.New(rand.NewSource(m.seed + uint64(i))))
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(start *position, rng *rand.Rand) {
	pos := start.copy()
	leaf := selectThenExpand(m.root, pos)
	o := rollout(pos, m.cutoff, m.evaluate, m.metrics, rng)
	backup(leaf, o)
}

func selectThenExpand(root *node, pos *position) *node {
	root.applyLoss()
	parent := root
	child, selected := parent.selectOrExpand(pos)
	for selected && (child != parent) {
		parent = child
		child, selected = parent.selectOrExpand(pos)
	}
	return child
}

func rollout(pos *position, cutoff int, evaluate func(*game.Board, game.Colour) float64, metrics Collector, rng *rand.Rand) outcome {
	depth := 0
	moves := pos.legalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && (depth < cutoff) {
		move := moves[rng.Intn(len(moves))] // Random rollout policy
		pos.play(move)
		moves = pos.legalMoves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		metrics.AddFullPlayout()
		if pos.isDrawn() {
			return outcome{colour: pos.turn, reward: Draw}
		}
		return outcome{colour: pos.turn, reward: Loss}
	}

	// At cutoff, map the evaluation in [-1, 1] to a reward for the side to move
	return outcome{colour: pos.turn, reward: (evaluate(pos.board, pos.turn) + 1) / 2}
}

func backup(leaf *node, o outcome) {
	n := leaf
	for n != nil {
		parent := n.backup(o)
		n = parent
	}
}
