package agent

import (
	"fmt"
	"math"
)

const (
	InitialRating = 1500.0
	RatingK       = 32.0
	// ChallengerID is the spawn index of the single bot in "one" mode.
	ChallengerID = -1
)

// Tracker is a bot identity across a tournament: it spawns a new bot for every game and
// keeps the identity's rating.
type Tracker struct {
	name    string
	id      int
	factory Factory
	rating  float64
	spawned int
}

func NewTracker(name string, id int, factory Factory) *Tracker {
	if factory == nil {
		panic("tracker needs a bot factory")
	}
	return &Tracker{
		name:    name,
		id:      id,
		factory: factory,
		rating:  InitialRating,
	}
}

// Spawn builds a bot instance for one game.
func (t *Tracker) Spawn() Bot {
	t.spawned++
	return t.factory(t.id)
}

func (t *Tracker) Name() string {
	return t.name
}

func (t *Tracker) ID() int {
	return t.id
}

// UniqueName is the display name used in results and reports.
func (t *Tracker) UniqueName() string {
	return UniqueName(t.id, t.name)
}

func (t *Tracker) Rating() float64 {
	return t.rating
}

// Spawned counts how many bots this tracker has built.
func (t *Tracker) Spawned() int {
	return t.spawned
}

// UniqueName formats "<name>#<id>".
func UniqueName(id int, name string) string {
	return fmt.Sprintf("%s#%d", name, id)
}

// UpdateRatings applies one Elo update to both trackers. scoreA is 1 for a win by a, 0.5
// for a draw and 0 for a loss.
func UpdateRatings(a, b *Tracker, scoreA float64) {
	expectedA := expectedScore(a.rating, b.rating)
	expectedB := expectedScore(b.rating, a.rating)
	a.rating += RatingK * (scoreA - expectedA)
	b.rating += RatingK * ((1 - scoreA) - expectedB)
}

func expectedScore(rating, opponent float64) float64 {
	return 1 / (1 + math.Pow(10, (opponent-rating)/400))
}
