package agent

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownBot = errors.New("unknown bot")

// Registry maps bot identifiers to factories. It is filled once at start up.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry holds every bot shipped with the module.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.mustRegister("RandomBot", func(id int) Bot { return NewRandomBot(id) })
	r.mustRegister("FirstMover", func(int) Bot { return FirstMover{} })
	r.mustRegister("GreedyBot", func(int) Bot { return NewGreedyBot() })
	r.mustRegister("MinimaxBot", func(int) Bot { return NewMinimaxBot(DefaultDepth) })
	r.mustRegister("MCTSBot", func(id int) Bot { return NewDefaultMCTSBot(id) })
	return r
}

func (r *Registry) Register(name string, factory Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("cannot register bot %q: name and factory are required", name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("bot %q is already registered", name)
	}
	r.factories[name] = factory
	return nil
}

func (r *Registry) mustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Factory, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownBot, name, r.Names())
	}
	return factory, nil
}

// Tracker resolves name and wraps it in a tracker with the given spawn index.
func (r *Registry) Tracker(name string, id int) (*Tracker, error) {
	factory, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewTracker(name, id, factory), nil
}

// Names lists the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
