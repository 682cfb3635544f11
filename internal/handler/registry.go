package handler

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrQuit is returned by the quit command to end the menu loop.
var ErrQuit = errors.New("player quit")

// ActionFunc runs one menu action against the session.
type ActionFunc func(g Game, deps *Deps) error

type actionEntry struct {
	name    string
	enabled func(g Game, deps *Deps) bool
	fn      ActionFunc
}

// Registry maps top-level menu labels to actions, each gated by a predicate
// on the current game state. Labels are offered in registration order.
type Registry struct {
	entries []*actionEntry
	byName  map[string]*actionEntry
	log     *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		byName: make(map[string]*actionEntry),
		log:    log,
	}
}

// Register adds an action, or replaces the one with the same label in place.
// A nil enabled predicate means always available.
func (reg *Registry) Register(name string, enabled func(g Game, deps *Deps) bool, fn ActionFunc) {
	if e, ok := reg.byName[name]; ok {
		e.enabled, e.fn = enabled, fn
		return
	}
	e := &actionEntry{name: name, enabled: enabled, fn: fn}
	reg.entries = append(reg.entries, e)
	reg.byName[name] = e
}

// Available returns the labels of the actions enabled right now.
func (reg *Registry) Available(g Game, deps *Deps) []string {
	var out []string
	for _, e := range reg.entries {
		if e.enabled == nil || e.enabled(g, deps) {
			out = append(out, e.name)
		}
	}
	return out
}

// Dispatch runs the named action. Unknown or disabled actions are errors.
func (reg *Registry) Dispatch(name string, g Game, deps *Deps) error {
	e, ok := reg.byName[name]
	if !ok {
		return fmt.Errorf("unknown action %q", name)
	}
	if e.enabled != nil && !e.enabled(g, deps) {
		reg.log.Debug("action not available", zap.String("action", name))
		return fmt.Errorf("action %q not available", name)
	}
	return e.fn(g, deps)
}
