// Package modes cycles through a fixed, ordered set of named variants, running a
// before / handler / after sequence around every switch.
//
// A Switcher is created with New, which activates the first mode immediately. After that,
// Next, Previous, Select and SelectByName move between modes. Each of those runs the same
// three phases on the state value given to New:
//
//	hooks.Before(state)   // clear whatever the previous mode built
//	mode.Handler(state)   // pick what the new mode shows
//	hooks.After(state)    // build it and make it visible
//
// A Switcher is not safe for concurrent use; it is meant to be driven from a single
// update loop.
package modes

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrConfiguration is returned by New when the mode list is unusable (empty, duplicate or
	// empty names, nil handlers).
	ErrConfiguration = errors.New("modes: invalid configuration")

	// ErrNotFound is returned when a mode is requested by a name or index that isn't registered.
	ErrNotFound = errors.New("modes: mode not found")
)

// Mode is a named variant. Handler receives the Switcher's state value.
type Mode[S any] struct {
	Name    string
	Handler func(state *S) error
}

// Hooks run around every mode's Handler. Either can be nil.
type Hooks[S any] struct {
	Before func(state *S) error
	After  func(state *S) error
}

// Switcher holds the registered modes and the index of the active one.
type Switcher[S any] struct {
	modes    []Mode[S]
	hooks    Hooks[S]
	state    *S
	current  int
	logger   *slog.Logger
	observer func(index int, name string)
}

// New registers the given modes and activates the first one. The list is copied; the
// order of the list is the cycling order.
func New[S any](state *S, list []Mode[S], hooks Hooks[S], opts ...Option) (*Switcher[S], error) {

	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no modes given", ErrConfiguration)
	}

	seen := make(map[string]int, len(list))

	for i, m := range list {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: mode #%d has no name", ErrConfiguration, i)
		}
		if m.Handler == nil {
			return nil, fmt.Errorf("%w: mode %q has no handler", ErrConfiguration, m.Name)
		}
		if prev, exists := seen[m.Name]; exists {
			return nil, fmt.Errorf("%w: mode %q registered twice (#%d and #%d)", ErrConfiguration, m.Name, prev, i)
		}
		seen[m.Name] = i
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sw := &Switcher[S]{
		modes:    append([]Mode[S](nil), list...),
		hooks:    hooks,
		state:    state,
		logger:   o.logger,
		observer: o.observer,
	}

	if err := sw.activate(0); err != nil {
		return nil, err
	}

	return sw, nil

}

// Next activates the mode after the current one, wrapping around to the first.
func (sw *Switcher[S]) Next() error {
	return sw.activate((sw.current + 1) % len(sw.modes))
}

// Previous activates the mode before the current one, wrapping around to the last.
func (sw *Switcher[S]) Previous() error {
	return sw.activate((sw.current - 1 + len(sw.modes)) % len(sw.modes))
}

// SelectByName activates the mode with the given name.
func (sw *Switcher[S]) SelectByName(name string) error {
	for i, m := range sw.modes {
		if m.Name == name {
			return sw.activate(i)
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Select activates the mode at the given index.
func (sw *Switcher[S]) Select(index int) error {
	if index < 0 || index >= len(sw.modes) {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrNotFound, index, len(sw.modes))
	}
	return sw.activate(index)
}

// Reactivate runs the activation sequence again for the current mode.
func (sw *Switcher[S]) Reactivate() error {
	return sw.activate(sw.current)
}

// Current returns the active mode.
func (sw *Switcher[S]) Current() Mode[S] {
	return sw.modes[sw.current]
}

// Index returns the index of the active mode.
func (sw *Switcher[S]) Index() int {
	return sw.current
}

// Len returns the number of registered modes.
func (sw *Switcher[S]) Len() int {
	return len(sw.modes)
}

// Names returns the mode names in cycling order.
func (sw *Switcher[S]) Names() []string {
	names := make([]string, len(sw.modes))
	for i, m := range sw.modes {
		names[i] = m.Name
	}
	return names
}

// activate commits index i and runs before, handler and after. The first failing phase
// stops the sequence; nothing is rolled back and the index stays at i.
func (sw *Switcher[S]) activate(i int) error {

	sw.current = i
	mode := sw.modes[i]

	sw.logger.Debug("activating mode", "index", i, "name", mode.Name)

	if sw.hooks.Before != nil {
		if err := sw.hooks.Before(sw.state); err != nil {
			return sw.fail("before", mode.Name, err)
		}
	}

	if err := mode.Handler(sw.state); err != nil {
		return sw.fail("handler", mode.Name, err)
	}

	if sw.hooks.After != nil {
		if err := sw.hooks.After(sw.state); err != nil {
			return sw.fail("after", mode.Name, err)
		}
	}

	if sw.observer != nil {
		sw.observer(i, mode.Name)
	}

	return nil

}

func (sw *Switcher[S]) fail(phase, name string, err error) error {
	sw.logger.Warn("mode activation failed", "phase", phase, "name", name, "error", err)
	return fmt.Errorf("modes: %s %q: %w", phase, name, err)
}
