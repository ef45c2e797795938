package modes

import (
	"context"
	"log/slog"
)

// Option configures a Switcher during creation.
//
// Example:
//
//	sw, err := modes.New(&state, list, hooks,
//	    modes.WithLogger(slog.Default()),
//	    modes.WithObserver(func(i int, name string) { fmt.Println("now showing", name) }),
//	)
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer func(index int, name string)
}

func defaultOptions() options {
	return options{
		logger: slog.New(discardHandler{}),
	}
}

// WithLogger sets the logger used for activation diagnostics. By default nothing is logged.
// Passing nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers a function called after every activation that completes all
// three phases, including the initial one performed by New.
func WithObserver(fn func(index int, name string)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
