// Package session runs the single-threaded tick loop that ties input,
// rendering and playback together.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/input"
	"github.com/f3rmion/abc/internal/playback"
)

// FrameInterval is how long an idle tick waits before polling again.
const FrameInterval = 16 * time.Millisecond

// EventSource returns the events queued since the last call without blocking.
type EventSource interface {
	PollEvents() []abc.RawEvent
}

// Renderer draws the current letter, or an empty box for NoLetter.
type Renderer interface {
	RenderSymbol(l abc.Letter) error
}

// Session owns the current symbol and drives one tick at a time.
type Session struct {
	events     EventSource
	renderer   Renderer
	dispatcher *playback.Dispatcher
	logger     *slog.Logger
	idle       func(time.Duration)

	symbol abc.Symbol
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithIdle replaces the wait between idle ticks.
func WithIdle(idle func(time.Duration)) Option {
	return func(s *Session) { s.idle = idle }
}

// New creates a session with an empty symbol.
func New(events EventSource, renderer Renderer, dispatcher *playback.Dispatcher, opts ...Option) *Session {
	s := &Session{
		events:     events,
		renderer:   renderer,
		dispatcher: dispatcher,
		logger:     slog.Default(),
		idle:       time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Symbol returns the current selection.
func (s *Session) Symbol() abc.Symbol {
	return s.symbol
}

// Prefix returns the special word prefix typed so far.
func (s *Session) Prefix() string {
	return s.dispatcher.Recognizer().Prefix()
}

// Tick drains pending input, updates the symbol, redraws and dispatches cues.
// It returns false once a quit was requested.
func (s *Session) Tick() (bool, error) {
	_, running, err := s.tick()
	return running, err
}

func (s *Session) tick() (playback.Outcome, bool, error) {
	var out playback.Outcome

	batch := input.Map(s.events.PollEvents())
	if batch.Quit {
		return out, false, nil
	}
	if l, ok := batch.Selection(); ok {
		s.symbol = abc.NewSymbol(l)
	}

	if err := s.renderer.RenderSymbol(s.symbol.Value); err != nil {
		return out, false, fmt.Errorf("rendering %q: %w", s.symbol.Value.String(), err)
	}

	out, err := s.dispatcher.Dispatch(&s.symbol)
	if err != nil {
		return out, false, err
	}
	return out, true, nil
}

// Run ticks until a quit is requested, a tick fails, or ctx is done.
// Cancellation is only noticed between ticks; a quiet period in progress
// always runs to completion.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("starting ABC")
	defer s.logger.Info("exiting ABC")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		out, running, err := s.tick()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
		if len(out.Cues) == 0 {
			s.idle(FrameInterval)
		}
	}
}
