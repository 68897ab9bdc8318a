// Package playback decides which cues a new selection plays and how long the
// display stays quiet afterwards.
package playback

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/recognizer"
	"github.com/f3rmion/abc/internal/words"
)

// Player plays one named audio asset. A failure is fatal to the session.
type Player interface {
	PlayCue(assetID string) error
}

// Resolver maps a letter or word to its asset id.
type Resolver interface {
	AssetPath(name string) string
}

// Outcome records what one dispatch did.
type Outcome struct {
	Cues    []string
	Quiet   time.Duration
	Verdict recognizer.Verdict
}

// Dispatcher plays letter and word cues for pending symbols.
type Dispatcher struct {
	player     Player
	assets     Resolver
	words      *words.Set
	recognizer *recognizer.Recognizer
	sleep      func(time.Duration)
	logger     *slog.Logger

	letterQuiet time.Duration
	wordQuiet   time.Duration
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSleep replaces time.Sleep for quiet periods.
func WithSleep(sleep func(time.Duration)) Option {
	return func(d *Dispatcher) { d.sleep = sleep }
}

// WithLogger sets the logger used for word cues.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// NewDispatcher creates a dispatcher with its own recognizer over set.
func NewDispatcher(player Player, assets Resolver, set *words.Set, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		player:      player,
		assets:      assets,
		words:       set,
		recognizer:  recognizer.New(set),
		sleep:       time.Sleep,
		logger:      slog.Default(),
		letterQuiet: abc.LetterQuiet,
		wordQuiet:   abc.WordQuiet,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Recognizer exposes the word recognizer for inspection.
func (d *Dispatcher) Recognizer() *recognizer.Recognizer {
	return d.recognizer
}

// Dispatch plays the cues for sym if it is pending and marks it played.
// The letter cue always comes first and is followed by its quiet period;
// a special letter that completes a word then plays the word cue and the
// longer word quiet period. Quiet periods block and cannot be interrupted.
func (d *Dispatcher) Dispatch(sym *abc.Symbol) (Outcome, error) {
	var out Outcome
	if !sym.Pending() {
		return out, nil
	}

	id := d.assets.AssetPath(sym.Value.String())
	if err := d.player.PlayCue(id); err != nil {
		return out, fmt.Errorf("playing letter %s: %w", sym.Value, err)
	}
	sym.CuePlayed = true
	out.Cues = append(out.Cues, id)
	d.pause(&out, d.letterQuiet)

	if !d.words.IsSpecial(sym.Value) {
		return out, nil
	}

	out.Verdict = d.recognizer.Feed(sym.Value)
	if out.Verdict.Kind != recognizer.Complete {
		return out, nil
	}

	d.logger.Info("play word", "word", out.Verdict.Word)
	id = d.assets.AssetPath(out.Verdict.Word)
	if err := d.player.PlayCue(id); err != nil {
		return out, fmt.Errorf("playing word %s: %w", out.Verdict.Word, err)
	}
	out.Cues = append(out.Cues, id)
	d.pause(&out, d.wordQuiet)

	return out, nil
}

func (d *Dispatcher) pause(out *Outcome, quiet time.Duration) {
	d.sleep(quiet)
	out.Quiet += quiet
}
