// Package recognizer detects when special letters, typed one at a time,
// spell out one of the target words.
package recognizer

import (
	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/words"
)

// State is the recognizer's position in the word set.
type State int

const (
	Empty   State = iota // No letters accumulated
	Partial              // Prefix of at least one word
	Matched              // Word completed; reported once, then Empty
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Partial:
		return "partial"
	case Matched:
		return "matched"
	}
	return "unknown"
}

// VerdictKind is the outcome of feeding one letter.
type VerdictKind int

const (
	// Ignored: the letter is not special, or starts no word. Nothing changed.
	Ignored VerdictKind = iota
	// Continue: the letter started or extended a prefix.
	Continue
	// Complete: the letter finished a word. The prefix is reset.
	Complete
	// Abandoned: the extension matches no word. The prefix is reset and the
	// letter is not retried as the start of a new prefix.
	Abandoned
)

func (k VerdictKind) String() string {
	switch k {
	case Ignored:
		return "ignored"
	case Continue:
		return "continue"
	case Complete:
		return "complete"
	case Abandoned:
		return "abandoned"
	}
	return "unknown"
}

// Verdict reports what a letter did to the recognizer.
type Verdict struct {
	Kind   VerdictKind
	Word   string // Completed word, for Complete
	Prefix string // Prefix after the letter, or the discarded attempt for Abandoned
}

// Recognizer is a single-writer matcher over a fixed word set.
type Recognizer struct {
	words  *words.Set
	prefix []byte
}

// New creates a recognizer in the Empty state.
func New(set *words.Set) *Recognizer {
	return &Recognizer{words: set}
}

// Feed consumes one letter and reports the transition it caused.
func (r *Recognizer) Feed(l abc.Letter) Verdict {
	if !r.words.IsSpecial(l) {
		return Verdict{Kind: Ignored, Prefix: r.Prefix()}
	}

	candidate := string(append(r.prefix, byte(l)))

	if len(r.prefix) == 0 {
		if !r.words.Extends(candidate) {
			return Verdict{Kind: Ignored}
		}
		r.prefix = append(r.prefix[:0], byte(l))
		return Verdict{Kind: Continue, Prefix: candidate}
	}

	if word, ok := r.words.Match(candidate); ok {
		r.Reset()
		return Verdict{Kind: Complete, Word: word}
	}

	if r.words.Extends(candidate) {
		r.prefix = append(r.prefix, byte(l))
		return Verdict{Kind: Continue, Prefix: candidate}
	}

	r.Reset()
	return Verdict{Kind: Abandoned, Prefix: candidate}
}

// Prefix returns the letters accumulated so far.
func (r *Recognizer) Prefix() string {
	return string(r.prefix)
}

// State returns Empty or Partial. Matched is only ever observed through Feed.
func (r *Recognizer) State() State {
	if len(r.prefix) == 0 {
		return Empty
	}
	return Partial
}

// Reset discards any accumulated prefix.
func (r *Recognizer) Reset() {
	r.prefix = r.prefix[:0]
}
