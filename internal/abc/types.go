// Package abc provides the core types shared by the ABC letter display.
package abc

import "time"

// Screen geometry and pacing used by every frontend.
const (
	CanvasWidth  = 640
	CanvasHeight = 480
	BoxSize      = 100 // Side of the centred letter box

	LetterQuiet = 500 * time.Millisecond  // Pause after a letter cue
	WordQuiet   = 1100 * time.Millisecond // Pause after a special word cue
)

// Default asset layout.
const (
	AssetsDir   = "assets"
	AudioExt    = ".ogg"
	DefaultFont = "knewave.ttf"
)

// Letter is one of the 26 supported upper-case letters, or NoLetter.
type Letter rune

// NoLetter is the empty selection shown before the first key press.
const NoLetter Letter = 0

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet returns the supported letters in order.
func Alphabet() []Letter {
	letters := make([]Letter, 0, len(alphabet))
	for _, r := range alphabet {
		letters = append(letters, Letter(r))
	}
	return letters
}

// ParseLetter maps an ASCII letter of either case to a Letter.
func ParseLetter(r rune) (Letter, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Letter(r), true
	case r >= 'a' && r <= 'z':
		return Letter(r - 'a' + 'A'), true
	}
	return NoLetter, false
}

// Valid reports whether l is one of the supported letters.
func (l Letter) Valid() bool {
	return l >= 'A' && l <= 'Z'
}

// String returns the letter as a one-character string, or "" for NoLetter.
func (l Letter) String() string {
	if !l.Valid() {
		return ""
	}
	return string(rune(l))
}

// Symbol is the current selection and whether its cue has been dispatched.
// A new key press always produces a new Symbol, even for the same letter,
// so pressing a key twice plays its cue twice.
type Symbol struct {
	Value     Letter
	CuePlayed bool
}

// NewSymbol returns a fresh selection of l whose cue has not been played.
func NewSymbol(l Letter) Symbol {
	return Symbol{Value: l}
}

// Empty reports whether nothing has been selected yet.
func (s Symbol) Empty() bool {
	return s.Value == NoLetter
}

// Pending reports whether the symbol still needs its cue dispatched.
func (s Symbol) Pending() bool {
	return !s.Empty() && !s.CuePlayed
}

// EventKind classifies a raw frontend event.
type EventKind int

const (
	EventOther   EventKind = iota // Resize, focus, mouse, ...
	EventKeyDown                  // Key pressed
	EventKeyUp                    // Key released
	EventQuit                     // Window closed or interrupt requested
)

// Key identifies the non-character key of a key event.
type Key int

const (
	KeyRune   Key = iota // Printable key; see RawEvent.Rune
	KeyEscape            // Escape
	KeyOther             // Arrows, function keys, ...
)

// RawEvent is a frontend-neutral input event.
type RawEvent struct {
	Kind EventKind
	Key  Key
	Rune rune
}

// KeyDown builds a key-down event for a printable character.
func KeyDown(r rune) RawEvent {
	return RawEvent{Kind: EventKeyDown, Key: KeyRune, Rune: r}
}

// QuitEvent builds a quit request.
func QuitEvent() RawEvent {
	return RawEvent{Kind: EventQuit}
}
