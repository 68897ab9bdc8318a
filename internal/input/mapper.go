// Package input turns raw frontend events into letter selections and quit requests.
package input

import "github.com/f3rmion/abc/internal/abc"

// ActionKind is what a single event means to the display.
type ActionKind int

const (
	Ignored ActionKind = iota
	Select
	Quit
)

// Action is a classified event.
type Action struct {
	Kind   ActionKind
	Letter abc.Letter // Set for Select
}

// Classify maps one event to an action. Anything unrecognised is Ignored.
func Classify(ev abc.RawEvent) Action {
	switch ev.Kind {
	case abc.EventQuit:
		return Action{Kind: Quit}
	case abc.EventKeyDown:
		switch ev.Key {
		case abc.KeyEscape:
			return Action{Kind: Quit}
		case abc.KeyRune:
			if l, ok := abc.ParseLetter(ev.Rune); ok {
				return Action{Kind: Select, Letter: l}
			}
		}
	}
	return Action{Kind: Ignored}
}

// Batch is the result of applying one tick's events.
type Batch struct {
	Quit     bool
	Selected abc.Letter // Last selection, or NoLetter
}

// Selection reports whether the batch selected a letter.
func (b Batch) Selection() (abc.Letter, bool) {
	return b.Selected, b.Selected != abc.NoLetter
}

// Map applies events in order. The last selection wins and a quit stops
// processing, so selections queued after it are never applied.
func Map(events []abc.RawEvent) Batch {
	var b Batch
	for _, ev := range events {
		a := Classify(ev)
		switch a.Kind {
		case Quit:
			b.Quit = true
			return b
		case Select:
			b.Selected = a.Letter
		}
	}
	return b
}
