package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/f3rmion/abc/internal/abc"
)

type keyMap struct {
	Letters   key.Binding
	Escape    key.Binding
	Interrupt key.Binding
}

func newKeyMap() keyMap {
	var letters []string
	for _, l := range abc.Alphabet() {
		letters = append(letters, strings.ToLower(l.String()), l.String())
	}

	return keyMap{
		Letters: key.NewBinding(
			key.WithKeys(letters...),
			key.WithHelp("a-z", "show letter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Letters, k.Escape}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// toRawEvent converts a Bubble Tea key press. Ctrl+C is a quit request,
// Escape a key like any other.
func (k keyMap) toRawEvent(msg tea.KeyMsg) abc.RawEvent {
	switch {
	case key.Matches(msg, k.Interrupt):
		return abc.QuitEvent()
	case key.Matches(msg, k.Escape):
		return abc.RawEvent{Kind: abc.EventKeyDown, Key: abc.KeyEscape}
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt:
		return abc.KeyDown(msg.Runes[0])
	}
	return abc.RawEvent{Kind: abc.EventKeyDown, Key: abc.KeyOther}
}
