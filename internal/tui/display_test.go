package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/input"
	"github.com/f3rmion/abc/internal/render"
)

func newTestCanvas(t *testing.T) *render.Canvas {
	t.Helper()
	face, err := render.LoadFace("", render.GlyphSize)
	require.NoError(t, err)
	return render.NewCanvas(face)
}

func TestToRawEvent(t *testing.T) {
	k := newKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want abc.RawEvent
	}{
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, abc.KeyDown('a')},
		{"upper letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Z'}}, abc.KeyDown('Z')},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, abc.RawEvent{Kind: abc.EventKeyDown, Key: abc.KeyEscape}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, abc.QuitEvent()},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, abc.RawEvent{Kind: abc.EventKeyDown, Key: abc.KeyOther}},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, abc.RawEvent{Kind: abc.EventKeyDown, Key: abc.KeyOther}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, abc.RawEvent{Kind: abc.EventKeyDown, Key: abc.KeyOther}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, k.toRawEvent(tt.msg))
		})
	}
}

func TestModel_ForwardsKeys(t *testing.T) {
	q := input.NewQueue()
	var m tea.Model = newModel(q, nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.Nil(t, cmd, "the model never quits on its own")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	events := q.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, abc.KeyDown('y'), events[0])
	assert.Equal(t, abc.KeyEscape, events[1].Key)
	_ = m
}

func TestModel_ShowsFrames(t *testing.T) {
	canvas := newTestCanvas(t)
	art := render.HalfBlocks(canvas.Box('O'), BoxCols, BoxRows)

	var m tea.Model = newModel(input.NewQueue(), nil)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = m.Update(frameMsg{letter: 'O', art: art})

	view := m.View()
	assert.Contains(t, view, "ABC")
	assert.Contains(t, view, "█")
	assert.Contains(t, view, "quit")
	assert.Equal(t, abc.Letter('O'), m.(model).letter)
}

func TestDisplay_BeforeStart(t *testing.T) {
	d := New(newTestCanvas(t))

	assert.Empty(t, d.PollEvents())
	require.NoError(t, d.Close())

	blank := d.artFor(abc.NoLetter)
	require.Len(t, blank, BoxRows)
	assert.Equal(t, strings.Repeat(" ", BoxCols), blank[0])

	a := d.artFor('A')
	assert.Same(t, &a[0], &d.artFor('A')[0], "art is cached")
}
