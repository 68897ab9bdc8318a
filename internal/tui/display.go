package tui

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/input"
	"github.com/f3rmion/abc/internal/render"
)

// Letter box size in terminal cells. Each cell holds two pixel rows.
const (
	BoxCols = 40
	BoxRows = 20
)

// ErrClosed is returned when drawing after the program has stopped.
var ErrClosed = errors.New("display closed")

// frameMsg replaces the drawn letter.
type frameMsg struct {
	letter abc.Letter
	art    []string
}

// model is the Bubble Tea model. It only forwards keys and shows frames;
// all state lives in the session.
type model struct {
	queue  *input.Queue
	keys   keyMap
	help   help.Model
	letter abc.Letter
	art    []string
	width  int
	height int
}

func newModel(queue *input.Queue, blank []string) model {
	return model{
		queue: queue,
		keys:  newKeyMap(),
		help:  help.New(),
		art:   blank,
	}
}

// Init initializes the model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.queue.Push(m.keys.toRawEvent(msg))
	case frameMsg:
		m.letter = msg.letter
		m.art = msg.art
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the letter box centred in the window.
func (m model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render("ABC"),
		LetterBoxStyle.Render(strings.Join(m.art, "\n")),
		HelpStyle.Render(m.help.View(m.keys)),
	)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Display runs a Bubble Tea program and adapts it to the session's
// event source and renderer.
type Display struct {
	program *tea.Program
	queue   *input.Queue
	canvas  *render.Canvas
	art     map[abc.Letter][]string

	done    chan struct{}
	once    sync.Once
	started bool
	err     error
}

// New creates a display drawing letters from canvas.
func New(canvas *render.Canvas, opts ...tea.ProgramOption) *Display {
	d := &Display{
		queue:  input.NewQueue(),
		canvas: canvas,
		art:    make(map[abc.Letter][]string),
		done:   make(chan struct{}),
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	d.program = tea.NewProgram(newModel(d.queue, d.artFor(abc.NoLetter)), opts...)
	return d
}

// Start runs the program in the background.
func (d *Display) Start() {
	d.started = true
	go func() {
		_, err := d.program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			d.err = fmt.Errorf("running TUI: %w", err)
		}
		close(d.done)
	}()
}

// PollEvents returns buffered key events. If the program stopped on its
// own, a quit request is appended.
func (d *Display) PollEvents() []abc.RawEvent {
	events := d.queue.Drain()
	if d.stopped() {
		events = append(events, abc.QuitEvent())
	}
	return events
}

// RenderSymbol redraws the letter box.
func (d *Display) RenderSymbol(l abc.Letter) error {
	if d.stopped() {
		if d.err != nil {
			return d.err
		}
		return ErrClosed
	}
	d.program.Send(frameMsg{letter: l, art: d.artFor(l)})
	return nil
}

// Close stops the program and restores the terminal.
func (d *Display) Close() error {
	if !d.started {
		return nil
	}
	d.once.Do(func() {
		d.program.Quit()
		<-d.done
	})
	return d.err
}

func (d *Display) stopped() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

func (d *Display) artFor(l abc.Letter) []string {
	if art, ok := d.art[l]; ok {
		return art
	}
	art := render.HalfBlocks(d.canvas.Box(l), BoxCols, BoxRows)
	d.art[l] = art
	return art
}
