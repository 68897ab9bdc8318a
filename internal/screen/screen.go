// Package screen is a frontend that draws straight onto a tcell screen.
package screen

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/abc/internal/abc"
	"github.com/f3rmion/abc/internal/input"
	"github.com/f3rmion/abc/internal/render"
)

// Letter box size in cells.
const (
	BoxCols = 40
	BoxRows = 20
)

// Screen pumps tcell events into a queue and draws the letter box.
type Screen struct {
	screen tcell.Screen
	queue  *input.Queue
	canvas *render.Canvas
	art    map[abc.Letter][]string

	letterStyle tcell.Style
	borderStyle tcell.Style

	wg   sync.WaitGroup
	once sync.Once
}

// New opens the terminal screen.
func New(canvas *render.Canvas) (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return Wrap(scr, canvas)
}

// Wrap initialises scr and starts reading its events.
func Wrap(scr tcell.Screen, canvas *render.Canvas) (*Screen, error) {
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("initialising screen: %w", err)
	}
	scr.HideCursor()

	s := &Screen{
		screen:      scr,
		queue:       input.NewQueue(),
		canvas:      canvas,
		art:         make(map[abc.Letter][]string),
		letterStyle: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		borderStyle: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSteelBlue),
	}

	s.wg.Add(1)
	go s.pump()

	return s, nil
}

// pump forwards events until the screen is finalised.
func (s *Screen) pump() {
	defer s.wg.Done()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			s.screen.Sync()
		}
		s.queue.Push(convert(ev))
	}
}

// convert maps a tcell event. Ctrl+C is a quit request.
func convert(ev tcell.Event) abc.RawEvent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return abc.RawEvent{Kind: abc.EventOther}
	}

	switch key.Key() {
	case tcell.KeyCtrlC:
		return abc.QuitEvent()
	case tcell.KeyEscape:
		return abc.RawEvent{Kind: abc.EventKeyDown, Key: abc.KeyEscape}
	case tcell.KeyRune:
		mods := key.Modifiers()
		if mods&tcell.ModCtrl != 0 && (key.Rune() == 'c' || key.Rune() == 'C') {
			return abc.QuitEvent()
		}
		if mods&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
			return abc.KeyDown(key.Rune())
		}
	}
	return abc.RawEvent{Kind: abc.EventKeyDown, Key: abc.KeyOther}
}

// PollEvents returns buffered events without blocking.
func (s *Screen) PollEvents() []abc.RawEvent {
	return s.queue.Drain()
}

// RenderSymbol clears the screen and draws the letter box in the centre.
func (s *Screen) RenderSymbol(l abc.Letter) error {
	s.screen.Clear()

	w, h := s.screen.Size()
	x0 := (w - BoxCols) / 2
	y0 := (h - BoxRows) / 2

	s.drawBorder(x0-1, y0-1, BoxCols+2, BoxRows+2)
	for row, line := range s.artFor(l) {
		x := x0
		for _, r := range line {
			s.screen.SetContent(x, y0+row, r, nil, s.letterStyle)
			x += runewidth.RuneWidth(r)
		}
	}

	s.screen.Show()
	return nil
}

func (s *Screen) drawBorder(x, y, w, h int) {
	for i := 1; i < w-1; i++ {
		s.screen.SetContent(x+i, y, tcell.RuneHLine, nil, s.borderStyle)
		s.screen.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, s.borderStyle)
	}
	for j := 1; j < h-1; j++ {
		s.screen.SetContent(x, y+j, tcell.RuneVLine, nil, s.borderStyle)
		s.screen.SetContent(x+w-1, y+j, tcell.RuneVLine, nil, s.borderStyle)
	}
	s.screen.SetContent(x, y, tcell.RuneULCorner, nil, s.borderStyle)
	s.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, s.borderStyle)
	s.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, s.borderStyle)
	s.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, s.borderStyle)
}

func (s *Screen) artFor(l abc.Letter) []string {
	if art, ok := s.art[l]; ok {
		return art
	}
	art := render.HalfBlocks(s.canvas.Box(l), BoxCols, BoxRows)
	s.art[l] = art
	return art
}

// Close restores the terminal and waits for the event pump to stop.
func (s *Screen) Close() error {
	s.once.Do(func() {
		s.screen.Fini()
		s.wg.Wait()
	})
	return nil
}
