package termwin

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// screenBackend adapts a tcell Screen for platforms that expose
// structured key events (Windows console, terminfo-driven terminals).
// tcell owns the mode snapshot: Screen.Init captures it, Screen.Fini
// restores it.
type screenBackend struct {
	screen tcell.Screen
}

// NewScreenBackend returns a structured-event backend on tcell.
func NewScreenBackend() Backend {
	return &screenBackend{}
}

// screenKeys maps tcell key codes to the canonical key set
var screenKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyEscape:     KeyEscape,
}

func (b *screenBackend) Init() error {
	if b.screen != nil {
		return nil
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	b.screen = s
	return nil
}

func (b *screenBackend) Fini() {
	if b.screen == nil {
		return
	}
	b.screen.Fini()
	b.screen = nil
}

func (b *screenBackend) Size() (int, int, error) {
	if b.screen == nil {
		return 0, 0, fmt.Errorf("screen not initialized")
	}
	w, h := b.screen.Size()
	return w, h, nil
}

// ApplyRaw is a no-op: tcell holds the terminal in raw mode for the
// whole lifetime of the screen.
func (b *screenBackend) ApplyRaw() error {
	return nil
}

// ReadKey consumes events until one maps to a usable key: a named key
// through the fixed table, or the event's rune when non-zero. Non-key
// and unmapped zero-rune events are discarded.
func (b *screenBackend) ReadKey(nodelay bool) (KeyEvent, error) {
	if b.screen == nil {
		return KeyEvent{}, nil
	}

	for {
		if nodelay && !b.screen.HasPendingEvent() {
			return KeyEvent{}, nil
		}

		ev := b.screen.PollEvent()
		if ev == nil {
			// Screen finalized under us
			return KeyEvent{}, nil
		}

		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		if key, mapped := screenKeys[kev.Key()]; mapped {
			return KeyEvent{Key: key}, nil
		}
		if r := kev.Rune(); r != 0 {
			return KeyEvent{Key: KeyRune, Rune: r}, nil
		}
	}
}

// Render repaints the whole window through tcell's cell interface, the
// structured equivalent of clear-then-write-rows.
func (b *screenBackend) Render(win *Window) error {
	if b.screen == nil {
		return nil
	}

	b.screen.Clear()

	height, width := win.Dimensions()
	originRow, originCol := win.Origin()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			b.screen.SetContent(originCol+col, originRow+row, win.Cell(row, col), nil, tcell.StyleDefault)
		}
	}
	b.screen.Show()
	return nil
}

func (b *screenBackend) SetCursorVisible(visible bool) {
	if b.screen == nil {
		return
	}
	if visible {
		b.screen.ShowCursor(0, 0)
	} else {
		b.screen.HideCursor()
	}
}
