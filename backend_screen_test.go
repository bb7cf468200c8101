package termwin

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimBackend(t *testing.T) (*screenBackend, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)

	return &screenBackend{screen: sim}, sim
}

func TestScreenKeyMapping(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		wantKey  Key
		wantRune rune
	}{
		{"Up", tcell.KeyUp, 0, KeyUp, 0},
		{"Down", tcell.KeyDown, 0, KeyDown, 0},
		{"Left", tcell.KeyLeft, 0, KeyLeft, 0},
		{"Right", tcell.KeyRight, 0, KeyRight, 0},
		{"Enter", tcell.KeyEnter, 0, KeyEnter, 0},
		{"Backspace", tcell.KeyBackspace, 0, KeyBackspace, 0},
		{"Backspace2", tcell.KeyBackspace2, 0, KeyBackspace, 0},
		{"Escape", tcell.KeyEscape, 0, KeyEscape, 0},
		{"Rune fallback", tcell.KeyRune, 'j', KeyRune, 'j'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, sim := newSimBackend(t)
			sim.InjectKey(tt.key, tt.r, tcell.ModNone)

			ev, err := b.ReadKey(false)
			if err != nil {
				t.Fatalf("ReadKey failed: %v", err)
			}
			if ev.Key != tt.wantKey || ev.Rune != tt.wantRune {
				t.Errorf("Expected {%v %q}, got {%v %q}", tt.wantKey, tt.wantRune, ev.Key, ev.Rune)
			}
		})
	}
}

func TestScreenReadKeyNoDelayEmpty(t *testing.T) {
	b, _ := newSimBackend(t)

	ev, err := b.ReadKey(true)
	if err != nil {
		t.Fatalf("ReadKey failed: %v", err)
	}
	if ev.Key != KeyNone {
		t.Errorf("Expected no key with empty queue, got %v", ev.Key)
	}
}

func TestScreenRender(t *testing.T) {
	b, sim := newSimBackend(t)

	win := NewWindow(5, 10, 2, 3)
	win.Print(1, 0, "HI")

	if err := b.Render(win); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	cells, width, _ := sim.GetContents()

	// Window origin (2,3): row 1 col 0 lands at screen (y=3, x=3)
	if got := cells[3*width+3].Runes[0]; got != 'H' {
		t.Errorf("Expected 'H' at screen (3,3), got %q", got)
	}
	if got := cells[3*width+4].Runes[0]; got != 'I' {
		t.Errorf("Expected 'I' at screen (3,4), got %q", got)
	}
	if got := cells[3*width+5].Runes[0]; got != ' ' {
		t.Errorf("Expected blank after text, got %q", got)
	}
}

func TestScreenBackendUninitialized(t *testing.T) {
	b := &screenBackend{}

	// All of these must degrade to safe no-ops
	b.Fini()
	b.SetCursorVisible(true)
	if err := b.Render(NewWindow(2, 2, 0, 0)); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
	if ev, err := b.ReadKey(false); err != nil || ev.Key != KeyNone {
		t.Errorf("Expected zero event, got {%v %v}", ev, err)
	}
	if _, _, err := b.Size(); err == nil {
		t.Error("Expected error from Size on uninitialized backend")
	}
}
