// Interactive typing demo: characters land in the window buffer, named
// keys move the insertion point, each keypress gets a short tone.
// Arrow keys need the structured backend (TERMWIN_BACKEND=screen); the
// byte-stream backend decodes single bytes only.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/termwin"
)

const toneSampleRate = beep.SampleRate(44100)

type demo struct {
	session *termwin.Session
	win     *termwin.Window

	height, width int
	row, col      int

	audioReady bool
}

func main() {
	session := termwin.NewSession()
	win, err := session.Init()
	if err != nil {
		// Raw mode is best-effort, but a demo without it is useless
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer session.End()

	defer func() {
		if r := recover(); r != nil {
			termwin.EmergencyRestore(os.Stdout)
			panic(r)
		}
	}()

	session.SetEcho(false)
	session.SetCursorVisible(false)

	height, width := win.Dimensions()
	d := &demo{
		session: session,
		win:     win,
		height:  height,
		width:   width,
		row:     2,
	}
	d.initAudio()
	if d.audioReady {
		defer speaker.Close()
	}

	win.Printf(0, 0, "termwin %dx%d - type away, Enter for a new line, Esc quits", height, width)

	d.run()
}

func (d *demo) run() {
	for {
		d.win.SetCell(d.row, d.col, '_')
		d.session.Refresh(d.win)
		d.win.SetCell(d.row, d.col, ' ')

		ev, err := d.session.ReadKey()
		if err != nil {
			return
		}

		switch ev.Key {
		case termwin.KeyEscape:
			return
		case termwin.KeyEnter:
			d.row, d.col = d.row+1, 0
			d.tone(660)
		case termwin.KeyBackspace:
			if d.col > 0 {
				d.col--
			}
			d.win.SetCell(d.row, d.col, ' ')
			d.tone(220)
		case termwin.KeyUp:
			d.row--
		case termwin.KeyDown:
			d.row++
		case termwin.KeyLeft:
			d.col--
		case termwin.KeyRight:
			d.col++
		case termwin.KeyRune:
			d.win.SetCell(d.row, d.col, ev.Rune)
			d.col++
			d.tone(880)
		}

		d.clamp()
	}
}

// clamp keeps the insertion point inside the window; the buffer itself
// drops out-of-range writes, this just keeps movement sane
func (d *demo) clamp() {
	if d.row < 2 {
		d.row = 2
	}
	if d.row >= d.height {
		d.row = d.height - 1
	}
	if d.col < 0 {
		d.col = 0
	}
	if d.col >= d.width {
		d.row, d.col = d.row+1, 0
		if d.row >= d.height {
			d.row = d.height - 1
		}
	}
}

func (d *demo) initAudio() {
	if err := speaker.Init(toneSampleRate, toneSampleRate.N(time.Second/10)); err == nil {
		d.audioReady = true
	}
}

// tone plays a short sine blip, silently skipped when no audio device
// came up
func (d *demo) tone(freq float64) {
	if !d.audioReady {
		return
	}
	sine, err := generators.SineTone(toneSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(toneSampleRate.N(30*time.Millisecond), sine))
}
