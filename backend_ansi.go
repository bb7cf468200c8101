//go:build unix

package termwin

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ansiBackend drives the terminal through its raw byte stream: termios
// raw mode on input, direct ANSI sequences on output. Input decoding is
// single-byte only; named keys that arrive as multi-byte escape
// sequences (arrows) are not recognized by this backend.
type ansiBackend struct {
	in     *os.File
	inFd   int
	outFd  int
	writer *bufio.Writer

	oldTerm *term.State
}

// NewANSIBackend returns a byte-stream backend on stdin/stdout.
func NewANSIBackend() Backend {
	return newANSIBackend(os.Stdin, os.Stdout)
}

func newANSIBackend(in, out *os.File) *ansiBackend {
	return &ansiBackend{
		in:     in,
		inFd:   int(in.Fd()),
		outFd:  int(out.Fd()),
		writer: bufio.NewWriterSize(out, 16384),
	}
}

func (b *ansiBackend) Init() error {
	if b.oldTerm != nil {
		return nil
	}
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	b.oldTerm = old
	return nil
}

func (b *ansiBackend) Fini() {
	if b.oldTerm == nil {
		return
	}

	// Leave the cursor visible and attributes clean before handing the
	// terminal back
	b.writer.Write(csiCursorShow)
	b.writer.Write(csiSGR0)
	b.writer.Flush()

	term.Restore(b.inFd, b.oldTerm)
	b.oldTerm = nil
}

func (b *ansiBackend) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("query window size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// ApplyRaw re-issues raw settings. MakeRaw's returned snapshot is
// discarded: the terminal is already raw here, so keeping it would
// clobber the real pre-session state.
func (b *ansiBackend) ApplyRaw() error {
	if b.oldTerm == nil {
		return b.Init()
	}
	if _, err := term.MakeRaw(b.inFd); err != nil {
		return fmt.Errorf("reapply raw mode: %w", err)
	}
	return nil
}

// ReadKey reads one byte from the stream. Blocking by default; with
// nodelay it polls with a zero timeout and returns a zero event when
// nothing is pending.
func (b *ansiBackend) ReadKey(nodelay bool) (KeyEvent, error) {
	var buf [1]byte

	timeout := -1 // block
	if nodelay {
		timeout = 0
	}

	for {
		fds := []unix.PollFd{
			{Fd: int32(b.inFd), Events: unix.POLLIN},
		}

		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return KeyEvent{}, err
		}
		if n == 0 {
			// No key pending under no-delay
			return KeyEvent{}, nil
		}

		rn, err := unix.Read(b.inFd, buf[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return KeyEvent{}, err
		}
		if rn == 0 {
			// EOF
			return KeyEvent{}, io.EOF
		}

		return decodeByte(buf[0]), nil
	}
}

// Render clears the display and writes the window row by row, each row
// terminated by CRLF (raw mode does no NL translation). No cursor
// addressing, no differential redraw.
func (b *ansiBackend) Render(win *Window) error {
	w := b.writer
	w.Write(csiClear)

	height, width := win.Dimensions()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			w.WriteRune(win.Cell(row, col))
		}
		w.WriteString("\r\n")
	}
	return w.Flush()
}

func (b *ansiBackend) SetCursorVisible(visible bool) {
	if visible {
		b.writer.Write(csiCursorShow)
	} else {
		b.writer.Write(csiCursorHide)
	}
	b.writer.Flush()
}

// defaultBackend selects the platform backend, honoring an explicit
// override name from the environment.
func defaultBackend(name string) Backend {
	if name == "screen" {
		return NewScreenBackend()
	}
	return NewANSIBackend()
}
