package termwin

import (
	"io"
	"os"
)

// EmergencyRestore attempts to return the terminal to a sane state.
// Call from panic recovery when End cannot run normally. Escape
// sequences alone don't restore termios, so on Unix this also repairs
// cooked mode through /dev/tty, best-effort.
func EmergencyRestore(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}
