package termwin

// Backend abstracts platform-specific terminal operations.
// Two variants ship: a byte-stream backend driving a Unix line
// discipline directly (termios raw mode, ANSI output), and a
// structured-event backend on tcell for platforms that deliver key
// records instead of raw bytes.
type Backend interface {
	// Lifecycle
	// Init captures the current terminal mode and applies raw/no-echo
	// settings. Calling Init on an initialized backend must not
	// recapture the snapshot.
	Init() error
	// Fini restores the captured mode. Safe to call multiple times;
	// the snapshot is restored at most once per Init.
	Fini()

	// Capabilities
	// Size returns current terminal dimensions, or an error when the
	// platform query is unavailable.
	Size() (width, height int, err error)

	// ApplyRaw re-issues the raw/no-echo configuration without
	// touching geometry or the saved snapshot.
	ApplyRaw() error

	// ReadKey blocks until one key is decoded. With nodelay set it
	// returns a zero KeyEvent immediately when no input is pending.
	ReadKey(nodelay bool) (KeyEvent, error)

	// Render clears the physical display and repaints the window's
	// rows in order. Always a full repaint.
	Render(w *Window) error

	// SetCursorVisible shows or hides the cursor, best-effort.
	SetCursorVisible(visible bool)
}
