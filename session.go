package termwin

// Fallback geometry when detection fails or reports non-positive values
const (
	fallbackHeight = 24
	fallbackWidth  = 80
)

// Session is the process's single terminal-control context: mode flags
// plus the saved original terminal mode (held inside the backend). The
// session owns the root Window; its lifetime is scoped to the session.
//
// A Session is not safe for concurrent use. All operations run to
// completion on the calling goroutine; only ReadKey blocks, and only
// when no-delay is off.
type Session struct {
	backend Backend
	win     *Window

	initialized   bool
	echoEnabled   bool
	noDelay       bool
	cursorVisible bool

	// Non-zero when WithSize selected an explicit geometry
	forcedHeight int
	forcedWidth  int
}

// Option configures a Session before Init.
type Option func(*Session)

// WithBackend selects a specific backend instead of the platform
// default.
func WithBackend(b Backend) Option {
	return func(s *Session) { s.backend = b }
}

// WithSize fixes the window geometry, skipping detection.
func WithSize(height, width int) Option {
	return func(s *Session) {
		s.forcedHeight = height
		s.forcedWidth = width
	}
}

// NewSession creates an unstarted session. Echo and cursor visibility
// start enabled, no-delay starts off.
func NewSession(opts ...Option) *Session {
	s := &Session{
		echoEnabled:   true,
		cursorVisible: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init captures the terminal's current mode, applies raw/no-echo
// settings, and allocates the root window sized to the detected
// geometry (environment override first, 80x24 fallback).
//
// Mode setting is best-effort: on a non-interactive stdin the session
// still comes up with fallback geometry and the error reports why raw
// mode could not be applied. The returned Window is always non-nil.
//
// Calling Init on an initialized session returns the live window
// unchanged; the saved mode snapshot is never recaptured or
// overwritten.
func (s *Session) Init() (*Window, error) {
	if s.initialized {
		return s.win, nil
	}

	env := loadEnvOverrides()
	if s.backend == nil {
		s.backend = defaultBackend(env.Backend)
	}

	err := s.backend.Init()

	height, width := s.detectSize(env)
	s.win = NewWindow(height, width, 0, 0)
	s.initialized = true
	return s.win, err
}

// detectSize resolves geometry: explicit WithSize, then LINES/COLUMNS
// from the environment, then the platform query, then the fallback.
func (s *Session) detectSize(env envOverrides) (height, width int) {
	if s.forcedHeight > 0 && s.forcedWidth > 0 {
		return s.forcedHeight, s.forcedWidth
	}

	if w, h, err := s.backend.Size(); err == nil {
		width, height = w, h
	}
	if env.Lines > 0 {
		height = env.Lines
	}
	if env.Columns > 0 {
		width = env.Columns
	}

	if height <= 0 {
		height = fallbackHeight
	}
	if width <= 0 {
		width = fallbackWidth
	}
	return height, width
}

// End restores the captured mode snapshot, releases the root window,
// and clears the initialized flag so a fresh Init may follow. Safe to
// call multiple times and without a prior Init; the snapshot is
// restored exactly once per session. Intended for defer so the
// terminal never stays raw on early returns or panics in caller code.
func (s *Session) End() {
	if !s.initialized {
		return
	}

	s.backend.Fini()
	s.win = nil
	s.initialized = false
}

// Window returns the session's root window, nil before Init.
func (s *Session) Window() *Window {
	return s.win
}

// SetEcho records the echo flag. Raw mode never echoes at the line
// discipline; echoing typed characters back is a caller-side concern.
func (s *Session) SetEcho(on bool) {
	s.echoEnabled = on
}

// SetNoDelay switches key reads between blocking and
// return-immediately-when-empty.
func (s *Session) SetNoDelay(on bool) {
	s.noDelay = on
}

// SetCursorVisible records the flag and issues the platform call where
// one exists. Never fails; a backend without the primitive ignores it.
func (s *Session) SetCursorVisible(visible bool) {
	s.cursorVisible = visible
	if !s.initialized {
		return
	}
	s.backend.SetCursorVisible(visible)
}

// ReapplyRaw re-issues the raw/no-echo configuration without
// re-detecting geometry or reallocating the window. No-op before Init.
func (s *Session) ReapplyRaw() error {
	if !s.initialized {
		return nil
	}
	return s.backend.ApplyRaw()
}

// ReadKey returns the next decoded key. Blocking by default; under
// no-delay it returns a zero KeyEvent immediately when no input is
// pending. On an uninitialized session it returns a zero KeyEvent.
func (s *Session) ReadKey() (KeyEvent, error) {
	if !s.initialized {
		return KeyEvent{}, nil
	}
	return s.backend.ReadKey(s.noDelay)
}

// Refresh clears the physical display and repaints the window's rows
// in order. Always a full repaint. No-op when the session is not
// initialized or win is nil.
func (s *Session) Refresh(win *Window) error {
	if !s.initialized || win == nil {
		return nil
	}
	return s.backend.Render(win)
}
