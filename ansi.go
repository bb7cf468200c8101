package termwin

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiClear      = []byte("\x1b[2J\x1b[H")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiSGR0       = []byte("\x1b[0m")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)
)
