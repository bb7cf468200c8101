package termwin

import "fmt"

// Window is a rectangular character buffer decoupled from the physical
// screen. Cells are row-major: cells[row*width + col]. Writes never
// resize the grid and never land outside its bounds; out-of-range
// writes are dropped silently so callers need not pre-clip.
type Window struct {
	height    int
	width     int
	originRow int
	originCol int
	cells     []rune
}

// NewWindow creates a window of exactly height x width blank cells at
// the given screen-relative origin. Non-positive dimensions clamp to 0.
func NewWindow(height, width, originRow, originCol int) *Window {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}

	w := &Window{
		height:    height,
		width:     width,
		originRow: originRow,
		originCol: originCol,
		cells:     make([]rune, height*width),
	}
	for i := range w.cells {
		w.cells[i] = ' '
	}
	return w
}

// SetCell writes one character at (row, col). Out-of-range coordinates
// are ignored.
func (w *Window) SetCell(row, col int, ch rune) {
	if w == nil {
		return
	}
	if row < 0 || row >= w.height || col < 0 || col >= w.width {
		return
	}
	w.cells[row*w.width+col] = ch
}

// Cell returns the character at (row, col), or 0 when out of range.
func (w *Window) Cell(row, col int) rune {
	if w == nil {
		return 0
	}
	if row < 0 || row >= w.height || col < 0 || col >= w.width {
		return 0
	}
	return w.cells[row*w.width+col]
}

// Print writes text starting at (row, col), one character per column,
// truncating at the right edge. A starting cell outside the window is a
// no-op.
func (w *Window) Print(row, col int, text string) {
	if w == nil {
		return
	}
	if row < 0 || row >= w.height || col < 0 || col >= w.width {
		return
	}
	for _, ch := range text {
		if col >= w.width {
			break
		}
		w.cells[row*w.width+col] = ch
		col++
	}
}

// Printf formats per fmt.Sprintf and prints the result at (row, col)
// under the same truncation rules as Print.
func (w *Window) Printf(row, col int, format string, args ...any) {
	w.Print(row, col, fmt.Sprintf(format, args...))
}

// Dimensions returns the declared height and width. A nil window
// reports 0, 0 rather than failing.
func (w *Window) Dimensions() (height, width int) {
	if w == nil {
		return 0, 0
	}
	return w.height, w.width
}

// Origin returns the window's screen-relative origin (row, col).
func (w *Window) Origin() (row, col int) {
	if w == nil {
		return 0, 0
	}
	return w.originRow, w.originCol
}

// Clear resets every cell to blank.
func (w *Window) Clear() {
	if w == nil {
		return
	}
	for i := range w.cells {
		w.cells[i] = ' '
	}
}

// Rows returns the grid content as one string per row, in row order.
// This is the sole rendering input.
func (w *Window) Rows() []string {
	if w == nil {
		return nil
	}
	rows := make([]string, w.height)
	for r := 0; r < w.height; r++ {
		rows[r] = string(w.cells[r*w.width : (r+1)*w.width])
	}
	return rows
}
