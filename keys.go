package termwin

// Key represents a decoded input key
type Key uint8

// Key constants - one canonical set shared by every backend
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyBackspace
	KeyEscape
)

// KeyEvent is the logical result of one input read: either a printable
// rune (Key == KeyRune) or a named non-printable key. A zero KeyEvent
// means no key was available.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// keyToName maps Key constants to canonical string names
var keyToName = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
}

// String returns the canonical name for the key
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "unknown"
}

// decodeByte maps one raw input byte to a key event. The byte-stream
// backend does not parse multi-byte escape sequences, so arrow keys are
// unreachable here and a lone ESC byte decodes as KeyEscape.
func decodeByte(b byte) KeyEvent {
	switch b {
	case 0x0a, 0x0d: // LF, CR
		return KeyEvent{Key: KeyEnter}
	case 0x08, 0x7f: // BS, DEL
		return KeyEvent{Key: KeyBackspace}
	case 0x1b:
		return KeyEvent{Key: KeyEscape}
	}

	// Printable ASCII
	if b >= 0x20 && b < 0x7f {
		return KeyEvent{Key: KeyRune, Rune: rune(b)}
	}

	return KeyEvent{}
}
