// Package termwin provides minimal cross-platform terminal control:
// raw input mode, an in-memory character window, single-key reads, and
// full-repaint rendering.
//
// Features:
//   - Raw/no-echo terminal mode with guaranteed restoration on teardown
//   - Bounds-checked rectangular character buffer (tolerant writes)
//   - Canonical key decoding (printable runes plus a small named set)
//   - Non-blocking reads under the no-delay policy
//   - Byte-stream (direct ANSI) and structured-event (tcell) backends
//
// The core is single-threaded and synchronous: no event loop, no
// callbacks. A Session and its Window belong to one caller goroutine.
// This is not a terminal emulator; there is no color model, no
// scrollback, and no escape-sequence grammar beyond the named keys.
package termwin
