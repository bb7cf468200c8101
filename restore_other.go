//go:build !unix

package termwin

// No line-discipline repair available; the escape sequences written by
// EmergencyRestore are all we can do.
func resetTerminalMode() {}
