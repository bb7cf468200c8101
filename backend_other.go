//go:build !unix

package termwin

// Without a Unix line discipline the structured-event backend is the
// only option; the override name is ignored.
func defaultBackend(string) Backend {
	return NewScreenBackend()
}
