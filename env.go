package termwin

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// envOverrides carries settings read from the environment. LINES and
// COLUMNS follow the historical curses variables and take precedence
// over the platform geometry query; TERMWIN_BACKEND ("ansi" or
// "screen") selects the backend.
type envOverrides struct {
	Lines   int    `env:"LINES"`
	Columns int    `env:"COLUMNS"`
	Backend string `env:"TERMWIN_BACKEND"`
}

// loadEnvOverrides reads overrides best-effort. Malformed values are
// ignored; the fallback geometry covers them.
func loadEnvOverrides() envOverrides {
	var o envOverrides
	_ = envconfig.Process(context.Background(), &o)
	return o
}
