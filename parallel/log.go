package parallel

import "github.com/rs/zerolog"

// logger is the substrate's diagnostic sink. It defaults to a no-op
// logger so the kernel is silent unless an embedder opts in — this
// package never decides on its own that a log line is worth a
// program's default output (spec.md §2, ambient logging stance).
var logger = zerolog.Nop()

// SetLogger installs l as the substrate-wide diagnostic sink. Pass
// zerolog.Nop() (the default) to silence diagnostics again.
func SetLogger(l zerolog.Logger) {
	logger = l
}
