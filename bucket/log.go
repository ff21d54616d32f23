package bucket

import "github.com/rs/zerolog"

// logger is this package's diagnostic sink, silent by default (see
// the comment on the parallel package's logger variable for the
// ambient-logging rationale this mirrors).
var logger = zerolog.Nop()

// SetLogger installs l as this package's diagnostic sink.
func SetLogger(l zerolog.Logger) {
	logger = l
}
