package subset

import "github.com/katalvlaran/frontier/parallel"

// Abort panics with a subset-prefixed diagnostic, for the precondition
// violations spec.md §7 says must abort the process (e.g. an
// out-of-range vid supplied to Singleton).
func Abort(format string, args ...interface{}) {
	parallel.Abort("subset: "+format, args...)
}
