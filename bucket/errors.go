package bucket

import "github.com/katalvlaran/frontier/parallel"

// Abort panics with a bucket-prefixed diagnostic, for the
// element-count corruption spec.md §7 says must abort the process.
func Abort(format string, args ...interface{}) {
	parallel.Abort("bucket: "+format, args...)
}
