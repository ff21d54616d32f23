package parallel

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// DefaultGrain is the advisory lower bound on contiguous work handed to
// a single task when no WithGrain option is supplied. It mirrors the
// "fine_parallel ? 1 : 2048" split the traverse package exposes for
// dense-mode decoding.
const DefaultGrain = 2048

// workerCount is the single integer worker count the substrate
// advertises to the rest of the kernel (spec.md §6: "the core respects
// a single integer worker count advertised by the primitives substrate;
// it does not read environment variables itself").
var workerCount int64 = int64(runtime.GOMAXPROCS(0))

// Workers returns the number of workers the substrate currently
// advertises. Defaults to runtime.GOMAXPROCS(0).
func Workers() int {
	return int(atomic.LoadInt64(&workerCount))
}

// SetWorkers overrides the advertised worker count. Intended for tests
// and for embedders that want to reserve cores for other work; n <= 0
// is a precondition violation and aborts.
func SetWorkers(n int) {
	if n <= 0 {
		Abort("parallel: SetWorkers requires n > 0, got %d", n)
	}
	atomic.StoreInt64(&workerCount, int64(n))
}

// config holds the resolved options for a single substrate call.
type config struct {
	grain   int
	workers int
}

// Option configures a single ParallelFor/Reduce/Filter/Histogram call.
type Option func(*config)

// WithGrain sets the advisory lower bound on contiguous work per task.
// g <= 0 is a precondition violation and aborts.
func WithGrain(g int) Option {
	return func(c *config) {
		if g <= 0 {
			Abort("parallel: WithGrain requires g > 0, got %d", g)
		}
		c.grain = g
	}
}

// WithWorkers bounds this call to at most n concurrent tasks, overriding
// the package-wide Workers() advertisement for this call only.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n <= 0 {
			Abort("parallel: WithWorkers requires n > 0, got %d", n)
		}
		c.workers = n
	}
}

func resolve(opts []Option) config {
	c := config{grain: DefaultGrain, workers: Workers()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// FatalError is the diagnostic carried by a call to Abort. It is never
// returned as an error value; per spec.md §7 preconditions and resource
// exhaustion are programmer errors that abort the process, so FatalError
// is only ever delivered via panic. Tests recover it with
// require.PanicsWithError-style assertions to check the diagnostic text.
type FatalError struct {
	Msg string
}

func (e *FatalError) Error() string { return e.Msg }

// Abort panics with a FatalError built from the given diagnostic. Used
// for the "preconditions violated" and "resource exhaustion" taxonomy
// entries of spec.md §7: there is no retry and no partial-failure
// propagation, so the only sanctioned response is to unwind the
// superstep entirely.
func Abort(format string, args ...interface{}) {
	panic(&FatalError{Msg: fmt.Sprintf(format, args...)})
}
