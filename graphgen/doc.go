// Package graphgen builds deterministic graph.View instances for a handful
// of standard topologies, for use by traverse/bucket tests and benchmarks
// that need a concrete graph without hand-writing CSR offset arrays.
//
// Every constructor here accumulates an edge list with a builder, then
// compiles it once into an immutable symmetric graph.View via
// graph.NewSymmetricView — construction is not on any SPEC_FULL.md hot
// path, so it favors clarity over the grain-parallel style the rest of the
// module uses.
package graphgen
