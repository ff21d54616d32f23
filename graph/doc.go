// Package graph is the read-only graph view of the frontier kernel
// (spec.md §4.C2): an immutable value providing, for every vertex
// identifier u in [0, n), its out-degree, in-degree, and two ordered
// neighbor iterators (out-neighbors, in-neighbors), where each
// neighbor is a (Vid, weight) pair.
//
// A View is constructed once per run from CSR-style adjacency arrays —
// a vertex-offset array of length n+1, an edge array of length m, and
// an optional weight array of length m — and is safe for unsynchronized
// concurrent reads for its entire lifetime; there is no mutation API.
// Graph ingestion and the compressed adjacency-list encoding that
// produces these arrays are external collaborators (spec.md §1); this
// package only consumes the arrays once they exist.
//
// Complexity: construction is O(n + m) to validate the CSR arrays;
// every read operation (N, M, GetVertex, degree, neighbor-at-index) is
// O(1).
//
// Errors: NewSymmetricView / NewAsymmetricView return a sentinel error
// when the CSR arrays are malformed (NewAsymmetricView wraps it with
// fmt.Errorf %w, naming the out- or in-adjacency that failed); a
// malformed array is a construction-time precondition violation, never
// a runtime one, because every other operation in this package trusts
// the arrays it was built from are valid (spec.md §7).
package graph
