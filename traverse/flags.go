package traverse

// Flags is the bitmask controlling EdgeMapData's mode selection and
// output behavior (spec.md §4.C5). The zero value traverses along
// out-edges with every mode-selection heuristic enabled, so each call
// picks sparse push or dense pull by its work estimate.
type Flags uint32

const (
	// InEdges traverses along in-edges instead of out-edges: sparse
	// mode has each frontier member scan its in-neighbors; dense mode
	// scans out-neighbors looking for a frontier member (the roles
	// swap, since dense mode always scans the opposite direction from
	// sparse mode for a given pass).
	InEdges Flags = 1 << iota

	// DenseForward selects the "push while scanning every vertex id"
	// dense variant instead of the pull-style break-early decode.
	DenseForward

	// DenseParallel additionally parallelizes the per-vertex neighbor
	// scan within dense mode (useful for very high-degree vertices);
	// without it, dense mode parallelizes only across vertices.
	DenseParallel

	// FineParallel uses a grain size of 1 instead of the default
	// parallel.DefaultGrain for the dense-mode outer ParallelFor,
	// trading scheduling overhead for better load balance on skewed
	// degree distributions.
	FineParallel

	// NoDense disables the dense-mode heuristic entirely: EdgeMapData
	// always uses sparse (push) mode regardless of frontier size.
	NoDense

	// SparseBlocked processes the sparse frontier with a grain of
	// parallel.DefaultGrain members per task instead of the default
	// grain of one member, reducing scheduling overhead when the
	// frontier has many low-degree members.
	SparseBlocked

	// PackEdges is accepted for source compatibility with the
	// traversal operator's full flag vocabulary but is out of scope
	// for this kernel (see DESIGN.md); EdgeMapData ignores it.
	PackEdges

	// NoOutput suppresses construction of the output vertex-subset;
	// EdgeMapData still runs every relaxation but returns an empty
	// subset.
	NoOutput
)

// has reports whether fl has every bit in want set.
func (fl Flags) has(want Flags) bool { return fl&want == want }
