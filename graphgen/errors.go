package graphgen

import "errors"

// ErrTooFewVertices indicates a topology parameter (n, rows, cols)
// is smaller than the minimum the requested constructor requires.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")
