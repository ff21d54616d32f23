package parallel

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetLoggerReceivesSequentialFallbackDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer SetLogger(zerolog.Nop())

	ParallelFor(0, 4, func(int) {}, WithGrain(100))

	require.Contains(t, buf.String(), "running sequentially")
}
