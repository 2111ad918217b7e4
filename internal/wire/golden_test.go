package wire

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/termwire/internal/stream"
	"github.com/roach88/termwire/internal/testutil"
)

// TestGolden_WireSequence pins the exact on-the-wire bytes for a mixed
// sequence of values. The golden file is the source of truth for the wire
// format; a diff here means a format break, not a test to update casually.
//
// To regenerate after a deliberate format change:
//
//	go test ./internal/wire -run TestGolden_WireSequence -update
func TestGolden_WireSequence(t *testing.T) {
	p := testutil.NewPipe()
	s := stream.New(p, "golden")

	require.NoError(t, WriteInt32(s, -1))
	require.NoError(t, WriteInt32(s, 0x01020304))
	require.NoError(t, WriteAtom(s, "hello"))
	require.NoError(t, WriteAtom(s, ""))
	require.NoError(t, WriteAtom(s, "héllo"))
	require.NoError(t, WriteFloat(s, 1.5))
	require.NoError(t, WriteFloat(s, negativeZero()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "wire_sequence", p.Bytes())
}

func negativeZero() float64 {
	z := 0.0
	return -z
}
