package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxEdges(t *testing.T) {
	edges := BoxEdges([3]float32{1, 2, 4})
	require.Len(t, edges, 12)

	seen := make(map[Edge]bool)
	for _, e := range edges {
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true

		// each edge runs along exactly one axis with that axis' full length
		changed := 0
		for axis := 0; axis < 3; axis++ {
			if d := math32.Abs(e[1][axis] - e[0][axis]); d != 0 {
				changed++
				assert.Equal(t, []float32{1, 2, 4}[axis], d)
			}
		}
		assert.Equal(t, 1, changed)
		for _, p := range e {
			assert.Equal(t, float32(0.5), math32.Abs(p[0]))
			assert.Equal(t, float32(1), math32.Abs(p[1]))
			assert.Equal(t, float32(2), math32.Abs(p[2]))
		}
	}
}
