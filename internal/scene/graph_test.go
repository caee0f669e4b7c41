package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddAssignsIDsInOrder(t *testing.T) {
	g := NewGraph()
	a := NewNode(KindPlaceholder, "cube")
	b := NewNode(KindDirectionalLight, "sun")

	require.True(t, g.Add(a))
	require.True(t, g.Add(b))

	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, uint64(2), b.ID)
	assert.Equal(t, []*Node{a, b}, g.Nodes())
}

func TestGraph_AddIsIdempotent(t *testing.T) {
	g := NewGraph()
	n := NewNode(KindModel, "duck")

	assert.True(t, g.Add(n))
	assert.False(t, g.Add(n))
	assert.False(t, g.Add(nil))
	assert.Equal(t, 1, g.Len())
}

func TestGraph_RemoveByIdentity(t *testing.T) {
	g := NewGraph()
	a := NewNode(KindModel, "same")
	b := NewNode(KindModel, "same")
	g.Add(a)
	g.Add(b)

	assert.True(t, g.Remove(a))
	assert.False(t, g.Contains(a))
	assert.True(t, g.Contains(b))

	// second removal tolerated
	assert.False(t, g.Remove(a))
	assert.Equal(t, 1, g.Len())
}

func TestGraph_Count(t *testing.T) {
	g := NewGraph()
	g.Add(NewNode(KindPlaceholder, "cube"))
	g.Add(NewNode(KindAmbientLight, "ambient"))
	g.Add(NewNode(KindDirectionalLight, "sun"))

	assert.Equal(t, 1, g.Count(KindPlaceholder))
	assert.Equal(t, 0, g.Count(KindModel))
	assert.Equal(t, 3, g.Len())
}

func TestGraph_NodesReturnsCopy(t *testing.T) {
	g := NewGraph()
	g.Add(NewNode(KindPlaceholder, "cube"))

	nodes := g.Nodes()
	nodes[0] = nil

	assert.NotNil(t, g.Nodes()[0])
}

func TestNode_Rotate(t *testing.T) {
	n := NewNode(KindPlaceholder, "cube")
	n.Rotate(0.01, 0.01, 0)
	n.Rotate(0.01, 0.01, 0)

	assert.InDelta(t, 0.02, n.Transform.Rotation[0], 1e-6)
	assert.InDelta(t, 0.02, n.Transform.Rotation[1], 1e-6)
	assert.Zero(t, n.Transform.Rotation[2])
	assert.Equal(t, [3]float32{1, 1, 1}, n.Transform.Scale)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "placeholder", KindPlaceholder.String())
	assert.Equal(t, "model", KindModel.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
