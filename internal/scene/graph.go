package scene

// Graph is the ordered set of nodes that make up the scene. It is owned by the
// render thread; nothing in it is safe for concurrent use.
type Graph struct {
	nodes  []*Node
	nextID uint64
}

// NewGraph returns an empty scene.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends n to the scene. A node already in the scene is left where it is and
// Add returns false. Nodes without an ID get the next free one.
func (g *Graph) Add(n *Node) bool {
	if n == nil || g.Contains(n) {
		return false
	}
	if n.ID == 0 {
		g.nextID++
		n.ID = g.nextID
	}
	g.nodes = append(g.nodes, n)
	return true
}

// Remove deletes n from the scene by identity. Removing a node that is not
// present is a no-op and returns false.
func (g *Graph) Remove(n *Node) bool {
	for i, c := range g.nodes {
		if c == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether n is in the scene.
func (g *Graph) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	for _, c := range g.nodes {
		if c == n {
			return true
		}
	}
	return false
}

// Nodes returns the nodes in insertion order. The slice is a copy; the nodes are not.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Len returns the number of nodes in the scene.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Count returns how many nodes of the given kind are in the scene.
func (g *Graph) Count(kind Kind) int {
	n := 0
	for _, c := range g.nodes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Each calls fn for every node in draw order.
func (g *Graph) Each(fn func(n *Node)) {
	for _, c := range g.nodes {
		fn(c)
	}
}
