package scene

// Edge is a line segment in a node's local space.
type Edge [2][3]float32

// BoxEdges returns the 12 edges of an axis-aligned box of the given size
// centered on the origin. Faces of a box meet at right angles, so every edge
// is a hard edge and none are dropped.
func BoxEdges(size [3]float32) []Edge {
	hx, hy, hz := size[0]/2, size[1]/2, size[2]/2
	corner := func(i int) [3]float32 {
		c := [3]float32{-hx, -hy, -hz}
		if i&1 != 0 {
			c[0] = hx
		}
		if i&2 != 0 {
			c[1] = hy
		}
		if i&4 != 0 {
			c[2] = hz
		}
		return c
	}
	edges := make([]Edge, 0, 12)
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit == 0 {
				edges = append(edges, Edge{corner(i), corner(i | bit)})
			}
		}
	}
	return edges
}
