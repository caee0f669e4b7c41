package scene

import "image/color"

// Kind says what a node represents. Draw code and the replacement flow switch on it.
type Kind int

const (
	KindPlaceholder Kind = iota
	KindModel
	KindDirectionalLight
	KindAmbientLight
)

func (k Kind) String() string {
	switch k {
	case KindPlaceholder:
		return "placeholder"
	case KindModel:
		return "model"
	case KindDirectionalLight:
		return "directional-light"
	case KindAmbientLight:
		return "ambient-light"
	}
	return "unknown"
}

// Transform is position, Euler rotation (radians, XYZ order) and scale.
type Transform struct {
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}

// Identity returns a transform at the origin with unit scale.
func Identity() Transform {
	return Transform{Scale: [3]float32{1, 1, 1}}
}

// Drawable is the GPU side of a node (mesh, material, loaded model).
// Draw is called between BeginMode3D and EndMode3D; Unload releases GPU memory.
type Drawable interface {
	Draw(n *Node)
	Unload()
}

// Outline is an edge decoration drawn on top of a node's faces.
type Outline struct {
	Color color.RGBA
}

// Node is one unit of visual content in the scene: a mesh, a loaded model root or a light.
type Node struct {
	ID        uint64
	Name      string
	Kind      Kind
	Transform Transform
	Color     color.RGBA
	Outline   *Outline
	// Intensity is only meaningful for light nodes.
	Intensity float32
	Drawable  Drawable
}

// NewNode returns a node of the given kind with an identity transform and opaque white color.
func NewNode(kind Kind, name string) *Node {
	return &Node{
		Name:      name,
		Kind:      kind,
		Transform: Identity(),
		Color:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Rotate adds (dx, dy, dz) radians to the node's rotation.
func (n *Node) Rotate(dx, dy, dz float32) {
	n.Transform.Rotation[0] += dx
	n.Transform.Rotation[1] += dy
	n.Transform.Rotation[2] += dz
}
