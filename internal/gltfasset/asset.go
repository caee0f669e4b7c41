// Package gltfasset decodes glTF assets (binary .glb or JSON with embedded
// buffers) from memory. It does no GPU work, so decoding can run off the render
// thread and be tested without a window.
package gltfasset

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"
)

// ErrEmpty is returned for a zero-length buffer.
var ErrEmpty = errors.New("gltfasset: empty buffer")

// positionAttribute is the glTF vertex attribute holding positions.
const positionAttribute = "POSITION"

// Bounds is an axis-aligned box in model space. Valid is false when the asset
// has no position accessor with min/max.
type Bounds struct {
	Min   [3]float32
	Max   [3]float32
	Valid bool
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Asset is a decoded glTF document plus the bytes it came from. The bytes are
// kept because the renderer loads from them once on the render thread.
type Asset struct {
	Name   string
	Data   []byte
	Doc    *gltf.Document
	Bounds Bounds
}

// Meshes returns the number of meshes in the document.
func (a *Asset) Meshes() int {
	return len(a.Doc.Meshes)
}

// Nodes returns the number of nodes in the document.
func (a *Asset) Nodes() int {
	return len(a.Doc.Nodes)
}

// Decode parses buf as a glTF asset. name is used only for error messages and logging.
// No validation is done beyond what the parser enforces.
func Decode(name string, buf []byte) (*Asset, error) {
	if len(buf) == 0 {
		return nil, ErrEmpty
	}
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(buf)).Decode(doc); err != nil {
		return nil, fmt.Errorf("gltfasset: decode %s: %w", name, err)
	}
	return &Asset{
		Name:   name,
		Data:   buf,
		Doc:    doc,
		Bounds: positionBounds(doc),
	}, nil
}

// positionBounds merges the min/max of every POSITION accessor. Node transforms
// are not applied, so for scenes with transformed nodes this is an approximation.
func positionBounds(doc *gltf.Document) Bounds {
	var b Bounds
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			idx, ok := prim.Attributes[positionAttribute]
			if !ok || int(idx) >= len(doc.Accessors) {
				continue
			}
			acc := doc.Accessors[idx]
			if len(acc.Min) < 3 || len(acc.Max) < 3 {
				continue
			}
			for i := 0; i < 3; i++ {
				lo, hi := float32(acc.Min[i]), float32(acc.Max[i])
				if !b.Valid {
					b.Min[i], b.Max[i] = lo, hi
					continue
				}
				b.Min[i] = math32.Min(b.Min[i], lo)
				b.Max[i] = math32.Max(b.Max[i], hi)
			}
			b.Valid = true
		}
	}
	return b
}
