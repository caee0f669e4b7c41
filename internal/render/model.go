package render

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"glb-viewer/internal/gltfasset"
	"glb-viewer/internal/scene"
)

// ErrNoMeshes is returned when raylib loads a model without any mesh, which
// is also how it reports a file it could not import.
var ErrNoMeshes = errors.New("render: model has no meshes")

// ModelBuilder uploads decoded glTF assets through raylib's model importer.
// raylib only imports from disk, so the bytes go through a temporary .glb file.
type ModelBuilder struct {
	// Dir holds the temporary files. Empty uses os.TempDir.
	Dir string
}

// Build loads a as a raylib model. Call from the render thread.
func (b *ModelBuilder) Build(a *gltfasset.Asset) (*scene.Node, error) {
	path, err := b.spill(a.Data)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	m := rl.LoadModel(path)
	if m.MeshCount == 0 {
		rl.UnloadModel(m)
		return nil, fmt.Errorf("%w: %s", ErrNoMeshes, a.Name)
	}
	n := scene.NewNode(scene.KindModel, a.Name)
	n.Drawable = &model{m: m}
	return n, nil
}

func (b *ModelBuilder) spill(data []byte) (string, error) {
	f, err := os.CreateTemp(b.Dir, "glb-viewer-*.glb")
	if err != nil {
		return "", fmt.Errorf("render: temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("render: temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("render: temp file: %w", err)
	}
	return f.Name(), nil
}

// model draws a loaded raylib model with its own materials.
type model struct {
	m rl.Model
}

func (d *model) Draw(n *scene.Node) {
	d.m.Transform = nodeMatrix(n.Transform)
	rl.DrawModel(d.m, rl.Vector3{}, 1, rl.White)
}

func (d *model) Unload() {
	rl.UnloadModel(d.m)
}
