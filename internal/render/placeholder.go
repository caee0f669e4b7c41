package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"glb-viewer/internal/scene"
)

// Placeholder draws a unit cube in the node's color with its edges in the
// outline color. Node scale sets the cube's size.
type Placeholder struct {
	r     *Renderer
	mesh  rl.Mesh
	mtl   rl.Material
	edges []scene.Edge
	ready bool
}

func (p *Placeholder) ensure() {
	if p.ready {
		return
	}
	p.mesh = rl.GenMeshCube(1, 1, 1)
	p.mtl = rl.LoadMaterialDefault()
	if s := p.r.shader(); s != nil {
		p.mtl.Shader = s.shader
	}
	p.edges = scene.BoxEdges([3]float32{1, 1, 1})
	p.ready = true
}

// Draw draws n's cube. Must be called between BeginMode3D and EndMode3D.
func (p *Placeholder) Draw(n *scene.Node) {
	p.ensure()
	if albedo := p.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = n.Color
	}
	m := nodeMatrix(n.Transform)
	rl.DrawMesh(p.mesh, p.mtl, m)

	if n.Outline == nil {
		return
	}
	for _, e := range p.edges {
		a := rl.Vector3Transform(vec3(e[0]), m)
		b := rl.Vector3Transform(vec3(e[1]), m)
		rl.DrawLine3D(a, b, n.Outline.Color)
	}
}

// Unload frees the mesh. The material's shader belongs to the Renderer.
func (p *Placeholder) Unload() {
	if !p.ready {
		return
	}
	rl.UnloadMesh(&p.mesh)
	p.ready = false
}
