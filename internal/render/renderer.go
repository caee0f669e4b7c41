package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"glb-viewer/internal/scene"
)

// Renderer draws a scene graph. GPU resources are created on first Draw so
// that they are allocated after the window and GL context exist.
type Renderer struct {
	Grid bool

	lit      *litShader
	litTried bool
}

// NewRenderer returns a renderer with no GPU state yet.
func NewRenderer(grid bool) *Renderer {
	return &Renderer{Grid: grid}
}

// shader returns the lit program, compiling it once. Nil means the driver
// rejected it.
func (r *Renderer) shader() *litShader {
	if !r.litTried {
		r.litTried = true
		if s, ok := loadLitShader(); ok {
			r.lit = s
		}
	}
	return r.lit
}

// Placeholder returns the drawable for the placeholder cube.
func (r *Renderer) Placeholder() *Placeholder {
	return &Placeholder{r: r}
}

// Draw renders every node that has a drawable. Call between BeginDrawing and
// EndDrawing.
func (r *Renderer) Draw(g *scene.Graph, cam *scene.Camera) {
	if s := r.shader(); s != nil {
		s.apply(scene.LightingOf(g), cam.Position)
	}
	rl.BeginMode3D(camera3D(cam))
	if r.Grid {
		drawGrid()
	}
	g.Each(func(n *scene.Node) {
		if n.Drawable != nil {
			n.Drawable.Draw(n)
		}
	})
	rl.EndMode3D()
}

// Close releases the shared shader.
func (r *Renderer) Close() {
	if r.lit != nil {
		r.lit.unload()
		r.lit = nil
	}
}
