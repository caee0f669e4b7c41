// Package render draws the viewer's scene graph with raylib and turns raw
// window input into App operations. Everything here needs a GL context.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"glb-viewer/internal/scene"
)

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// camera3D mirrors the scene camera. raylib derives aspect from the
// framebuffer and uses fixed clip planes, so only position, target, up and
// fov carry over.
func camera3D(c *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(c.Position),
		Target:     vec3(c.Target),
		Up:         vec3(c.Up),
		Fovy:       c.Fov,
		Projection: rl.CameraPerspective,
	}
}

// nodeMatrix composes scale, then XYZ Euler rotation, then translation.
func nodeMatrix(t scene.Transform) rl.Matrix {
	s := rl.MatrixScale(t.Scale[0], t.Scale[1], t.Scale[2])
	r := rl.MatrixRotateXYZ(vec3(t.Rotation))
	tr := rl.MatrixTranslate(t.Position[0], t.Position[1], t.Position[2])
	return rl.MatrixMultiply(rl.MatrixMultiply(s, r), tr)
}
