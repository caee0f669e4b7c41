package render

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// drawGrid draws a reference grid on the XZ plane (Y=0) with axis lines
// through the origin (X red, Y green, Z blue).
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(96, 96, 96, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.Vector3{X: -gridExtent}, rl.Vector3{X: gridExtent}, rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.Vector3{Y: -gridExtent}, rl.Vector3{Y: gridExtent}, rl.NewColor(80, 180, 80, axisLineAlpha))
	rl.DrawLine3D(rl.Vector3{Z: -gridExtent}, rl.Vector3{Z: gridExtent}, rl.NewColor(80, 80, 220, axisLineAlpha))
}
