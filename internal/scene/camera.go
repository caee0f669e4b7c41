package scene

// Camera is a perspective camera. Fov is the vertical field of view in degrees.
// Aspect is kept in sync with the viewport by the application on resize.
type Camera struct {
	Fov      float32
	Aspect   float32
	Near     float32
	Far      float32
	Position [3]float32
	Target   [3]float32
	Up       [3]float32
}

// NewCamera returns a camera looking at the origin from +Z, with Y up.
func NewCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{
		Fov:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
		Position: [3]float32{0, 0, 5},
		Up:       [3]float32{0, 1, 0},
	}
}

// Viewport is the renderer's output size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Aspect returns width/height, or 0 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 0
	}
	return float32(v.Width) / float32(v.Height)
}
