package viewer

import "github.com/chewxy/math32"

// DragThreshold is how far, in pixels, the pointer may travel between press
// and release for the pair to still count as a click.
const DragThreshold = 4

// Gesture is what a completed press/release pair turned out to be.
type Gesture int

const (
	GestureNone Gesture = iota
	// GestureClick is a click on the 3D view.
	GestureClick
	// GestureOverlay is a click that started and ended on the overlay.
	GestureOverlay
)

// Pointer tells clicks from drags for the primary button. A press that
// starts on the overlay never orbits the camera.
type Pointer struct {
	down      bool
	onOverlay bool
	dragging  bool
	startX    float32
	startY    float32
}

// Press records a button press at (x, y).
func (p *Pointer) Press(x, y float32, onOverlay bool) {
	*p = Pointer{down: true, onOverlay: onOverlay, startX: x, startY: y}
}

// Move reports whether the pointer, now at (x, y), is dragging the view.
func (p *Pointer) Move(x, y float32) bool {
	if !p.down || p.onOverlay {
		return false
	}
	if !p.dragging && math32.Hypot(x-p.startX, y-p.startY) > DragThreshold {
		p.dragging = true
	}
	return p.dragging
}

// Release ends the press at (x, y) and classifies it.
func (p *Pointer) Release(x, y float32, onOverlay bool) Gesture {
	if !p.down {
		return GestureNone
	}
	moved := p.dragging || math32.Hypot(x-p.startX, y-p.startY) > DragThreshold
	startedOnOverlay := p.onOverlay
	*p = Pointer{}
	switch {
	case moved:
		return GestureNone
	case startedOnOverlay && onOverlay:
		return GestureOverlay
	case !startedOnOverlay && !onOverlay:
		return GestureClick
	}
	return GestureNone
}
