package scene

import "github.com/chewxy/math32"

const (
	// polarEpsilon keeps the camera off the poles so the up vector stays valid.
	polarEpsilon = 1e-4
	minDistance  = 0.05
	maxDistance  = 500
)

// Orbit moves a camera on a sphere around its target, in the manner of an
// orbit-control helper: input accumulates deltas, Update applies them. With
// damping on, each Update applies DampingFactor of the pending delta and keeps
// the rest, so motion eases out over several frames.
type Orbit struct {
	Damping       bool
	DampingFactor float32

	cam    *Camera
	theta  float32 // azimuth around Y, 0 looks down -Z from +Z
	phi    float32 // polar angle from +Y
	radius float32
	dTheta float32
	dPhi   float32
	dolly  float32
}

// NewOrbit derives the spherical position from the camera's current position and target.
func NewOrbit(cam *Camera, damping bool, factor float32) *Orbit {
	o := &Orbit{Damping: damping, DampingFactor: factor, cam: cam, dolly: 1}
	o.sync()
	return o
}

func (o *Orbit) sync() {
	x := o.cam.Position[0] - o.cam.Target[0]
	y := o.cam.Position[1] - o.cam.Target[1]
	z := o.cam.Position[2] - o.cam.Target[2]
	o.radius = math32.Sqrt(x*x + y*y + z*z)
	if o.radius == 0 {
		o.theta, o.phi = 0, math32.Pi/2
		return
	}
	o.theta = math32.Atan2(x, z)
	o.phi = math32.Acos(clamp(y/o.radius, -1, 1))
}

// RotateLeft queues an azimuth change in radians.
func (o *Orbit) RotateLeft(angle float32) {
	o.dTheta -= angle
}

// RotateUp queues a polar change in radians.
func (o *Orbit) RotateUp(angle float32) {
	o.dPhi -= angle
}

// Dolly scales the distance to the target. Values below 1 move closer.
func (o *Orbit) Dolly(scale float32) {
	if scale > 0 {
		o.dolly *= scale
	}
}

// Drag converts a pointer movement in pixels into rotation, using the viewport
// height so a full-height drag turns the camera by a full circle.
func (o *Orbit) Drag(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	h := float32(viewportHeight)
	o.RotateLeft(2 * math32.Pi * dx / h)
	o.RotateUp(2 * math32.Pi * dy / h)
}

// Update applies pending deltas and writes the new camera position. Call once per frame.
func (o *Orbit) Update() {
	if o.Damping {
		o.theta += o.dTheta * o.DampingFactor
		o.phi += o.dPhi * o.DampingFactor
	} else {
		o.theta += o.dTheta
		o.phi += o.dPhi
	}
	o.phi = clamp(o.phi, polarEpsilon, math32.Pi-polarEpsilon)
	o.radius = clamp(o.radius*o.dolly, minDistance, maxDistance)

	sinPhi := math32.Sin(o.phi)
	o.cam.Position[0] = o.cam.Target[0] + o.radius*sinPhi*math32.Sin(o.theta)
	o.cam.Position[1] = o.cam.Target[1] + o.radius*math32.Cos(o.phi)
	o.cam.Position[2] = o.cam.Target[2] + o.radius*sinPhi*math32.Cos(o.theta)

	if o.Damping {
		o.dTheta *= 1 - o.DampingFactor
		o.dPhi *= 1 - o.DampingFactor
	} else {
		o.dTheta, o.dPhi = 0, 0
	}
	o.dolly = 1
}

// Distance returns the current distance from the camera to its target.
func (o *Orbit) Distance() float32 {
	return o.radius
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
