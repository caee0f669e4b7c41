package scene

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Lighting is the scene's light nodes reduced to the terms a single-light
// shader needs. Colors are linear 0–1 and already scaled by intensity.
type Lighting struct {
	// Direction points from the origin towards the directional light.
	Direction [3]float32
	Diffuse   [3]float32
	Ambient   [3]float32
}

// LightingOf sums ambient lights and takes the first directional light. A
// directional light points at the origin from its position; one placed at
// the origin shines straight down.
func LightingOf(g *Graph) Lighting {
	var l Lighting
	haveSun := false
	g.Each(func(n *Node) {
		switch n.Kind {
		case KindAmbientLight:
			c := scaled(n.Color, n.Intensity)
			for i := range l.Ambient {
				l.Ambient[i] += c[i]
			}
		case KindDirectionalLight:
			if haveSun {
				return
			}
			haveSun = true
			l.Diffuse = scaled(n.Color, n.Intensity)
			l.Direction = normalize(n.Transform.Position)
		}
	})
	return l
}

func scaled(c color.RGBA, intensity float32) [3]float32 {
	return [3]float32{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
	}
}

func normalize(v [3]float32) [3]float32 {
	n := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / n, v[1] / n, v[2] / n}
}
