package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func light(kind Kind, c color.RGBA, intensity float32, pos [3]float32) *Node {
	n := NewNode(kind, kind.String())
	n.Color = c
	n.Intensity = intensity
	n.Transform.Position = pos
	return n
}

func TestLightingOf(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	g := NewGraph()
	g.Add(NewNode(KindPlaceholder, "cube"))
	g.Add(light(KindDirectionalLight, white, 1, [3]float32{2, 2, 2}))
	g.Add(light(KindAmbientLight, white, 0.4, [3]float32{}))
	g.Add(light(KindDirectionalLight, color.RGBA{R: 255, A: 255}, 5, [3]float32{0, 0, 1}))

	l := LightingOf(g)

	want := float32(1 / 1.7320508)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want, l.Direction[i], 1e-5)
		assert.InDelta(t, 1, l.Diffuse[i], 1e-6)
		assert.InDelta(t, 0.4, l.Ambient[i], 1e-6)
	}
}

func TestLightingOf_AmbientAddsUp(t *testing.T) {
	g := NewGraph()
	g.Add(light(KindAmbientLight, color.RGBA{R: 255, A: 255}, 0.5, [3]float32{}))
	g.Add(light(KindAmbientLight, color.RGBA{G: 255, A: 255}, 0.25, [3]float32{}))

	l := LightingOf(g)

	assert.InDeltaSlice(t, []float32{0.5, 0.25, 0}, l.Ambient[:], 1e-6)
	assert.Equal(t, [3]float32{}, l.Diffuse)
}

func TestLightingOf_SunAtOrigin(t *testing.T) {
	g := NewGraph()
	g.Add(light(KindDirectionalLight, color.RGBA{A: 255}, 1, [3]float32{}))

	assert.Equal(t, [3]float32{0, 1, 0}, LightingOf(g).Direction)
}
