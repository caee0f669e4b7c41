// Package viewer holds the application state of the model viewer and the
// logic that mutates it: model replacement, resize, click recolor and the
// per-frame tick. Nothing here touches the GPU directly; drawing and model
// upload are injected, so the package is testable without a window.
package viewer

import (
	"context"
	"image/color"
	"log/slog"
	"math/rand/v2"

	"github.com/chewxy/math32"

	"glb-viewer/internal/config"
	"glb-viewer/internal/scene"
)

// Watcher follows the most recently loaded model file.
type Watcher interface {
	Watch(path string) error
}

// Deps are the collaborators App cannot build itself.
type Deps struct {
	// Builder uploads decoded assets. Required.
	Builder NodeBuilder
	// Placeholder draws the cube. Nil leaves it undrawn (tests).
	Placeholder scene.Drawable
	// Fetcher serves URL loads. Nil disables them.
	Fetcher Fetcher
	// Watcher, when set, is pointed at each successfully loaded file.
	Watcher Watcher
	Log     *slog.Logger
	// Rand drives click recoloring. Nil uses a randomly seeded source.
	Rand *rand.Rand
}

// App is the viewer's whole mutable state, owned by the render thread.
type App struct {
	Scene    *scene.Graph
	Camera   *scene.Camera
	Viewport scene.Viewport
	Orbit    *scene.Orbit

	placeholder  *scene.Node
	flow         *Flow
	loader       *Loader
	watcher      Watcher
	log          *slog.Logger
	rng          *rand.Rand
	rotationStep float32
	zoomStep     float32
}

// New builds the initial scene: the placeholder cube, a directional light and
// an ambient light, with the camera sized to the configured window.
// p must have passed config validation.
func New(p config.Prefs, d Deps) *App {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}
	rng := d.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	vp := scene.Viewport{Width: p.Window.Width, Height: p.Window.Height}
	cam := scene.NewCamera(p.Camera.Fov, vp.Aspect(), p.Camera.Near, p.Camera.Far)
	cam.Position = p.Camera.Position

	cube := scene.NewNode(scene.KindPlaceholder, "placeholder")
	cube.Color = config.MustColor(p.Placeholder.Color)
	cube.Outline = &scene.Outline{Color: config.MustColor(p.Placeholder.EdgeColor)}
	size := p.Placeholder.Size
	cube.Transform.Scale = [3]float32{size, size, size}
	cube.Drawable = d.Placeholder

	sun := scene.NewNode(scene.KindDirectionalLight, "directional")
	sun.Color = config.MustColor(p.Lights.Directional.Color)
	sun.Intensity = p.Lights.Directional.Intensity
	sun.Transform.Position = p.Lights.Directional.Position

	ambient := scene.NewNode(scene.KindAmbientLight, "ambient")
	ambient.Color = config.MustColor(p.Lights.Ambient.Color)
	ambient.Intensity = p.Lights.Ambient.Intensity

	graph := scene.NewGraph()
	graph.Add(cube)
	graph.Add(sun)
	graph.Add(ambient)

	return &App{
		Scene:        graph,
		Camera:       cam,
		Viewport:     vp,
		Orbit:        scene.NewOrbit(cam, p.Controls.Damping, p.Controls.DampingFactor),
		placeholder:  cube,
		flow:         NewFlow(graph, cube, d.Builder, log, p.Model.Scale),
		loader:       NewLoader(d.Fetcher, p.Model.MaxBytes),
		watcher:      d.Watcher,
		log:          log,
		rng:          rng,
		rotationStep: p.RotationStep,
		zoomStep:     p.Controls.ZoomStep,
	}
}

// State returns the replacement flow's state.
func (a *App) State() State {
	return a.flow.State()
}

// Model returns the loaded model node, or nil.
func (a *App) Model() *scene.Node {
	return a.flow.Model()
}

// Placeholder returns the cube node. It exists for the app's lifetime even
// after a model has taken it out of the scene.
func (a *App) Placeholder() *scene.Node {
	return a.placeholder
}

// Resize records the new output size and updates the camera aspect. Zero or
// negative sizes (a minimized window) are ignored.
func (a *App) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	a.Viewport = scene.Viewport{Width: width, Height: height}
	a.Camera.Aspect = a.Viewport.Aspect()
	return true
}

// Click gives the placeholder a random 24-bit color. Loaded models keep their materials.
func (a *App) Click() {
	n := a.rng.IntN(0x1000000)
	a.placeholder.Color = color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}
}

// Drag orbits the camera by a pointer movement in pixels.
func (a *App) Drag(dx, dy float32) {
	a.Orbit.Drag(dx, dy, a.Viewport.Height)
}

// Wheel dollies the camera; positive steps move closer.
func (a *App) Wheel(steps float32) {
	if steps == 0 {
		return
	}
	a.Orbit.Dolly(math32.Pow(a.zoomStep, steps))
}

// Tick advances one frame: spin the placeholder (whether or not it is still in
// the scene) and the loaded model, then update the orbit controls.
func (a *App) Tick() {
	step := a.rotationStep
	a.placeholder.Rotate(step, step, 0)
	if m := a.flow.Model(); m != nil {
		m.Rotate(step, step, 0)
	}
	a.Orbit.Update()
}

// OpenFile starts loading a .glb file.
func (a *App) OpenFile(ctx context.Context, path string) {
	a.log.Info("loading model", "file", path)
	a.loader.LoadFile(ctx, path)
}

// OpenURL starts fetching and loading the asset at url.
func (a *App) OpenURL(ctx context.Context, url string) {
	a.log.Info("loading model", "url", url)
	a.loader.LoadURL(ctx, url)
}

// OpenBytes starts decoding an in-memory asset.
func (a *App) OpenBytes(ctx context.Context, name string, buf []byte) {
	a.loader.LoadBytes(ctx, name, buf)
}

// Pump applies every finished load, in completion order. Call once per frame
// from the render thread. It returns how many results were applied or rejected.
func (a *App) Pump() int {
	n := 0
	for {
		res, ok := a.loader.Poll()
		if !ok {
			return n
		}
		n++
		if err := a.flow.Complete(res); err != nil {
			continue
		}
		if a.watcher != nil && res.Source.Kind == SourceFile {
			if err := a.watcher.Watch(res.Source.Ref); err != nil {
				a.log.Warn("cannot watch model file", "file", res.Source.Ref, "error", err)
			}
		}
	}
}

// Wait blocks until all started loads have finished. Pump applies them.
func (a *App) Wait() {
	a.loader.Wait()
}
