package render

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"glb-viewer/internal/debug"
	"glb-viewer/internal/ui"
	"glb-viewer/internal/viewer"
)

// FilePicker asks the user for a model file without blocking the frame.
type FilePicker interface {
	Open()
	Poll() (string, bool)
}

// Frontend turns window input into App operations and draws the app.
type Frontend struct {
	ctx      context.Context
	app      *viewer.App
	renderer *Renderer
	ui       *ui.Engine
	input    *ui.FileInput
	picker   FilePicker
	overlay  *debug.Debug
	log      *slog.Logger
	pointer  viewer.Pointer

	fontWarned bool
}

// NewFrontend wires the overlay around app. overlay may be nil.
func NewFrontend(ctx context.Context, app *viewer.App, r *Renderer, picker FilePicker, overlay *debug.Debug, log *slog.Logger) *Frontend {
	input := ui.NewFileInput()
	engine := ui.New()
	engine.SetNodes(input.Nodes()...)
	return &Frontend{
		ctx:      ctx,
		app:      app,
		renderer: r,
		ui:       engine,
		input:    input,
		picker:   picker,
		overlay:  overlay,
		log:      log,
	}
}

// UI exposes the overlay engine, e.g. to load a user stylesheet.
func (f *Frontend) UI() *ui.Engine {
	return f.ui
}

// ShowFile sets the file name shown next to the file button.
func (f *Frontend) ShowFile(path string) {
	f.input.SetFile(filepath.Base(path))
}

// Update handles one frame of input, applies finished loads and advances the
// animation. It must run on the thread that owns the window.
func (f *Frontend) Update() {
	if rl.IsWindowResized() {
		f.app.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	f.ui.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	if err := f.ui.FontErr(); err != nil && !f.fontWarned {
		f.fontWarned = true
		f.log.Warn("using default font", "error", err)
	}
	mouse := rl.GetMousePosition()
	f.ui.UpdateHover(mouse.X, mouse.Y)
	f.handlePointer(mouse)
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		f.app.Wheel(wheel)
	}

	if rl.IsFileDropped() {
		f.handleDrop(rl.LoadDroppedFiles())
	}
	if path, ok := f.picker.Poll(); ok {
		f.open(path)
	}

	f.app.Pump()
	f.app.Tick()
}

func (f *Frontend) handlePointer(mouse rl.Vector2) {
	onOverlay := f.input.Hit(mouse.X, mouse.Y)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		f.pointer.Press(mouse.X, mouse.Y, onOverlay)
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && f.pointer.Move(mouse.X, mouse.Y) {
		d := rl.GetMouseDelta()
		f.app.Drag(d.X, d.Y)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		switch f.pointer.Release(mouse.X, mouse.Y, onOverlay) {
		case viewer.GestureClick:
			f.app.Click()
		case viewer.GestureOverlay:
			f.picker.Open()
		}
	}
}

// handleDrop opens the first dropped .glb file.
func (f *Frontend) handleDrop(paths []string) {
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), viewer.ModelExt) {
			f.open(p)
			return
		}
	}
	if len(paths) > 0 {
		f.log.Warn("dropped files ignored", "files", len(paths), "want", viewer.ModelExt)
	}
}

func (f *Frontend) open(path string) {
	f.ShowFile(path)
	f.app.OpenFile(f.ctx, path)
}

// Draw renders the scene, the file input and the debug overlay.
func (f *Frontend) Draw() {
	f.renderer.Draw(f.app.Scene, f.app.Camera)
	f.ui.Draw()
	if f.overlay != nil {
		f.overlay.Draw()
	}
}

// Close releases every GPU resource the app holds. Call before the window closes.
func (f *Frontend) Close() {
	if d := f.app.Placeholder().Drawable; d != nil {
		d.Unload()
	}
	if m := f.app.Model(); m != nil && m.Drawable != nil {
		m.Drawable.Unload()
	}
	f.ui.Close()
	f.renderer.Close()
}
