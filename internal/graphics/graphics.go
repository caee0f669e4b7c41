package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the viewer window.
type Window struct {
	Width, Height int
	Title         string
	Fullscreen    bool
	Background    color.RGBA
}

// Run opens the window and drives the main loop. Each frame it calls update
// (input, loads, animation), then clears to the background color and calls
// draw. close runs while the GL context is still alive, so GPU resources can
// be released there. Run returns when the window is closed.
func Run(w Window, update, draw, close func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if w.Fullscreen {
		flags |= uint32(rl.FlagFullscreenMode)
	}
	rl.SetConfigFlags(flags)
	width, height := int32(w.Width), int32(w.Height)
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()
	if w.Fullscreen {
		rl.SetWindowSize(rl.GetMonitorWidth(0), rl.GetMonitorHeight(0))
	}
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
	if close != nil {
		close()
	}
}
