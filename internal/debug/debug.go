package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 16
	padding    = 10
	lineHeight = fontSize + 4
	// refresh FPS/Mem text every N frames to limit allocations
	updateInterval = 30
	logLines       = 6
)

var (
	statsColor = rl.NewColor(0, 130, 40, 255)
	logColor   = rl.NewColor(60, 60, 60, 255)
)

// Debug draws optional overlays: FPS and heap in the top-right corner and the
// most recent log lines along the bottom. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Lines, when set, feeds the log overlay.
	Lines func() []string

	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

// New returns a Debug with every overlay hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders the enabled overlays. Call last in the draw loop.
func (d *Debug) Draw() {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if d.ShowFPS {
		if refresh || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if refresh || d.lastMemText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, screenW, y)
	}
	if d.Lines != nil {
		d.drawLog(int32(rl.GetScreenHeight()))
	}
}

func drawRight(text string, screenW, y int32) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, statsColor)
}

func (d *Debug) drawLog(screenH int32) {
	lines := d.Lines()
	if len(lines) > logLines {
		lines = lines[len(lines)-logLines:]
	}
	y := screenH - padding - int32(len(lines))*lineHeight
	for _, line := range lines {
		rl.DrawText(line, padding, y, fontSize, logColor)
		y += lineHeight
	}
}
