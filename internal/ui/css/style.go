package css

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Style holds resolved values used for drawing.
// LeftPct/TopPct are 0–100 for percentage positioning; -1 means Left/Top are pixels.
// Zero Width or Height means "fit the text".
type Style struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
}

// Default returns transparent background, black text, no border, 4px padding.
func Default() Style {
	return Style{
		Color:    color.RGBA{A: 255},
		Border:   color.RGBA{A: 255},
		LeftPct:  -1,
		TopPct:   -1,
		Padding:  4,
		FontSize: 16,
	}
}

// ParseColor accepts #RGB, #RRGGBB and "transparent".
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return color.RGBA{}, true
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// ParsePx parses a number with an optional "px" suffix. Unitless is pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in 0–100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	num, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// Resolve builds a Style from merged declarations. Unknown keys and
// unparsable values are ignored.
func Resolve(props map[string]string) Style {
	out := Default()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = c.A > 0
			}
		case "width":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Height = n
			}
		case "left":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}

// Rect is a screen-space box in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the x coordinate just past r.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Place sizes and positions a box on a screen. contentW/contentH are the
// natural size of the box's text and apply when Width/Height are unset.
// Percentage positions place the box within the free space, so 100% is flush
// with the right or bottom edge.
func (s Style) Place(screenW, screenH, contentW, contentH int32) Rect {
	w, h := s.Width, s.Height
	if w == 0 {
		w = contentW + 2*s.Padding
	}
	if h == 0 {
		h = contentH + 2*s.Padding
	}
	x, y := s.Left, s.Top
	if s.LeftPct >= 0 {
		x = (screenW - w) * s.LeftPct / 100
	}
	if s.TopPct >= 0 {
		y = (screenH - h) * s.TopPct / 100
	}
	return Rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h)}
}
