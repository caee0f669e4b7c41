package ui

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"glb-viewer/internal/fonts"
	"glb-viewer/internal/ui/css"
)

//go:embed default.css
var defaultCSS string

// fontAtlasSize is the glyph size fonts are rasterized at.
const fontAtlasSize = 32

// Engine holds the stylesheet and nodes and draws them with raylib.
// Draw order is node order; hit testing runs in reverse so the topmost node wins.
type Engine struct {
	sheet  *css.Stylesheet
	nodes  []*Node
	styles []css.Style

	fontPath string
	font     rl.Font
	glyphs   []rune
	fontErr  error
}

// New creates an engine styled by the built-in sheet.
func New() *Engine {
	sheet, err := css.Parse(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: default stylesheet: %v", err))
	}
	return &Engine{sheet: sheet}
}

// LoadCSS appends the rules of a CSS file, overriding the built-in ones.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := css.Parse(string(data))
	if err != nil {
		return fmt.Errorf("ui: %s: %w", path, err)
	}
	e.sheet.Rules = append(e.sheet.Rules, sheet.Rules...)
	return nil
}

// SetFont selects a TTF/OTF file for text. It is loaded on the next Layout,
// once the GL context exists; until then, and if loading fails, raylib's
// default font is used. That font only covers ASCII.
func (e *Engine) SetFont(path string) {
	e.fontPath = path
	e.fontErr = nil
	e.glyphs = nil
}

// FontErr reports why the font set with SetFont could not be loaded.
func (e *Engine) FontErr() error {
	return e.fontErr
}

// ensureFont (re)builds the font atlas whenever the node texts need glyphs
// the current atlas lacks.
func (e *Engine) ensureFont() {
	if e.fontPath == "" || e.fontErr != nil {
		return
	}
	texts := make([]string, len(e.nodes))
	for i, n := range e.nodes {
		texts[i] = n.Text
	}
	glyphs := fonts.Codepoints(texts...)
	if e.font.Texture.ID != 0 && slices.Equal(glyphs, e.glyphs) {
		return
	}
	f := rl.LoadFontEx(e.fontPath, fontAtlasSize, glyphs)
	if f.Texture.ID == 0 {
		e.fontErr = fmt.Errorf("ui: cannot load font %s", e.fontPath)
		return
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	e.glyphs = glyphs
}

func (e *Engine) measure(text string, size int32) int32 {
	if e.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(e.font, text, float32(size), 1).X)
	}
	return rl.MeasureText(text, size)
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes ...*Node) {
	e.nodes = nodes
	e.styles = make([]css.Style, len(nodes))
}

// Layout resolves styles (hover included) and places every node for a screen
// of the given size. Anchored nodes must come after their anchor.
func (e *Engine) Layout(screenW, screenH int32) {
	e.ensureFont()
	for i, n := range e.nodes {
		style := css.Resolve(e.sheet.Match(n.Class, n.ID, n.Hover))
		e.styles[i] = style
		textW := int32(0)
		if n.Text != "" {
			textW = e.measure(n.Text, style.FontSize)
		}
		n.Bounds = style.Place(screenW, screenH, textW, style.FontSize)
		if a := n.After; a != nil {
			n.Bounds.X = a.Bounds.Right() + float32(style.Left)
			n.Bounds.Y = a.Bounds.Y + float32(style.Top)
		}
	}
}

// UpdateHover marks the topmost node under the pointer as hovered.
func (e *Engine) UpdateHover(x, y float32) {
	hit := e.HitTest(x, y)
	for _, n := range e.nodes {
		n.Hover = n == hit
	}
}

// HitTest returns the topmost node containing (x, y), or nil.
func (e *Engine) HitTest(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		if e.nodes[i].Bounds.Contains(x, y) {
			return e.nodes[i]
		}
	}
	return nil
}

// Draw draws background, border and text for every node. Call after Layout.
func (e *Engine) Draw() {
	for i, n := range e.nodes {
		style := e.styles[i]
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.W), int32(n.Bounds.H)
		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text == "" {
			continue
		}
		tx, ty := x+style.Padding, y+style.Padding
		if e.font.Texture.ID != 0 {
			rl.DrawTextEx(e.font, n.Text, rl.NewVector2(float32(tx), float32(ty)), float32(style.FontSize), 1, style.Color)
		} else {
			rl.DrawText(n.Text, tx, ty, style.FontSize, style.Color)
		}
	}
}

// Close releases the loaded font.
func (e *Engine) Close() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}
