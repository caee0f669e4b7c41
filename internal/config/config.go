package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// ErrInvalid wraps every validation failure returned by Load and Validate.
var ErrInvalid = errors.New("config: invalid")

// Prefs holds viewer preferences. Zero-valued sections in a partial file keep
// their defaults because Load unmarshals on top of Default().
type Prefs struct {
	Window       WindowPrefs      `yaml:"window"`
	Background   string           `yaml:"background"`
	Placeholder  PlaceholderPrefs `yaml:"placeholder"`
	RotationStep float32          `yaml:"rotation_step"`
	Camera       CameraPrefs      `yaml:"camera"`
	Controls     ControlsPrefs    `yaml:"controls"`
	Lights       LightsPrefs      `yaml:"lights"`
	Model        ModelPrefs       `yaml:"model"`
	ShowFPS      bool             `yaml:"show_fps"`
	ShowLog      bool             `yaml:"show_log"`
	Grid         bool             `yaml:"grid"`
	Font         string           `yaml:"font,omitempty"` // file or family under assets/fonts
	Log          LogPrefs         `yaml:"log"`
}

type WindowPrefs struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type PlaceholderPrefs struct {
	Color     string  `yaml:"color"`
	EdgeColor string  `yaml:"edge_color"`
	Size      float32 `yaml:"size"`
}

type CameraPrefs struct {
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position,flow"`
}

type ControlsPrefs struct {
	Damping       bool    `yaml:"damping"`
	DampingFactor float32 `yaml:"damping_factor"`
	ZoomStep      float32 `yaml:"zoom_step"`
}

type LightPrefs struct {
	Color     string     `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Position  [3]float32 `yaml:"position,flow,omitempty"`
}

type LightsPrefs struct {
	Directional LightPrefs `yaml:"directional"`
	Ambient     LightPrefs `yaml:"ambient"`
}

// ModelPrefs controls how loaded models are placed and where they come from.
// URL, when set, is loaded once at startup (the fixed-asset deployment).
type ModelPrefs struct {
	Scale    [3]float32 `yaml:"scale,flow"`
	URL      string     `yaml:"url,omitempty"`
	Watch    bool       `yaml:"watch"`
	MaxBytes int64      `yaml:"max_bytes"`
}

type LogPrefs struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the stock viewer: white background, blue cube with black
// edges, 75° camera at z=5, damped orbit controls, one directional and one
// ambient light.
func Default() Prefs {
	return Prefs{
		Window: WindowPrefs{
			Width:  1280,
			Height: 720,
			Title:  "glb viewer",
		},
		Background: "#ffffff",
		Placeholder: PlaceholderPrefs{
			Color:     "#0800ff",
			EdgeColor: "#000000",
			Size:      1,
		},
		RotationStep: 0.01,
		Camera: CameraPrefs{
			Fov:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{0, 0, 5},
		},
		Controls: ControlsPrefs{
			Damping:       true,
			DampingFactor: 0.05,
			ZoomStep:      0.95,
		},
		Lights: LightsPrefs{
			Directional: LightPrefs{Color: "#ffffff", Intensity: 1, Position: [3]float32{2, 2, 2}},
			Ambient:     LightPrefs{Color: "#ffffff", Intensity: 0.4},
		},
		Model: ModelPrefs{
			Scale:    [3]float32{1, 1, 1},
			MaxBytes: 256 << 20,
		},
		Log: LogPrefs{
			Level: "info",
			File:  "logs/viewer.log",
		},
	}
}

// Load reads preferences from path. A missing file yields Default() and no
// error; a file that fails the schema or Validate is an error wrapping ErrInvalid.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Prefs{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates YAML data against the schema and returns it merged over Default().
func Parse(data []byte) (Prefs, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Prefs{}, fmt.Errorf("%w: yaml: %v", ErrInvalid, err)
	}
	p := Default()
	if raw == nil {
		return p, nil
	}
	if err := validateSchema(raw); err != nil {
		return Prefs{}, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := p.Validate(); err != nil {
		return Prefs{}, err
	}
	return p, nil
}

// Validate checks what the schema cannot express: colors parse and model scale
// has no zero component (a zero collapses the model to nothing on that axis).
func (p Prefs) Validate() error {
	colors := map[string]string{
		"background":             p.Background,
		"placeholder.color":      p.Placeholder.Color,
		"placeholder.edge_color": p.Placeholder.EdgeColor,
		"lights.directional":     p.Lights.Directional.Color,
		"lights.ambient":         p.Lights.Ambient.Color,
	}
	for field, hex := range colors {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, field, err)
		}
	}
	for i, s := range p.Model.Scale {
		if s == 0 {
			return fmt.Errorf("%w: model.scale[%d] is zero", ErrInvalid, i)
		}
	}
	if p.Camera.Near >= p.Camera.Far {
		return fmt.Errorf("%w: camera.near (%g) must be less than camera.far (%g)", ErrInvalid, p.Camera.Near, p.Camera.Far)
	}
	return nil
}

// Save writes preferences to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParseColor parses #RGB or #RRGGBB into an opaque color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustColor is ParseColor for values that already passed Validate.
func MustColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
