package burst

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

// Anchor tells Preset.At whether a preset's source moves with the origin.
type Anchor uint8

const (
	AnchorOrigin Anchor = iota // source is relative to the origin passed to At
	AnchorWorld                // source is in world coordinates
)

// Preset is a named BurstConfig template.
type Preset struct {
	Name   string
	Anchor Anchor
	// Config holds the template. Its source is relative to the origin unless
	// Anchor is AnchorWorld.
	Config BurstConfig
}

// At returns the preset's config with its source placed at origin.
func (p Preset) At(origin Vec2) BurstConfig {
	cfg := p.Config
	if p.Anchor == AnchorOrigin {
		cfg.Source = cfg.Source.Translate(origin)
	}
	return cfg
}

// WithColor returns a copy of p with its color replaced.
func (p Preset) WithColor(c Color) Preset {
	p.Config.Color = c
	return p
}

// PresetSet is a collection of presets keyed by name.
type PresetSet struct {
	presets map[string]Preset
}

// Get returns the preset called name.
func (s *PresetSet) Get(name string) (Preset, bool) {
	p, ok := s.presets[name]
	return p, ok
}

// Names returns the preset names in sorted order.
func (s *PresetSet) Names() []string {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultPresets returns the embedded preset set. It panics if the embedded
// file is invalid, which the package tests guard against.
func DefaultPresets() *PresetSet {
	set, err := LoadPresets(defaultPresetsYAML)
	if err != nil {
		panic(err)
	}
	return set
}

// LoadPresetsFile reads and parses a preset file.
func LoadPresetsFile(path string) (*PresetSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("burst: failed to read preset file %s: %w", path, err)
	}
	set, err := LoadPresets(data)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return set, nil
}

// LoadPresets parses preset YAML.
func LoadPresets(data []byte) (*PresetSet, error) {
	var file yamlPresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("burst: failed to parse presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("burst: preset file contains no presets")
	}
	set := &PresetSet{presets: make(map[string]Preset, len(file.Presets))}
	for name, yp := range file.Presets {
		p, err := yp.toPreset(name)
		if err != nil {
			return nil, err
		}
		set.presets[name] = p
	}
	return set, nil
}

type yamlPresetFile struct {
	Presets map[string]yamlPreset `yaml:"presets"`
}

type yamlSource struct {
	Kind   string     `yaml:"kind"`
	Anchor string     `yaml:"anchor"`
	At     [2]float32 `yaml:"at"`
	Radius float32    `yaml:"radius"`
	Min    [2]float32 `yaml:"min"`
	Max    [2]float32 `yaml:"max"`
}

type yamlShape struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
}

type yamlPreset struct {
	Source    yamlSource `yaml:"source"`
	Shape     yamlShape  `yaml:"shape"`
	XVelocity [2]float32 `yaml:"xVelocity"`
	YVelocity [2]float32 `yaml:"yVelocity"`
	Lifetime  [2]float32 `yaml:"lifetime"`
	Color     Color      `yaml:"color"`
	Size      [2]uint32  `yaml:"size"`
	Count     uint32     `yaml:"count"`
	FadeOut   bool       `yaml:"fadeOut"`
}

func (yp yamlPreset) toPreset(name string) (Preset, error) {
	p := Preset{Name: name}

	switch yp.Source.Anchor {
	case "", "origin":
		p.Anchor = AnchorOrigin
	case "world":
		p.Anchor = AnchorWorld
	default:
		return Preset{}, fmt.Errorf("burst: preset %q: unknown anchor %q", name, yp.Source.Anchor)
	}

	src := yp.Source
	switch src.Kind {
	case "point":
		p.Config.Source = PointSource(src.At[0], src.At[1])
	case "circle":
		p.Config.Source = CircleSource(Vec2{src.At[0], src.At[1]}, src.Radius)
	case "rect":
		p.Config.Source = RectSource(Vec2{src.Min[0], src.Min[1]}, Vec2{src.Max[0], src.Max[1]})
	default:
		return Preset{}, fmt.Errorf("burst: preset %q: unknown source kind %q", name, src.Kind)
	}

	switch yp.Shape.Kind {
	case "", "square":
		p.Config.Shape = SquareShape()
	case "circle":
		p.Config.Shape = CircleShape()
	case "sprite":
		if yp.Shape.Name == "" {
			return Preset{}, fmt.Errorf("burst: preset %q: sprite shape needs a name", name)
		}
		p.Config.Shape = SpriteShape(yp.Shape.Name)
	default:
		return Preset{}, fmt.Errorf("burst: preset %q: unknown shape kind %q", name, yp.Shape.Kind)
	}

	p.Config.XVelocity = FloatRange{yp.XVelocity[0], yp.XVelocity[1]}
	p.Config.YVelocity = FloatRange{yp.YVelocity[0], yp.YVelocity[1]}
	p.Config.Lifetime = FloatRange{yp.Lifetime[0], yp.Lifetime[1]}
	p.Config.Color = yp.Color
	p.Config.Size = IntRange{yp.Size[0], yp.Size[1]}
	p.Config.Count = yp.Count
	p.Config.FadeOut = yp.FadeOut
	return p, nil
}

// ParseColor parses "0xRRGGBBAA", "#RRGGBBAA" or a decimal integer.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		s = "0x" + rest
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("burst: invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

// UnmarshalYAML decodes a color from a hex string or an integer scalar.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("burst: line %d: color must be a scalar", value.Line)
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// String formats c as 0xRRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}
