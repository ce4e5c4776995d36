package burst

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPresets(t *testing.T) {
	set := DefaultPresets()
	want := []string{"confetti", "dust", "ember", "explosion", "trail"}
	got := set.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	trail, _ := set.Get("trail")
	if trail.Config.Count != 10 || !trail.Config.FadeOut {
		t.Errorf("trail = %+v", trail.Config)
	}
	if trail.Config.Color != 0xAA55CCFF {
		t.Errorf("trail color = %v, want 0xAA55CCFF", trail.Config.Color)
	}
	if trail.Config.YVelocity != (FloatRange{1, 2}) {
		t.Errorf("trail yVelocity = %v", trail.Config.YVelocity)
	}

	explosion, _ := set.Get("explosion")
	if explosion.Config.Source.Kind != SourceCircle || explosion.Config.Source.Radius != 1 {
		t.Errorf("explosion source = %+v", explosion.Config.Source)
	}
	if explosion.Config.Lifetime != (FloatRange{0.4, 0.4}) {
		t.Errorf("explosion lifetime = %v", explosion.Config.Lifetime)
	}

	ember, _ := set.Get("ember")
	if ember.Config.Shape != SpriteShape("spark") {
		t.Errorf("ember shape = %+v", ember.Config.Shape)
	}
}

func TestPresetAt_TranslatesOriginAnchored(t *testing.T) {
	dust, _ := DefaultPresets().Get("dust")
	cfg := dust.At(Vec2{330, 178})
	if cfg.Source.Min != (Vec2{328, 176}) || cfg.Source.Max != (Vec2{332, 176}) {
		t.Errorf("dust source = %+v, want min {328 176} max {332 176}", cfg.Source)
	}
	if dust.Config.Source.Min != (Vec2{-2, -2}) {
		t.Error("At modified the preset template")
	}
}

func TestPresetAt_WorldAnchoredIgnoresOrigin(t *testing.T) {
	confetti, _ := DefaultPresets().Get("confetti")
	if confetti.Anchor != AnchorWorld {
		t.Fatalf("confetti anchor = %v, want world", confetti.Anchor)
	}
	cfg := confetti.At(Vec2{50, 50})
	if cfg.Source.Min != (Vec2{0, -10}) || cfg.Source.Max != (Vec2{384, 0}) {
		t.Errorf("confetti source = %+v", cfg.Source)
	}
}

func TestPresetWithColor(t *testing.T) {
	confetti, _ := DefaultPresets().Get("confetti")
	purple := confetti.WithColor(0xAA55CCFF)
	if purple.Config.Color != 0xAA55CCFF {
		t.Errorf("color = %v", purple.Config.Color)
	}
	if confetti.Config.Color != 0x33CCFFFF {
		t.Error("WithColor modified the original preset")
	}
}

func TestLoadPresets_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "presets: {}", "no presets"},
		{"bad yaml", "presets: [", "failed to parse"},
		{"unknown source", "presets:\n  a:\n    source: {kind: cone}", `unknown source kind "cone"`},
		{"unknown shape", "presets:\n  a:\n    source: {kind: point}\n    shape: {kind: star}", `unknown shape kind "star"`},
		{"unnamed sprite", "presets:\n  a:\n    source: {kind: point}\n    shape: {kind: sprite}", "needs a name"},
		{"unknown anchor", "presets:\n  a:\n    source: {kind: point, anchor: camera}", `unknown anchor "camera"`},
		{"bad color", "presets:\n  a:\n    source: {kind: point}\n    color: purple", "invalid color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPresets([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadPresetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := `presets:
  spark:
    source: {kind: circle, at: [1, 2], radius: 4}
    shape: {kind: circle}
    xVelocity: [-1, 1]
    yVelocity: [0, 0]
    lifetime: [1, 2]
    color: "#FF000080"
    size: [3, 5]
    count: 7
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := LoadPresetsFile(path)
	if err != nil {
		t.Fatalf("LoadPresetsFile: %v", err)
	}
	p, ok := set.Get("spark")
	if !ok {
		t.Fatal("spark preset missing")
	}
	if p.Config.Source.Center != (Vec2{1, 2}) || p.Config.Source.Radius != 4 {
		t.Errorf("source = %+v", p.Config.Source)
	}
	if p.Config.Color != 0xFF000080 || p.Config.Size != (IntRange{3, 5}) || p.Config.Count != 7 {
		t.Errorf("config = %+v", p.Config)
	}
	if p.Config.Shape.Kind != ShapeCircle || p.Config.FadeOut {
		t.Errorf("shape/fade = %v/%v", p.Config.Shape.Kind, p.Config.FadeOut)
	}

	if _, err := LoadPresetsFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"0xAA55CCFF", 0xAA55CCFF},
		{"#33ccffff", 0x33CCFFFF},
		{"255", 0x000000FF},
		{" 0x00000000 ", ColorTransparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("0x1FFFFFFFF"); err == nil {
		t.Error("expected overflow error")
	}
}
