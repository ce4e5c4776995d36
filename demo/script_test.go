package demo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 144, "y": 188},
			{"action": "press", "label": "Dust"},
			{"action": "wait", "frames": 3}
		]
	}`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].X != 144 || runner.steps[1].Y != 188 {
		t.Error("click step mismatch")
	}
	if runner.steps[2].Label != "Dust" {
		t.Error("press step mismatch")
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "drag"}]}`},
		{"unknown button", `{"steps": [{"action": "press", "label": "Fireworks"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"action": "wait", "frames": 1}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScriptFile(path); err != nil {
		t.Fatalf("LoadScriptFile: %v", err)
	}
	if _, err := LoadScriptFile(path + ".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestScript_ClickWaitsForInjectedInput(t *testing.T) {
	g, _ := newTestGame(t)
	runner, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 144, "y": 188}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScript(runner)

	g.Step(Pointer{}) // click queued; press consumed
	if got := g.Particles.ParticleCount(); got != 10 {
		t.Fatalf("particles = %d, want 10 from the explosion", got)
	}
	if g.ScriptDone() {
		t.Error("done while the release is still queued")
	}
	g.Step(Pointer{}) // release consumed
	g.Step(Pointer{})
	if !g.ScriptDone() {
		t.Error("not done after the queue drained")
	}
}

func TestScript_PressWaitScreenshot(t *testing.T) {
	g, _ := newTestGame(t)
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "label": "Confetti"},
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "confetti"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetScript(runner)

	g.Step(Pointer{})
	if got := g.Particles.GroupCount(); got != 3 {
		t.Fatalf("groups = %d, want 3", got)
	}
	steps(g, 3)
	if g.ScriptDone() || len(g.screenshots) != 0 {
		t.Fatal("screenshot taken before the wait ended")
	}
	steps(g, 1)
	if !g.ScriptDone() {
		t.Error("script not done")
	}
	if got := g.TakeScreenshots(); len(got) != 1 || got[0] != "confetti" {
		t.Errorf("screenshots = %v, want [confetti]", got)
	}
}

func TestScriptDone_NoScript(t *testing.T) {
	g, _ := newTestGame(t)
	g.Step(Pointer{})
	if g.ScriptDone() {
		t.Error("ScriptDone without a script")
	}
}
