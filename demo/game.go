// Package demo is the interactive burst showcase: four buttons along the
// bottom of a 384x216 screen trigger a rising trail, a one-shot explosion, a
// confetti shower and a falling block that kicks up dust when it lands.
//
// Game is independent of any backend. EbitenGame runs it in a window; the
// terminal example drives it through a tcell screen.
package demo

import (
	"fmt"
	"log"

	"github.com/phanxgames/burst"
	"github.com/phanxgames/burst/ecs"
	"github.com/phanxgames/burst/sound"
	"github.com/phanxgames/burst/trigger"
	"github.com/yohamta/donburi"
)

// Emitter placement on the demo screen. Positions are centers.
var (
	trailStart     = burst.Vec2{X: 48, Y: 170}
	explosionPos   = burst.Vec2{X: 144, Y: 168}
	dustStart      = burst.Vec2{X: 330, Y: 168}
	dustTargetY    = float32(186)
	emberPos       = burst.Vec2{X: 240, Y: 150}
	emitterSize    = float32(16)
	emberInterval  = 20
	confettiColors = []burst.Color{0x33CCFFFF, 0xAA55CCFF, 0x5555FFFF}
)

const (
	trailColor     burst.Color = 0x8833AAFF
	explosionColor burst.Color = 0xCC3333FF
	dustColor      burst.Color = 0x3333CCFF

	stepSeconds float32 = 1.0 / burst.StepsPerSecond
)

var requiredPresets = []string{"trail", "explosion", "confetti", "dust"}

// Sounds plays effects for demo events. *sound.Player implements it.
type Sounds interface {
	Play(e sound.Effect)
}

// Game holds the demo state. Step advances it by one fixed step and Render
// draws it through any burst.Renderer.
type Game struct {
	Particles *burst.ParticleManager
	Trail     *trigger.LoopEmitter
	Explosion *trigger.CooldownEmitter
	Dust      *trigger.DropEmitter
	Buttons   []*Button

	cfg     Config
	presets map[string]burst.Preset
	world   donburi.World
	sounds  Sounds

	wasDown     bool
	pressQueue  []ButtonID
	injectQueue []Pointer
	runner      *ScriptRunner
	screenshots []string
	frame       uint64
}

// NewGame builds a game from cfg. sounds may be nil.
func NewGame(cfg Config, sounds Sounds) (*Game, error) {
	set := burst.DefaultPresets()
	if cfg.PresetFile != "" {
		var err error
		if set, err = burst.LoadPresetsFile(cfg.PresetFile); err != nil {
			return nil, err
		}
	}
	names := requiredPresets
	if cfg.Embers {
		names = append(names[:len(names):len(names)], "ember")
	}
	presets := make(map[string]burst.Preset, len(names))
	for _, name := range names {
		p, ok := set.Get(name)
		if !ok {
			return nil, fmt.Errorf("demo: preset %q is missing", name)
		}
		presets[name] = p
	}

	g := &Game{
		Particles: burst.NewParticleManager(burst.NewPCGSource(cfg.Seed),
			burst.ManagerConfig{MaxParticles: cfg.MaxParticles}),
		Trail:     trigger.NewLoopEmitter(trailStart.X, trailStart.Y, emitterSize, trailColor),
		Explosion: trigger.NewCooldownEmitter(explosionPos.X, explosionPos.Y, emitterSize, explosionColor),
		Dust:      trigger.NewDropEmitter(dustStart.X, dustStart.Y, emitterSize, dustColor, dustTargetY),
		Buttons:   Layout(ScreenWidth, ScreenHeight),
		cfg:       cfg,
		presets:   presets,
		world:     donburi.NewWorld(),
		sounds:    sounds,
	}
	g.Particles.SetDebugMode(cfg.Debug)
	ecs.Connect(g.world, g.Particles)
	if cfg.Embers {
		ecs.NewEmitter(g.world, emberPos, presets["ember"], emberInterval, -1)
	}

	if cfg.Script != "" {
		runner, err := LoadScriptFile(cfg.Script)
		if err != nil {
			return nil, err
		}
		g.runner = runner
	}
	return g, nil
}

// SetScript attaches a script runner, replacing any loaded from the config.
func (g *Game) SetScript(r *ScriptRunner) {
	g.runner = r
}

// ScriptDone reports whether an attached script has finished. It is false
// when no script is attached.
func (g *Game) ScriptDone() bool {
	return g.runner != nil && g.runner.Done()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// World returns the Donburi world that holds emitter entities.
func (g *Game) World() donburi.World {
	return g.world
}

// Frame returns the number of completed steps.
func (g *Game) Frame() uint64 {
	return g.frame
}

// PressButton queues a press of the button, as if it had been clicked. It is
// handled on the next Step.
func (g *Game) PressButton(id ButtonID) {
	g.pressQueue = append(g.pressQueue, id)
}

// Screenshot queues a labeled screenshot for the host to capture after the
// next frame is drawn.
func (g *Game) Screenshot(label string) {
	g.screenshots = append(g.screenshots, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (g *Game) TakeScreenshots() []string {
	labels := g.screenshots
	g.screenshots = nil
	return labels
}

// Step advances the demo by one fixed step. host is the real pointer;
// queued injected events take its place while any remain.
//
// Order within a step: script, input, trail, explosion, dust, ambient
// emitters, particles. Bursts created during a step move on that same step.
func (g *Game) Step(host Pointer) {
	if g.runner != nil {
		g.runner.step(g)
	}

	p := g.nextPointer(host)
	pressed := p.Down && !g.wasDown
	g.wasDown = p.Down
	for _, b := range g.Buttons {
		over := b.Contains(p.X, p.Y)
		b.update(over, stepSeconds)
		if pressed && over {
			g.press(b.ID)
		}
	}
	for _, id := range g.pressQueue {
		g.press(id)
	}
	g.pressQueue = g.pressQueue[:0]

	if g.Trail.Update() {
		g.Particles.CreateBurst(g.presets["trail"].At(g.Trail.Pos))
	}
	g.Explosion.Update()
	if g.Dust.Update() {
		g.Particles.CreateBurst(g.presets["dust"].At(g.Dust.ImpactPoint()))
		g.play(sound.EffectThud)
	}

	ecs.UpdateEmitters(g.world)
	ecs.ProcessEvents(g.world)

	g.Particles.Update()
	g.frame++
}

func (g *Game) press(id ButtonID) {
	switch id {
	case ButtonTrail:
		if !g.Trail.Active {
			g.Trail.Activate(g.Trail.Origin.X, g.Trail.Origin.Y)
		}
		g.play(sound.EffectClick)
	case ButtonExplosion:
		if g.Explosion.Trigger() {
			g.Particles.CreateBurst(g.presets["explosion"].At(g.Explosion.Pos))
			g.play(sound.EffectBoom)
		}
	case ButtonConfetti:
		confetti := g.presets["confetti"]
		for _, c := range confettiColors {
			g.Particles.CreateBurst(confetti.WithColor(c).At(burst.Vec2{}))
		}
		g.play(sound.EffectChime)
	case ButtonDust:
		if g.Dust.Trigger() {
			g.play(sound.EffectClick)
		}
	default:
		log.Printf("[demo] unknown button %d", id)
	}
}

func (g *Game) play(e sound.Effect) {
	if g.sounds != nil {
		g.sounds.Play(e)
	}
}

// Render draws the buttons, the emitters, the particles and the stats line,
// in that order.
func (g *Game) Render(r burst.Renderer) {
	for _, b := range g.Buttons {
		b.Draw(r)
	}
	g.Trail.Draw(r)
	g.Explosion.Draw(r)
	g.Dust.Draw(r)
	g.Particles.Draw(r)
	if g.cfg.ShowStats {
		burst.DrawText(r, fmt.Sprintf("particles: %d", g.Particles.ParticleCount()), 4, 4, burst.ColorWhite)
	}
}
