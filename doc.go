// Package burst is a small 2D particle burst engine.
//
// A burst is a group of particles spawned in a single call from a
// [BurstConfig]: a spawn [Source] (point, circle or rectangle), value ranges
// for velocity, lifetime and size, a color, a [Shape] and an optional
// fade-out. The [ParticleManager] owns every live group, advances all of
// them with a fixed 1/60 s step, prunes particles whose life ran out and
// hands the survivors to a [Renderer].
//
// # Quick start
//
//	m := burst.NewParticleManager(burst.NewPCGSource(1), burst.ManagerConfig{})
//	explosion, _ := burst.DefaultPresets().Get("explosion")
//	m.CreateBurst(explosion.At(burst.Vec2{X: 100, Y: 80}))
//
//	// once per frame
//	m.Update()
//	m.Draw(renderer)
//
// All randomness comes from the injected [RandomSource], so the same seed and
// the same sequence of calls always reproduce the same particles. Values are
// quantized to 1/1000 of a unit by the [Sampler].
//
// # Rendering
//
// The engine never draws by itself. [EbitenRenderer] draws squares and
// circles with Ebitengine's vector package and sprites from an [Atlas].
// The term package renders the same particles into terminal cells.
//
// # Presets
//
// Named burst templates are read from YAML with [LoadPresets]. The demo's
// presets are embedded and available through [DefaultPresets].
//
// Related packages: trigger (emitters that decide when to burst), ecs
// ([Donburi] integration), demo (the interactive demo screen).
//
// [Donburi]: https://github.com/yohamta/donburi
package burst
