// Package trigger provides small state machines that decide when a burst
// should be created. Each is stepped once per frame; none of them touches a
// ParticleManager directly.
//
//   - [LoopEmitter] rises and asks for a burst every 5 steps.
//   - [CooldownEmitter] fires once and is ready again after 60 steps.
//   - [DropEmitter] falls under gravity and reports the step it lands.
//
// Emitters draw themselves through a burst.Renderer.
package trigger
