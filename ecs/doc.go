// Package ecs provides Donburi integration for burst.
//
// The primary adapter is [Connect], which routes [BurstRequested] events
// published in a [Donburi] world into a burst.ParticleManager. Systems request
// bursts with [RequestBurst]; entities carrying the [Emitter] component
// request their preset on a fixed interval when [UpdateEmitters] runs.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.Connect(world, manager)
//	ecs.NewEmitter(world, pos, ember, 20, -1)
//
//	// each frame
//	ecs.UpdateEmitters(world)
//	ecs.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
