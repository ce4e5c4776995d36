// Package ecs connects burst to a Donburi world.
package ecs

import (
	"github.com/phanxgames/burst"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// BurstRequested asks for one burst. Systems publish it with RequestBurst;
// a connected BurstSink creates it when the world processes events.
type BurstRequested struct {
	Config burst.BurstConfig
}

// BurstRequestedEventType is the Donburi event type for burst requests.
var BurstRequestedEventType = events.NewEventType[BurstRequested]()

// BurstSink creates bursts. *burst.ParticleManager implements it.
type BurstSink interface {
	CreateBurst(cfg burst.BurstConfig)
}

// Connect subscribes sink to the world's burst requests. Requests are
// delivered in publish order by ProcessEvents.
func Connect(world donburi.World, sink BurstSink) {
	BurstRequestedEventType.Subscribe(world, func(_ donburi.World, e BurstRequested) {
		sink.CreateBurst(e.Config)
	})
}

// RequestBurst queues a burst request on the world.
func RequestBurst(world donburi.World, cfg burst.BurstConfig) {
	BurstRequestedEventType.Publish(world, BurstRequested{Config: cfg})
}

// ProcessEvents delivers every queued burst request.
func ProcessEvents(world donburi.World) {
	BurstRequestedEventType.ProcessEvents(world)
}

// EmitterData makes an entity request its preset at Pos every Interval steps.
type EmitterData struct {
	Pos      burst.Vec2
	Preset   burst.Preset
	Interval int // steps between requests, at least 1
	Elapsed  int // steps since the last request
	// FramesRemaining destroys the entity when it reaches zero. -1 keeps it
	// forever.
	FramesRemaining int
}

// Emitter is the component type for EmitterData.
var Emitter = donburi.NewComponentType[EmitterData]()

var emitterQuery = donburi.NewQuery(filter.Contains(Emitter))

// NewEmitter creates an emitter entity. lifetime is in steps; -1 keeps it
// until removed.
func NewEmitter(world donburi.World, pos burst.Vec2, preset burst.Preset, interval, lifetime int) donburi.Entity {
	entity := world.Create(Emitter)
	Emitter.SetValue(world.Entry(entity), EmitterData{
		Pos:             pos,
		Preset:          preset,
		Interval:        max(interval, 1),
		FramesRemaining: lifetime,
	})
	return entity
}

// UpdateEmitters advances every emitter by one step, publishes the requests
// that are due and removes expired emitters. Call ProcessEvents afterwards to
// deliver the requests.
func UpdateEmitters(world donburi.World) {
	var expired []donburi.Entity
	emitterQuery.Each(world, func(entry *donburi.Entry) {
		em := Emitter.Get(entry)
		em.Elapsed++
		if em.Elapsed >= em.Interval {
			em.Elapsed = 0
			RequestBurst(world, em.Preset.At(em.Pos))
		}
		if em.FramesRemaining > 0 {
			em.FramesRemaining--
			if em.FramesRemaining == 0 {
				expired = append(expired, entry.Entity())
			}
		}
	})
	for _, e := range expired {
		world.Remove(e)
	}
}

// EmitterCount returns the number of live emitter entities.
func EmitterCount(world donburi.World) int {
	return emitterQuery.Count(world)
}
