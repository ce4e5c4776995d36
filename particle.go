package burst

import "time"

// Particle holds the simulation state of one particle.
type Particle struct {
	Pos   Vec2
	Vel   Vec2 // units per step
	Size  uint32
	Color Color
	// Lifetime is the total life in seconds, fixed at spawn.
	Lifetime float32
	// RemainingLife starts at Lifetime and drops by 1/StepsPerSecond per Update.
	RemainingLife float32
	Shape         Shape
	FadeOut       bool
}

// BurstConfig fully describes one spawn event.
type BurstConfig struct {
	Source    Source
	Shape     Shape
	XVelocity FloatRange
	YVelocity FloatRange
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime FloatRange
	Color    Color
	// Size is the range of particle sizes; Max is exclusive.
	Size  IntRange
	Count uint32
	// FadeOut keeps particles opaque for the first half of their life and
	// fades alpha linearly to zero over the second half.
	FadeOut bool
}

// ManagerConfig controls a ParticleManager.
type ManagerConfig struct {
	// MaxParticles caps the number of live particles across all groups.
	// Particles that would exceed it are silently dropped at spawn time.
	// Zero means unbounded.
	MaxParticles int
}

// ParticleManager owns every live burst. Each CreateBurst call appends one
// group; Update advances and prunes; Draw hands particles to a Renderer.
// Not safe for concurrent use.
type ParticleManager struct {
	config  ManagerConfig
	sampler *Sampler
	groups  [][]Particle
	alive   int

	debug bool
	stats Stats
}

// NewParticleManager creates a manager that draws all randomness from rng.
func NewParticleManager(rng RandomSource, cfg ManagerConfig) *ParticleManager {
	return &ParticleManager{
		config:  cfg,
		sampler: NewSampler(rng),
	}
}

// CreateBurst spawns cfg.Count particles as a new group appended after all
// existing groups. Existing groups are never touched. A zero count produces
// an empty group that the next Update removes.
func (m *ParticleManager) CreateBurst(cfg BurstConfig) {
	n := int(cfg.Count)
	if m.config.MaxParticles > 0 {
		n = min(n, max(m.config.MaxParticles-m.alive, 0))
	}
	group := make([]Particle, n)
	for i := range group {
		group[i] = m.spawn(&cfg)
	}
	m.groups = append(m.groups, group)
	m.alive += n
}

// spawn samples one particle. The draw order is position, x velocity,
// y velocity, lifetime, size.
func (m *ParticleManager) spawn(cfg *BurstConfig) Particle {
	s := m.sampler
	pos := s.Position(cfg.Source)
	vx := s.FloatIn(cfg.XVelocity)
	vy := s.FloatIn(cfg.YVelocity)
	life := s.FloatIn(cfg.Lifetime)
	size := s.IntIn(cfg.Size)
	return Particle{
		Pos:           pos,
		Vel:           Vec2{vx, vy},
		Size:          size,
		Color:         cfg.Color,
		Lifetime:      life,
		RemainingLife: life,
		Shape:         cfg.Shape,
		FadeOut:       cfg.FadeOut,
	}
}

// Update advances every particle by one step, removes exhausted particles and
// then removes groups left empty.
func (m *ParticleManager) Update() {
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	alive := 0
	for gi, group := range m.groups {
		kept := group[:0]
		for i := range group {
			p := &group[i]
			p.Pos = p.Pos.Add(p.Vel)
			p.RemainingLife -= stepDuration
			if p.FadeOut {
				p.Color = fadeColor(p.Color, p.RemainingLife, p.Lifetime)
			}
			if p.RemainingLife > 0 {
				kept = append(kept, *p)
			}
		}
		m.groups[gi] = kept
		alive += len(kept)
	}

	groups := m.groups[:0]
	for _, g := range m.groups {
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}
	clear(m.groups[len(groups):])
	m.groups = groups
	m.alive = alive

	if m.debug {
		m.stats.UpdateTime = time.Since(t0)
		m.stats.Groups = len(m.groups)
		m.stats.Particles = m.alive
		m.debugLog("update")
	}
}

// fadeColor applies the fade-out rule: alpha is untouched until half the
// lifetime has elapsed, then set to floor((1-progress)*2*255).
func fadeColor(c Color, remaining, lifetime float32) Color {
	progress := 1 - remaining/lifetime
	if !(progress > 0.5) {
		return c
	}
	a := (1 - progress) * 2 * 255
	switch {
	case !(a > 0):
		a = 0
	case a > 255:
		a = 255
	}
	return c.WithAlpha(uint8(a))
}

// Draw dispatches every particle to r in storage order. It does not modify
// any state other than debug statistics.
func (m *ParticleManager) Draw(r Renderer) {
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	for _, group := range m.groups {
		for i := range group {
			drawParticle(r, &group[i])
		}
	}

	if m.debug {
		m.stats.DrawTime = time.Since(t0)
		m.stats.DrawCalls = m.alive
		m.debugLog("draw")
	}
}

func drawParticle(r Renderer, p *Particle) {
	switch p.Shape.Kind {
	case ShapeSquare:
		side := float32(p.Size)
		r.DrawRect(p.Pos.X-side/2, p.Pos.Y-side/2, side, side, p.Color)
	case ShapeCircle:
		r.DrawCircle(p.Pos.X, p.Pos.Y, float32(p.Size), p.Color)
	case ShapeSprite:
		r.DrawSprite(p.Shape.Name, p.Pos.X, p.Pos.Y)
	}
}

// GroupCount returns the number of live groups.
func (m *ParticleManager) GroupCount() int {
	return len(m.groups)
}

// ParticleCount returns the number of live particles across all groups.
func (m *ParticleManager) ParticleCount() int {
	return m.alive
}

// Group returns a copy of the particles in group i, in spawn order.
func (m *ParticleManager) Group(i int) []Particle {
	return append([]Particle(nil), m.groups[i]...)
}

// Each calls fn for every live particle in group-then-spawn order.
func (m *ParticleManager) Each(fn func(group, index int, p Particle)) {
	for gi, group := range m.groups {
		for i, p := range group {
			fn(gi, i, p)
		}
	}
}

// Config returns the manager's configuration.
func (m *ParticleManager) Config() ManagerConfig {
	return m.config
}
