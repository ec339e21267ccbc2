package render

import (
	"math"
	"math/rand"

	"github.com/RyanBlaney/sonido-viz/analysis"
	"github.com/RyanBlaney/sonido-viz/logging"
	"gonum.org/v1/gonum/spatial/r2"
)

// velocityDamping is the per-frame multiplicative drag on particle velocity.
const velocityDamping = 0.98

// Particle is one short-lived beat spark. Life runs 1.0 -> 0.0.
type Particle struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Life    float64
	MaxLife float64
	Size    float64
	Color   RGBA
}

// ParticleSystem owns the live particle set: spawned on beat events, aged by
// dt, culled at end of life, and capped so worst-case draw cost stays bounded
// no matter how dense the beats get.
type ParticleSystem struct {
	particles []Particle
	max       int
	rng       *rand.Rand
	logger    logging.Logger
}

// NewParticleSystem creates a particle system holding at most maxParticles.
// maxParticles falls back to 256 when non-positive; seed 0 picks a fixed
// default so behavior is reproducible unless the caller asks otherwise.
func NewParticleSystem(maxParticles int, seed int64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = 256
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		particles: make([]Particle, 0, maxParticles),
		max:       maxParticles,
		rng:       rand.New(rand.NewSource(seed)),
		logger: logging.WithFields(logging.Fields{
			"component":     "particle_system",
			"max_particles": maxParticles,
		}),
	}
}

// Len returns the live particle count.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Particles exposes the live set for inspection; callers must not retain the
// slice across frames.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Update runs one frame: spawn on beat, integrate, cull dead, enforce the
// cap. colorFn supplies the spawn color (typically the frame's cycled
// accent color).
func (ps *ParticleSystem) Update(f *analysis.Features, dt float64, origin r2.Vec, colorFn func() RGBA, cfg *Config) {
	if f.Beat {
		count := cfg.ParticleBurst
		if count <= 0 {
			count = max(1, cfg.ParticleCount/10)
		}
		for i := 0; i < count; i++ {
			ps.spawn(origin, colorFn())
		}
	}

	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel = p.Vel.Scale(velocityDamping)
		p.Life -= dt / p.MaxLife
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.particles = alive

	// FIFO eviction: the front of the slice is the oldest.
	if len(ps.particles) > ps.max {
		excess := len(ps.particles) - ps.max
		ps.particles = append(ps.particles[:0], ps.particles[excess:]...)
	}
}

// Dots converts the live set into draw commands. Radius and alpha shrink
// with remaining life.
func (ps *ParticleSystem) Dots() []Dot {
	dots := make([]Dot, 0, len(ps.particles))
	for _, p := range ps.particles {
		dots = append(dots, Dot{
			Center: p.Pos,
			Radius: p.Size * p.Life,
			Color:  p.Color.WithAlpha(clampByte(p.Life * 255)),
		})
	}
	return dots
}

func (ps *ParticleSystem) spawn(origin r2.Vec, color RGBA) {
	angle := ps.rng.Float64() * 2 * math.Pi
	speed := 30 + ps.rng.Float64()*80
	ps.particles = append(ps.particles, Particle{
		Pos:     origin,
		Vel:     r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed),
		Life:    1.0,
		MaxLife: 1.0,
		Size:    3 + ps.rng.Float64()*5,
		Color:   color,
	})
}
