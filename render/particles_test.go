package render

import (
	"testing"

	"github.com/RyanBlaney/sonido-viz/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func white() RGBA { return Opaque(255, 255, 255) }

func TestParticlesSpawnProportionalOnBeat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleCount = 50

	ps := NewParticleSystem(100, 1)
	beat := &analysis.Features{Beat: true, BeatIntensity: 0.5}
	ps.Update(beat, 0.016, r2.Vec{X: 400, Y: 300}, white, cfg)

	assert.Equal(t, 5, ps.Len())

	// No beat, no spawn.
	ps.Update(&analysis.Features{}, 0.016, r2.Vec{X: 400, Y: 300}, white, cfg)
	assert.Equal(t, 5, ps.Len())
}

func TestParticlesSpawnAtLeastOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleCount = 3 // proportional count would floor to zero

	ps := NewParticleSystem(100, 1)
	ps.Update(&analysis.Features{Beat: true}, 0.016, r2.Vec{}, white, cfg)

	assert.Equal(t, 1, ps.Len())
}

func TestParticlesFlatBurstOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleCount = 50
	cfg.ParticleBurst = 7

	ps := NewParticleSystem(100, 1)
	ps.Update(&analysis.Features{Beat: true}, 0.016, r2.Vec{}, white, cfg)

	assert.Equal(t, 7, ps.Len())
}

func TestParticlesExpireAfterMaxLife(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleBurst = 5

	ps := NewParticleSystem(100, 1)
	ps.Update(&analysis.Features{Beat: true}, 0, r2.Vec{X: 400, Y: 300}, white, cfg)
	require.Equal(t, 5, ps.Len())

	// dt steps summing to max life (1.0s) kill every particle.
	quiet := &analysis.Features{}
	for i := 0; i < 4; i++ {
		ps.Update(quiet, 0.25, r2.Vec{}, white, cfg)
	}
	assert.Zero(t, ps.Len())
}

func TestParticlesDampingSlowsVelocity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleBurst = 1

	ps := NewParticleSystem(100, 1)
	ps.Update(&analysis.Features{Beat: true}, 0, r2.Vec{}, white, cfg)
	v0 := r2.Norm(ps.Particles()[0].Vel)

	ps.Update(&analysis.Features{}, 0.016, r2.Vec{}, white, cfg)
	v1 := r2.Norm(ps.Particles()[0].Vel)

	assert.InDelta(t, v0*velocityDamping, v1, 1e-9)
}

func TestParticlesCapEvictsOldestFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleBurst = 5

	ps := NewParticleSystem(5, 1)
	red := func() RGBA { return Opaque(255, 0, 0) }
	blue := func() RGBA { return Opaque(0, 0, 255) }

	ps.Update(&analysis.Features{Beat: true}, 0.016, r2.Vec{}, red, cfg)
	ps.Update(&analysis.Features{Beat: true}, 0.016, r2.Vec{}, blue, cfg)

	require.Equal(t, 5, ps.Len())
	for _, p := range ps.Particles() {
		assert.Equal(t, Opaque(0, 0, 255), p.Color)
	}
}

func TestParticleDotsShrinkAndFadeWithLife(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleBurst = 1

	ps := NewParticleSystem(10, 1)
	ps.Update(&analysis.Features{Beat: true}, 0, r2.Vec{X: 1, Y: 2}, white, cfg)
	fresh := ps.Dots()
	require.Len(t, fresh, 1)

	ps.Update(&analysis.Features{}, 0.5, r2.Vec{}, white, cfg)
	aged := ps.Dots()
	require.Len(t, aged, 1)

	assert.Less(t, aged[0].Radius, fresh[0].Radius)
	assert.Less(t, aged[0].Color.A, fresh[0].Color.A)
}
