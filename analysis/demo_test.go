package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorBeatAtEnvelopePeak(t *testing.T) {
	s := NewSimulator(256)

	// sin(2 * 2pi * t) peaks at t = 0.125: envelope 1.0.
	f := s.Extract(0.125)

	require.True(t, f.Beat)
	assert.InDelta(t, 1.0, f.BeatIntensity, 1e-9)
	assert.InDelta(t, 0.8, f.Bass, 1e-9)
}

func TestSimulatorQuietBetweenBeats(t *testing.T) {
	s := NewSimulator(256)

	// sin(2 * 2pi * t) bottoms out at t = 0.375: envelope 0.
	f := s.Extract(0.375)

	assert.False(t, f.Beat)
	assert.Zero(t, f.BeatIntensity)
	assert.InDelta(t, 0.3, f.Bass, 1e-9)
}

func TestSimulatorFieldsStayPlausible(t *testing.T) {
	s := NewSimulator(256)

	for i := 0; i < 200; i++ {
		f := s.Extract(float64(i) * 0.016)
		assert.GreaterOrEqual(t, f.Bass, 0.0)
		assert.LessOrEqual(t, f.Bass, 1.0)
		assert.GreaterOrEqual(t, f.Volume, 0.0)
		assert.LessOrEqual(t, f.Volume, 1.0)
		assert.GreaterOrEqual(t, f.SpectralFlux, 0.0)
	}
}

func TestSimulatorGeneratesDisplayArrays(t *testing.T) {
	s := NewSimulator(128)

	f := s.Extract(1.0)

	require.Len(t, f.FrequencyData, 128)
	require.Len(t, f.TimeData, 128)
	for _, v := range f.FrequencyData {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 255.0)
	}
	for _, v := range f.TimeData {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestSimulatorUsesDemoSmoothing(t *testing.T) {
	s := NewSimulator(256)

	f := s.Extract(0.125)
	// First frame from zero: smoothed = raw * 0.1.
	assert.InDelta(t, f.Bass*0.1, f.SmoothBass, 1e-9)
}
