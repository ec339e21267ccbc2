package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFTAnalyzerEmptyInputIsNoOp(t *testing.T) {
	src := &sliceSource{}
	a := NewFFTAnalyzer(src, 512)

	src.samples = sineBuffer(512, 4, 0.8)
	a.Extract(0)
	before := *a.Features()

	src.samples = nil
	got := a.Extract(0)

	assert.Equal(t, before.Bass, got.Bass)
	assert.Equal(t, before.SmoothBass, got.SmoothBass)
	assert.Equal(t, before.SpectralCentroid, got.SpectralCentroid)
}

func TestFFTAnalyzerLowFrequencyLandsInBass(t *testing.T) {
	// 4 cycles over a 512-sample window: bin 4, well inside the first
	// sixteenth of 257 bins.
	src := &sliceSource{samples: sineBuffer(512, 4, 1.0)}
	a := NewFFTAnalyzer(src, 512)

	f := a.Extract(0)

	require.Len(t, f.FrequencyData, 257)
	assert.Greater(t, f.Bass, f.Treble)
	assert.Greater(t, f.Bass, f.Mid)
	assert.Less(t, f.SpectralCentroid, 0.5)
}

func TestFFTAnalyzerHighFrequencyLandsInTreble(t *testing.T) {
	src := &sliceSource{samples: sineBuffer(512, 200, 1.0)}
	a := NewFFTAnalyzer(src, 512)

	f := a.Extract(0)

	assert.Greater(t, f.Treble, f.Bass)
	assert.Greater(t, f.SpectralCentroid, 0.5)
}

func TestFFTAnalyzerTimeDomainMetrics(t *testing.T) {
	src := &sliceSource{samples: sineBuffer(512, 4, 1.0)}
	a := NewFFTAnalyzer(src, 512)

	f := a.Extract(0)

	// RMS of a full-scale sinusoid.
	assert.InDelta(t, 1/math.Sqrt2, f.Volume, 0.01)
	assert.InDelta(t, 1.0, f.Peak, 0.01)
}

func TestFFTAnalyzerFluxNonNegative(t *testing.T) {
	src := &sliceSource{samples: sineBuffer(512, 4, 1.0)}
	a := NewFFTAnalyzer(src, 512)
	a.Extract(0)

	src.samples = make([]float64, 512)
	f := a.Extract(0)
	assert.GreaterOrEqual(t, f.SpectralFlux, 0.0)

	src.samples = sineBuffer(512, 4, 1.0)
	f = a.Extract(0)
	assert.Greater(t, f.SpectralFlux, 0.0)
}

func sineBuffer(n, cycles int, amp float64) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = amp * math.Sin(2*math.Pi*float64(cycles)*float64(i)/float64(n))
	}
	return buf
}
