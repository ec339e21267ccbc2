package visualizer

import (
	"testing"

	"github.com/RyanBlaney/sonido-viz/analysis"
	"github.com/RyanBlaney/sonido-viz/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExtractor hands back a fixed feature snapshot every frame.
type stubExtractor struct {
	feats *analysis.Features
}

func (s *stubExtractor) Extract(now float64) *analysis.Features {
	return s.feats
}

func quietStub() *stubExtractor {
	return &stubExtractor{feats: analysis.NewFeatures(256)}
}

func beatStub() *stubExtractor {
	f := analysis.NewFeatures(256)
	f.Beat = true
	f.BeatIntensity = 1.0
	f.Bass = 0.8
	return &stubExtractor{feats: f}
}

func viewport() render.Rect {
	return render.NewRect(0, 0, 800, 600)
}

func TestNewRequiresExtractor(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestNewDefaultsConfig(t *testing.T) {
	v, err := New(quietStub(), nil)
	require.NoError(t, err)
	require.NotNil(t, v.Config())
	assert.Equal(t, render.DefaultConfig().ParticleCount, v.Config().ParticleCount)
	assert.Equal(t, ModeFractal, v.Mode())
}

func TestAdvanceBeatSpawnsParticlesSameFrame(t *testing.T) {
	v, err := New(beatStub(), nil)
	require.NoError(t, err)

	frame := v.Advance(0.016, viewport())

	// ParticleCount 50: a beat spawns 5, visible in this frame's dots.
	assert.Equal(t, 5, v.ParticleCount())
	// Glow disc plus the five particles.
	assert.Len(t, frame.Dots, 6)
	assert.True(t, frame.Features.Beat)
}

func TestAdvanceAccumulatesRotation(t *testing.T) {
	cfg := render.DefaultConfig()
	cfg.RotationSpeed = 1.0
	cfg.RotationBeatMult = 0.1

	v, err := New(quietStub(), cfg)
	require.NoError(t, err)

	v.Advance(0.5, viewport())
	assert.InDelta(t, 0.5, v.Rotation(), 1e-9)

	vb, err := New(beatStub(), cfg)
	require.NoError(t, err)
	vb.Advance(0.5, viewport())
	assert.InDelta(t, 0.6, vb.Rotation(), 1e-9)

	cfg.AutoRotate = false
	v.Advance(0.5, viewport())
	assert.InDelta(t, 0.5, v.Rotation(), 1e-9)
}

func TestAdvanceClampsNegativeDt(t *testing.T) {
	v, err := New(quietStub(), nil)
	require.NoError(t, err)

	v.Advance(0.5, viewport())
	before := v.Rotation()
	v.Advance(-1.0, viewport())
	assert.Equal(t, before, v.Rotation())
}

func TestModeSelectsGeometry(t *testing.T) {
	src := quietStub()
	src.feats.SpectralCentroid = 0.5
	for i := range src.feats.FrequencyData {
		src.feats.FrequencyData[i] = 128
	}

	v, err := New(src, nil)
	require.NoError(t, err)

	frame := v.Advance(0.016, viewport())
	assert.NotEmpty(t, frame.Segments)
	assert.Nil(t, frame.Polylines)

	v.SetMode(ModeRidgeline)
	assert.Equal(t, ModeRidgeline, v.Mode())
	frame = v.Advance(0.016, viewport())
	assert.Nil(t, frame.Segments)
	assert.Len(t, frame.Polylines, v.Config().Ridgeline.LineCount)
}

func TestSpectrumBuildsHueRampedBars(t *testing.T) {
	src := quietStub()
	for i := range src.feats.FrequencyData {
		src.feats.FrequencyData[i] = 255
	}

	v, err := New(src, nil)
	require.NoError(t, err)

	// No frame yet: nothing to mirror.
	assert.Nil(t, v.Spectrum(viewport(), 16))

	v.Advance(0.016, viewport())
	bars := v.Spectrum(render.NewRect(0, 400, 800, 200), 16)

	require.Len(t, bars, 16)
	for _, b := range bars {
		assert.InDelta(t, 200.0, b.Rect.Height(), 1e-9)
	}
	// Hue ramps across the bars.
	assert.NotEqual(t, bars[0].Color, bars[8].Color)
}

func TestWaveformSpansViewport(t *testing.T) {
	src := quietStub()
	for i := range src.feats.TimeData {
		src.feats.TimeData[i] = 0.5
	}

	v, err := New(src, nil)
	require.NoError(t, err)
	assert.Nil(t, v.Waveform(viewport()))

	v.Advance(0.016, viewport())
	segs := v.Waveform(render.NewRect(0, 0, 800, 200))

	require.Len(t, segs, len(src.feats.TimeData)-1)
	assert.InDelta(t, 0.0, segs[0].From.X, 1e-9)
	// Flat samples draw a horizontal strip offset from center.
	assert.InDelta(t, 100+0.5*200*0.5, segs[0].From.Y, 1e-9)
}

func TestBackgroundFlashesOnBeat(t *testing.T) {
	cfg := render.DefaultConfig()
	cfg.PulseOnBeat = true

	vq, err := New(quietStub(), cfg)
	require.NoError(t, err)
	quiet := vq.Advance(0, viewport())

	vb, err := New(beatStub(), cfg)
	require.NoError(t, err)
	flashed := vb.Advance(0, viewport())

	assert.Greater(t, flashed.Background.R, quiet.Background.R)
	assert.Greater(t, flashed.Background.B, quiet.Background.B)

	// The flash decays over subsequent frames.
	vb2, err := New(quietStub(), cfg)
	require.NoError(t, err)
	vb2.extractor = beatStub()
	first := vb2.Advance(0, viewport())
	vb2.extractor = quietStub()
	later := vb2.Advance(0.25, viewport())
	assert.Less(t, later.Background.R, first.Background.R)
}

func TestModeStringNames(t *testing.T) {
	assert.Equal(t, "fractal", ModeFractal.String())
	assert.Equal(t, "ridgeline", ModeRidgeline.String())
	assert.Equal(t, "unknown", Mode(99).String())
}
