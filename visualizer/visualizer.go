package visualizer

import (
	"fmt"

	"github.com/RyanBlaney/sonido-viz/analysis"
	"github.com/RyanBlaney/sonido-viz/logging"
	"github.com/RyanBlaney/sonido-viz/render"
)

// Mode selects which geometry generator fills the main viewport.
type Mode int

const (
	ModeFractal Mode = iota
	ModeRidgeline
)

func (m Mode) String() string {
	switch m {
	case ModeFractal:
		return "fractal"
	case ModeRidgeline:
		return "ridgeline"
	default:
		return "unknown"
	}
}

// Frame is one frame's worth of draw commands plus the feature snapshot the
// host may mirror into level meters or debug panels. Slices are valid until
// the next Advance call.
type Frame struct {
	Features   *analysis.Features
	Background render.RGBA
	Segments   []render.LineSegment
	Polylines  []render.Polyline
	Dots       []render.Dot
	Rotation   float64
}

// Visualizer wires one feature extractor to the geometry generators and owns
// the cross-frame animation state (clock, rotation, beat flash, particles).
//
// It is single-threaded by design: one Advance call per displayed frame runs
// extraction, particle update, and rendering synchronously, so a beat
// detected in a frame is visible to everything drawn in that same frame.
type Visualizer struct {
	cfg       *render.Config
	extractor analysis.Extractor
	fractal   *render.FractalRenderer
	ridgeline *render.RidgelineRenderer
	particles *render.ParticleSystem
	mode      Mode

	time      float64
	rotation  float64
	beatFlash float64
	last      *analysis.Features

	logger logging.Logger
}

// New creates a visualizer around the given extractor. cfg may be nil for
// defaults; the config remains caller-owned and is re-read every frame.
func New(extractor analysis.Extractor, cfg *render.Config) (*Visualizer, error) {
	if extractor == nil {
		return nil, fmt.Errorf("extractor cannot be nil")
	}
	if cfg == nil {
		cfg = render.DefaultConfig()
	}

	logger := logging.WithFields(logging.Fields{
		"component": "visualizer",
	})
	logger.Debug("Creating visualizer", logging.Fields{
		"particle_count": cfg.ParticleCount,
		"ridge_lines":    cfg.Ridgeline.LineCount,
	})

	return &Visualizer{
		cfg:       cfg,
		extractor: extractor,
		fractal:   render.NewFractalRenderer(),
		ridgeline: render.NewRidgelineRenderer(),
		particles: render.NewParticleSystem(cfg.ParticleCount, 0),
		logger:    logger,
	}, nil
}

// SetMode switches the active geometry generator.
func (v *Visualizer) SetMode(m Mode) {
	v.mode = m
}

// Mode returns the active geometry generator.
func (v *Visualizer) Mode() Mode {
	return v.mode
}

// Config returns the live configuration pointer.
func (v *Visualizer) Config() *render.Config {
	return v.cfg
}

// Rotation returns the accumulated rotation angle in radians.
func (v *Visualizer) Rotation() float64 {
	return v.rotation
}

// ParticleCount returns the number of live particles.
func (v *Visualizer) ParticleCount() int {
	return v.particles.Len()
}

// Advance runs one frame: extraction, animation state, particle update, and
// geometry generation, in that order. dt is the elapsed time in seconds;
// negative values are treated as zero. rect is the target drawing surface.
func (v *Visualizer) Advance(dt float64, rect render.Rect) *Frame {
	if dt < 0 {
		dt = 0
	}
	v.time += dt

	feats := v.extractor.Extract(v.time)
	v.last = feats

	if v.cfg.AutoRotate {
		v.rotation += v.cfg.RotationSpeed*dt + feats.BeatIntensity*v.cfg.RotationBeatMult
	}

	if v.cfg.PulseOnBeat && feats.Beat {
		v.beatFlash = 1
	}
	v.beatFlash = max(0, v.beatFlash-dt*3)

	colorFn := func() render.RGBA { return render.CycleColor(v.cfg, v.time) }
	v.particles.Update(feats, dt, rect.Center(), colorFn, v.cfg)

	frame := &Frame{
		Features:   feats,
		Background: v.backgroundColor(),
		Rotation:   v.rotation,
	}

	switch v.mode {
	case ModeRidgeline:
		frame.Polylines = v.ridgeline.Render(feats, v.cfg, rect, v.time)
	default:
		if glow, ok := v.fractal.Glow(feats, v.cfg, rect, v.time); ok {
			frame.Dots = append(frame.Dots, glow)
		}
		frame.Segments = v.fractal.Render(feats, v.cfg, rect, v.rotation, v.time)
	}

	frame.Dots = append(frame.Dots, v.particles.Dots()...)
	return frame
}

// Spectrum builds bar-meter draw commands from the last frame's frequency
// bins, one hue-ramped bar per bucket.
func (v *Visualizer) Spectrum(rect render.Rect, barCount int) []render.Bar {
	if v.last == nil || barCount <= 0 || len(v.last.FrequencyData) == 0 {
		return nil
	}
	bins := v.last.FrequencyData
	barWidth := rect.Width() / float64(barCount)

	bars := make([]render.Bar, 0, barCount)
	for i := 0; i < barCount; i++ {
		idx := i * len(bins) / barCount
		value := bins[idx] / 255.0
		height := value * rect.Height()
		x := rect.Min.X + float64(i)*barWidth
		bars = append(bars, render.Bar{
			Rect:  render.NewRect(x, rect.Bottom()-height, barWidth-1, height),
			Color: render.HSLToRGB(float64(i)/float64(barCount), 0.8, 0.5),
		})
	}
	return bars
}

// Waveform builds a hue-ramped segment strip from the last frame's
// time-domain samples.
func (v *Visualizer) Waveform(rect render.Rect) []render.LineSegment {
	if v.last == nil || len(v.last.TimeData) < 2 {
		return nil
	}
	samples := v.last.TimeData
	centerY := rect.Center().Y

	segs := make([]render.LineSegment, 0, len(samples)-1)
	prevX, prevY := rect.Min.X, centerY+samples[0]*rect.Height()*0.5
	for i := 1; i < len(samples); i++ {
		x := rect.Min.X + float64(i)/float64(len(samples))*rect.Width()
		y := centerY + samples[i]*rect.Height()*0.5
		seg := render.LineSegment{
			Width: 2,
			Color: render.HSLToRGB(float64(i)/float64(len(samples)), 0.7, 0.6),
		}
		seg.From.X, seg.From.Y = prevX, prevY
		seg.To.X, seg.To.Y = x, y
		segs = append(segs, seg)
		prevX, prevY = x, y
	}
	return segs
}

// backgroundColor lifts the configured background by the current beat flash.
func (v *Visualizer) backgroundColor() render.RGBA {
	bg := v.cfg.BackgroundColor
	boost := v.beatFlash * 30
	return render.RGBA{
		R: satAdd(bg.R, boost),
		G: satAdd(bg.G, boost/2),
		B: satAdd(bg.B, boost),
		A: bg.A,
	}
}

func satAdd(base uint8, add float64) uint8 {
	sum := float64(base) + add
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
