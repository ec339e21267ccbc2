package render

import (
	"math"

	"github.com/RyanBlaney/sonido-viz/analysis"
	"github.com/RyanBlaney/sonido-viz/logging"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

// RidgelineRenderer emits a stack of horizontal pseudo-3D polylines, each
// bound to a power-curve-mapped frequency sub-range. The only state carried
// across frames is the per-line smoothed amplitude buffer, which grows when
// the configured line count grows and is never shrunk, so smoothing history
// survives runtime adjustment.
type RidgelineRenderer struct {
	lastAmps []float64
	logger   logging.Logger
}

// NewRidgelineRenderer creates a ridgeline geometry generator.
func NewRidgelineRenderer() *RidgelineRenderer {
	return &RidgelineRenderer{
		logger: logging.WithFields(logging.Fields{
			"component": "ridgeline_renderer",
		}),
	}
}

// LineAmplitude returns the current smoothed amplitude for a line index, or
// zero when the index has never been rendered.
func (r *RidgelineRenderer) LineAmplitude(i int) float64 {
	if i < 0 || i >= len(r.lastAmps) {
		return 0
	}
	return r.lastAmps[i]
}

// Render generates the polylines for one frame. A line count or sample count
// below the drawable minimum renders nothing.
func (r *RidgelineRenderer) Render(f *analysis.Features, cfg *Config, rect Rect, now float64) []Polyline {
	p := cfg.Ridgeline
	lines := p.LineCount
	samples := p.SamplesPerLine
	if lines <= 0 || samples < 2 || rect.Width() <= 0 || rect.Height() <= 0 {
		return nil
	}

	if len(r.lastAmps) < lines {
		grown := make([]float64, lines)
		copy(grown, r.lastAmps)
		r.lastAmps = grown
	}

	freqLen := len(f.FrequencyData)
	exponent := math.Max(p.FreqCurveExponent, 0.001)
	smoothing := clamp01(p.Smoothing)
	boost := 1 + p.BassMult*f.SmoothBass + p.MidMult*f.SmoothMid + p.TrebleMult*f.SmoothTreble

	center := rect.Center()
	width := rect.Width()
	spacing := rect.Height() / (float64(lines) * 0.9)
	phase := now * 2
	angle := p.RotationDeg * math.Pi / 180

	out := make([]Polyline, 0, lines)
	for i := 0; i < lines; i++ {
		z := float64(i) / float64(lines)

		// Power-curve bin mapping, biased toward low frequencies; every line
		// owns at least one bin.
		rawAmp := 0.0
		if freqLen > 0 {
			f0 := float64(i) / float64(lines)
			f1 := float64(i+1) / float64(lines)
			start := min(int(math.Pow(f0, exponent)*float64(freqLen)), freqLen-1)
			end := min(int(math.Pow(f1, exponent)*float64(freqLen)), freqLen)
			if end <= start {
				end = min(start+1, freqLen)
			}
			baseAmp := stat.Mean(f.FrequencyData[start:end], nil) / 255.0
			rawAmp = baseAmp * boost
		}

		amp := r.lastAmps[i] + (rawAmp-r.lastAmps[i])*smoothing
		r.lastAmps[i] = amp

		// Nearer lines (small z) are larger and brighter; far lines keep a
		// faint alpha floor.
		perspective := 1 - z*p.Perspective
		thickness := math.Max(p.Thickness*perspective, 0.3)
		alpha := clampByte(math.Max(200*(1-z), 40))

		baseline := rect.Bottom() - float64(i)*spacing - z*rect.Height()*0.2
		ampScale := p.VerticalScale * 100 * amp * perspective

		var color RGBA
		if p.Monochrome {
			color = RGBA{R: 255, G: 255, B: 255, A: alpha}
		} else {
			color = cfg.BaseColor.WithAlpha(alpha)
		}

		pts := make([]r2.Vec, 0, samples)
		freqMod := 1 + z*6
		for s := 0; s < samples; s++ {
			t := float64(s) / float64(samples-1)
			localX := (t - 0.5) * width * p.LineLength * p.Zoom

			carrier := math.Sin(t*2*math.Pi*freqMod + phase*(1+z))
			jitter := (math.Sin(t*50)*0.15 + math.Cos(t*12)*0.08) * (1 - z) * 0.6
			localY := (baseline - center.Y) - carrier*ampScale*(1+jitter)

			pt := center.Add(r2.Vec{X: localX, Y: localY})
			if p.IsometricRotate {
				pt = r2.Rotate(pt, angle, center)
			}
			pts = append(pts, pt)
		}

		out = append(out, Polyline{Points: pts, Width: thickness, Color: color})
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
