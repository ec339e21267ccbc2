package render

import (
	"math"

	"github.com/RyanBlaney/sonido-viz/analysis"
	"github.com/RyanBlaney/sonido-viz/logging"
	"gonum.org/v1/gonum/spatial/r2"
)

// FractalRenderer emits the recursive binary branching tree. It is stateless
// across frames; every call regenerates the geometry from the smoothed
// features, configuration, and rotation.
type FractalRenderer struct {
	logger logging.Logger
}

// NewFractalRenderer creates a fractal geometry generator.
func NewFractalRenderer() *FractalRenderer {
	return &FractalRenderer{
		logger: logging.WithFields(logging.Fields{
			"component": "fractal_renderer",
		}),
	}
}

// minBranchLength is the hard stop for branch recursion in pixels. Checked
// alongside the depth counter; length decay and depth decay are independent,
// so both bounds are required.
const minBranchLength = 2.0

// branchContext carries the per-frame constants threaded through recursion.
type branchContext struct {
	clip        Rect
	baseDepth   int
	brightness  float64
	color       RGBA
	lengthDecay float64
	wobble      float64
}

// Render generates the tree's line segments for one frame. A depth of zero
// (or a degenerate viewport) renders nothing.
func (r *FractalRenderer) Render(f *analysis.Features, cfg *Config, rect Rect, rotation, now float64) []LineSegment {
	p := cfg.Fractal
	depth := int(math.Round(float64(p.BaseDepth) + f.SpectralCentroid*p.DepthComplexityMult))
	if depth <= 0 || rect.Width() <= 0 || rect.Height() <= 0 {
		return nil
	}

	zoom := p.BaseZoom + f.SmoothBass*p.ZoomBassMult
	width := p.BaseWidth + f.SmoothBass*p.WidthBassMult
	brightness := p.BaseBrightness + f.SmoothTreble*p.BrightnessTrebleMult

	maxSize := math.Min(rect.Width(), rect.Height()) * 0.35
	rootLength := maxSize * zoom
	branchAngle := math.Pi / 4 * width

	ctx := &branchContext{
		clip:        rect,
		baseDepth:   p.BaseDepth,
		brightness:  brightness,
		color:       CycleColor(cfg, now),
		lengthDecay: 0.65 + f.SmoothTreble*0.1,
		wobble:      f.SmoothMid * 0.2,
	}

	segs := make([]LineSegment, 0, 256)
	return r.branch(segs, ctx, rect.Center(), rootLength, -math.Pi/2+rotation*0.1, branchAngle, depth)
}

// Glow returns the center glow disc for the frame, if configured. Radius and
// alpha follow smoothed bass and volume.
func (r *FractalRenderer) Glow(f *analysis.Features, cfg *Config, rect Rect, now float64) (Dot, bool) {
	if cfg.GlowIntensity <= 0 {
		return Dot{}, false
	}
	p := cfg.Fractal
	maxSize := math.Min(rect.Width(), rect.Height()) * 0.35
	rootLength := maxSize * (p.BaseZoom + f.SmoothBass*p.ZoomBassMult)
	color := CycleColor(cfg, now)
	return Dot{
		Center: rect.Center(),
		Radius: math.Min(rootLength*0.5*(1+f.SmoothBass), maxSize*0.6),
		Color:  color.WithAlpha(clampByte(cfg.GlowIntensity * f.SmoothVolume * 100)),
	}, true
}

// branch emits one segment and recurses into two children. Termination is
// depth == 0 OR length < minBranchLength, whichever hits first.
func (r *FractalRenderer) branch(segs []LineSegment, ctx *branchContext, start r2.Vec, length, angle, branchAngle float64, depth int) []LineSegment {
	if depth <= 0 || length < minBranchLength {
		return segs
	}

	end := start.Add(r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(length))

	// Skip only segments fully outside the viewport; segments that cross it
	// without either endpoint inside must survive the prune.
	if !ctx.clip.Contains(start) && !ctx.clip.Contains(end) {
		if !RectBetween(start, end).Intersects(ctx.clip) {
			return segs
		}
	}

	// Deeper branches fade; this is the only depth cue.
	depthFactor := float64(depth) / float64(ctx.baseDepth)
	color := RGBA{
		R: clampByte(float64(ctx.color.R) * ctx.brightness * depthFactor),
		G: clampByte(float64(ctx.color.G) * ctx.brightness * depthFactor),
		B: clampByte(float64(ctx.color.B) * ctx.brightness * depthFactor),
		A: clampByte(255 * depthFactor),
	}
	segs = append(segs, LineSegment{
		From:  start,
		To:    end,
		Width: math.Max(float64(depth)*0.1, 0.5),
		Color: color,
	})

	childLength := length * ctx.lengthDecay
	childBranch := branchAngle * 0.95
	segs = r.branch(segs, ctx, end, childLength, angle-branchAngle+ctx.wobble, childBranch, depth-1)
	segs = r.branch(segs, ctx, end, childLength, angle+branchAngle-ctx.wobble, childBranch, depth-1)
	return segs
}
