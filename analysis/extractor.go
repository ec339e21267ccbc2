package analysis

// Extractor produces a Features snapshot once per displayed frame.
//
// All implementations populate the same Features shape so the renderers are
// source-agnostic. now is the frame-driver clock in seconds; capture-backed
// extractors ignore it, the synthetic Simulator is a function of it.
//
// Empty source input is not an error: an extractor returns its previous
// snapshot untouched and never panics.
type Extractor interface {
	Extract(now float64) *Features
}

// SampleSource supplies the most recent raw mono sample window. Read copies
// up to len(dst) samples into dst and returns the number copied. Exchange is
// the stock implementation; hosts with their own capture plumbing can supply
// anything that satisfies this.
type SampleSource interface {
	Read(dst []float64) int
}

const (
	// beatJumpThreshold is the minimum rise of bass energy over its smoothed
	// baseline for a beat to fire.
	beatJumpThreshold = 0.1

	// Per-source absolute bass floors. The sample path works on a coarse
	// mean-abs proxy while the spectrum path averages finer magnitudes, so
	// the floors are independently tuned, not meant to be equivalent.
	sampleBassFloor   = 0.3
	spectrumBassFloor = 0.6

	// Smoothing coefficients: live capture vs. synthetic demo signal.
	liveSmoothing = 0.15
	demoSmoothing = 0.1

	// byteScale is the magnitude ceiling of quantized spectrum bins.
	byteScale = 255.0
)
