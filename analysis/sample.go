package analysis

import (
	"math"

	"github.com/RyanBlaney/sonido-viz/logging"
)

// SampleAnalyzer extracts features from a raw mono sample window in [-1, 1].
//
// Bands come from an 8-way split of the time-domain buffer (mean absolute
// amplitude per segment), and the "spectrum" it retains for visualization is
// a rectified-amplitude proxy, not a transform. Its spectral flux is a
// relative indicator only; use FFTAnalyzer when a real spectrum is wanted.
type SampleAnalyzer struct {
	// Smoothing is the EMA coefficient applied to the smoothed fields.
	Smoothing float64
	// BassFloor is the absolute bass level required for a beat to fire.
	BassFloor float64

	src           SampleSource
	window        []float64
	feats         *Features
	prevFrequency []float64
	logger        logging.Logger
}

// NewSampleAnalyzer creates an analyzer reading fixed-size windows from src.
// windowSize falls back to 512 when non-positive.
func NewSampleAnalyzer(src SampleSource, windowSize int) *SampleAnalyzer {
	if windowSize <= 0 {
		windowSize = 512
	}
	return &SampleAnalyzer{
		Smoothing:     liveSmoothing,
		BassFloor:     sampleBassFloor,
		src:           src,
		window:        make([]float64, windowSize),
		feats:         NewFeatures(windowSize),
		prevFrequency: make([]float64, windowSize),
		logger: logging.WithFields(logging.Fields{
			"component":   "sample_analyzer",
			"window_size": windowSize,
		}),
	}
}

// Features returns the current snapshot without re-extracting.
func (a *SampleAnalyzer) Features() *Features {
	return a.feats
}

// Extract pulls the latest sample window from the source and recomputes the
// feature set. An empty window leaves the previous snapshot untouched.
func (a *SampleAnalyzer) Extract(_ float64) *Features {
	n := a.src.Read(a.window)
	if n == 0 {
		return a.feats
	}
	buf := a.window[:n]
	f := a.feats

	f.TimeData = append(f.TimeData[:0], buf...)
	f.Volume = rms(buf)
	f.Peak = peakAbs(buf)

	// Rectified-amplitude proxy spectrum on the 0-255 byte scale.
	f.FrequencyData = f.FrequencyData[:0]
	for _, v := range buf {
		f.FrequencyData = append(f.FrequencyData, math.Min(math.Abs(v)*byteScale, byteScale))
	}

	// Flux against last frame's snapshot; the snapshot is captured only after
	// the flux for this frame is known. Unnormalized on this path.
	f.SpectralFlux = positiveFlux(f.FrequencyData, a.prevFrequency)
	a.prevFrequency = append(a.prevFrequency[:0], f.FrequencyData...)

	// Eight contiguous segments; the treble range always runs to the end so
	// integer division remainder is absorbed there.
	seg := n / 8
	f.Bass = meanAbsRange(buf, 0, max(seg, 1))
	f.LowMid = meanAbsRange(buf, seg, max(seg*2, seg+1))
	f.Mid = meanAbsRange(buf, seg*2, max(seg*4, seg*2+1))
	f.HighMid = meanAbsRange(buf, seg*4, min(seg*6, n))
	f.Treble = meanAbsRange(buf, seg*6, n)

	// Beat test runs against the smoothed baseline from before this frame's
	// smoothing update.
	f.detectBeat(f.Bass, f.SmoothBass, a.BassFloor)
	f.smooth(f.Bass, f.Mid, f.Treble, f.Volume, a.Smoothing)

	// SpectralCentroid stays at its previous value: this path has no real
	// spectrum to weight.
	return f
}
