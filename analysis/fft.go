package analysis

import (
	"math"
	"math/cmplx"

	"github.com/RyanBlaney/sonido-viz/logging"
	"github.com/mjibson/go-dsp/fft"
)

// FFTAnalyzer reads raw mono sample windows like SampleAnalyzer but derives
// its spectrum from a real FFT instead of the rectified-amplitude proxy. Band
// math then follows the spectrum path: magnitudes quantized onto the 0-255
// scale, 1/16..1/2 band splits, normalized flux.
//
// Time-domain metrics (volume, peak, waveform array) still come from the raw
// window.
type FFTAnalyzer struct {
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

// NewFFTAnalyzer creates an analyzer reading fixed-size windows from src.
// windowSize falls back to 512 when non-positive.
func NewFFTAnalyzer(src SampleSource, windowSize int) *FFTAnalyzer {
	if windowSize <= 0 {
		windowSize = 512
	}
	bins := windowSize/2 + 1
	return &FFTAnalyzer{
		Smoothing:     liveSmoothing,
		BassFloor:     spectrumBassFloor,
		src:           src,
		window:        make([]float64, windowSize),
		feats:         NewFeatures(bins),
		prevFrequency: make([]float64, bins),
		logger: logging.WithFields(logging.Fields{
			"component":   "fft_analyzer",
			"window_size": windowSize,
		}),
	}
}

// Features returns the current snapshot without re-extracting.
func (a *FFTAnalyzer) Features() *Features {
	return a.feats
}

// Extract pulls the latest sample window, transforms it, and recomputes the
// feature set. An empty window leaves the previous snapshot untouched.
func (a *FFTAnalyzer) Extract(_ float64) *Features {
	n := a.src.Read(a.window)
	if n == 0 {
		return a.feats
	}
	buf := a.window[:n]
	f := a.feats

	f.TimeData = append(f.TimeData[:0], buf...)
	f.Volume = rms(buf)
	f.Peak = peakAbs(buf)

	// Positive-frequency magnitudes, scaled so a full-scale sinusoid lands
	// near the top of the byte range.
	spectrum := fft.FFTReal(buf)
	bins := min(n/2+1, len(spectrum))
	scale := 2.0 / float64(n) * byteScale
	f.FrequencyData = f.FrequencyData[:0]
	for i := 0; i < bins; i++ {
		mag := cmplx.Abs(spectrum[i]) * scale
		f.FrequencyData = append(f.FrequencyData, math.Min(mag, byteScale))
	}

	bass := meanRange(f.FrequencyData, 0, bins/16) / byteScale
	f.LowMid = meanRange(f.FrequencyData, bins/16, bins/8) / byteScale
	f.Mid = meanRange(f.FrequencyData, bins/8, bins/4) / byteScale
	f.HighMid = meanRange(f.FrequencyData, bins/4, bins/2) / byteScale
	f.Treble = meanRange(f.FrequencyData, bins/2, bins) / byteScale

	if c, ok := centroid(f.FrequencyData); ok {
		f.SpectralCentroid = c
	}

	f.SpectralFlux = positiveFlux(f.FrequencyData, a.prevFrequency) / (float64(bins) * byteScale)
	a.prevFrequency = append(a.prevFrequency[:0], f.FrequencyData...)

	f.detectBeat(bass, f.SmoothBass, a.BassFloor)
	f.Bass = bass
	f.smooth(bass, f.Mid, f.Treble, f.Volume, a.Smoothing)
	return f
}
