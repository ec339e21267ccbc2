package analysis

import (
	"sync"

	"github.com/RyanBlaney/sonido-viz/logging"
)

// SpectrumAnalyzer extracts features from byte-quantized frequency magnitude
// and time-domain arrays (both 0-255), as produced by an external capture or
// decoding collaborator.
//
// Push may be called from the capture goroutine; Extract runs on the frame
// loop. The handoff holds the lock only for the copy.
type SpectrumAnalyzer struct {
	// Smoothing is the EMA coefficient applied to the smoothed fields.
	Smoothing float64
	// BassFloor is the absolute bass level required for a beat to fire.
	BassFloor float64

	mu        sync.Mutex
	freqBytes []byte
	timeBytes []byte

	feats         *Features
	prevFrequency []float64
	logger        logging.Logger
}

// NewSpectrumAnalyzer creates an analyzer expecting roughly bins-sized
// arrays. bins falls back to 256 when non-positive; pushes of other lengths
// still work, the hint only sizes the initial buffers.
func NewSpectrumAnalyzer(bins int) *SpectrumAnalyzer {
	if bins <= 0 {
		bins = 256
	}
	return &SpectrumAnalyzer{
		Smoothing:     liveSmoothing,
		BassFloor:     spectrumBassFloor,
		freqBytes:     make([]byte, 0, bins),
		timeBytes:     make([]byte, 0, bins),
		feats:         NewFeatures(bins),
		prevFrequency: make([]float64, bins),
		logger: logging.WithFields(logging.Fields{
			"component": "spectrum_analyzer",
			"bins":      bins,
		}),
	}
}

// Push stores the newest capture arrays. Safe for a single concurrent writer.
func (a *SpectrumAnalyzer) Push(frequencyData, timeData []byte) {
	a.mu.Lock()
	a.freqBytes = append(a.freqBytes[:0], frequencyData...)
	a.timeBytes = append(a.timeBytes[:0], timeData...)
	a.mu.Unlock()
}

// Features returns the current snapshot without re-extracting.
func (a *SpectrumAnalyzer) Features() *Features {
	return a.feats
}

// Extract recomputes the feature set from the most recently pushed arrays.
// With no pushed frequency data the previous snapshot is returned untouched.
func (a *SpectrumAnalyzer) Extract(_ float64) *Features {
	f := a.feats

	a.mu.Lock()
	f.FrequencyData = f.FrequencyData[:0]
	for _, b := range a.freqBytes {
		f.FrequencyData = append(f.FrequencyData, float64(b))
	}
	f.TimeData = f.TimeData[:0]
	for _, b := range a.timeBytes {
		f.TimeData = append(f.TimeData, (float64(b)-128)/128)
	}
	a.mu.Unlock()

	n := len(f.FrequencyData)
	if n == 0 {
		return f
	}

	f.Volume = rms(f.TimeData)
	f.Peak = peakAbs(f.TimeData)

	// Ascending bands over 1/16, 1/16, 1/8, 1/4, 1/2 of the bin range.
	bass := meanRange(f.FrequencyData, 0, n/16) / byteScale
	f.LowMid = meanRange(f.FrequencyData, n/16, n/8) / byteScale
	f.Mid = meanRange(f.FrequencyData, n/8, n/4) / byteScale
	f.HighMid = meanRange(f.FrequencyData, n/4, n/2) / byteScale
	f.Treble = meanRange(f.FrequencyData, n/2, n) / byteScale

	// Centroid keeps its previous value on a silent spectrum so the fractal
	// depth does not snap on dropouts.
	if c, ok := centroid(f.FrequencyData); ok {
		f.SpectralCentroid = c
	}

	f.SpectralFlux = positiveFlux(f.FrequencyData, a.prevFrequency) / (float64(n) * byteScale)
	a.prevFrequency = append(a.prevFrequency[:0], f.FrequencyData...)

	f.detectBeat(bass, f.SmoothBass, a.BassFloor)
	f.Bass = bass
	f.smooth(bass, f.Mid, f.Treble, f.Volume, a.Smoothing)
	return f
}
