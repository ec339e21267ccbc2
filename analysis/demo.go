package analysis

import (
	"math"

	"github.com/RyanBlaney/sonido-viz/logging"
)

// Simulator is a fully synthetic feature source: a fixed-tempo bass envelope
// plus detuned per-band sinusoids. It exists so hosts can run the renderers
// with no capture device at all, and it generates spectrum and waveform
// arrays so the display panels stay live too.
type Simulator struct {
	feats  *Features
	logger logging.Logger
}

// NewSimulator creates a demo source with bins frequency/time points.
// bins falls back to 256 when non-positive.
func NewSimulator(bins int) *Simulator {
	if bins <= 0 {
		bins = 256
	}
	return &Simulator{
		feats: NewFeatures(bins),
		logger: logging.WithFields(logging.Fields{
			"component": "simulator",
			"bins":      bins,
		}),
	}
}

// Features returns the current snapshot without re-extracting.
func (s *Simulator) Features() *Features {
	return s.feats
}

// Extract synthesizes the feature set for the given clock time.
func (s *Simulator) Extract(now float64) *Features {
	f := s.feats

	// Two beats per second, envelope sharpened so the pulse is short.
	const beatFreq = 2.0
	beatPhase := math.Sin(now * beatFreq * 2 * math.Pi)
	envelope := math.Pow((beatPhase+1)/2, 4)

	f.Bass = 0.3 + envelope*0.5
	f.LowMid = 0.25 + math.Sin(now*1.5)*0.15
	f.Mid = 0.3 + math.Sin(now*2.3)*0.2
	f.HighMid = 0.2 + math.Sin(now*3.7)*0.15
	f.Treble = 0.15 + math.Sin(now*5.1)*0.1

	f.Volume = 0.4 + envelope*0.3
	f.Peak = f.Volume * 1.2

	f.Beat = envelope > 0.8
	if f.Beat {
		f.BeatIntensity = envelope
	} else {
		f.BeatIntensity = 0
	}

	f.SpectralCentroid = 0.5 + math.Sin(now*0.5)*0.3
	f.SpectralFlux = envelope * 0.5

	f.smooth(f.Bass, f.Mid, f.Treble, f.Volume, demoSmoothing)

	// Pink-ish sloped spectrum with a moving shimmer on top.
	bins := len(f.FrequencyData)
	for i := range f.FrequencyData {
		fn := float64(i) / float64(bins)
		v := math.Pow(1-fn, 2)*f.Bass*200 + math.Abs(math.Sin(now*(10+float64(i)*0.5)))*50
		f.FrequencyData[i] = math.Min(v, byteScale)
	}
	for i := range f.TimeData {
		t := float64(i) / float64(len(f.TimeData))
		wave := math.Sin(t*2*math.Pi*4 + now*10)
		f.TimeData[i] = wave * 0.5 * f.Volume
	}
	return f
}
