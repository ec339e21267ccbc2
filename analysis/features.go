package analysis

// Features holds the per-frame perceptual feature snapshot consumed by the
// renderers and, optionally, by host-side level meters and spectrum panels.
//
// Band energies and smoothed values are normalized to [0, 1]. The smoothed
// fields persist across frames (exponential moving average); everything else
// is recomputed wholesale on every successful extraction.
type Features struct {
	// Frequency bands (normalized 0.0-1.0, ascending)
	Bass    float64 `json:"bass"`
	LowMid  float64 `json:"low_mid"`
	Mid     float64 `json:"mid"`
	HighMid float64 `json:"high_mid"`
	Treble  float64 `json:"treble"`

	// Overall metrics
	Volume float64 `json:"volume"` // RMS volume
	Peak   float64 `json:"peak"`   // Peak amplitude

	// Beat detection
	Beat          bool    `json:"beat"`
	BeatIntensity float64 `json:"beat_intensity"`

	// Spectral features
	SpectralCentroid float64 `json:"spectral_centroid"`
	SpectralFlux     float64 `json:"spectral_flux"`

	// Smoothed values for animation
	SmoothBass   float64 `json:"smooth_bass"`
	SmoothMid    float64 `json:"smooth_mid"`
	SmoothTreble float64 `json:"smooth_treble"`
	SmoothVolume float64 `json:"smooth_volume"`

	// Raw arrays retained for direct visualization. FrequencyData holds bin
	// magnitudes on a 0-255 scale regardless of source; TimeData holds
	// time-domain samples in [-1, 1].
	FrequencyData []float64 `json:"-"`
	TimeData      []float64 `json:"-"`
}

// NewFeatures returns a zeroed feature set with bin and sample arrays
// preallocated to the given length.
func NewFeatures(bins int) *Features {
	if bins < 0 {
		bins = 0
	}
	return &Features{
		FrequencyData: make([]float64, bins),
		TimeData:      make([]float64, bins),
	}
}

// smooth applies one exponential moving average step to the four smoothed
// fields. k is the per-source smoothing coefficient.
func (f *Features) smooth(bass, mid, treble, volume, k float64) {
	f.SmoothBass += (bass - f.SmoothBass) * k
	f.SmoothMid += (mid - f.SmoothMid) * k
	f.SmoothTreble += (treble - f.SmoothTreble) * k
	f.SmoothVolume += (volume - f.SmoothVolume) * k
}

// detectBeat runs the bass energy-spike test against the pre-update smoothed
// bass baseline. floor is the per-source absolute bass threshold.
func (f *Features) detectBeat(bass, smoothedBass, floor float64) {
	energyJump := bass - smoothedBass
	f.Beat = energyJump > beatJumpThreshold && bass > floor
	if f.Beat {
		f.BeatIntensity = min(energyJump, 1.0)
	} else {
		f.BeatIntensity = 0
	}
}
