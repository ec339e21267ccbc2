package render

// Config is the caller-owned visual configuration snapshot, read-only for
// the duration of a frame. The fractal and ridgeline groups are independent;
// nothing in one references the other.
type Config struct {
	Fractal   FractalParams   `json:"fractal"`
	Ridgeline RidgelineParams `json:"ridgeline"`

	// Animation
	AutoRotate       bool    `json:"auto_rotate"`
	RotationSpeed    float64 `json:"rotation_speed"`
	RotationBeatMult float64 `json:"rotation_beat_mult"`
	PulseOnBeat      bool    `json:"pulse_on_beat"`

	// Color
	ColorCycle      bool    `json:"color_cycle"`
	ColorCycleSpeed float64 `json:"color_cycle_speed"`
	BaseColor       RGBA    `json:"base_color"`
	AccentColor     RGBA    `json:"accent_color"`
	BackgroundColor RGBA    `json:"background_color"`
	GlowIntensity   float64 `json:"glow_intensity"`

	// Particles
	ParticleCount int `json:"particle_count"`
	// ParticleBurst, when positive, spawns a flat number of particles per
	// beat instead of the proportional max(1, ParticleCount/10).
	ParticleBurst int `json:"particle_burst,omitempty"`
}

// FractalParams drives the recursive branching tree.
type FractalParams struct {
	BaseZoom       float64 `json:"base_zoom"`
	BaseWidth      float64 `json:"base_width"`
	BaseDepth      int     `json:"base_depth"`
	BaseBrightness float64 `json:"base_brightness"`

	// Audio reactivity multipliers
	ZoomBassMult         float64 `json:"zoom_bass_mult"`
	WidthBassMult        float64 `json:"width_bass_mult"`
	DepthComplexityMult  float64 `json:"depth_complexity_mult"`
	BrightnessTrebleMult float64 `json:"brightness_treble_mult"`
}

// RidgelineParams drives the stacked pseudo-3D polyline renderer.
type RidgelineParams struct {
	LineCount      int     `json:"line_count"`
	SamplesPerLine int     `json:"samples_per_line"`
	Thickness      float64 `json:"thickness"`
	Perspective    float64 `json:"perspective"`
	VerticalScale  float64 `json:"vertical_scale"`
	LineLength     float64 `json:"line_length"`
	Zoom           float64 `json:"zoom"`

	// FreqCurveExponent biases line-to-bin mapping toward low frequencies.
	FreqCurveExponent float64 `json:"freq_curve_exponent"`
	Smoothing         float64 `json:"smoothing"`

	// Audio reactivity multipliers
	BassMult   float64 `json:"bass_mult"`
	MidMult    float64 `json:"mid_mult"`
	TrebleMult float64 `json:"treble_mult"`

	Monochrome      bool    `json:"monochrome"`
	IsometricRotate bool    `json:"isometric_rotate"`
	RotationDeg     float64 `json:"rotation_deg"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() *Config {
	return &Config{
		Fractal: FractalParams{
			BaseZoom:             0.1,
			BaseWidth:            1.0,
			BaseDepth:            16,
			BaseBrightness:       0.8,
			ZoomBassMult:         0.1,
			WidthBassMult:        0.3,
			DepthComplexityMult:  4.0,
			BrightnessTrebleMult: 0.4,
		},
		Ridgeline: RidgelineParams{
			LineCount:         80,
			SamplesPerLine:    120,
			Thickness:         1.5,
			Perspective:       0.6,
			VerticalScale:     1.0,
			LineLength:        1.0,
			Zoom:              1.0,
			FreqCurveExponent: 2.5,
			Smoothing:         0.15,
			BassMult:          1.2,
			MidMult:           0.6,
			TrebleMult:        0.2,
			Monochrome:        true,
			IsometricRotate:   false,
			RotationDeg:       15.0,
		},
		AutoRotate:       true,
		RotationSpeed:    1.0,
		RotationBeatMult: 0.1,
		PulseOnBeat:      true,
		ColorCycle:       true,
		ColorCycleSpeed:  0.1,
		BaseColor:        Opaque(100, 200, 255),
		AccentColor:      Opaque(255, 100, 200),
		BackgroundColor:  Opaque(10, 10, 20),
		GlowIntensity:    0.5,
		ParticleCount:    50,
	}
}

// MonochromeRidgePreset tunes the ridgeline path for the classic stacked
// monochrome spectra look and quiets the other visual layers.
func MonochromeRidgePreset() *Config {
	c := DefaultConfig()

	c.BaseColor = Opaque(255, 255, 255)
	c.BackgroundColor = Opaque(6, 6, 10)
	c.AccentColor = Opaque(200, 200, 200)

	c.Ridgeline.Monochrome = true
	c.Ridgeline.Thickness = 2.0
	c.Ridgeline.Perspective = 0.75
	c.Ridgeline.VerticalScale = 1.6
	c.Ridgeline.LineLength = 1.5
	c.Ridgeline.Zoom = 1.05
	c.Ridgeline.RotationDeg = 12.0
	c.Ridgeline.LineCount = 80
	c.Ridgeline.SamplesPerLine = 180
	c.Ridgeline.FreqCurveExponent = 3.2
	c.Ridgeline.Smoothing = 0.22

	c.PulseOnBeat = false
	c.ColorCycle = false
	return c
}

// ResetFractal restores only the fractal group to its defaults, leaving the
// rest of the configuration alone.
func (c *Config) ResetFractal() {
	c.Fractal = DefaultConfig().Fractal
}
