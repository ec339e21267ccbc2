package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Small statistical helpers shared by the extractors, built on gonum where it
// has a primitive for the job.

// meanRange returns the arithmetic mean of data[lo:hi], or 0 for an empty or
// invalid range.
func meanRange(data []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(data) {
		hi = len(data)
	}
	if lo >= hi {
		return 0
	}
	return stat.Mean(data[lo:hi], nil)
}

// meanAbsRange returns the mean absolute value of data[lo:hi], or 0 for an
// empty or invalid range.
func meanAbsRange(data []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(data) {
		hi = len(data)
	}
	if lo >= hi {
		return 0
	}
	sum := 0.0
	for _, v := range data[lo:hi] {
		sum += math.Abs(v)
	}
	return sum / float64(hi-lo)
}

// rms calculates root mean square of the signal
func rms(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sumSquares := 0.0
	for _, v := range data {
		sumSquares += v * v
	}
	return math.Sqrt(sumSquares / float64(len(data)))
}

// peakAbs returns the maximum absolute value in the signal
func peakAbs(data []float64) float64 {
	peak := 0.0
	for _, v := range data {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// positiveFlux sums the positive-only differences between the current and
// previous spectrum snapshot. Bins beyond the previous snapshot's length are
// treated as rising from zero.
func positiveFlux(current, previous []float64) float64 {
	flux := 0.0
	for i, v := range current {
		prev := 0.0
		if i < len(previous) {
			prev = previous[i]
		}
		if diff := v - prev; diff > 0 {
			flux += diff
		}
	}
	return flux
}

// centroid returns the energy-weighted mean bin index normalized by bin
// count, and whether the spectrum carried any energy at all.
func centroid(spectrum []float64) (float64, bool) {
	total := 0.0
	weighted := 0.0
	for i, v := range spectrum {
		total += v
		weighted += float64(i) * v
	}
	if total <= 0 {
		return 0, false
	}
	return weighted / total / float64(len(spectrum)), true
}
