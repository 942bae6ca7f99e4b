package util

import (
	"github.com/fogleman/ease"
)

// Sweep returns n evenly spaced values from min to max inclusive.
func Sweep(min float64, max float64, n int) []float64 {
	return sweep(min, max, n, ease.Linear)
}

// EasedSweep is like Sweep but spaces the values with an in-out quadratic
// ease, so they bunch up near both ends of the range.
func EasedSweep(min float64, max float64, n int) []float64 {
	return sweep(min, max, n, ease.InOutQuad)
}

type easing func(t float64) float64

func sweep(min float64, max float64, n int, fn easing) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{min}
	}

	values := make([]float64, n)
	step := 1.0 / float64(n-1)
	for i := 0; i < n-1; i++ {
		values[i] = min + (max-min)*fn(float64(i)*step)
	}
	// Land exactly on max rather than on an accumulated approximation of it.
	values[n-1] = max
	return values
}
