// Package rainbow maps numbers in a range to colours interpolated across a
// spectrum of two or more reference colours.
//
// A Rainbow is not safe for concurrent mutation; wrap it in a Locked when it
// is shared between goroutines.
package rainbow

import (
	"math"
)

// DefaultSpectrum is the spectrum a new Rainbow starts with.
var DefaultSpectrum = []string{"red", "yellow", "lime", "blue"}

// Default number range of a new Rainbow.
const (
	DefaultMin = 0.0
	DefaultMax = 100.0
)

// A Rainbow spreads a spectrum of colours evenly over a number range.
type Rainbow struct {
	minNum    float64
	maxNum    float64
	colours   []string
	gradients []*Gradient
}

// New creates a Rainbow over [0, 100] with the red, yellow, lime, blue spectrum.
func New() *Rainbow {
	r := new(Rainbow)
	r.minNum = DefaultMin
	r.maxNum = DefaultMax
	if err := r.SetSpectrum(DefaultSpectrum); err != nil {
		panic("rainbow: default spectrum rejected: " + err.Error())
	}
	return r
}

// ColorAt gets the colour for a number as six lowercase hex digits.
func (r *Rainbow) ColorAt(number float64) string {
	return r.gradientFor(number).ColorAt(number)
}

// RGBAt gets the colour for a number as 8-bit channels.
func (r *Rainbow) RGBAt(number float64) RGB {
	return r.gradientFor(number).RGBAt(number)
}

// gradientFor picks the segment for a number. Only the lower bound is
// clamped here; numbers above the range land in the last segment, which
// clamps them itself.
func (r *Rainbow) gradientFor(number float64) *Gradient {
	count := len(r.gradients)
	if count == 1 {
		return r.gradients[0]
	}

	segment := (r.maxNum - r.minNum) / float64(count)
	pos := math.Floor((math.Max(number, r.minNum) - r.minNum) / segment)
	index := count - 1
	if pos < float64(index) {
		index = int(pos)
	}
	if index < 0 || math.IsNaN(pos) {
		index = 0
	}
	return r.gradients[index]
}

// SetSpectrum replaces the spectrum with two or more colour specs. The
// Rainbow is left unchanged if any spec is invalid.
func (r *Rainbow) SetSpectrum(spectrum []string) error {
	gradients, err := buildGradients(spectrum, r.minNum, r.maxNum)
	if err != nil {
		return err
	}

	r.colours = append([]string(nil), spectrum...)
	r.gradients = gradients
	return nil
}

// SetNumberRange sets the number range and spreads the current spectrum over it.
func (r *Rainbow) SetNumberRange(min float64, max float64) error {
	if !(max > min) {
		return &InvalidRangeError{Min: min, Max: max}
	}

	gradients, err := buildGradients(r.colours, min, max)
	if err != nil {
		return err
	}

	r.minNum = min
	r.maxNum = max
	r.gradients = gradients
	return nil
}

// Spectrum returns a copy of the current spectrum.
func (r *Rainbow) Spectrum() []string {
	return append([]string(nil), r.colours...)
}

// NumberRange returns the current number range.
func (r *Rainbow) NumberRange() (float64, float64) {
	return r.minNum, r.maxNum
}

func buildGradients(spectrum []string, min float64, max float64) ([]*Gradient, error) {
	if len(spectrum) < 2 {
		return nil, &TooFewColorsError{Count: len(spectrum)}
	}

	increment := (max - min) / float64(len(spectrum)-1)
	gradients := make([]*Gradient, 0, len(spectrum)-1)
	for i := 0; i < len(spectrum)-1; i++ {
		g := NewGradient()
		if err := g.SetGradient(spectrum[i], spectrum[i+1]); err != nil {
			return nil, err
		}
		if err := g.SetRange(min+increment*float64(i), min+increment*float64(i+1)); err != nil {
			return nil, err
		}
		gradients = append(gradients, g)
	}

	return gradients, nil
}
