package rainbow

import (
	"math"
)

// A Gradient interpolates linearly between two colours over a number range.
type Gradient struct {
	startColour RGB
	endColour   RGB
	minNum      float64
	maxNum      float64
}

// NewGradient creates a Gradient from red to blue over [0, 100].
func NewGradient() *Gradient {
	g := new(Gradient)
	g.startColour = RGB{0xff, 0x00, 0x00}
	g.endColour = RGB{0x00, 0x00, 0xff}
	g.minNum = 0
	g.maxNum = 100
	return g
}

// SetGradient sets both end colours. Neither is changed if either spec is invalid.
func (g *Gradient) SetGradient(start string, end string) error {
	s, err := ParseColor(start)
	if err != nil {
		return err
	}
	e, err := ParseColor(end)
	if err != nil {
		return err
	}

	g.startColour = s
	g.endColour = e
	return nil
}

// SetRange sets the number range the gradient is spread over.
func (g *Gradient) SetRange(min float64, max float64) error {
	// Written as !(max > min) so NaN bounds are rejected as well.
	if !(max > min) {
		return &InvalidRangeError{Min: min, Max: max}
	}

	g.minNum = min
	g.maxNum = max
	return nil
}

// Range returns the number range of the gradient.
func (g *Gradient) Range() (float64, float64) {
	return g.minNum, g.maxNum
}

// RGBAt gets the colour for a number, clamped to the gradient's range.
func (g *Gradient) RGBAt(number float64) RGB {
	start := g.startColour.channels()
	end := g.endColour.channels()
	var out [3]uint8
	for i := range out {
		out[i] = g.calcChannel(number, start[i], end[i])
	}
	return RGB{out[0], out[1], out[2]}
}

// ColorAt gets the colour for a number as six lowercase hex digits.
func (g *Gradient) ColorAt(number float64) string {
	return g.RGBAt(number).Hex()
}

func (g *Gradient) calcChannel(number float64, channelStart uint8, channelEnd uint8) uint8 {
	num := number
	if num < g.minNum || math.IsNaN(num) {
		num = g.minNum
	}
	if num > g.maxNum {
		num = g.maxNum
	}
	delta := float64(channelEnd) - float64(channelStart)
	return uint8(math.Round(float64(channelStart) + delta*(num-g.minNum)/(g.maxNum-g.minNum)))
}
