package stream

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/rainbow/rainbow"
	"github.com/matt-g-everett/rainbow/util"
)

// A Gauge draws a reading as a bar along an led strip. Each lit pixel takes
// the rainbow colour of its own position, so the bar shows the spectrum up
// to the reading.
type Gauge struct {
	rainbow    *rainbow.Locked
	numPixels  int
	backColour colorful.Color
}

// NewGauge creates an instance of a Gauge.
func NewGauge(r *rainbow.Locked, numPixels int, backColour colorful.Color) *Gauge {
	g := new(Gauge)
	g.rainbow = r
	g.numPixels = numPixels
	g.backColour = backColour
	return g
}

// CalculateFrame renders value into a new Frame.
func (g *Gauge) CalculateFrame(value float64) *Frame {
	f := NewFrame(g.numPixels)
	g.rainbow.Read(func(r *rainbow.Rainbow) {
		min, max := r.NumberRange()
		for i, pos := range util.Sweep(min, max, g.numPixels) {
			if pos <= value {
				f.pixels[i] = r.RGBAt(pos).Colorful()
			} else {
				f.pixels[i] = g.backColour
			}
		}
	})

	return f
}
