package rainbow

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour as three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Colorful converts the colour for blending and LED output.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// Hex formats the colour as six lowercase hex digits without a leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) channels() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// FromColorful converts a clamped colorful.Color back to 8-bit channels.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// htmlColors holds the standard HTML colour names. Never written after init.
var htmlColors = map[string]RGB{
	"black":   {0x00, 0x00, 0x00},
	"navy":    {0x00, 0x00, 0x80},
	"blue":    {0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00},
	"teal":    {0x00, 0x80, 0x80},
	"lime":    {0x00, 0xff, 0x00},
	"aqua":    {0x00, 0xff, 0xff},
	"maroon":  {0x80, 0x00, 0x00},
	"purple":  {0x80, 0x00, 0x80},
	"olive":   {0x80, 0x80, 0x00},
	"grey":    {0x80, 0x80, 0x80},
	"gray":    {0x80, 0x80, 0x80},
	"silver":  {0xc0, 0xc0, 0xc0},
	"red":     {0xff, 0x00, 0x00},
	"fuchsia": {0xff, 0x00, 0xff},
	"orange":  {0xff, 0x80, 0x00},
	"yellow":  {0xff, 0xff, 0x00},
	"white":   {0xff, 0xff, 0xff},
}

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// LookupName finds a named colour, ignoring case.
func LookupName(name string) (RGB, bool) {
	c, ok := htmlColors[strings.ToLower(name)]
	return c, ok
}

// Names lists the known colour names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(htmlColors))
	for n := range htmlColors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseColor resolves a colour spec: six hex digits, optionally prefixed
// with '#', or one of the names known to LookupName.
func ParseColor(spec string) (RGB, error) {
	if hexPattern.MatchString(spec) {
		c, err := colorful.Hex("#" + strings.TrimPrefix(spec, "#"))
		if err != nil {
			return RGB{}, &InvalidColorError{Spec: spec}
		}
		return FromColorful(c), nil
	}

	if c, ok := LookupName(spec); ok {
		return c, nil
	}

	return RGB{}, &InvalidColorError{Spec: spec}
}
