package viz

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// viridis key stops, evenly spaced over [0, 1].
var viridisStops = []colorful.Color{
	mustHex("#440154"),
	mustHex("#482878"),
	mustHex("#3e4989"),
	mustHex("#31688e"),
	mustHex("#26828e"),
	mustHex("#1f9e89"),
	mustHex("#35b779"),
	mustHex("#6ece58"),
	mustHex("#b5de2b"),
	mustHex("#fde725"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Viridis maps t in [0, 1] onto the viridis colormap, blending neighbouring
// stops in Lab space. Values outside the range are clamped.
func Viridis(t float64) colorful.Color {
	if math.IsNaN(t) || t <= 0 {
		return viridisStops[0]
	}
	if t >= 1 {
		return viridisStops[len(viridisStops)-1]
	}
	pos := t * float64(len(viridisStops)-1)
	i := int(pos)
	return viridisStops[i].BlendLab(viridisStops[i+1], pos-float64(i)).Clamped()
}

// RGBA converts a colormap colour for image drawing.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
