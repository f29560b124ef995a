package chart

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// viridisStops are evenly spaced samples of the viridis colour map.
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

// Viridis returns the viridis colour map value for v in [0, 1], values out of
// range are clamped.
func Viridis(v float64) color.Color {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	pos := v * float64(len(viridisStops)-1)
	i := int(pos)
	if i >= len(viridisStops)-1 {
		return viridisStops[len(viridisStops)-1]
	}

	return viridisStops[i].BlendLab(viridisStops[i+1], pos-float64(i)).Clamped()
}

// CompletionColor returns the bar colour for a completion percentage.
func CompletionColor(completion int) color.Color {
	return Viridis(float64(completion) / 100)
}
