package canvas

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestRGB(t *testing.T) {
	test.T(t, RGB(255, 0, 0), Red)
	test.T(t, RGBA(255, 0, 0, 0.5), color.RGBA{127, 0, 0, 127})
	test.T(t, RGBA(0, 255, 0, 1.0), Green)
}

func TestHex(t *testing.T) {
	test.T(t, Hex("#ff0000"), Red)
	test.T(t, Hex("F00"), Red)
	test.T(t, Hex("#00f"), Blue)
	test.T(t, Hex("0000ff80"), color.RGBA{0, 0, 128, 128})
	test.T(t, Hex("#f008"), color.RGBA{136, 0, 0, 136})
	test.T(t, Hex("12345"), Black)
}

func TestStopsAdd(t *testing.T) {
	stops := Stops{}
	stops.Add(0.7, Blue)
	stops.Add(0.2, Red)
	stops.Add(-1.0, White) // clamped to 0.0
	stops.Add(0.2, Green)  // replaces the equal offset
	test.T(t, stops, Stops{{0.0, White}, {0.2, Green}, {0.7, Blue}})
}
