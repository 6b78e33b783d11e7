package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

var (
	nred  = color.NRGBA{255, 0, 0, 255}
	nblue = color.NRGBA{0, 0, 255, 255}
)

func redBlue() []Stop {
	return []Stop{{0.0, nred}, {1.0, nblue}}
}

func TestLinearGradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 1))
	r := NewContext(img)
	r.SetLinearGradient(0, 0, 10, 0, SpreadPad, redBlue(), Identity)
	fillRect(r, 0, 0, 10, 1)

	// pixel centers sample the ramp, ie. x=0 samples t=0.05
	test.T(t, img.RGBAAt(0, 0), color.RGBA{242, 0, 13, 255})
	test.T(t, img.RGBAAt(5, 0), color.RGBA{115, 0, 140, 255})
	test.T(t, img.RGBAAt(9, 0), color.RGBA{13, 0, 242, 255})
}

func TestLinearGradientSpread(t *testing.T) {
	render := func(s Spread) *image.RGBA {
		img := image.NewRGBA(image.Rect(0, 0, 6, 1))
		r := NewContext(img)
		r.SetLinearGradient(0, 0, 2, 0, s, redBlue(), Identity)
		fillRect(r, 0, 0, 6, 1)
		return img
	}

	// pad clamps to the last stop beyond the axis
	pad := render(SpreadPad)
	test.T(t, pad.RGBAAt(2, 0), color.RGBA{0, 0, 255, 255})
	test.T(t, pad.RGBAAt(5, 0), color.RGBA{0, 0, 255, 255})

	// repeat wraps the ramp every axis length
	repeat := render(SpreadRepeat)
	test.T(t, repeat.RGBAAt(2, 0), repeat.RGBAAt(0, 0))
	test.T(t, repeat.RGBAAt(3, 0), repeat.RGBAAt(1, 0))
	test.T(t, repeat.RGBAAt(4, 0), repeat.RGBAAt(0, 0))

	// reflect mirrors every other repetition
	reflect := render(SpreadReflect)
	test.T(t, reflect.RGBAAt(2, 0), reflect.RGBAAt(1, 0))
	test.T(t, reflect.RGBAAt(3, 0), reflect.RGBAAt(0, 0))
	test.T(t, reflect.RGBAAt(4, 0), reflect.RGBAAt(0, 0))
}

func TestLinearGradientZeroAxis(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	r := NewContext(img)
	r.SetLinearGradient(1, 1, 1, 1, SpreadPad, redBlue(), Identity)
	fillRect(r, 0, 0, 2, 1)
	test.T(t, img.RGBAAt(0, 0), color.RGBA{0, 0, 255, 255})
	test.T(t, img.RGBAAt(1, 0), color.RGBA{0, 0, 255, 255})
}

func TestGradientEmptyStops(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	r := NewContext(img)
	r.SetLinearGradient(0, 0, 2, 0, SpreadPad, nil, Identity)
	fillRect(r, 0, 0, 2, 1)
	test.T(t, img.RGBAAt(0, 0), color.RGBA{})
	test.T(t, img.RGBAAt(1, 0), color.RGBA{})
}

func TestGradientStopsClamped(t *testing.T) {
	// out of order offsets are raised to the running maximum
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	r := NewContext(img)
	r.SetLinearGradient(0, 0, 2, 0, SpreadPad, []Stop{{0.5, nred}, {0.2, nblue}}, Identity)
	fillRect(r, 0, 0, 2, 1)
	test.T(t, img.RGBAAt(0, 0), color.RGBA{255, 0, 0, 255})
	test.T(t, img.RGBAAt(1, 0), color.RGBA{0, 0, 255, 255})
}

func TestGradientOpacity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	r := NewContext(img)
	r.SetOpacity(0.5)
	r.SetLinearGradient(0, 0, 0, 0, SpreadPad, redBlue(), Identity)
	fillRect(r, 0, 0, 1, 1)
	test.T(t, img.RGBAAt(0, 0), color.RGBA{0, 0, 128, 128})
}

func TestRadialGradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	r := NewContext(img)
	r.SetRadialGradient(5, 5, 5, 5, 5, 0, SpreadPad, redBlue(), Identity)
	fillRect(r, 0, 0, 10, 10)

	// the center pixel sits sqrt(0.5) from the focal point, t=0.1414
	test.T(t, img.RGBAAt(5, 5), color.RGBA{219, 0, 36, 255})
	test.T(t, img.RGBAAt(0, 0), color.RGBA{0, 0, 255, 255})
	test.T(t, img.RGBAAt(9, 9), color.RGBA{0, 0, 255, 255})
}

func TestRadialGradientZeroRadius(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	r := NewContext(img)
	r.SetRadialGradient(1, 0, 0, 1, 0, 0, SpreadPad, redBlue(), Identity)
	fillRect(r, 0, 0, 2, 1)
	test.T(t, img.RGBAAt(0, 0), color.RGBA{0, 0, 255, 255})
	test.T(t, img.RGBAAt(1, 0), color.RGBA{0, 0, 255, 255})
}

func texSource() *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 1, blue)
	return src
}

func TestTexturePlain(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	r := NewContext(img)
	r.SetTexture(texSource(), TexturePlain, 1.0, Translation(2, 2))
	r.Paint()

	test.T(t, img.RGBAAt(2, 2), red)
	test.T(t, img.RGBAAt(3, 3), blue)
	test.T(t, img.RGBAAt(3, 2), color.RGBA{})
	test.T(t, img.RGBAAt(0, 0), color.RGBA{})
	test.T(t, img.RGBAAt(4, 4), color.RGBA{})
}

func TestTextureTiled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	r := NewContext(img)
	r.SetTexture(texSource(), TextureTiled, 1.0, Translation(2, 2))
	r.Paint()

	test.T(t, img.RGBAAt(0, 0), red)
	test.T(t, img.RGBAAt(1, 1), blue)
	test.T(t, img.RGBAAt(2, 2), red)
	test.T(t, img.RGBAAt(4, 4), red)
	test.T(t, img.RGBAAt(5, 5), blue)
	test.T(t, img.RGBAAt(5, 4), color.RGBA{})
}

func TestTextureOpacity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	r := NewContext(img)
	r.SetTexture(texSource(), TexturePlain, 0.5, Identity)
	r.Paint()
	test.T(t, img.RGBAAt(0, 0), color.RGBA{128, 0, 0, 128})
}

func TestTextureSurface(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	r := NewContext(img)
	r.SetTextureSurface(texSource(), 1, 2)
	r.Paint()

	test.T(t, img.RGBAAt(1, 2), red)
	test.T(t, img.RGBAAt(2, 3), blue)
	test.T(t, img.RGBAAt(2, 2), color.RGBA{})
	test.T(t, img.RGBAAt(0, 0), color.RGBA{})
}

func TestTextureSingularMatrix(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	r := NewContext(img)
	r.SetTexture(texSource(), TexturePlain, 1.0, Matrix{})
	r.Paint()
	test.T(t, img.RGBAAt(0, 0), color.RGBA{})
	test.T(t, img.RGBAAt(1, 0), color.RGBA{})
}

func TestNormalizeStops(t *testing.T) {
	norm := normalizeStops([]Stop{{-0.5, nred}, {0.7, nblue}, {0.3, nred}, {1.5, nblue}})
	test.T(t, norm, []Stop{{0.0, nred}, {0.7, nblue}, {0.7, nred}, {1.0, nblue}})
}
