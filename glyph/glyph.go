// Package glyph renders per-codepoint coverage bitmaps with advances and
// bearings from TrueType and OpenType fonts.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"codeberg.org/go-fonts/liberation/liberationsansregular"
	"github.com/golang/freetype/truetype"
	tdfont "github.com/tdewolff/font"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrMissingGlyph is returned when a font has no glyph for a codepoint.
var ErrMissingGlyph = errors.New("missing glyph")

// Font is a parsed font whose glyphs can be rendered at any size through a
// Face.
type Font struct {
	ttf *truetype.Font
}

// Parse parses a font in SFNT, WOFF, WOFF2 or EOT format. Fonts with CFF
// outlines are not supported.
func Parse(data []byte) (*Font, error) {
	data, err := tdfont.ToSFNT(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{ttf: ttf}, nil
}

// LoadFontFile reads and parses a font file.
func LoadFontFile(filename string) (*Font, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return Parse(data)
}

// Face derives a font face at the given size in points and resolution in
// dots per inch. A dpi of zero or less means 72. Glyphs are rendered without
// hinting so that output is identical across sizes and platforms.
func (f *Font) Face(size, dpi float64) (*Face, error) {
	if size <= 0.0 {
		return nil, fmt.Errorf("face size %v: must be positive", size)
	}
	if dpi <= 0.0 {
		dpi = 72.0
	}
	face := truetype.NewFace(f.ttf, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	return &Face{font: f, face: face, size: size, dpi: dpi}, nil
}

////////////////////////////////////////////////////////////////

// Face is a Font fixed at one size and resolution, producing glyph coverage
// bitmaps. A Face is not safe for concurrent use.
type Face struct {
	font *Font
	face font.Face
	size float64
	dpi  float64
}

// Size returns the face's size in points.
func (f *Face) Size() float64 {
	return f.size
}

// DPI returns the face's resolution in dots per inch.
func (f *Face) DPI() float64 {
	return f.dpi
}

// Close releases the face's glyph rendering resources.
func (f *Face) Close() error {
	return f.face.Close()
}

// Bitmap is an 8-bit coverage bitmap, row-major with Pitch bytes per row.
// A zero-area bitmap is valid, eg. for a space.
type Bitmap struct {
	Width  int
	Rows   int
	Pitch  int
	Buffer []byte
}

// Glyph is one rendered glyph: its coverage bitmap, the bitmap's left and top
// bearings relative to the baseline origin (Top is the distance from the
// baseline up to the first bitmap row), and the horizontal advance in whole
// pixels.
type Glyph struct {
	Advance int
	Left    int
	Top     int
	Bitmap  Bitmap
}

// Load renders the glyph for codepoint r. It returns an error wrapping
// ErrMissingGlyph if the font has no glyph for r.
func (f *Face) Load(r rune) (Glyph, error) {
	if f.font.ttf.Index(r) == 0 {
		return Glyph{}, fmt.Errorf("glyph %q: %w", r, ErrMissingGlyph)
	}
	return f.render(r)
}

// Notdef renders the glyph a font shows in place of codepoints it does not
// map: the replacement character U+FFFD when the font has one, otherwise the
// missing-glyph box at index 0 that the rasterizer falls back to for unmapped
// codepoints.
func (f *Face) Notdef() (Glyph, error) {
	return f.render('�')
}

func (f *Face) render(r rune) (Glyph, error) {
	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Glyph{}, fmt.Errorf("glyph %q: cannot render", r)
	}
	width, rows := dr.Dx(), dr.Dy()
	bitmap := Bitmap{Width: width, Rows: rows, Pitch: width}
	if 0 < width && 0 < rows {
		alpha, isAlpha := mask.(*image.Alpha)
		if !isAlpha {
			return Glyph{}, fmt.Errorf("glyph %q: unexpected mask type %T", r, mask)
		}
		bitmap.Buffer = make([]byte, width*rows)
		for y := 0; y < rows; y++ {
			i := alpha.PixOffset(maskp.X, maskp.Y+y)
			copy(bitmap.Buffer[y*width:(y+1)*width], alpha.Pix[i:i+width])
		}
	}
	return Glyph{
		Advance: advance.Floor(),
		Left:    dr.Min.X,
		Top:     -dr.Min.Y,
		Bitmap:  bitmap,
	}, nil
}

////////////////////////////////////////////////////////////////

var (
	defaultFace     *Face
	defaultFaceErr  error
	defaultFaceOnce sync.Once
)

// DefaultFace returns the embedded Liberation Sans Regular face at size 12
// and 100 dpi, built on first use. The same Face is returned on every call
// and must not be used concurrently.
func DefaultFace() (*Face, error) {
	defaultFaceOnce.Do(func() {
		f, err := Parse(liberationsansregular.TTF)
		if err != nil {
			defaultFaceErr = err
			return
		}
		defaultFace, defaultFaceErr = f.Face(12.0, 100.0)
	})
	return defaultFace, defaultFaceErr
}
