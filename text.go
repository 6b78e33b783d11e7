package canvas

import (
	"errors"
	"math"

	"github.com/vgkit/canvas/glyph"
)

// ErrNoFace is returned by Text when no font face is given.
var ErrNoFace = errors.New("no font face")

// Text draws text onto the canvas with its baseline starting at (x,y) in
// document coordinates. The glyph coverages of all codepoints are rendered
// into a single text block whose inked pixels overwrite the canvas as opaque
// grays, with full coverage mapping to black; pixels without coverage are
// left untouched. Codepoints that cannot be loaded fall back to the face's
// notdef glyph, or are skipped when even that cannot be rendered.
func (c *Canvas) Text(face *glyph.Face, x, y float64, text string) error {
	if face == nil {
		return ErrNoFace
	}

	runes := []rune(text)
	glyphs := make([]glyph.Glyph, 0, len(runes))
	width, rows := 0, 0
	for _, r := range runes {
		g, err := face.Load(r)
		if err != nil {
			g, err = face.Notdef()
			if err != nil {
				Logger().Debug("skipping codepoint", "rune", string(r), "err", err)
				continue
			}
		}
		glyphs = append(glyphs, g)
		width += g.Advance
		if rows < g.Bitmap.Rows {
			rows = g.Bitmap.Rows
		}
	}
	if width == 0 || rows == 0 {
		return nil
	}

	// blit all glyphs onto a single baseline in one coverage bitmap
	scratch := make([]byte, width*rows)
	penX := 0
	for _, g := range glyphs {
		left := penX + g.Left
		top := rows - g.Top
		for row := 0; row < g.Bitmap.Rows; row++ {
			sy := top + row
			if sy < 0 || rows <= sy {
				continue
			}
			for col := 0; col < g.Bitmap.Width; col++ {
				sx := left + col
				if sx < 0 || width <= sx {
					continue
				}
				scratch[sy*width+sx] |= g.Bitmap.Buffer[row*g.Bitmap.Pitch+col]
			}
		}
		penX += g.Advance
	}

	x0 := int(math.Round(x)) - int(c.rect.X)
	y0 := int(math.Round(y)) - int(math.Round(face.Size())) - int(c.rect.Y)
	Logger().Debug("compositing text", "codepoints", len(runes), "width", width, "rows", rows, "x", x0, "y", y0)
	for row := 0; row < rows; row++ {
		dy := y0 + row
		if dy < 0 || c.Height() <= dy {
			continue
		}
		for col := 0; col < width; col++ {
			cov := scratch[row*width+col]
			dx := x0 + col
			if cov == 0 || dx < 0 || c.Width() <= dx {
				continue
			}
			gray := 255 - cov
			i := c.img.PixOffset(dx, dy)
			pix := c.img.Pix[i : i+4 : i+4]
			pix[0], pix[1], pix[2], pix[3] = gray, gray, gray, 255
		}
	}
	return nil
}
