package raster

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanx"
)

// ensureScratch prepares the scratch surface and its rasterizer for a DstIn
// or DstOut pass. The scratch spanner always replaces so that its alpha holds
// exactly the rasterized source alpha times the coverage.
func (r *Context) ensureScratch() {
	if r.scratch == nil {
		r.scratch = image.NewRGBA(image.Rect(0, 0, r.width, r.height))
		spanner := scanx.NewImgSpanner(r.scratch)
		spanner.Op = draw.Src
		scanner := scanx.NewScanner(spanner, r.width, r.height)
		r.scratchRas = rasterx.NewDasher(r.width, r.height, scanner)
		return
	}
	clear(r.scratch.Pix)
}

// mulInverseAlpha multiplies every destination pixel by the inverse alpha of
// the corresponding source pixel. Pixels whose source alpha is zero keep
// their value.
func mulInverseAlpha(dst, src *image.RGBA) {
	b := dst.Bounds().Intersect(src.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		d := dst.Pix[dst.PixOffset(b.Min.X, y):]
		s := src.Pix[src.PixOffset(b.Min.X, y):]
		n := 4 * b.Dx()
		for i := 3; i < n; i += 4 {
			a := s[i]
			if a == 0 {
				continue
			}
			ia := uint32(255 - a)
			d[i-3] = mul255(d[i-3], ia)
			d[i-2] = mul255(d[i-2], ia)
			d[i-1] = mul255(d[i-1], ia)
			d[i-0] = mul255(d[i-0], ia)
		}
	}
}

// mul255 returns v·a/255 rounded, for a ∈ [0,255].
func mul255(v uint8, a uint32) uint8 {
	t := uint32(v)*a + 0x80
	return uint8((t + t>>8) >> 8)
}
