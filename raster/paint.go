package raster

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/srwiley/rasterx"
)

const epsilon = 1e-12

// Stop is one color stop of a gradient ramp. Colors carry straight (not
// premultiplied) alpha; interpolation happens before premultiplication.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

type paintKind uint8

const (
	paintColor paintKind = iota
	paintLinear
	paintRadial
	paintTexture
)

// paint is the full specification of a source. The setters replace it
// wholesale so that no partial state survives between draws.
type paint struct {
	kind paintKind

	color color.RGBA // solid, premultiplied

	x1, y1, x2, y2         float64 // linear gradient end points
	cx, cy, cr, fx, fy, fr float64 // radial gradient end and focal circles
	spread                 Spread
	stops                  []Stop

	img        *image.RGBA // texture source
	tiled      bool
	texOpacity float64

	matrix Matrix // gradient or texture space to user space
}

var opaqueBlack = color.RGBA{0x00, 0x00, 0x00, 0xff}

func solidPaint(c color.RGBA) paint {
	return paint{kind: paintColor, color: c}
}

// SetColor sets the source to a solid color.
func (r *Context) SetColor(c color.Color) {
	r.src = solidPaint(color.RGBAModel.Convert(c).(color.RGBA))
}

// SetLinearGradient sets the source to a linear gradient along the axis from
// (x1,y1) to (x2,y2) in gradient space, with m mapping gradient space to user
// space.
func (r *Context) SetLinearGradient(x1, y1, x2, y2 float64, spread Spread, stops []Stop, m Matrix) {
	r.src = paint{
		kind:   paintLinear,
		x1:     x1,
		y1:     y1,
		x2:     x2,
		y2:     y2,
		spread: spread,
		stops:  normalizeStops(stops),
		matrix: m,
	}
}

// SetRadialGradient sets the source to a radial gradient between a focal
// circle at (fx,fy) with radius fr and an end circle at (cx,cy) with radius
// cr in gradient space, with m mapping gradient space to user space.
func (r *Context) SetRadialGradient(cx, cy, cr, fx, fy, fr float64, spread Spread, stops []Stop, m Matrix) {
	r.src = paint{
		kind:   paintRadial,
		cx:     cx,
		cy:     cy,
		cr:     cr,
		fx:     fx,
		fy:     fy,
		fr:     fr,
		spread: spread,
		stops:  normalizeStops(stops),
		matrix: m,
	}
}

// SetTexture sets the source to another surface sampled nearest neighbor,
// with m mapping texture space to user space. Tiled textures repeat in both
// directions, plain textures are transparent outside their bounds. opacity
// scales the texture's alpha and is clamped to [0,1].
func (r *Context) SetTexture(img *image.RGBA, typ TextureType, opacity float64, m Matrix) {
	r.src = paint{
		kind:       paintTexture,
		img:        img,
		tiled:      typ == TextureTiled,
		texOpacity: math.Min(math.Max(opacity, 0.0), 1.0),
		matrix:     m,
	}
}

// SetTextureSurface sets the source to a plain texture anchored at (x,y) in
// user space.
func (r *Context) SetTextureSurface(img *image.RGBA, x, y float64) {
	r.SetTexture(img, TexturePlain, 1.0, Translation(x, y))
}

// normalizeStops clamps stop offsets to [0,1] and makes them non-decreasing,
// keeping the given order.
func normalizeStops(stops []Stop) []Stop {
	norm := make([]Stop, len(stops))
	last := 0.0
	for i, s := range stops {
		offset := math.Min(math.Max(s.Offset, 0.0), 1.0)
		if offset < last {
			offset = last
		}
		norm[i] = Stop{offset, s.Color}
		last = offset
	}
	return norm
}

////////////////////////////////////////////////////////////////

// source compiles the current paint for the rasterizer, folding in the
// global opacity. With invert the source alpha is inverted, which expresses
// DstIn as DstOut.
func (r *Context) source(invert bool) interface{} {
	var f rasterx.ColorFunc
	switch r.src.kind {
	case paintLinear, paintRadial:
		f = r.gradientFunc()
	case paintTexture:
		f = r.textureFunc()
	default:
		c := scaleColor(r.src.color, uint32(r.opacity*255.0+0.5))
		if invert {
			return color.Alpha{A: 255 - c.A}
		}
		return c
	}
	if invert {
		return invertAlpha(f)
	}
	return f
}

// invertAlpha returns a source with the alpha channel inverted. Only the
// alpha matters to its consumer.
func invertAlpha(f rasterx.ColorFunc) rasterx.ColorFunc {
	return func(x, y int) color.Color {
		_, _, _, a := f(x, y).RGBA()
		return color.Alpha{A: 255 - uint8(a>>8)}
	}
}

func flatColor(c color.Color) rasterx.ColorFunc {
	return func(int, int) color.Color { return c }
}

// gradientFunc builds the per-pixel gradient source. Each device pixel
// center maps through the inverse of the context and gradient matrices into
// gradient space, where the offset t along the ramp is determined.
func (r *Context) gradientFunc() rasterx.ColorFunc {
	p := r.src
	opacity := r.opacity
	if len(p.stops) == 0 {
		return flatColor(color.NRGBA{})
	}
	inv, ok := r.matrix.Mul(p.matrix).Invert()
	if !ok {
		return flatColor(color.NRGBA{})
	}
	last := p.stops[len(p.stops)-1].Color

	if p.kind == paintLinear {
		dx, dy := p.x2-p.x1, p.y2-p.y1
		l := dx*dx + dy*dy
		if l == 0.0 {
			// a zero-length axis paints the last stop
			return flatColor(opacityNRGBA(last, opacity))
		}
		return func(xi, yi int) color.Color {
			x, y := inv.Apply(float64(xi)+0.5, float64(yi)+0.5)
			t := ((x-p.x1)*dx + (y-p.y1)*dy) / l
			return rampColor(p.stops, p.spread, t, opacity)
		}
	}

	if p.cr <= 0.0 {
		// a zero-radius end circle paints the last stop
		return flatColor(opacityNRGBA(last, opacity))
	}
	dx, dy := p.cx-p.fx, p.cy-p.fy
	dr := p.cr - p.fr
	a := dx*dx + dy*dy - dr*dr
	return func(xi, yi int) color.Color {
		x, y := inv.Apply(float64(xi)+0.5, float64(yi)+0.5)
		px, py := x-p.fx, y-p.fy
		b := px*dx + py*dy + p.fr*dr
		c := px*px + py*py - p.fr*p.fr

		// solve for t so that the pixel lies on the circle interpolated
		// between the focal and end circles at t
		var t float64
		if math.Abs(a) < epsilon {
			if b == 0.0 {
				return color.NRGBA{}
			}
			t = c / (2.0 * b)
			if p.fr+t*dr < 0.0 {
				return color.NRGBA{}
			}
		} else {
			disc := b*b - a*c
			if disc < 0.0 {
				return color.NRGBA{}
			}
			s := math.Sqrt(disc)
			t = (b + s) / a
			if p.fr+t*dr < 0.0 {
				t = (b - s) / a
				if p.fr+t*dr < 0.0 {
					return color.NRGBA{}
				}
			}
		}
		return rampColor(p.stops, p.spread, t, opacity)
	}
}

// textureFunc builds the per-pixel texture source.
func (r *Context) textureFunc() rasterx.ColorFunc {
	p := r.src
	if p.img == nil {
		return flatColor(color.NRGBA{})
	}
	inv, ok := r.matrix.Mul(p.matrix).Invert()
	if !ok {
		return flatColor(color.NRGBA{})
	}
	bounds := p.img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return flatColor(color.NRGBA{})
	}
	img, tiled := p.img, p.tiled
	alpha := uint32(p.texOpacity*r.opacity*255.0 + 0.5)
	return func(xi, yi int) color.Color {
		x, y := inv.Apply(float64(xi)+0.5, float64(yi)+0.5)
		ix, iy := int(math.Floor(x)), int(math.Floor(y))
		if tiled {
			ix = ((ix % w) + w) % w
			iy = ((iy % h) + h) % h
		} else if ix < 0 || w <= ix || iy < 0 || h <= iy {
			return color.RGBA{}
		}
		c := img.RGBAAt(bounds.Min.X+ix, bounds.Min.Y+iy)
		if alpha == 255 {
			return c
		}
		return scaleColor(c, alpha)
	}
}

// rampColor folds t by the spread method and interpolates the stop ramp with
// straight alpha, then applies the global opacity.
func rampColor(stops []Stop, spread Spread, t, opacity float64) color.Color {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return color.NRGBA{}
	}
	switch spread {
	case SpreadRepeat:
		t -= math.Floor(t)
	case SpreadReflect:
		t = math.Mod(t, 2.0)
		if t < 0.0 {
			t += 2.0
		}
		if 1.0 < t {
			t = 2.0 - t
		}
	default:
		t = math.Min(math.Max(t, 0.0), 1.0)
	}

	i := sort.Search(len(stops), func(i int) bool { return t <= stops[i].Offset })
	if i == 0 {
		return opacityNRGBA(stops[0].Color, opacity)
	}
	if i == len(stops) {
		return opacityNRGBA(stops[len(stops)-1].Color, opacity)
	}
	s0, s1 := stops[i-1], stops[i]
	d := s1.Offset - s0.Offset
	if d <= 0.0 {
		return opacityNRGBA(s1.Color, opacity)
	}
	u := (t - s0.Offset) / d
	c := color.NRGBA{
		R: lerpByte(s0.Color.R, s1.Color.R, u),
		G: lerpByte(s0.Color.G, s1.Color.G, u),
		B: lerpByte(s0.Color.B, s1.Color.B, u),
		A: lerpByte(s0.Color.A, s1.Color.A, u),
	}
	return opacityNRGBA(c, opacity)
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func opacityNRGBA(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 1.0 {
		c.A = uint8(float64(c.A)*opacity + 0.5)
	}
	return c
}

// scaleColor scales a premultiplied color by alpha ∈ [0,255].
func scaleColor(c color.RGBA, alpha uint32) color.RGBA {
	if 255 <= alpha {
		return c
	}
	return color.RGBA{
		R: mul255(c.R, alpha),
		G: mul255(c.G, alpha),
		B: mul255(c.B, alpha),
		A: mul255(c.A, alpha),
	}
}
