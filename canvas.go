package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/vgkit/canvas/raster"
)

// Canvas is a premultiplied RGBA surface that covers an axis-aligned region
// of the document. Paths, strokes and text are drawn in document coordinates
// and shifted onto the surface by the canvas translation, ie. a canvas
// covering (30,40)-(50,60) stores the document pixel (30,40) at (0,0).
type Canvas struct {
	img      *image.RGBA
	ctx      *raster.Context
	rect     Rect
	setPaint func(*raster.Context)
}

// New returns a canvas covering the box (x,y)-(x+w,y+h). The box is expanded
// to integer pixel boundaries using floor for the top-left corner and ceil
// for the bottom-right corner. A degenerate box of zero or negative size
// yields a 1x1 canvas at the origin.
func New(x, y, w, h float64) *Canvas {
	if w <= 0.0 || h <= 0.0 {
		return newCanvas(0, 0, 1, 1)
	}
	l := int(math.Floor(x))
	t := int(math.Floor(y))
	r := int(math.Ceil(x + w))
	b := int(math.Ceil(y + h))
	return newCanvas(l, t, r-l, b-t)
}

// NewFromRect returns a canvas covering rect, see New.
func NewFromRect(rect Rect) *Canvas {
	return New(rect.X, rect.Y, rect.W, rect.H)
}

// NewFromData returns a canvas drawing into an existing premultiplied RGBA
// pixel buffer of the given size, with stride the number of bytes between
// vertical pixel neighbours. len(data) must be at least stride*height. The
// canvas covers (0,0)-(width,height) and draws without translation.
func NewFromData(data []byte, width, height, stride int) *Canvas {
	img := &image.RGBA{
		Pix:    data,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}
	c := &Canvas{
		img:  img,
		ctx:  raster.NewContext(img),
		rect: Rect{0.0, 0.0, float64(width), float64(height)},
	}
	c.SetColor(Black)
	return c
}

func newCanvas(x, y, w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := &Canvas{
		img:  img,
		ctx:  raster.NewContext(img),
		rect: Rect{float64(x), float64(y), float64(w), float64(h)},
	}
	c.SetColor(Black)
	return c
}

// translation maps document coordinates onto the surface.
func (c *Canvas) translation() Matrix {
	return Identity.Translate(-c.rect.X, -c.rect.Y)
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Stride returns the number of bytes between vertical pixel neighbours.
func (c *Canvas) Stride() int {
	return c.img.Stride
}

// Data returns the premultiplied RGBA pixel buffer of the canvas.
func (c *Canvas) Data() []byte {
	return c.img.Pix
}

// Box returns the region of the document covered by the canvas.
func (c *Canvas) Box() Rect {
	return c.rect
}

// Image returns the underlying image of the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

////////////////////////////////////////////////////////////////

// SetColor sets the paint to a solid premultiplied RGBA color.
func (c *Canvas) SetColor(col color.RGBA) {
	c.setPaint = func(ctx *raster.Context) {
		ctx.SetColor(col)
	}
}

// SetLinearGradient sets the paint to a linear gradient along the axis from
// (x1,y1) to (x2,y2) in gradient coordinates, with m mapping gradient
// coordinates to document coordinates.
func (c *Canvas) SetLinearGradient(x1, y1, x2, y2 float64, stops Stops, spread SpreadMethod, m Matrix) {
	rstops, rspread, rm := rasterStops(stops), rasterSpread(spread), rasterMatrix(m)
	c.setPaint = func(ctx *raster.Context) {
		ctx.SetLinearGradient(x1, y1, x2, y2, rspread, rstops, rm)
	}
}

// SetRadialGradient sets the paint to a radial gradient with center (cx,cy),
// radius r and focal point (fx,fy) in gradient coordinates, with m mapping
// gradient coordinates to document coordinates.
func (c *Canvas) SetRadialGradient(cx, cy, r, fx, fy float64, stops Stops, spread SpreadMethod, m Matrix) {
	rstops, rspread, rm := rasterStops(stops), rasterSpread(spread), rasterMatrix(m)
	c.setPaint = func(ctx *raster.Context) {
		ctx.SetRadialGradient(cx, cy, r, fx, fy, 0.0, rspread, rstops, rm)
	}
}

// SetTexture sets the paint to the pixels of another canvas, with m mapping
// texture coordinates to document coordinates. A plain texture is transparent
// outside the source canvas while a tiled texture repeats it, and opacity
// multiplies the source alpha.
func (c *Canvas) SetTexture(source *Canvas, typ TextureType, opacity float64, m Matrix) {
	img, rtyp, rm := source.img, rasterTexture(typ), rasterMatrix(m)
	c.setPaint = func(ctx *raster.Context) {
		ctx.SetTexture(img, rtyp, opacity, rm)
	}
}

////////////////////////////////////////////////////////////////

// Fill fills path with the current paint. The path is transformed by m and
// then by the canvas translation.
func (c *Canvas) Fill(path *Path, m Matrix, rule FillRule, mode BlendMode, opacity float64) {
	c.ctx.SetMatrix(rasterMatrix(c.translation().Mul(m)))
	c.ctx.SetFillRule(rasterFillRule(rule))
	c.ctx.SetOperator(rasterOperator(mode))
	c.ctx.SetOpacity(opacity)
	c.setPaint(c.ctx)
	c.addPath(path)
	c.ctx.Fill()
}

// Stroke strokes path with the current paint. Stroke width, dash pattern and
// dash offset are given in the coordinates that m maps from.
func (c *Canvas) Stroke(path *Path, m Matrix, style StrokeStyle, mode BlendMode, opacity float64) {
	c.ctx.SetMatrix(rasterMatrix(c.translation().Mul(m)))
	c.ctx.SetLineWidth(style.Width)
	c.ctx.SetLineCap(rasterLineCap(style.Cap))
	c.ctx.SetLineJoin(rasterLineJoin(style.Join))
	c.ctx.SetMiterLimit(style.MiterLimit)
	c.ctx.SetDash(style.Dash.Offset, style.Dash.Array)
	c.ctx.SetOperator(rasterOperator(mode))
	c.ctx.SetOpacity(opacity)
	c.setPaint(c.ctx)
	c.addPath(path)
	c.ctx.Stroke()
}

// Blend composites the source canvas onto c, aligning both canvases in
// document coordinates. The current paint is not used.
func (c *Canvas) Blend(source *Canvas, mode BlendMode, opacity float64) {
	c.ctx.SetTextureSurface(source.img, source.rect.X, source.rect.Y)
	c.ctx.SetOperator(rasterOperator(mode))
	c.ctx.SetOpacity(opacity)
	c.ctx.SetMatrix(rasterMatrix(c.translation()))
	c.ctx.Paint()
}

// Mask clears all pixels outside of clip transformed by m, keeping the
// pixels inside untouched. Masking with the canvas box is a no-op, masking
// with an empty clip clears the entire canvas.
func (c *Canvas) Mask(clip Rect, m Matrix) {
	path := clip.ToPath().Transform(m)
	path.Append(c.rect.ToPath())
	c.ctx.SetMatrix(rasterMatrix(c.translation()))
	c.ctx.SetFillRule(raster.EvenOdd)
	c.ctx.SetOperator(raster.DstOut)
	c.ctx.SetOpacity(1.0)
	c.ctx.SetColor(Black)
	c.addPath(path)
	c.ctx.Fill()
}

// Luminance converts the canvas in place into an alpha mask, with the alpha
// of each pixel set to the luminance (2r+3g+b)/6 of its premultiplied color
// and the color channels zeroed.
func (c *Canvas) Luminance() {
	w, h := c.Width(), c.Height()
	for y := 0; y < h; y++ {
		i := c.img.PixOffset(0, y)
		for x := 0; x < w; x++ {
			pix := c.img.Pix[i : i+4 : i+4]
			l := (2*uint32(pix[0]) + 3*uint32(pix[1]) + uint32(pix[2])) / 6
			pix[0], pix[1], pix[2], pix[3] = 0, 0, 0, uint8(l)
			i += 4
		}
	}
}

// addPath replays path into the rasterizer.
func (c *Canvas) addPath(path *Path) {
	for s := path.Scanner(); s.Scan(); {
		switch s.Cmd() {
		case MoveToCmd:
			end := s.End()
			c.ctx.MoveTo(end.X, end.Y)
		case LineToCmd:
			end := s.End()
			c.ctx.LineTo(end.X, end.Y)
		case CubeToCmd:
			cp1, cp2, end := s.CP1(), s.CP2(), s.End()
			c.ctx.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
		case CloseCmd:
			c.ctx.ClosePath()
		}
	}
}

////////////////////////////////////////////////////////////////

func rasterMatrix(m Matrix) raster.Matrix {
	return raster.Matrix{
		A: m[0][0], C: m[0][1], E: m[0][2],
		B: m[1][0], D: m[1][1], F: m[1][2],
	}
}

func rasterStops(stops Stops) []raster.Stop {
	rstops := make([]raster.Stop, len(stops))
	for i, stop := range stops {
		rstops[i] = raster.Stop{
			Offset: stop.Offset,
			Color:  color.NRGBAModel.Convert(stop.Color).(color.NRGBA),
		}
	}
	return rstops
}

func rasterFillRule(rule FillRule) raster.FillRule {
	if rule == EvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

func rasterOperator(mode BlendMode) raster.Operator {
	switch mode {
	case BlendSrc:
		return raster.Src
	case BlendDstIn:
		return raster.DstIn
	case BlendDstOut:
		return raster.DstOut
	}
	return raster.SrcOver
}

func rasterLineCap(c LineCap) raster.LineCap {
	switch c {
	case RoundCap:
		return raster.CapRound
	case SquareCap:
		return raster.CapSquare
	}
	return raster.CapButt
}

func rasterLineJoin(join LineJoin) raster.LineJoin {
	switch join {
	case RoundJoin:
		return raster.JoinRound
	case BevelJoin:
		return raster.JoinBevel
	}
	return raster.JoinMiter
}

func rasterSpread(spread SpreadMethod) raster.Spread {
	switch spread {
	case SpreadReflect:
		return raster.SpreadReflect
	case SpreadRepeat:
		return raster.SpreadRepeat
	}
	return raster.SpreadPad
}

func rasterTexture(typ TextureType) raster.TextureType {
	if typ == TextureTiled {
		return raster.TextureTiled
	}
	return raster.TexturePlain
}
