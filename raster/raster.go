// Package raster implements an anti-aliased software rasterizer that fills
// and strokes vector paths onto an RGBA surface with solid colors, linear and
// radial gradients, and textures.
package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanx"
	"golang.org/x/image/math/fixed"
)

// Operator is a Porter-Duff compositing operator. Src and SrcOver replace or
// blend the source within the rasterized coverage. DstIn and DstOut keep the
// destination and multiply its alpha by the source alpha or its inverse;
// pixels without coverage are left untouched.
type Operator int

// see Operator
const (
	SrcOver Operator = iota
	Src
	DstIn
	DstOut
)

// FillRule determines how overlapping subpaths are filled.
type FillRule int

// see FillRule
const (
	NonZero FillRule = iota
	EvenOdd
)

// LineCap is the style of stroked line endings.
type LineCap int

// see LineCap
const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the style of stroked line joins.
type LineJoin int

// see LineJoin
const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Spread is the gradient behavior outside the [0,1] offset range.
type Spread int

// see Spread
const (
	SpreadPad Spread = iota
	SpreadReflect
	SpreadRepeat
)

// TextureType specifies whether a texture paints its source once or tiles it
// endlessly in both directions.
type TextureType int

// see TextureType
const (
	TexturePlain TextureType = iota
	TextureTiled
)

////////////////////////////////////////////////////////////////

// Matrix is an affine transformation mapping (x,y) to (A·x+C·y+E, B·x+D·y+F).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transformation.
var Identity = Matrix{1.0, 0.0, 0.0, 1.0, 0.0, 0.0}

// Translation returns the transformation translating by (x,y).
func Translation(x, y float64) Matrix {
	return Matrix{1.0, 0.0, 0.0, 1.0, x, y}
}

// Scaling returns the transformation scaling by (x,y).
func Scaling(x, y float64) Matrix {
	return Matrix{x, 0.0, 0.0, y, 0.0, 0.0}
}

// Mul returns the composition of m and n so that n is applied first.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms the point (x,y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Invert returns the inverse transformation of m and whether it exists.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0.0 {
		return Identity, false
	}
	inv := 1.0 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}

// scale is the mean absolute scale factor of the linear part, which carries
// line widths and dash lengths from user space into device space.
func (m Matrix) scale() float64 {
	return 0.5 * (math.Hypot(m.A, m.B) + math.Hypot(m.C, m.D))
}

////////////////////////////////////////////////////////////////

type pathVerb uint8

const (
	verbMoveTo pathVerb = iota
	verbLineTo
	verbCubicTo
	verbClose
)

// Context is a stateful drawing context bound to one RGBA surface. Geometry
// is accumulated in user space with MoveTo, LineTo, CubicTo and ClosePath and
// consumed by Fill or Stroke, which transform it by the current matrix and
// rasterize it with the current source, operator and opacity. Paint covers
// the whole surface instead.
//
// A Context is not safe for concurrent use.
type Context struct {
	img     *image.RGBA
	width   int
	height  int
	spanner *scanx.ImgSpanner
	ras     *rasterx.Dasher

	// scratch surface for the DstIn and DstOut operators
	scratch    *image.RGBA
	scratchRas *rasterx.Dasher

	matrix     Matrix
	rule       FillRule
	op         Operator
	opacity    float64
	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
	dashes     []float64
	dashOffset float64
	src        paint

	verbs []pathVerb
	pts   []float64
}

// NewContext returns a drawing context over img. The initial state is the
// identity matrix, non-zero fill rule, source-over operator, full opacity, an
// opaque black source, and a solid stroke of width 1 with butt caps and miter
// joins limited at 10.
func NewContext(img *image.RGBA) *Context {
	b := img.Bounds()
	spanner := scanx.NewImgSpanner(img)
	scanner := scanx.NewScanner(spanner, b.Dx(), b.Dy())
	return &Context{
		img:        img,
		width:      b.Dx(),
		height:     b.Dy(),
		spanner:    spanner,
		ras:        rasterx.NewDasher(b.Dx(), b.Dy(), scanner),
		matrix:     Identity,
		opacity:    1.0,
		lineWidth:  1.0,
		miterLimit: 10.0,
		src:        solidPaint(opaqueBlack),
	}
}

// SetMatrix sets the transformation from user space to device space.
func (r *Context) SetMatrix(m Matrix) {
	r.matrix = m
}

func (r *Context) SetFillRule(rule FillRule) {
	r.rule = rule
}

func (r *Context) SetOperator(op Operator) {
	r.op = op
}

// SetOpacity sets the global opacity applied to the source, clamped to [0,1].
func (r *Context) SetOpacity(opacity float64) {
	r.opacity = math.Min(math.Max(opacity, 0.0), 1.0)
}

func (r *Context) SetLineWidth(width float64) {
	r.lineWidth = width
}

func (r *Context) SetLineCap(c LineCap) {
	r.lineCap = c
}

func (r *Context) SetLineJoin(j LineJoin) {
	r.lineJoin = j
}

func (r *Context) SetMiterLimit(limit float64) {
	r.miterLimit = limit
}

// SetDash sets the stroke dash pattern as alternating dash and gap lengths in
// user space, with offset the starting position within the pattern. An empty
// array means a solid stroke.
func (r *Context) SetDash(offset float64, array []float64) {
	r.dashOffset = offset
	r.dashes = append(r.dashes[:0], array...)
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y) in user space.
func (r *Context) MoveTo(x, y float64) {
	r.verbs = append(r.verbs, verbMoveTo)
	r.pts = append(r.pts, x, y)
}

// LineTo adds a line towards (x,y).
func (r *Context) LineTo(x, y float64) {
	r.verbs = append(r.verbs, verbLineTo)
	r.pts = append(r.pts, x, y)
}

// CubicTo adds a cubic Bézier with control points (x1,y1) and (x2,y2) towards
// (x,y).
func (r *Context) CubicTo(x1, y1, x2, y2, x, y float64) {
	r.verbs = append(r.verbs, verbCubicTo)
	r.pts = append(r.pts, x1, y1, x2, y2, x, y)
}

// ClosePath closes the current subpath.
func (r *Context) ClosePath() {
	r.verbs = append(r.verbs, verbClose)
}

func (r *Context) resetPath() {
	r.verbs = r.verbs[:0]
	r.pts = r.pts[:0]
}

////////////////////////////////////////////////////////////////

// Fill rasterizes the accumulated path with the current source, fill rule,
// matrix, operator and opacity, and resets the path.
func (r *Context) Fill() {
	r.render(func(d *rasterx.Dasher) {
		f := &d.Filler
		f.SetWinding(r.rule == NonZero)
		r.replay(f)
	})
	r.resetPath()
}

// Stroke rasterizes the outline of the accumulated path with the current line
// parameters, source, matrix, operator and opacity, and resets the path. The
// line width, dash lengths and dash offset are carried into device space by
// the matrix's mean absolute scale. A width of zero or less draws nothing.
func (r *Context) Stroke() {
	scale := r.matrix.scale()
	width := r.lineWidth * scale
	if width <= 0.0 || len(r.verbs) == 0 {
		r.resetPath()
		return
	}
	dashes, offset := r.deviceDashes(scale)
	r.render(func(d *rasterx.Dasher) {
		d.SetStroke(toFixed(width), toFixed(r.miterLimit), capFunc(r.lineCap), nil, gapFunc(r.lineJoin), joinMode(r.lineJoin), dashes, offset)
		d.SetWinding(true)
		r.replay(d)
	})
	r.resetPath()
}

// Paint covers the whole surface with the current source, operator and
// opacity. The accumulated path is not consumed.
func (r *Context) Paint() {
	w, h := fixed.I(r.width), fixed.I(r.height)
	r.render(func(d *rasterx.Dasher) {
		f := &d.Filler
		f.SetWinding(true)
		f.Start(fixed.Point26_6{})
		f.Line(fixed.Point26_6{X: w})
		f.Line(fixed.Point26_6{X: w, Y: h})
		f.Line(fixed.Point26_6{Y: h})
		f.Stop(true)
	})
}

// render dispatches the drawing to the destination or the scratch rasterizer
// depending on the operator. build must configure winding or stroking and
// feed the geometry into the given rasterizer.
func (r *Context) render(build func(*rasterx.Dasher)) {
	switch r.op {
	case SrcOver, Src:
		if r.op == Src {
			r.spanner.Op = draw.Src
		} else {
			r.spanner.Op = draw.Over
		}
		r.ras.SetColor(r.source(false))
		build(r.ras)
		r.ras.Draw()
		r.ras.Clear()
	case DstIn, DstOut:
		// The source is rasterized into a cleared scratch surface and the
		// destination alpha is multiplied by the inverse of the scratch
		// alpha. The source alpha is inverted for DstIn so that both
		// operators reduce to the same multiplication, which is the identity
		// wherever the path has no coverage.
		r.ensureScratch()
		r.scratchRas.SetColor(r.source(r.op == DstIn))
		build(r.scratchRas)
		r.scratchRas.Draw()
		r.scratchRas.Clear()
		mulInverseAlpha(r.img, r.scratch)
	}
}

// replay feeds the accumulated path, transformed by the current matrix, into
// s. Open subpaths are stopped unclosed so that strokes cap their ends.
func (r *Context) replay(s geometrySink) {
	var first fixed.Point26_6
	open := false
	i := 0
	for _, verb := range r.verbs {
		switch verb {
		case verbMoveTo:
			if open {
				s.Stop(false)
			}
			first = r.devicePoint(i)
			s.Start(first)
			open = true
			i += 2
		case verbLineTo:
			if !open {
				s.Start(first)
				open = true
			}
			s.Line(r.devicePoint(i))
			i += 2
		case verbCubicTo:
			if !open {
				s.Start(first)
				open = true
			}
			s.CubeBezier(r.devicePoint(i), r.devicePoint(i+2), r.devicePoint(i+4))
			i += 6
		case verbClose:
			if open {
				s.Stop(true)
				open = false
			}
		}
	}
	if open {
		s.Stop(false)
	}
}

// geometrySink is the geometry building interface shared by the rasterx
// Filler and Dasher.
type geometrySink interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closed bool)
}

func (r *Context) devicePoint(i int) fixed.Point26_6 {
	x, y := r.matrix.Apply(r.pts[i], r.pts[i+1])
	return fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Floor(v*64.0 + 0.5))
}

// deviceDashes scales the dash pattern into device space, normalizing the
// offset into the pattern length. Patterns with negative entries or a zero
// total length mean a solid stroke.
func (r *Context) deviceDashes(scale float64) ([]float64, float64) {
	if len(r.dashes) == 0 {
		return nil, 0.0
	}
	sum := 0.0
	dashes := make([]float64, len(r.dashes))
	for i, d := range r.dashes {
		if d < 0.0 {
			return nil, 0.0
		}
		dashes[i] = d * scale
		sum += dashes[i]
	}
	if sum <= 0.0 {
		return nil, 0.0
	}
	offset := math.Mod(r.dashOffset*scale, sum)
	if offset < 0.0 {
		offset += sum
	}
	return dashes, offset
}

func capFunc(c LineCap) rasterx.CapFunc {
	switch c {
	case CapRound:
		return rasterx.RoundCap
	case CapSquare:
		return rasterx.SquareCap
	}
	return rasterx.ButtCap
}

func joinMode(j LineJoin) rasterx.JoinMode {
	switch j {
	case JoinRound:
		return rasterx.Round
	case JoinBevel:
		return rasterx.Bevel
	}
	return rasterx.Miter
}

func gapFunc(j LineJoin) rasterx.GapFunc {
	if j == JoinRound {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}
