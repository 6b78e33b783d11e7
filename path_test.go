package canvas

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.IsEmpty())

	p.MoveTo(5, 2)
	test.That(t, !p.IsEmpty())
}

func TestPathPos(t *testing.T) {
	p := &Path{}
	x, y := p.Pos()
	test.Float(t, x, 0.0)
	test.Float(t, y, 0.0)

	p.MoveTo(3, 4)
	p.LineTo(5, 10)
	x, y = p.Pos()
	test.Float(t, x, 5.0)
	test.Float(t, y, 10.0)

	p.Close()
	x, y = p.Pos()
	test.Float(t, x, 3.0)
	test.Float(t, y, 4.0)
}

func TestPathBuilders(t *testing.T) {
	var tts = []struct {
		build func(*Path)
		s     string
	}{
		{func(p *Path) { p.MoveTo(3, 4) }, "M3 4"},
		{func(p *Path) { p.MoveTo(3, 4); p.MoveTo(5, 3) }, "M3 4M5 3"},
		{func(p *Path) { p.LineTo(3, 4) }, "L3 4"},
		{func(p *Path) { p.MoveTo(3, 4); p.LineTo(5, 10); p.Close() }, "M3 4L5 10z"},
		{func(p *Path) { p.CubeTo(1, 1, 2, 2, 3, 4) }, "C1 1 2 2 3 4"},
		{func(p *Path) { p.MoveTo(3, 4); p.ArcTo(2, 2, 0, false, false, 3, 4) }, "M3 4"},
		{func(p *Path) { p.ArcTo(0, 5, 0, false, false, 4, 0) }, "L4 0"},
		{func(p *Path) { p.ArcTo(5, 0, 0, false, false, 4, 0) }, "L4 0"},
		{func(p *Path) { p.Rect(0, 0, 5, 5) }, "M0 0L5 0L5 5L0 5z"},
		{func(p *Path) { p.RoundRect(0, 0, 5, 5, 0) }, "M0 0L5 0L5 5L0 5z"},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			p := &Path{}
			tt.build(p)
			test.String(t, p.String(), tt.s)
		})
	}
}

func TestPathQuadTo(t *testing.T) {
	p := &Path{}
	p.QuadTo(1, 2, 3, 4)

	s := p.Scanner()
	test.That(t, s.Scan())
	test.T(t, s.Cmd(), CubeToCmd)
	test.Float(t, s.CP1().X, 2.0/3.0)
	test.Float(t, s.CP1().Y, 4.0/3.0)
	test.Float(t, s.CP2().X, 5.0/3.0)
	test.Float(t, s.CP2().Y, 8.0/3.0)
	test.T(t, s.End(), Point{3.0, 4.0})
	test.That(t, !s.Scan())
}

func TestPathArcTo(t *testing.T) {
	// a half circle is approximated by two cubic Béziers
	p := &Path{}
	p.MoveTo(0, 0)
	p.ArcTo(5, 5, 0, false, true, 10, 0)
	test.T(t, len(p.cmds), 3)
	x, y := p.Pos()
	test.That(t, Point{x, y}.Equals(Point{10.0, 0.0}))

	// radii are scaled up when they cannot span the end points
	small := MustParseSVGPath("M0 0A1 1 0 0 0 4 0")
	test.T(t, small, MustParseSVGPath("M0 0A2 2 0 0 0 4 0"))
	test.That(t, small.Bounds().Equals(Rect{0.0, 0.0, 4.0, 2.0}))

	// sweep flips the side of the bulge
	q := MustParseSVGPath("M0 0A2 2 0 0 1 4 0")
	test.That(t, q.Bounds().Equals(Rect{0.0, -2.0, 4.0, 2.0}))
}

func TestPathEllipse(t *testing.T) {
	p := &Path{}
	p.Ellipse(0, 0, 5, 10)
	test.T(t, len(p.cmds), 6)
	test.That(t, p.Bounds().Equals(Rect{-5.0, -10.0, 10.0, 20.0}))

	p = &Path{}
	p.Circle(10, 10, 5)
	test.That(t, p.Bounds().Equals(Rect{5.0, 5.0, 10.0, 10.0}))
}

func TestPathRoundRect(t *testing.T) {
	p := &Path{}
	p.RoundRect(0, 0, 10, 10, 2)
	test.T(t, p.cmds[0], MoveToCmd)
	test.T(t, len(p.cmds), 10)
	test.That(t, p.Bounds().Equals(Rect{0.0, 0.0, 10.0, 10.0}))

	// the radius is clamped to half the smallest side
	p = &Path{}
	p.RoundRect(0, 0, 10, 4, 100)
	test.That(t, p.Bounds().Equals(Rect{0.0, 0.0, 10.0, 4.0}))
}

func TestPathAppend(t *testing.T) {
	p := MustParseSVGPath("M5 0L5 10")
	p.Append(&Path{})
	test.T(t, p, MustParseSVGPath("M5 0L5 10"))

	p.Append(MustParseSVGPath("M5 15L10 15"))
	test.T(t, p, MustParseSVGPath("M5 0L5 10M5 15L10 15"))
	x, y := p.Pos()
	test.Float(t, x, 10.0)
	test.Float(t, y, 15.0)
}

func TestPathTransform(t *testing.T) {
	test.T(t, MustParseSVGPath("M1 2L3 4").Transform(Identity.Translate(10, 0)), MustParseSVGPath("M11 2L13 4"))
	test.T(t, MustParseSVGPath("M1 2C1 4 3 4 3 2z").Transform(Identity.Scale(2, 2)), MustParseSVGPath("M2 4C2 8 6 8 6 4z"))

	p := MustParseSVGPath("M1 0L3 0").Transform(Identity.Rotate(90.0))
	s := p.Scanner()
	test.That(t, s.Scan())
	test.That(t, s.End().Equals(Point{0.0, 1.0}))
	test.That(t, s.Scan())
	test.That(t, s.End().Equals(Point{0.0, 3.0}))
}

func TestPathBounds(t *testing.T) {
	test.T(t, (&Path{}).Bounds(), Rect{})
	test.T(t, MustParseSVGPath("M10 5L20 15").Bounds(), Rect{10, 5, 10, 10})
	test.T(t, MustParseSVGPath("M10 5L20 15z").Bounds(), Rect{10, 5, 10, 10})

	// control points of curves are included, the bounds need not be tight
	test.T(t, MustParseSVGPath("C0 100 100 100 100 0").Bounds(), Rect{0, 0, 100, 100})
}

func TestPathScanner(t *testing.T) {
	p := MustParseSVGPath("M1 2L3 4C5 6 7 8 9 10zL11 12")

	s := p.Scanner()
	test.That(t, s.Scan())
	test.T(t, s.Cmd(), MoveToCmd)
	test.T(t, s.Start(), Point{0.0, 0.0})
	test.T(t, s.End(), Point{1.0, 2.0})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), LineToCmd)
	test.T(t, s.Start(), Point{1.0, 2.0})
	test.T(t, s.End(), Point{3.0, 4.0})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), CubeToCmd)
	test.T(t, s.CP1(), Point{5.0, 6.0})
	test.T(t, s.CP2(), Point{7.0, 8.0})
	test.T(t, s.End(), Point{9.0, 10.0})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), CloseCmd)
	test.T(t, s.Start(), Point{9.0, 10.0})
	test.T(t, s.End(), Point{1.0, 2.0})

	test.That(t, s.Scan())
	test.T(t, s.Cmd(), LineToCmd)
	test.T(t, s.Start(), Point{1.0, 2.0})
	test.T(t, s.End(), Point{11.0, 12.0})

	test.That(t, !s.Scan())
}

func TestPathParseSVG(t *testing.T) {
	var tts = []struct {
		orig string
		res  string
	}{
		{"M10 0L20 0H30V10C40 10 50 10 50 0z", "M10 0L20 0L30 0L30 10C40 10 50 10 50 0z"},
		{"m10 0l10 0h10v10c10 0 20 0 20 -10z", "M10 0L20 0L30 0L30 10C40 10 50 10 50 0z"},
		{"M5 0 5 10", "M5 0L5 10"},
		{"m5 0 0 10", "M5 0L5 10"},
		{"C0 10 10 10 10 0S20 -10 20 0", "C0 10 10 10 10 0C10 -10 20 -10 20 0"},
		{"c0 10 10 10 10 0s10 -10 10 0", "C0 10 10 10 10 0C10 -10 20 -10 20 0"},
		{"M0 0S2 2 4 0", "M0 0C0 0 2 2 4 0"},
		{"Q5 10 10 0T20 0", "Q5 10 10 0Q15 -10 20 0"},
		{"q5 10 10 0t10 0", "Q5 10 10 0Q15 -10 20 0"},
		{"A10 10 0 0 0 40 0", "A20 20 0 0 0 40 0"}, // scale ellipse
		{"  M 5 , 0 L 5 10\t", "M5 0L5 10"},
		{"M1e1 0L5 1.5e1", "M10 0L5 15"},
		{"V0 ", "L0 0"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := ParseSVGPath(tt.orig)
			test.Error(t, err)
			test.T(t, p, MustParseSVGPath(tt.res))
		})
	}
}

func TestPathParseSVGErrors(t *testing.T) {
	var tts = []struct {
		orig string
		err  string
	}{
		{"5", "bad path: path should start with command"},
		{"M", "bad path: expected number at position 1"},
		{"M10", "bad path: expected number at position 3"},
		{"M0 0E5 5", "bad path: unknown command 'E' at position 5"},
		{"M0 0z0", "bad path: unknown command '0' at position 6"},
		{"M0 0A5 5 0 2 0 10 0", "bad path: expected flag at position 10"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			_, err := ParseSVGPath(tt.orig)
			test.That(t, err != nil)
			test.T(t, err.Error(), tt.err)
		})
	}
}
