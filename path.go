package canvas

import (
	"fmt"
	"math"
	"strings"
)

// PathCmd is a path command such as MoveToCmd. Quadratic Béziers and
// elliptical arcs are converted to cubic Béziers when they are added, so that
// a path always consists of these four commands only.
type PathCmd int

const (
	MoveToCmd PathCmd = iota
	LineToCmd
	CubeToCmd
	CloseCmd
)

// Path is a sequence of straight line segments and cubic Bézier segments
// grouped into subpaths. The zero value is an empty path ready to use.
type Path struct {
	cmds []PathCmd
	d    []float64
	x0   float64 // start of current subpath
	y0   float64
}

func (p *Path) IsEmpty() bool {
	return len(p.cmds) == 0
}

// Pos returns the current position, ie. the end point of the last command.
func (p *Path) Pos() (float64, float64) {
	if len(p.cmds) > 0 && p.cmds[len(p.cmds)-1] == CloseCmd {
		return p.x0, p.y0
	}
	if len(p.d) > 1 {
		return p.d[len(p.d)-2], p.d[len(p.d)-1]
	}
	return 0.0, 0.0
}

// Append adds path q to p.
func (p *Path) Append(q *Path) {
	p.cmds = append(p.cmds, q.cmds...)
	p.d = append(p.d, q.d...)
	if !q.IsEmpty() {
		p.x0, p.y0 = q.x0, q.y0
	}
}

// Transform applies affine transformation matrix m to every coordinate of p
// and returns p.
func (p *Path) Transform(m Matrix) *Path {
	for i := 0; i+1 < len(p.d); i += 2 {
		q := m.Dot(Point{p.d[i+0], p.d[i+1]})
		p.d[i+0], p.d[i+1] = q.X, q.Y
	}
	q := m.Dot(Point{p.x0, p.y0})
	p.x0, p.y0 = q.X, q.Y
	return p
}

// Bounds returns the bounding rectangle of the path's control points, which
// contains the path but is not necessarily tight around curves. It returns
// the zero rectangle for an empty path.
func (p *Path) Bounds() Rect {
	if len(p.d) == 0 {
		return Rect{}
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(p.d); i += 2 {
		xmin = math.Min(xmin, p.d[i+0])
		xmax = math.Max(xmax, p.d[i+0])
		ymin = math.Min(ymin, p.d[i+1])
		ymax = math.Max(ymax, p.d[i+1])
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

func (p *Path) String() string {
	sb := strings.Builder{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			fmt.Fprintf(&sb, "M%g %g", p.d[i+0], p.d[i+1])
			i += 2
		case LineToCmd:
			fmt.Fprintf(&sb, "L%g %g", p.d[i+0], p.d[i+1])
			i += 2
		case CubeToCmd:
			fmt.Fprintf(&sb, "C%g %g %g %g %g %g", p.d[i+0], p.d[i+1], p.d[i+2], p.d[i+3], p.d[i+4], p.d[i+5])
			i += 6
		case CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

// LineTo adds a line segment towards (x,y).
func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// QuadTo adds a quadratic Bézier with control point (x1,y1) ending at (x,y).
// It is stored as the equivalent cubic Bézier.
func (p *Path) QuadTo(x1, y1, x, y float64) {
	px, py := p.Pos()
	c1x, c1y := px+2.0/3.0*(x1-px), py+2.0/3.0*(y1-py)
	c2x, c2y := x+2.0/3.0*(x1-x), y+2.0/3.0*(y1-y)
	p.CubeTo(c1x, c1y, c2x, c2y, x, y)
}

// CubeTo adds a cubic Bézier with control points (x1,y1) and (x2,y2) ending
// at (x,y).
func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) {
	p.cmds = append(p.cmds, CubeToCmd)
	p.d = append(p.d, x1, y1, x2, y2, x, y)
}

// ArcTo adds an elliptical arc with radii rx and ry, with rot the rotation of
// the ellipse in degrees, large and sweep the arc flags as defined by SVG,
// ending at (x,y). The arc is approximated by cubic Béziers of at most a
// quarter turn each.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	x1, y1 := p.Pos()
	if equal(x1, x) && equal(y1, y) {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if equal(rx, 0.0) || equal(ry, 0.0) {
		p.LineTo(x, y)
		return
	}

	cx, cy, rx, ry, theta0, theta1 := arcToCenter(x1, y1, rx, ry, rot, large, sweep, x, y)
	phi := rot * math.Pi / 180.0
	sinphi, cosphi := math.Sin(phi), math.Cos(phi)

	// point and tangent on the ellipse at angle theta in radians
	point := func(theta float64) (float64, float64, float64, float64) {
		sintheta, costheta := math.Sin(theta), math.Cos(theta)
		px := cx + rx*costheta*cosphi - ry*sintheta*sinphi
		py := cy + rx*costheta*sinphi + ry*sintheta*cosphi
		dx := -rx*sintheta*cosphi - ry*costheta*sinphi
		dy := -rx*sintheta*sinphi + ry*costheta*cosphi
		return px, py, dx, dy
	}

	n := int(math.Ceil(math.Abs(theta1-theta0) / 90.0))
	if n == 0 {
		return
	}
	a := theta0 * math.Pi / 180.0
	dtheta := (theta1 - theta0) / float64(n) * math.Pi / 180.0
	for i := 0; i < n; i++ {
		b := a + dtheta
		k := 4.0 / 3.0 * math.Tan((b-a)/4.0)
		ax, ay, adx, ady := point(a)
		bx, by, bdx, bdy := point(b)
		p.CubeTo(ax+k*adx, ay+k*ady, bx-k*bdx, by-k*bdy, bx, by)
		a = b
	}
}

// Close closes the current subpath with a line back to its starting point.
func (p *Path) Close() {
	p.cmds = append(p.cmds, CloseCmd)
}

////////////////////////////////////////////////////////////////

// Rect adds a rectangle of size (w,h) at position (x,y).
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// RoundRect adds a rectangle of size (w,h) at position (x,y) with rounded
// corners of radius r.
func (p *Path) RoundRect(x, y, w, h, r float64) {
	if equal(r, 0.0) || r < 0.0 {
		p.Rect(x, y, w, h)
		return
	}
	r = math.Min(r, math.Min(w, h)/2.0)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(r, r, 0, false, true, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(r, r, 0, false, true, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.ArcTo(r, r, 0, false, true, x, y+h-r)
	p.LineTo(x, y+r)
	p.ArcTo(r, r, 0, false, true, x+r, y)
	p.Close()
}

// Ellipse adds an ellipse with radii rx and ry centered at (x,y).
func (p *Path) Ellipse(x, y, rx, ry float64) {
	p.MoveTo(x+rx, y)
	p.ArcTo(rx, ry, 0, false, false, x-rx, y)
	p.ArcTo(rx, ry, 0, false, false, x+rx, y)
	p.Close()
}

// Circle adds a circle with radius r centered at (x,y).
func (p *Path) Circle(x, y, r float64) {
	p.Ellipse(x, y, r, r)
}

// arcToCenter converts an arc in endpoint parameterization to its center,
// corrected radii and start and end angles in degrees.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	rot *= math.Pi / 180.0
	x1p := math.Cos(rot)*(x1-x2)/2 + math.Sin(rot)*(y1-y2)/2
	y1p := -math.Sin(rot)*(x1-x2)/2 + math.Cos(rot)*(y1-y2)/2

	// scale up the radii when they cannot span the distance between the end points
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0 {
		sq = 0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := math.Cos(rot)*cxp - math.Sin(rot)*cyp + (x1+x2)/2
	cy := math.Sin(rot)*cxp + math.Cos(rot)*cyp + (y1+y2)/2

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0 {
		theta = -theta
	}
	theta *= 180 / math.Pi

	delta := math.Acos((ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))
	if ux*vy-uy*vx < 0 {
		delta = -delta
	}
	delta *= 180 / math.Pi
	if !sweep && delta > 0 {
		delta -= 360
	} else if sweep && delta < 0 {
		delta += 360
	}

	return cx, cy, rx, ry, theta, theta + delta
}
