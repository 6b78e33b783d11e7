package canvas

import (
	"fmt"
	"math"
)

const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space, with X toward the right and Y downwards.
type Point struct {
	X, Y float64
}

// Equals returns true if p and q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds q to p.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts q from p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between p and q, ie. zero if perpendicular.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Interpolate returns a point on PQ at t ∈ [0,1].
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// String returns the string representation of a point, such as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle in 2D space defined by its position and size.
type Rect struct {
	X, Y, W, H float64
}

// Empty returns true if the rectangle has no interior.
func (r Rect) Empty() bool {
	return r.W <= 0.0 || r.H <= 0.0
}

// Equals returns true if r and q are equal with tolerance Epsilon.
func (r Rect) Equals(q Rect) bool {
	return equal(r.X, q.X) && equal(r.Y, q.Y) && equal(r.W, q.W) && equal(r.H, q.H)
}

// Add returns the union of r and q, ie. the smallest rectangle enclosing both.
func (r Rect) Add(q Rect) Rect {
	if r.Empty() {
		return q
	} else if q.Empty() {
		return r
	}
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Transform returns the bounding rectangle of the rectangle's corners
// transformed by m.
func (r Rect) Transform(m Matrix) Rect {
	p0 := m.Dot(Point{r.X, r.Y})
	p1 := m.Dot(Point{r.X + r.W, r.Y})
	p2 := m.Dot(Point{r.X + r.W, r.Y + r.H})
	p3 := m.Dot(Point{r.X, r.Y + r.H})
	xmin := math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X))
	xmax := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	ymin := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	ymax := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// ToPath converts the rectangle to a closed path.
func (r Rect) ToPath() *Path {
	p := &Path{}
	p.Rect(r.X, r.Y, r.W, r.H)
	return p
}

// String returns the string representation of a rectangle, such as "(x,y,w,h)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", r.X, r.Y, r.W, r.H)
}

////////////////////////////////////////////////////////////////

// Matrix is an affine transformation matrix in row-major order. A point
// (x,y) maps to (m[0][0]*x + m[0][1]*y + m[0][2], m[1][0]*x + m[1][1]*y + m[1][2]),
// so that an SVG transform matrix(a b c d e f) is Matrix{{a, c, e}, {b, d, f}}.
type Matrix [2][3]float64

// Identity is the identity affine transformation matrix, ie. transforms any point to itself.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// Mul multiplies the current matrix by the given matrix, ie. combining transformations where q is applied first.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot returns the matrix transformation applied to point p.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Translate adds a translation in x and y.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Rotate adds a rotation transformation with rot in degrees counter clockwise.
func (m Matrix) Rotate(rot float64) Matrix {
	sin, cos := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		{cos, -sin, 0.0},
		{sin, cos, 0.0},
	})
}

// RotateAbout adds a rotation transformation about (x,y) with rot in degrees counter clockwise.
func (m Matrix) RotateAbout(rot, x, y float64) Matrix {
	return m.Translate(x, y).Rotate(rot).Translate(-x, -y)
}

// Scale adds a scaling transformation in sx and sy.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{
		{sx, 0.0, 0.0},
		{0.0, sy, 0.0},
	})
}

// Shear adds a shear transformation in sx and sy.
func (m Matrix) Shear(sx, sy float64) Matrix {
	return m.Mul(Matrix{
		{1.0, sx, 0.0},
		{sy, 1.0, 0.0},
	})
}

// Equals returns true if m and q are equal with tolerance Epsilon.
func (m Matrix) Equals(q Matrix) bool {
	return equal(m[0][0], q[0][0]) && equal(m[0][1], q[0][1]) && equal(m[0][2], q[0][2]) &&
		equal(m[1][0], q[1][0]) && equal(m[1][1], q[1][1]) && equal(m[1][2], q[1][2])
}

// Det returns the determinant of the affine transformation matrix.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inv returns the inverted affine transformation matrix and panics when the determinant is zero.
func (m Matrix) Inv() Matrix {
	det := m.Det()
	if equal(det, 0.0) {
		panic("determinant of affine transformation matrix is zero")
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		-(m[1][1]*m[0][2] - m[0][1]*m[1][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		-(-m[1][0]*m[0][2] + m[0][0]*m[1][2]) / det,
	}}
}

// String returns the string representation of an affine transformation matrix
// as "(a,b,c,d,e,f)" in SVG matrix order.
func (m Matrix) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g,%g,%g)", m[0][0], m[1][0], m[0][1], m[1][1], m[0][2], m[1][2])
}
