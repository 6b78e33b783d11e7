package canvas

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int, error) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0, fmt.Errorf("expected number")
	}
	return f, i + n, nil
}

// parseFlag parses an arc flag, a single 0 or 1 digit.
func parseFlag(path []byte) (bool, int, error) {
	i := skipCommaWhitespace(path)
	if i < len(path) && (path[i] == '0' || path[i] == '1') {
		return path[i] == '1', i + 1, nil
	}
	return false, 0, fmt.Errorf("expected flag")
}

// ParseSVGPath parses an SVG path data string.
func ParseSVGPath(sPath string) (*Path, error) {
	path := []byte(sPath)
	p := &Path{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // previous control point for S/T reflection

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if i == len(path) {
			break
		}
		cmd := prevCmd
		if path[i] >= 'A' {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("bad path: path should start with command")
		} else if cmd == 'Z' || cmd == 'z' {
			// close commands cannot be repeated implicitly
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", path[i], i+1)
		}

		var err error
		num := func() float64 {
			var f float64
			var n int
			if err == nil {
				f, n, err = parseNum(path[i:])
				i += n
			}
			return f
		}
		flag := func() bool {
			var f bool
			var n int
			if err == nil {
				f, n, err = parseFlag(path[i:])
				i += n
			}
			return f
		}

		x, y := p.Pos()
		switch cmd {
		case 'M', 'm':
			a, b := num(), num()
			if cmd == 'm' {
				a += x
				b += y
			}
			p.MoveTo(a, b)
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			a, b := num(), num()
			if cmd == 'l' {
				a += x
				b += y
			}
			p.LineTo(a, b)
		case 'H', 'h':
			a := num()
			if cmd == 'h' {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			b := num()
			if cmd == 'v' {
				b += y
			}
			p.LineTo(x, b)
		case 'C', 'c':
			a, b, c, d, e, f := num(), num(), num(), num(), num(), num()
			if cmd == 'c' {
				a += x
				b += y
				c += x
				d += y
				e += x
				f += y
			}
			if err == nil {
				p.CubeTo(a, b, c, d, e, f)
			}
			cpx, cpy = c, d
		case 'S', 's':
			c, d, e, f := num(), num(), num(), num()
			if cmd == 's' {
				c += x
				d += y
				e += x
				f += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			if err == nil {
				p.CubeTo(a, b, c, d, e, f)
			}
			cpx, cpy = c, d
		case 'Q', 'q':
			a, b, c, d := num(), num(), num(), num()
			if cmd == 'q' {
				a += x
				b += y
				c += x
				d += y
			}
			if err == nil {
				p.QuadTo(a, b, c, d)
			}
			cpx, cpy = a, b
		case 'T', 't':
			c, d := num(), num()
			if cmd == 't' {
				c += x
				d += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			if err == nil {
				p.QuadTo(a, b, c, d)
			}
			cpx, cpy = a, b
		case 'A', 'a':
			rx, ry, rot := num(), num(), num()
			large, sweep := flag(), flag()
			f, g := num(), num()
			if cmd == 'a' {
				f += x
				g += y
			}
			if err == nil {
				p.ArcTo(rx, ry, rot, large, sweep, f, g)
			}
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		if err != nil {
			return nil, fmt.Errorf("bad path: %v at position %d", err, i)
		}

		// an implicit repetition of a moveto draws lines
		if cmd == 'M' {
			prevCmd = 'L'
		} else if cmd == 'm' {
			prevCmd = 'l'
		} else {
			prevCmd = cmd
		}
	}
	return p, nil
}

// MustParseSVGPath parses an SVG path data string and panics on failure.
func MustParseSVGPath(sPath string) *Path {
	p, err := ParseSVGPath(sPath)
	if err != nil {
		panic(err)
	}
	return p
}
