package canvas

// PathScanner iterates over the commands of a path in order. Call Scan to
// advance to the next command.
type PathScanner struct {
	p     *Path
	i, j  int // index of the next command and of its coordinates
	cmd   PathCmd
	prev  Point // start point of the current command
	cur   Point // end point of the current command
	start Point // start point of the current subpath
}

// Scanner returns a scanner positioned before the first command of p.
func (p *Path) Scanner() *PathScanner {
	return &PathScanner{p: p}
}

// Scan advances to the next command and returns true if there is one.
func (s *PathScanner) Scan() bool {
	if s.i >= len(s.p.cmds) {
		return false
	}
	s.cmd = s.p.cmds[s.i]
	s.prev = s.cur
	switch s.cmd {
	case MoveToCmd:
		s.cur = Point{s.p.d[s.j+0], s.p.d[s.j+1]}
		s.start = s.cur
		s.j += 2
	case LineToCmd:
		s.cur = Point{s.p.d[s.j+0], s.p.d[s.j+1]}
		s.j += 2
	case CubeToCmd:
		s.cur = Point{s.p.d[s.j+4], s.p.d[s.j+5]}
		s.j += 6
	case CloseCmd:
		s.cur = s.start
	}
	s.i++
	return true
}

func (s *PathScanner) Cmd() PathCmd {
	return s.cmd
}

// Start returns the start point of the current command, ie. the end point of
// the previous command.
func (s *PathScanner) Start() Point {
	return s.prev
}

// CP1 returns the first control point for cubic Béziers.
func (s *PathScanner) CP1() Point {
	if s.cmd != CubeToCmd {
		panic("must be cubic Bézier")
	}
	return Point{s.p.d[s.j-6], s.p.d[s.j-5]}
}

// CP2 returns the second control point for cubic Béziers.
func (s *PathScanner) CP2() Point {
	if s.cmd != CubeToCmd {
		panic("must be cubic Bézier")
	}
	return Point{s.p.d[s.j-4], s.p.d[s.j-3]}
}

// End returns the end point of the current command. For a close command this
// is the start point of its subpath.
func (s *PathScanner) End() Point {
	return s.cur
}
