package shapeswarm

import (
	"fmt"
	"strconv"
)

// curveSegments is the number of line segments each Bézier curve is
// flattened into.
const curveSegments = 16

// ParsePath builds a Path from SVG path data. Supported commands are
// M, L, H, V, C, S, Q, T and Z in absolute and relative form; arcs are
// rejected. Curves are flattened into line segments.
func ParsePath(d string) (*Path, error) {
	sc := &pathScanner{s: d}
	path := &Path{}

	var cur, start Vec2
	var lastCubic, lastQuad Vec2 // last control points, for S and T reflection
	var prev byte

	for {
		sc.skipSeparators()
		if sc.done() {
			break
		}
		cmd := sc.s[sc.pos]
		if !isPathCommand(cmd) {
			return nil, fmt.Errorf("parse path: unexpected %q at offset %d: %w", cmd, sc.pos, ErrInvalidConfiguration)
		}
		sc.pos++
		rel := cmd >= 'a'
		upper := cmd &^ 0x20
		first := true

		for {
			switch upper {
			case 'Z':
				path.Close()
				cur = start

			case 'M':
				pt, err := sc.point()
				if err != nil {
					return nil, err
				}
				if rel {
					pt = cur.Add(pt)
				}
				if first {
					path.MoveTo(pt.X, pt.Y)
					start = pt
				} else {
					path.LineTo(pt.X, pt.Y)
				}
				cur = pt

			case 'L':
				pt, err := sc.point()
				if err != nil {
					return nil, err
				}
				if rel {
					pt = cur.Add(pt)
				}
				path.LineTo(pt.X, pt.Y)
				cur = pt

			case 'H':
				x, err := sc.number()
				if err != nil {
					return nil, err
				}
				if rel {
					x += cur.X
				}
				cur.X = x
				path.LineTo(cur.X, cur.Y)

			case 'V':
				y, err := sc.number()
				if err != nil {
					return nil, err
				}
				if rel {
					y += cur.Y
				}
				cur.Y = y
				path.LineTo(cur.X, cur.Y)

			case 'C', 'S':
				var c1 Vec2
				if upper == 'S' {
					c1 = cur
					if prev == 'C' || prev == 'S' {
						c1 = cur.Scale(2).Sub(lastCubic)
					}
				} else {
					pt, err := sc.point()
					if err != nil {
						return nil, err
					}
					if rel {
						pt = cur.Add(pt)
					}
					c1 = pt
				}
				pts, err := sc.points(2)
				if err != nil {
					return nil, err
				}
				c2, end := pts[0], pts[1]
				if rel {
					c2 = cur.Add(c2)
					end = cur.Add(end)
				}
				flattenCubic(path, cur, c1, c2, end)
				lastCubic = c2
				cur = end

			case 'Q', 'T':
				var c Vec2
				if upper == 'T' {
					c = cur
					if prev == 'Q' || prev == 'T' {
						c = cur.Scale(2).Sub(lastQuad)
					}
				} else {
					pt, err := sc.point()
					if err != nil {
						return nil, err
					}
					if rel {
						pt = cur.Add(pt)
					}
					c = pt
				}
				end, err := sc.point()
				if err != nil {
					return nil, err
				}
				if rel {
					end = cur.Add(end)
				}
				flattenQuad(path, cur, c, end)
				lastQuad = c
				cur = end

			default:
				return nil, fmt.Errorf("parse path: unsupported command %q: %w", cmd, ErrInvalidConfiguration)
			}

			prev = upper
			first = false
			if upper == 'Z' || !sc.hasNumber() {
				break
			}
		}
	}
	return path, nil
}

// MustParsePath is like ParsePath but panics on error. Intended for
// package-level shape literals.
func MustParsePath(d string) *Path {
	p, err := ParsePath(d)
	if err != nil {
		panic(err)
	}
	return p
}

func flattenCubic(path *Path, a, c1, c2, b Vec2) {
	for i := 1; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		u := 1 - t
		u2 := u * u
		t2 := t * t
		path.LineTo(
			u2*u*a.X+3*u2*t*c1.X+3*u*t2*c2.X+t2*t*b.X,
			u2*u*a.Y+3*u2*t*c1.Y+3*u*t2*c2.Y+t2*t*b.Y,
		)
	}
}

func flattenQuad(path *Path, a, c, b Vec2) {
	for i := 1; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		u := 1 - t
		path.LineTo(
			u*u*a.X+2*u*t*c.X+t*t*b.X,
			u*u*a.Y+2*u*t*c.Y+t*t*b.Y,
		)
	}
}

func isPathCommand(c byte) bool {
	switch c &^ 0x20 {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

// pathScanner tokenizes SVG path numbers. Numbers may be separated by
// whitespace, commas, a sign ("10-5") or a second decimal point ("1.5.5").
type pathScanner struct {
	s   string
	pos int
}

func (sc *pathScanner) done() bool {
	return sc.pos >= len(sc.s)
}

func (sc *pathScanner) skipSeparators() {
	for !sc.done() {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *pathScanner) hasNumber() bool {
	sc.skipSeparators()
	if sc.done() {
		return false
	}
	c := sc.s[sc.pos]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func (sc *pathScanner) number() (float64, error) {
	if !sc.hasNumber() {
		return 0, fmt.Errorf("parse path: expected number at offset %d: %w", sc.pos, ErrInvalidConfiguration)
	}
	begin := sc.pos
	if c := sc.s[sc.pos]; c == '-' || c == '+' {
		sc.pos++
	}
	seenDot, seenExp := false, false
	for !sc.done() {
		c := sc.s[sc.pos]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && !seenExp:
			seenExp = true
			if sc.pos+1 < len(sc.s) && (sc.s[sc.pos+1] == '-' || sc.s[sc.pos+1] == '+') {
				sc.pos++
			}
		default:
			return sc.parse(begin)
		}
		sc.pos++
	}
	return sc.parse(begin)
}

func (sc *pathScanner) parse(begin int) (float64, error) {
	v, err := strconv.ParseFloat(sc.s[begin:sc.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("parse path: bad number %q: %w", sc.s[begin:sc.pos], ErrInvalidConfiguration)
	}
	return v, nil
}

func (sc *pathScanner) point() (Vec2, error) {
	x, err := sc.number()
	if err != nil {
		return Vec2{}, err
	}
	y, err := sc.number()
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{x, y}, nil
}

func (sc *pathScanner) points(n int) ([]Vec2, error) {
	out := make([]Vec2, n)
	for i := range out {
		pt, err := sc.point()
		if err != nil {
			return nil, err
		}
		out[i] = pt
	}
	return out, nil
}
