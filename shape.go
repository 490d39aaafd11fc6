package shapeswarm

import (
	"image"
	"math"
)

// Shape is the point-in-shape oracle used to sample particle destinations.
// Contains must implement an even-odd interior test in surface pixel
// coordinates. Rect, Circle, *Path, *ImageMask and ShapeFunc implement it.
type Shape interface {
	Contains(x, y float64) bool
}

// ShapeFunc adapts a plain function to the Shape interface.
type ShapeFunc func(x, y float64) bool

// Contains calls f(x, y).
func (f ShapeFunc) Contains(x, y float64) bool {
	return f(x, y)
}

// Circle is a filled disc.
type Circle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Path is a set of closed polygonal rings filled with the even-odd rule:
// a point is inside when a ray from it crosses the rings an odd number of
// times, so a ring nested in another punches a hole.
type Path struct {
	rings  [][]Vec2
	closed bool
}

// NewPolygon returns a single-ring path through points.
func NewPolygon(points ...Vec2) *Path {
	p := &Path{}
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// MoveTo starts a new ring at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.rings = append(p.rings, []Vec2{{x, y}})
	p.closed = false
}

// LineTo extends the current ring to (x, y). After Close, the next LineTo
// starts a new ring at the closed ring's first point.
func (p *Path) LineTo(x, y float64) {
	if len(p.rings) == 0 {
		p.MoveTo(x, y)
		return
	}
	if p.closed {
		first := p.rings[len(p.rings)-1][0]
		p.rings = append(p.rings, []Vec2{first})
		p.closed = false
	}
	last := len(p.rings) - 1
	p.rings[last] = append(p.rings[last], Vec2{x, y})
}

// Close closes the current ring. Rings are always treated as closed by
// Contains; Close only affects where the next LineTo starts.
func (p *Path) Close() {
	p.closed = true
}

// Rings returns the path's rings. The returned slices MUST NOT be mutated.
func (p *Path) Rings() [][]Vec2 {
	return p.rings
}

// Contains reports whether (x, y) is inside the path under the even-odd rule.
// Rings with fewer than three points enclose nothing.
func (p *Path) Contains(x, y float64) bool {
	inside := false
	for _, ring := range p.rings {
		n := len(ring)
		if n < 3 {
			continue
		}
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := ring[i], ring[j]
			if (a.Y > y) != (b.Y > y) &&
				x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds returns the axis-aligned bounding box of every point in the path.
func (p *Path) Bounds() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, ring := range p.rings {
		for _, pt := range ring {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if minX > maxX {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Fit returns a copy of p scaled uniformly and centered so its bounds fill a
// width × height surface minus margin pixels on every side.
func (p *Path) Fit(width, height, margin float64) *Path {
	b := p.Bounds()
	out := &Path{rings: make([][]Vec2, len(p.rings)), closed: p.closed}
	if b.Width == 0 && b.Height == 0 {
		for i, ring := range p.rings {
			out.rings[i] = append([]Vec2(nil), ring...)
		}
		return out
	}
	availW := width - 2*margin
	availH := height - 2*margin
	scale := math.Inf(1)
	if b.Width > 0 {
		scale = availW / b.Width
	}
	if b.Height > 0 {
		scale = math.Min(scale, availH/b.Height)
	}
	offX := (width - b.Width*scale) / 2
	offY := (height - b.Height*scale) / 2
	for i, ring := range p.rings {
		r := make([]Vec2, len(ring))
		for k, pt := range ring {
			r[k] = Vec2{
				X: (pt.X-b.X)*scale + offX,
				Y: (pt.Y-b.Y)*scale + offY,
			}
		}
		out.rings[i] = r
	}
	return out
}

// ImageMask is a shape read from an image's alpha channel, stretched over a
// width × height surface. Pixels whose alpha is at least the threshold are
// inside.
type ImageMask struct {
	img       image.Image
	bounds    image.Rectangle
	sx, sy    float64
	threshold uint32
}

// NewImageMask maps img onto a width × height surface. threshold is in [0, 1];
// zero counts any non-transparent pixel as inside.
func NewImageMask(img image.Image, width, height int, threshold float64) *ImageMask {
	b := img.Bounds()
	m := &ImageMask{img: img, bounds: b}
	if width > 0 {
		m.sx = float64(b.Dx()) / float64(width)
	}
	if height > 0 {
		m.sy = float64(b.Dy()) / float64(height)
	}
	m.threshold = uint32(clamp01(threshold) * 0xffff)
	if m.threshold == 0 {
		m.threshold = 1
	}
	return m
}

// Contains reports whether the image pixel under (x, y) is opaque enough.
func (m *ImageMask) Contains(x, y float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	px := m.bounds.Min.X + int(x*m.sx)
	py := m.bounds.Min.Y + int(y*m.sy)
	if !(image.Point{px, py}).In(m.bounds) {
		return false
	}
	_, _, _, a := m.img.At(px, py).RGBA()
	return a >= m.threshold
}
