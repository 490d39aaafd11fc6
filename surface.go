package shapeswarm

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the drawing-surface provider: a fixed-size area and the canvas
// that draws on it. Canvas returns nil when no drawing context is available.
type Surface interface {
	Size() (width, height int)
	Canvas() Canvas
}

// Canvas is the 2D drawing context of a Surface. A frame is Clear, any
// number of FillRect calls, then Flush.
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float64, c Color)
	Flush()
}

// blendSetter is implemented by canvases that honor ParticleConfig.Blend.
type blendSetter interface {
	SetBlend(BlendMode)
}

// SurfaceRegistry resolves surfaces by lookup id.
type SurfaceRegistry map[string]Surface

// Lookup returns the surface registered under id.
func (r SurfaceRegistry) Lookup(id string) (Surface, error) {
	s, ok := r[id]
	if !ok || s == nil {
		return nil, fmt.Errorf("surface %q: %w", id, ErrUnavailable)
	}
	return s, nil
}

// maxBatchQuads keeps vertex indices within uint16 range for one
// DrawTriangles call (4 vertices per quad).
const maxBatchQuads = 65536/4 - 1

// ImageSurface is an offscreen Ebitengine image used as a Surface. Filled
// rectangles are batched into one DrawTriangles call per Flush (or per
// maxBatchQuads rectangles).
type ImageSurface struct {
	// Background is the color Clear fills with. The zero value clears to
	// transparent.
	Background Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	image *ebiten.Image
	w, h  int
	blend BlendMode

	verts []ebiten.Vertex
	inds  []uint16
	op    ebiten.DrawTrianglesOptions

	screenshotQueue []string
}

// NewImageSurface creates a width × height offscreen surface.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		ScreenshotDir: "screenshots",
		image:         ebiten.NewImage(width, height),
		w:             width,
		h:             height,
	}
}

// NewImageSurfaceFromConfig creates a surface sized and colored by cfg.
func NewImageSurfaceFromConfig(cfg SurfaceConfig) *ImageSurface {
	s := NewImageSurface(cfg.Width, cfg.Height)
	s.Background = cfg.Background
	return s
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() (int, int) {
	return s.w, s.h
}

// Canvas returns s itself, or nil if s has no backing image.
func (s *ImageSurface) Canvas() Canvas {
	if s == nil || s.image == nil {
		return nil
	}
	return s
}

// Image returns the backing image for presenting or further drawing.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.image
}

// SetBlend selects the compositing operation for subsequent FillRect batches.
func (s *ImageSurface) SetBlend(b BlendMode) {
	s.blend = b
}

// Clear drops pending rectangles and fills the image with Background.
func (s *ImageSurface) Clear() {
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	if s.Background.IsZero() {
		s.image.Clear()
		return
	}
	s.image.Fill(color.Color(s.Background))
}

// FillRect queues an axis-aligned filled rectangle.
func (s *ImageSurface) FillRect(x, y, w, h float64, c Color) {
	if len(s.verts)/4 >= maxBatchQuads {
		s.submit()
	}
	a := float32(clamp01(c.A))
	r := float32(clamp01(c.R)) * a
	g := float32(clamp01(c.G)) * a
	b := float32(clamp01(c.B)) * a

	base := uint16(len(s.verts))
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	s.verts = append(s.verts,
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	)
	s.inds = append(s.inds, base, base+1, base+2, base, base+2, base+3)
}

// Flush draws the pending rectangles and captures queued screenshots.
func (s *ImageSurface) Flush() {
	s.submit()
	s.flushScreenshots()
}

// pending returns the number of queued rectangles.
func (s *ImageSurface) pending() int {
	return len(s.verts) / 4
}

func (s *ImageSurface) submit() {
	if len(s.verts) == 0 {
		return
	}
	s.op.Blend = s.blend.EbitenBlend()
	s.image.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &s.op)
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
}

// --- White pixel singleton (no sync.Once; drawing is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source texture for solid rectangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
