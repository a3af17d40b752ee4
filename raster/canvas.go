package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/circleimage"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498307936

// Canvas draws circles into an RGBA image.
type Canvas struct {
	dst  *image.RGBA
	mask *image.Alpha
	ras  *vector.Rasterizer // reused between draws
}

var _ circleimage.Canvas = (*Canvas)(nil)

// New creates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	r := image.Rect(0, 0, width, height)
	return &Canvas{
		dst:  image.NewRGBA(r),
		mask: image.NewAlpha(r),
		ras:  vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.dst }

// Width returns the canvas width.
func (c *Canvas) Width() int { return c.dst.Rect.Dx() }

// Height returns the canvas height.
func (c *Canvas) Height() int { return c.dst.Rect.Dy() }

// Clear fills the whole canvas with col, replacing existing pixels.
func (c *Canvas) Clear(col circleimage.RGBA) {
	xdraw.Draw(c.dst, c.dst.Rect, image.NewUniform(col.NRGBA()), image.Point{}, xdraw.Src)
}

// DrawFilledCircle implements circleimage.Canvas.
func (c *Canvas) DrawFilledCircle(center circleimage.Point, radius float64, paint *circleimage.Paint) {
	if radius <= 0 || paint == nil {
		return
	}
	c.begin()
	c.circle(center, radius, false)
	c.composite(center, radius, paint)
}

// DrawStrokedCircle implements circleimage.Canvas. The ring is centered on
// radius and paint.StrokeWidth wide.
func (c *Canvas) DrawStrokedCircle(center circleimage.Point, radius float64, paint *circleimage.Paint) {
	if paint == nil || paint.StrokeWidth <= 0 {
		return
	}
	half := paint.StrokeWidth / 2
	outer := radius + half
	if outer <= 0 {
		return
	}
	c.begin()
	c.circle(center, outer, false)
	if inner := radius - half; inner > 0 {
		// Opposite winding cancels the inner disc.
		c.circle(center, inner, true)
	}
	c.composite(center, outer, paint)
}

func (c *Canvas) begin() {
	c.ras.Reset(c.Width(), c.Height())
	clear(c.mask.Pix)
}

// circle appends a closed circle made of four cubic segments.
func (c *Canvas) circle(center circleimage.Point, r float64, reverse bool) {
	cx, cy := float32(center.X), float32(center.Y)
	rr := float32(r)
	k := float32(r * kappa)

	if !reverse {
		c.ras.MoveTo(cx+rr, cy)
		c.ras.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
		c.ras.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
		c.ras.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
		c.ras.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	} else {
		c.ras.MoveTo(cx+rr, cy)
		c.ras.CubeTo(cx+rr, cy-k, cx+k, cy-rr, cx, cy-rr)
		c.ras.CubeTo(cx-k, cy-rr, cx-rr, cy-k, cx-rr, cy)
		c.ras.CubeTo(cx-rr, cy+k, cx-k, cy+rr, cx, cy+rr)
		c.ras.CubeTo(cx+k, cy+rr, cx+rr, cy+k, cx+rr, cy)
	}
	c.ras.ClosePath()
}

// composite turns the accumulated path into a coverage mask and paints it
// over the canvas within the circle's bounding box.
func (c *Canvas) composite(center circleimage.Point, extent float64, paint *circleimage.Paint) {
	c.ras.Draw(c.mask, c.mask.Rect, image.Opaque, image.Point{})

	box := image.Rect(
		int(math.Floor(center.X-extent))-1,
		int(math.Floor(center.Y-extent))-1,
		int(math.Ceil(center.X+extent))+1,
		int(math.Ceil(center.Y+extent))+1,
	).Intersect(c.dst.Rect)
	if box.Empty() {
		return
	}

	if !paint.Antialias {
		hardenMask(c.mask, box)
	}

	src := &paintImage{paint: paint}
	xdraw.DrawMask(c.dst, box, src, box.Min, c.mask, box.Min, xdraw.Over)
}

// hardenMask snaps partial coverage to fully on or off.
func hardenMask(m *image.Alpha, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.Pix[m.PixOffset(r.Min.X, y):m.PixOffset(r.Max.X, y)]
		for i, a := range row {
			if a >= 0x80 {
				row[i] = 0xff
			} else {
				row[i] = 0
			}
		}
	}
}

// paintImage exposes a Paint as an unbounded image sampled at pixel centers.
type paintImage struct {
	paint *circleimage.Paint
}

func (p *paintImage) ColorModel() color.Model { return color.NRGBAModel }

func (p *paintImage) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (p *paintImage) At(x, y int) color.Color {
	return p.paint.ColorAt(float64(x)+0.5, float64(y)+0.5).NRGBA()
}
