package circleimage

import (
	"fmt"
	"math"
)

// Size is an integer pixel extent.
type Size struct {
	Width, Height int
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectOf returns the rectangle anchored at the origin with the given size.
func RectOf(s Size) Rect {
	return Rect{Right: float64(s.Width), Bottom: float64(s.Height)}
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Inset shrinks every edge by d.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// BorderConfig describes the ring drawn around the image circle.
//
// With Overlay set the ring is painted on top of the image circle, which
// keeps the full viewport radius. Otherwise the image circle is inset by
// Width so the image and the ring never overlap.
type BorderConfig struct {
	Width   int
	Color   RGBA
	Overlay bool
}

// DefaultBorder returns the zero-width opaque black, non-overlay border.
func DefaultBorder() BorderConfig {
	return BorderConfig{Width: 0, Color: Black, Overlay: false}
}

// Geometry is the derived state needed to draw a circular image.
type Geometry struct {
	// Viewport is the size the geometry was computed for.
	Viewport Size

	// DrawRect is the rectangle the image is fit into before clipping.
	DrawRect Rect

	// Center of both circles.
	Center Point

	// ClipRadius is the radius of the circle through which the image shows.
	ClipRadius float64

	// BorderRadius is the radius along which the border ring is stroked.
	BorderRadius float64

	// BorderWidth is the ring width this geometry was computed with;
	// 0 means no ring is drawn.
	BorderWidth float64

	// Transform maps image space to viewport space.
	Transform Matrix

	// Scale and Offset are the components of Transform before DrawRect's
	// origin is added. Offset is rounded to whole pixels.
	Scale  float64
	Offset Point
}

// Configure computes the geometry that fits an image of size img into the
// viewport with a center-crop fit, clipped to a circle, with the given border.
//
// It returns ErrNotReady when either size has no area, or when the border
// leaves no room for the image. Configure is a pure function: identical
// inputs always produce identical Geometry.
func Configure(img, viewport Size, border BorderConfig) (Geometry, error) {
	if viewport.Empty() {
		return Geometry{}, fmt.Errorf("%w: viewport %s", ErrNotReady, viewport)
	}
	if img.Empty() {
		return Geometry{}, fmt.Errorf("%w: image %s", ErrNotReady, img)
	}

	bw := float64(max(border.Width, 0))
	borderRect := RectOf(viewport)
	borderRadius := math.Min((borderRect.Height()-bw)/2, (borderRect.Width()-bw)/2)

	drawRect := borderRect
	if !border.Overlay && bw > 0 {
		drawRect = drawRect.Inset(bw)
	}
	if drawRect.Width() <= 0 || drawRect.Height() <= 0 {
		return Geometry{}, fmt.Errorf("%w: border %d leaves no room in viewport %s",
			ErrNotReady, border.Width, viewport)
	}
	clipRadius := math.Min(drawRect.Height()/2, drawRect.Width()/2)

	scale, offset := centerCrop(img, drawRect)
	transform := Scale(scale, scale).PostTranslate(offset.X+drawRect.Left, offset.Y+drawRect.Top)

	return Geometry{
		Viewport:     viewport,
		DrawRect:     drawRect,
		Center:       Pt(float64(viewport.Width)/2, float64(viewport.Height)/2),
		ClipRadius:   clipRadius,
		BorderRadius: borderRadius,
		BorderWidth:  bw,
		Transform:    transform,
		Scale:        scale,
		Offset:       offset,
	}, nil
}

// centerCrop returns the uniform scale that makes img cover dst and the
// whole-pixel offset that centers the overflow.
func centerCrop(img Size, dst Rect) (scale float64, offset Point) {
	iw, ih := float64(img.Width), float64(img.Height)
	dw, dh := dst.Width(), dst.Height()

	if iw*dh > dw*ih {
		scale = dh / ih
		offset.X = math.Round(0.5 * (dw - iw*scale))
	} else {
		scale = dw / iw
		offset.Y = math.Round(0.5 * (dh - ih*scale))
	}
	return scale, offset
}
