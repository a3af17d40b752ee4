package circleimage

import "math"

// Interpolation selects how the image pattern reads between pixels.
type Interpolation uint8

const (
	// InterpNearest selects the pixel containing the sample point.
	InterpNearest Interpolation = iota

	// InterpBilinear blends the four nearest pixels.
	InterpBilinear
)

// String returns a string representation of the interpolation mode.
func (m Interpolation) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Pattern produces a color for a point in viewport space.
type Pattern interface {
	ColorAt(x, y float64) RGBA
}

// SolidPattern paints a single color everywhere.
type SolidPattern struct {
	Color RGBA
}

// ColorAt implements Pattern.
func (p SolidPattern) ColorAt(_, _ float64) RGBA {
	return p.Color
}

// ImagePattern samples an ImageSample through an affine transform.
//
// The transform maps image space to viewport space; lookups use its cached
// inverse. Coordinates outside the image are clamped to the edge pixels, so
// the pattern never wraps and never turns transparent past the edges.
type ImagePattern struct {
	sample    *ImageSample
	transform Matrix
	inverse   Matrix
	interp    Interpolation
	filter    ColorFilter
}

// NewImagePattern creates a pattern over sample with the given image-to-
// viewport transform. Returns nil if sample is nil.
func NewImagePattern(sample *ImageSample, transform Matrix) *ImagePattern {
	if sample == nil {
		return nil
	}
	inv, ok := transform.Invert()
	if !ok {
		inv = Identity()
	}
	return &ImagePattern{
		sample:    sample,
		transform: transform,
		inverse:   inv,
		interp:    InterpBilinear,
	}
}

// WithInterpolation sets the interpolation mode. Returns p for chaining.
func (p *ImagePattern) WithInterpolation(mode Interpolation) *ImagePattern {
	p.interp = mode
	return p
}

// WithFilter sets a color filter applied to every sampled color.
// Returns p for chaining.
func (p *ImagePattern) WithFilter(f ColorFilter) *ImagePattern {
	p.filter = f
	return p
}

// Transform returns the image-to-viewport transform.
func (p *ImagePattern) Transform() Matrix { return p.transform }

// Sample returns the sampled image.
func (p *ImagePattern) Sample() *ImageSample { return p.sample }

// Interpolation returns the interpolation mode.
func (p *ImagePattern) Interpolation() Interpolation { return p.interp }

// ColorAt implements Pattern.
func (p *ImagePattern) ColorAt(x, y float64) RGBA {
	if p == nil || p.sample == nil {
		return Transparent
	}
	u := p.inverse.TransformPoint(Pt(x, y))

	var c RGBA
	if p.interp == InterpNearest {
		c = p.sample.at(int(math.Floor(u.X)), int(math.Floor(u.Y)))
	} else {
		c = p.bilinear(u.X, u.Y)
	}
	if p.filter != nil {
		c = p.filter.Filter(c)
	}
	return c
}

// bilinear interpolates in premultiplied space so transparent neighbors do
// not darken the result.
func (p *ImagePattern) bilinear(u, v float64) RGBA {
	fx, fy := u-0.5, v-0.5
	x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
	tx, ty := fx-float64(x0), fy-float64(y0)

	c00 := premul(p.sample.at(x0, y0))
	c10 := premul(p.sample.at(x0+1, y0))
	c01 := premul(p.sample.at(x0, y0+1))
	c11 := premul(p.sample.at(x0+1, y0+1))

	mix := func(a, b, c, d float64) float64 {
		top := a + (b-a)*tx
		bottom := c + (d-c)*tx
		return top + (bottom-top)*ty
	}
	out := RGBA{
		R: mix(c00.R, c10.R, c01.R, c11.R),
		G: mix(c00.G, c10.G, c01.G, c11.G),
		B: mix(c00.B, c10.B, c01.B, c11.B),
		A: mix(c00.A, c10.A, c01.A, c11.A),
	}
	return unpremul(out)
}

func premul(c RGBA) RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

func unpremul(c RGBA) RGBA {
	if c.A <= 0 {
		return Transparent
	}
	return RGBA{R: clamp01(c.R / c.A), G: clamp01(c.G / c.A), B: clamp01(c.B / c.A), A: clamp01(c.A)}
}
