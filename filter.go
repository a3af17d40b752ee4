package circleimage

// ColorFilter transforms each color sampled from the image. Filters apply to
// the image fill only; the border keeps its configured color.
//
// Implementations must be comparable: View compares the new filter with the
// current one and ignores identical assignments.
type ColorFilter interface {
	Filter(c RGBA) RGBA
}

// TintFilter replaces the color of every pixel with Color while keeping the
// pixel's coverage (source-in).
type TintFilter struct {
	Color RGBA
}

// Filter implements ColorFilter.
func (f TintFilter) Filter(c RGBA) RGBA {
	return RGBA{R: f.Color.R, G: f.Color.G, B: f.Color.B, A: f.Color.A * c.A}
}

// MatrixFilter is a 4x5 color matrix in row-major order. Each output
// component is the dot product of its row with (R, G, B, A, 1); results are
// clamped to [0, 1].
type MatrixFilter [20]float64

// IdentityFilter returns the matrix that leaves colors unchanged.
func IdentityFilter() MatrixFilter {
	return MatrixFilter{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Saturation returns a matrix that scales color saturation around Rec. 709
// luminance: 0 is grayscale, 1 is unchanged, above 1 oversaturates.
func Saturation(factor float64) MatrixFilter {
	const lumR, lumG, lumB = 0.2126, 0.7152, 0.0722
	sr := (1 - factor) * lumR
	sg := (1 - factor) * lumG
	sb := (1 - factor) * lumB
	return MatrixFilter{
		sr + factor, sg, sb, 0, 0,
		sr, sg + factor, sb, 0, 0,
		sr, sg, sb + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Grayscale returns a matrix that maps colors to their luminance.
func Grayscale() MatrixFilter {
	return Saturation(0)
}

// Filter implements ColorFilter.
func (m MatrixFilter) Filter(c RGBA) RGBA {
	row := func(i int) float64 {
		return clamp01(m[i]*c.R + m[i+1]*c.G + m[i+2]*c.B + m[i+3]*c.A + m[i+4])
	}
	return RGBA{R: row(0), G: row(5), B: row(10), A: row(15)}
}
