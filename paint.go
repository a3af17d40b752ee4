package circleimage

// PaintStyle specifies whether a circle is filled or stroked.
type PaintStyle int

const (
	// StyleFill fills the circle interior.
	StyleFill PaintStyle = iota
	// StyleStroke draws a ring centered on the circle outline.
	StyleStroke
)

// String returns a string representation of the style.
func (s PaintStyle) String() string {
	switch s {
	case StyleFill:
		return "Fill"
	case StyleStroke:
		return "Stroke"
	default:
		return "Unknown"
	}
}

// Paint represents the styling information for one circle draw call.
type Paint struct {
	// Style selects fill or stroke.
	Style PaintStyle

	// Pattern supplies the color for every covered pixel.
	Pattern Pattern

	// StrokeWidth is the ring width for StyleStroke.
	StrokeWidth float64

	// Antialias enables anti-aliased edges.
	Antialias bool
}

// NewFillPaint returns an anti-aliased fill paint sampling pattern.
func NewFillPaint(pattern Pattern) *Paint {
	return &Paint{
		Style:     StyleFill,
		Pattern:   pattern,
		Antialias: true,
	}
}

// NewStrokePaint returns an anti-aliased stroke paint of the given color
// and width.
func NewStrokePaint(c RGBA, width float64) *Paint {
	return &Paint{
		Style:       StyleStroke,
		Pattern:     SolidPattern{Color: c},
		StrokeWidth: width,
		Antialias:   true,
	}
}

// ColorAt returns the paint color at the given viewport position.
func (p *Paint) ColorAt(x, y float64) RGBA {
	if p == nil || p.Pattern == nil {
		return Black
	}
	return p.Pattern.ColorAt(x, y)
}

// Clone creates a shallow copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}
