package circleimage

import (
	"errors"
	"fmt"
	"image"
)

// FitMode names how an image is scaled into the view. Only FitCenterCrop is
// supported; the other values exist so callers can be told so.
type FitMode int

const (
	// FitCenterCrop scales the image to cover the circle, cropping the rest.
	FitCenterCrop FitMode = iota
	// FitCenter scales the image to fit inside the view, centered.
	FitCenter
	// FitCenterInside centers the image, scaling down only.
	FitCenterInside
	// FitXY stretches the image to the view.
	FitXY
	// FitMatrix uses a caller-supplied matrix.
	FitMatrix
)

// String returns a string representation of the fit mode.
func (m FitMode) String() string {
	switch m {
	case FitCenterCrop:
		return "CenterCrop"
	case FitCenter:
		return "Center"
	case FitCenterInside:
		return "CenterInside"
	case FitXY:
		return "FitXY"
	case FitMatrix:
		return "Matrix"
	default:
		return fmt.Sprintf("FitMode(%d)", int(m))
	}
}

// Host receives redraw requests from a View. Requests are fire-and-forget
// and may be coalesced.
type Host interface {
	Invalidate()
}

// HostFunc adapts a function to Host.
type HostFunc func()

// Invalidate implements Host.
func (f HostFunc) Invalidate() { f() }

// Canvas is the host paint engine a View draws into.
type Canvas interface {
	DrawFilledCircle(center Point, radius float64, paint *Paint)
	DrawStrokedCircle(center Point, radius float64, paint *Paint)
}

// View displays an image clipped to a circle with an optional ring border.
//
// A View starts unready. Inputs may be assigned in any order; geometry is
// recomputed after every change once Attach has been called, and the last
// change made before Attach is applied exactly once by Attach.
//
// View is not safe for concurrent use; drive it from the rendering goroutine.
type View struct {
	host           Host
	border         BorderConfig
	interp         Interpolation
	filter         ColorFilter
	maxSampleBytes int

	size   Size
	sample *ImageSample

	ready   bool
	pending bool

	geom    Geometry
	hasGeom bool
	fill    *Paint
	stroke  *Paint
}

// NewView creates an unready View.
func NewView(opts ...Option) *View {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &View{
		host:           o.host,
		border:         o.border,
		interp:         o.interp,
		filter:         o.filter,
		maxSampleBytes: o.maxSampleBytes,
	}
}

// Attach marks the view ready and applies any configuration deferred
// while it was unready. Later calls have no effect.
func (v *View) Attach() {
	if v.ready {
		return
	}
	v.ready = true
	if v.pending {
		v.pending = false
		Logger().Debug("circleimage: applying deferred setup", "size", v.size)
		_ = v.Recompute()
	}
}

// Ready reports whether Attach has been called.
func (v *View) Ready() bool { return v.ready }

// Recompute derives the geometry and paints from the current inputs.
//
// It returns an error wrapping ErrNotReady when the view is unready (the
// recompute is then deferred to Attach) or when the size or image is
// missing. In that case the previous geometry is kept and no redraw is
// requested.
func (v *View) Recompute() error {
	if !v.ready {
		v.pending = true
		return fmt.Errorf("%w: view not attached", ErrNotReady)
	}
	if v.sample == nil {
		return fmt.Errorf("%w: no image", ErrNotReady)
	}

	g, err := Configure(v.sample.Size(), v.size, v.border)
	if err != nil {
		Logger().Debug("circleimage: geometry deferred", "err", err)
		return err
	}

	v.geom = g
	v.hasGeom = true
	v.fill = NewFillPaint(v.newPattern())
	v.stroke = NewStrokePaint(v.border.Color, g.BorderWidth)

	Logger().Debug("circleimage: geometry recomputed",
		"viewport", g.Viewport,
		"image", v.sample.Size(),
		"clipRadius", g.ClipRadius,
		"borderRadius", g.BorderRadius,
		"scale", g.Scale,
		"dx", g.Offset.X,
		"dy", g.Offset.Y,
	)
	v.invalidate()
	return nil
}

// inputsChanged is the single entry point for every geometry input.
func (v *View) inputsChanged() {
	if err := v.Recompute(); err != nil && !errors.Is(err, ErrNotReady) {
		Logger().Warn("circleimage: recompute failed", "err", err)
	}
}

func (v *View) newPattern() *ImagePattern {
	p := NewImagePattern(v.sample, v.geom.Transform)
	if p == nil {
		return nil
	}
	return p.WithInterpolation(v.interp).WithFilter(v.filter)
}

func (v *View) invalidate() {
	if v.ready && v.host != nil {
		v.host.Invalidate()
	}
}

// SetSize reports a new viewport size.
func (v *View) SetSize(width, height int) {
	v.size = Sz(width, height)
	v.inputsChanged()
}

// Size returns the last reported viewport size.
func (v *View) Size() Size { return v.size }

// SetImage assigns decoded pixels, used without copying. A nil image clears
// the view.
func (v *View) SetImage(img image.Image) {
	v.setSample(SampleFromImage(img))
}

// SetDrawable assigns an opaque drawable. When no sample can be extracted
// the view behaves as if it had no image.
func (v *View) SetDrawable(d Drawable) {
	s, err := SampleFromDrawable(d, v.maxSampleBytes)
	if err != nil {
		Logger().Warn("circleimage: drawable dropped", "err", err)
		s = nil
	}
	v.setSample(s)
}

// SetColor assigns a flat color as the image.
func (v *View) SetColor(c RGBA) {
	v.SetDrawable(ColorDrawable{Color: c})
}

func (v *View) setSample(s *ImageSample) {
	hadImage := v.sample != nil
	v.sample = s
	if s == nil {
		// The host must erase the circle drawn for the previous image.
		if hadImage {
			v.invalidate()
		}
		return
	}
	v.inputsChanged()
}

// Sample returns the current image sample, or nil.
func (v *View) Sample() *ImageSample { return v.sample }

// SetBorderWidth sets the border width in pixels; negative values mean 0.
func (v *View) SetBorderWidth(px int) {
	px = max(px, 0)
	if px == v.border.Width {
		return
	}
	v.border.Width = px
	v.inputsChanged()
}

// BorderWidth returns the border width in pixels.
func (v *View) BorderWidth() int { return v.border.Width }

// SetBorderColor sets the border color. Only a redraw is requested.
func (v *View) SetBorderColor(c RGBA) {
	if c == v.border.Color {
		return
	}
	v.border.Color = c
	if v.stroke != nil {
		v.stroke = NewStrokePaint(c, v.geom.BorderWidth)
	}
	v.invalidate()
}

// BorderColor returns the border color.
func (v *View) BorderColor() RGBA { return v.border.Color }

// SetBorderOverlay selects whether the border is painted over the image.
func (v *View) SetBorderOverlay(overlay bool) {
	if overlay == v.border.Overlay {
		return
	}
	v.border.Overlay = overlay
	v.inputsChanged()
}

// BorderOverlay reports whether the border is painted over the image.
func (v *View) BorderOverlay() bool { return v.border.Overlay }

// Border returns the full border configuration.
func (v *View) Border() BorderConfig { return v.border }

// SetColorFilter sets the filter applied to the image fill; nil removes it.
// Only a redraw is requested.
func (v *View) SetColorFilter(f ColorFilter) {
	if f == v.filter {
		return
	}
	v.filter = f
	if v.fill != nil {
		v.fill = NewFillPaint(v.newPattern())
	}
	v.invalidate()
}

// ColorFilter returns the current color filter, or nil.
func (v *View) ColorFilter() ColorFilter { return v.filter }

// SetInterpolation selects how image pixels are sampled.
func (v *View) SetInterpolation(mode Interpolation) {
	if mode == v.interp {
		return
	}
	v.interp = mode
	if v.fill != nil {
		v.fill = NewFillPaint(v.newPattern())
	}
	v.invalidate()
}

// SetFitMode accepts only FitCenterCrop. Any other mode is rejected with
// an error wrapping ErrInvalidConfiguration and the view is left unchanged.
func (v *View) SetFitMode(m FitMode) error {
	if m != FitCenterCrop {
		return fmt.Errorf("%w: fit mode %s is not supported", ErrInvalidConfiguration, m)
	}
	return nil
}

// FitMode always returns FitCenterCrop.
func (v *View) FitMode() FitMode { return FitCenterCrop }

// SetAdjustViewBounds rejects enabling bounds adjustment to the image.
func (v *View) SetAdjustViewBounds(adjust bool) error {
	if adjust {
		return fmt.Errorf("%w: adjusting view bounds is not supported", ErrInvalidConfiguration)
	}
	return nil
}

// AdjustViewBounds always returns false.
func (v *View) AdjustViewBounds() bool { return false }

// Geometry returns the last computed geometry. ok is false until the first
// successful recompute.
func (v *View) Geometry() (g Geometry, ok bool) {
	return v.geom, v.hasGeom
}

// FillPaint returns the paint for the image circle, or nil before the
// first successful recompute.
func (v *View) FillPaint() *Paint { return v.fill }

// StrokePaint returns the paint for the border ring, or nil before the
// first successful recompute.
func (v *View) StrokePaint() *Paint { return v.stroke }

// Draw issues the image circle and, when the last computed geometry has a
// border, the ring. Nothing is drawn without an image or geometry.
func (v *View) Draw(c Canvas) {
	if v.sample == nil || !v.hasGeom {
		return
	}
	c.DrawFilledCircle(v.geom.Center, v.geom.ClipRadius, v.fill)
	if v.geom.BorderWidth > 0 {
		c.DrawStrokedCircle(v.geom.Center, v.geom.BorderRadius, v.stroke)
	}
}
