package circleimage

// Option configures a View during creation.
//
// Example:
//
//	v := circleimage.NewView(
//	    circleimage.WithBorderWidth(4),
//	    circleimage.WithBorderColor(circleimage.White),
//	    circleimage.WithHost(host),
//	)
type Option func(*viewOptions)

// viewOptions holds optional configuration for View creation.
type viewOptions struct {
	host           Host
	border         BorderConfig
	interp         Interpolation
	filter         ColorFilter
	maxSampleBytes int
}

// defaultOptions returns the default view options.
func defaultOptions() viewOptions {
	return viewOptions{
		border:         DefaultBorder(),
		interp:         InterpBilinear,
		maxSampleBytes: DefaultMaxSampleBytes,
	}
}

// WithHost sets the host that receives redraw requests.
func WithHost(h Host) Option {
	return func(o *viewOptions) {
		o.host = h
	}
}

// WithBorderWidth sets the border width in pixels. Negative values are
// treated as zero.
func WithBorderWidth(px int) Option {
	return func(o *viewOptions) {
		o.border.Width = max(px, 0)
	}
}

// WithBorderColor sets the border color. Default is opaque black.
func WithBorderColor(c RGBA) Option {
	return func(o *viewOptions) {
		o.border.Color = c
	}
}

// WithBorderOverlay paints the border over the image edge instead of
// insetting the image.
func WithBorderOverlay(overlay bool) Option {
	return func(o *viewOptions) {
		o.border.Overlay = overlay
	}
}

// WithInterpolation sets how image pixels are sampled. Default is bilinear.
func WithInterpolation(mode Interpolation) Option {
	return func(o *viewOptions) {
		o.interp = mode
	}
}

// WithColorFilter sets a filter applied to the image fill.
func WithColorFilter(f ColorFilter) Option {
	return func(o *viewOptions) {
		o.filter = f
	}
}

// WithMaxSampleBytes bounds the buffer used to rasterize drawables without
// decoded pixels. Non-positive values select DefaultMaxSampleBytes.
func WithMaxSampleBytes(n int) Option {
	return func(o *viewOptions) {
		if n <= 0 {
			n = DefaultMaxSampleBytes
		}
		o.maxSampleBytes = n
	}
}
