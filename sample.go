package circleimage

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// colorSampleDimension is the edge of the square a flat color is rasterized
// into. The center-crop scale stretches it uniformly, so a larger square
// would only cost memory.
const colorSampleDimension = 2

// DefaultMaxSampleBytes bounds the working buffer allocated when a drawable
// has to be rasterized into a sample.
const DefaultMaxSampleBytes = 64 << 20

// ImageSample is an immutable pixel source with known dimensions.
// A new sample replaces the previous one wholesale.
type ImageSample struct {
	width  int
	height int
	pixels image.Image
}

// Width returns the sample width in pixels.
func (s *ImageSample) Width() int { return s.width }

// Height returns the sample height in pixels.
func (s *ImageSample) Height() int { return s.height }

// Size returns the sample dimensions.
func (s *ImageSample) Size() Size { return Sz(s.width, s.height) }

// Pixels returns the backing image. Its bounds may not start at the origin.
func (s *ImageSample) Pixels() image.Image { return s.pixels }

// SampleFromImage wraps decoded pixels without copying them.
// It returns nil for a nil image or one without area.
func SampleFromImage(img image.Image) *ImageSample {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	return &ImageSample{width: b.Dx(), height: b.Dy(), pixels: img}
}

// Drawable is an opaque image source that can render itself.
type Drawable interface {
	// IntrinsicSize reports the natural size; an empty size means the
	// drawable has none (for example a flat color).
	IntrinsicSize() Size

	// Draw renders the drawable stretched over dst.Bounds().
	Draw(dst xdraw.Image)
}

// Bitmap is a Drawable already backed by decoded pixels.
type Bitmap interface {
	Drawable
	Image() image.Image
}

// ImageDrawable adapts a decoded image to Drawable.
type ImageDrawable struct {
	Img image.Image
}

// IntrinsicSize implements Drawable.
func (d ImageDrawable) IntrinsicSize() Size {
	if d.Img == nil {
		return Size{}
	}
	b := d.Img.Bounds()
	return Sz(b.Dx(), b.Dy())
}

// Draw implements Drawable.
func (d ImageDrawable) Draw(dst xdraw.Image) {
	if d.Img == nil {
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), d.Img, d.Img.Bounds(), xdraw.Src, nil)
}

// Image implements Bitmap.
func (d ImageDrawable) Image() image.Image { return d.Img }

// ColorDrawable is a flat color with no intrinsic size.
type ColorDrawable struct {
	Color RGBA
}

// IntrinsicSize implements Drawable.
func (ColorDrawable) IntrinsicSize() Size { return Size{} }

// Draw implements Drawable.
func (d ColorDrawable) Draw(dst xdraw.Image) {
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(d.Color.NRGBA()), image.Point{}, xdraw.Src)
}

// SampleFromDrawable extracts an ImageSample from d.
//
// Bitmaps are used directly. A ColorDrawable is rasterized into a 2x2
// square; any other drawable is rasterized at its intrinsic size. When the
// working buffer would exceed maxBytes (or cannot be allocated) the error
// wraps ErrSampleUnavailable. A nil drawable yields (nil, nil).
func SampleFromDrawable(d Drawable, maxBytes int) (*ImageSample, error) {
	if d == nil {
		return nil, nil
	}
	if bm, ok := d.(Bitmap); ok {
		if s := SampleFromImage(bm.Image()); s != nil {
			return s, nil
		}
		return nil, fmt.Errorf("%w: bitmap has no pixels", ErrSampleUnavailable)
	}

	size := d.IntrinsicSize()
	if _, flat := d.(ColorDrawable); flat {
		size = Sz(colorSampleDimension, colorSampleDimension)
	}
	if size.Empty() {
		return nil, fmt.Errorf("%w: drawable has no intrinsic size", ErrSampleUnavailable)
	}

	dst, err := allocRGBA(size, maxBytes)
	if err != nil {
		return nil, err
	}
	d.Draw(dst)
	Logger().Info("circleimage: drawable rasterized", "size", size, "bytes", len(dst.Pix))
	return &ImageSample{width: size.Width, height: size.Height, pixels: dst}, nil
}

// allocRGBA allocates an RGBA buffer, turning oversize requests and
// allocation panics into ErrSampleUnavailable.
func allocRGBA(size Size, maxBytes int) (img *image.RGBA, err error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxSampleBytes
	}
	w, h := int64(size.Width), int64(size.Height)
	if w > math.MaxInt32 || h > math.MaxInt32 || w*h > int64(maxBytes)/4 {
		return nil, fmt.Errorf("%w: %s buffer exceeds %d bytes", ErrSampleUnavailable, size, maxBytes)
	}

	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("%w: allocate %s: %v", ErrSampleUnavailable, size, r)
		}
	}()
	return image.NewRGBA(image.Rect(0, 0, size.Width, size.Height)), nil
}

// at returns the straight-alpha color of the sample pixel (x, y), with
// coordinates relative to the sample origin and clamped to its edges.
func (s *ImageSample) at(x, y int) RGBA {
	x = min(max(x, 0), s.width-1)
	y = min(max(y, 0), s.height-1)
	b := s.pixels.Bounds()
	px, py := b.Min.X+x, b.Min.Y+y

	switch p := s.pixels.(type) {
	case *image.NRGBA:
		i := p.PixOffset(px, py)
		return RGBA{
			R: float64(p.Pix[i]) / 255,
			G: float64(p.Pix[i+1]) / 255,
			B: float64(p.Pix[i+2]) / 255,
			A: float64(p.Pix[i+3]) / 255,
		}
	case *image.RGBA:
		return FromColor(p.RGBAAt(px, py))
	}
	return FromColor(color.NRGBA64Model.Convert(s.pixels.At(px, py)))
}
