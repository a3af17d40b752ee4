// Package circleimage displays an image clipped to a circle with an optional
// ring-shaped border, inside a viewport of any size and aspect ratio.
//
// # Overview
//
// The heart of the package is [Configure], a pure function that, given the
// image size, the viewport size and a [BorderConfig], returns a [Geometry]:
// the radius of the circle the image shows through, the radius along which
// the border is stroked, and the affine [Matrix] that maps the image onto the
// viewport with a center-crop fit.
//
// [View] wraps Configure with the state a UI widget needs: it collects inputs
// in any order, defers work until it is attached, rebuilds its paints after
// every change and asks its [Host] for a redraw. At draw time it issues one
// filled circle and, when the border has a width, one stroked circle to a
// [Canvas]. The raster sub-package provides a software Canvas.
//
// # Quick Start
//
//	v := circleimage.NewView(
//	    circleimage.WithBorderWidth(4),
//	    circleimage.WithBorderColor(circleimage.White),
//	)
//	v.Attach()
//	v.SetImage(photo)
//	v.SetSize(128, 128)
//
//	c := raster.New(128, 128)
//	v.Draw(c)
//
// # Border Modes
//
// Without overlay the image circle is inset by the border width, so the
// image and the ring never overlap. With overlay the image keeps the full
// viewport radius and the ring is painted over its edge.
//
// # Coordinate System
//
// Origin at the top-left, X increases right, Y increases down. Both circles
// are centered on the viewport center.
package circleimage
