// Package raster is a software host for circleimage views.
//
// Canvas implements circleimage.Canvas on top of an *image.RGBA, using
// golang.org/x/image/vector for anti-aliased coverage and
// golang.org/x/image/draw for compositing.
//
// Usage:
//
//	v := circleimage.NewView(circleimage.WithBorderWidth(4))
//	v.Attach()
//	v.SetImage(photo)
//	v.SetSize(256, 256)
//
//	c := raster.New(256, 256)
//	v.Draw(c)
//	png.Encode(w, c.Image())
package raster
