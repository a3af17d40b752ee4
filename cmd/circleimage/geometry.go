package main

import (
	"fmt"

	"github.com/gogpu/circleimage"
	"github.com/spf13/cobra"
)

func newGeometryCmd() *cobra.Command {
	var (
		imageSize string
		width     int
		height    int
		border    int
		overlay   bool
	)

	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print the circle radii and image transform for a configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := parseSize(imageSize)
			if err != nil {
				return err
			}
			g, err := circleimage.Configure(img, circleimage.Sz(width, height), circleimage.BorderConfig{
				Width:   border,
				Overlay: overlay,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "viewport:      %s\n", g.Viewport)
			fmt.Fprintf(out, "draw rect:     [%g %g %g %g]\n", g.DrawRect.Left, g.DrawRect.Top, g.DrawRect.Right, g.DrawRect.Bottom)
			fmt.Fprintf(out, "center:        (%g, %g)\n", g.Center.X, g.Center.Y)
			fmt.Fprintf(out, "clip radius:   %g\n", g.ClipRadius)
			fmt.Fprintf(out, "border radius: %g\n", g.BorderRadius)
			fmt.Fprintf(out, "scale:         %g\n", g.Scale)
			fmt.Fprintf(out, "offset:        (%g, %g)\n", g.Offset.X, g.Offset.Y)
			fmt.Fprintf(out, "transform:     %s\n", g.Transform)
			return nil
		},
	}

	cmd.Flags().StringVar(&imageSize, "image-size", "", "Source image size as WxH (required)")
	cmd.Flags().IntVar(&width, "width", 100, "Viewport width")
	cmd.Flags().IntVar(&height, "height", 100, "Viewport height")
	cmd.Flags().IntVar(&border, "border", 0, "Border width")
	cmd.Flags().BoolVar(&overlay, "overlay", false, "Paint the border over the image edge")
	_ = cmd.MarkFlagRequired("image-size")

	return cmd
}

// parseSize parses "WxH".
func parseSize(s string) (circleimage.Size, error) {
	var w, h int
	var rest string
	n, _ := fmt.Sscanf(s, "%dx%d%s", &w, &h, &rest)
	if n != 2 || w <= 0 || h <= 0 {
		return circleimage.Size{}, fmt.Errorf("invalid size %q, want WxH", s)
	}
	return circleimage.Sz(w, h), nil
}
