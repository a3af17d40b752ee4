package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/circleimage"
	"github.com/gogpu/circleimage/internal/imageio"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { circleimage.SetLogger(nil) })

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    circleimage.Size
		wantErr bool
	}{
		{"200x100", circleimage.Sz(200, 100), false},
		{"1x1", circleimage.Sz(1, 1), false},
		{"0x10", circleimage.Size{}, true},
		{"10", circleimage.Size{}, true},
		{"10x10px", circleimage.Size{}, true},
		{"", circleimage.Size{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseSize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGeometryCommand(t *testing.T) {
	out, err := execute(t, "geometry", "--image-size", "200x100", "--border", "10")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"clip radius:   40",
		"border radius: 45",
		"scale:         0.8",
		"offset:        (-40, 0)",
		"transform:     [0.8 0 -30; 0 0.8 10]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.png")
	out, err := execute(t, "render", "--color", "#ff0000", "--width", "40", "--height", "40",
		"--border", "4", "--border-color", "#ffffff", "--out", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("unexpected output %q", out)
	}

	img, _, err := imageio.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.NRGBAModel.Convert(img.At(20, 20)); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("center = %v, want red", got)
	}
	if got := color.NRGBAModel.Convert(img.At(20, 1)); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("ring = %v, want white", got)
	}
}

func TestRenderImage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	src := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	if err := imageio.Save(in, src); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.png")
	if _, err := execute(t, "render", "--in", in, "--out", out, "--width", "16", "--height", "16",
		"--grayscale", "--background", "#000000"); err != nil {
		t.Fatal(err)
	}
	img, _, err := imageio.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.NRGBAModel.Convert(img.At(0, 0)); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("corner = %v, want black background", got)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"render"}},
		{"bad color", []string{"render", "--color", "#zz"}},
		{"bad interpolation", []string{"render", "--color", "#fff", "--interp", "cubic"}},
		{"negative border", []string{"render", "--color", "#fff", "--border", "-1"}},
		{"zero viewport", []string{"render", "--color", "#fff", "--width", "0", "--out", filepath.Join(dir, "x.png")}},
		{"missing file", []string{"render", "--in", filepath.Join(dir, "missing.png")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("%v: expected error", tt.args)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "circleimage version "+version) {
		t.Errorf("version output = %q", out)
	}
}
