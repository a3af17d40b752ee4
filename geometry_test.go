package circleimage

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestConfigureRadii(t *testing.T) {
	tests := []struct {
		name         string
		viewport     Size
		border       BorderConfig
		wantClip     float64
		wantBorder   float64
		wantDrawRect Rect
	}{
		{
			name:         "no border",
			viewport:     Sz(100, 100),
			border:       BorderConfig{},
			wantClip:     50,
			wantBorder:   50,
			wantDrawRect: Rect{0, 0, 100, 100},
		},
		{
			name:         "border outside image",
			viewport:     Sz(100, 100),
			border:       BorderConfig{Width: 10},
			wantClip:     40,
			wantBorder:   45,
			wantDrawRect: Rect{10, 10, 90, 90},
		},
		{
			name:         "border overlay",
			viewport:     Sz(100, 100),
			border:       BorderConfig{Width: 10, Overlay: true},
			wantClip:     50,
			wantBorder:   45,
			wantDrawRect: Rect{0, 0, 100, 100},
		},
		{
			name:         "wide viewport",
			viewport:     Sz(300, 120),
			border:       BorderConfig{Width: 4},
			wantClip:     56,
			wantBorder:   58,
			wantDrawRect: Rect{4, 4, 296, 116},
		},
		{
			name:         "odd viewport",
			viewport:     Sz(99, 51),
			border:       BorderConfig{},
			wantClip:     25.5,
			wantBorder:   25.5,
			wantDrawRect: Rect{0, 0, 99, 51},
		},
		{
			name:         "negative width treated as zero",
			viewport:     Sz(100, 100),
			border:       BorderConfig{Width: -5},
			wantClip:     50,
			wantBorder:   50,
			wantDrawRect: Rect{0, 0, 100, 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Configure(Sz(10, 10), tt.viewport, tt.border)
			if err != nil {
				t.Fatalf("Configure: %v", err)
			}
			if !approx(g.ClipRadius, tt.wantClip) {
				t.Errorf("ClipRadius = %v, want %v", g.ClipRadius, tt.wantClip)
			}
			if !approx(g.BorderRadius, tt.wantBorder) {
				t.Errorf("BorderRadius = %v, want %v", g.BorderRadius, tt.wantBorder)
			}
			if g.DrawRect != tt.wantDrawRect {
				t.Errorf("DrawRect = %+v, want %+v", g.DrawRect, tt.wantDrawRect)
			}
			if want := float64(max(tt.border.Width, 0)); g.BorderWidth != want {
				t.Errorf("BorderWidth = %v, want %v", g.BorderWidth, want)
			}
			wantCenter := Pt(float64(tt.viewport.Width)/2, float64(tt.viewport.Height)/2)
			if g.Center != wantCenter {
				t.Errorf("Center = %v, want %v", g.Center, wantCenter)
			}
		})
	}
}

func TestConfigureCenterCrop(t *testing.T) {
	tests := []struct {
		name       string
		img        Size
		viewport   Size
		border     BorderConfig
		wantScale  float64
		wantOffset Point
	}{
		{"wide image", Sz(200, 100), Sz(100, 100), BorderConfig{Width: 10}, 0.8, Pt(-40, 0)},
		{"tall image", Sz(100, 200), Sz(100, 100), BorderConfig{Width: 10}, 0.8, Pt(0, -40)},
		{"same aspect", Sz(50, 50), Sz(100, 100), BorderConfig{Width: 10}, 1.6, Pt(0, 0)},
		{"offset rounded", Sz(7, 3), Sz(10, 10), BorderConfig{}, 10.0 / 3, Pt(-7, 0)},
		{"wide viewport", Sz(100, 100), Sz(200, 100), BorderConfig{}, 2, Pt(0, -50)},
		{"color sample", Sz(2, 2), Sz(64, 48), BorderConfig{}, 32, Pt(0, -8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Configure(tt.img, tt.viewport, tt.border)
			if err != nil {
				t.Fatalf("Configure: %v", err)
			}
			if !approx(g.Scale, tt.wantScale) {
				t.Errorf("Scale = %v, want %v", g.Scale, tt.wantScale)
			}
			if g.Offset != tt.wantOffset {
				t.Errorf("Offset = %v, want %v", g.Offset, tt.wantOffset)
			}
			want := Scale(tt.wantScale, tt.wantScale).PostTranslate(
				tt.wantOffset.X+g.DrawRect.Left, tt.wantOffset.Y+g.DrawRect.Top)
			if !approx(g.Transform.A, want.A) || !approx(g.Transform.E, want.E) ||
				!approx(g.Transform.C, want.C) || !approx(g.Transform.F, want.F) ||
				g.Transform.B != 0 || g.Transform.D != 0 {
				t.Errorf("Transform = %v, want %v", g.Transform, want)
			}
		})
	}
}

// The mapped image must cover DrawRect with equal overflow on both sides.
func TestConfigureCoversDrawRect(t *testing.T) {
	g, err := Configure(Sz(200, 100), Sz(100, 100), BorderConfig{Width: 10})
	if err != nil {
		t.Fatal(err)
	}
	tl := g.Transform.TransformPoint(Pt(0, 0))
	br := g.Transform.TransformPoint(Pt(200, 100))

	if tl != Pt(-30, 10) || br != Pt(130, 90) {
		t.Fatalf("mapped image = %v..%v, want (-30,10)..(130,90)", tl, br)
	}
	left := g.DrawRect.Left - tl.X
	right := br.X - g.DrawRect.Right
	if left < 0 || right < 0 {
		t.Errorf("image does not cover DrawRect: overflow left=%v right=%v", left, right)
	}
	if left != right {
		t.Errorf("overflow not centered: left=%v right=%v", left, right)
	}
	if tl.Y != g.DrawRect.Top || br.Y != g.DrawRect.Bottom {
		t.Errorf("vertical fit = %v..%v, want %v..%v", tl.Y, br.Y, g.DrawRect.Top, g.DrawRect.Bottom)
	}
}

func TestConfigureIdempotent(t *testing.T) {
	border := BorderConfig{Width: 3, Color: White, Overlay: false}
	a, errA := Configure(Sz(640, 427), Sz(97, 131), border)
	b, errB := Configure(Sz(640, 427), Sz(97, 131), border)
	if errA != nil || errB != nil {
		t.Fatalf("Configure errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("Configure not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestConfigureNotReady(t *testing.T) {
	tests := []struct {
		name     string
		img      Size
		viewport Size
		border   BorderConfig
	}{
		{"zero viewport", Sz(10, 10), Sz(0, 0), BorderConfig{}},
		{"zero width viewport", Sz(10, 10), Sz(0, 100), BorderConfig{}},
		{"no image", Sz(0, 0), Sz(100, 100), BorderConfig{}},
		{"negative image", Sz(-1, 5), Sz(100, 100), BorderConfig{}},
		{"border consumes viewport", Sz(10, 10), Sz(20, 20), BorderConfig{Width: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Configure(tt.img, tt.viewport, tt.border)
			if !errors.Is(err, ErrNotReady) {
				t.Errorf("Configure error = %v, want ErrNotReady", err)
			}
		})
	}
}

func TestConfigureLargeOverlayBorder(t *testing.T) {
	// Overlay never insets, so a thick border still leaves the image visible.
	g, err := Configure(Sz(10, 10), Sz(20, 20), BorderConfig{Width: 10, Overlay: true})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if g.ClipRadius != 10 || g.BorderRadius != 5 {
		t.Errorf("radii = %v/%v, want 10/5", g.ClipRadius, g.BorderRadius)
	}
}

func TestRectInset(t *testing.T) {
	r := RectOf(Sz(100, 50)).Inset(5)
	if r != (Rect{5, 5, 95, 45}) {
		t.Errorf("Inset = %+v", r)
	}
	if r.Width() != 90 || r.Height() != 40 {
		t.Errorf("size = %vx%v, want 90x40", r.Width(), r.Height())
	}
}
