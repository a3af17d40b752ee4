package circleimage

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.border != DefaultBorder() {
		t.Errorf("border = %+v, want %+v", o.border, DefaultBorder())
	}
	if o.interp != InterpBilinear {
		t.Errorf("interp = %v, want Bilinear", o.interp)
	}
	if o.maxSampleBytes != DefaultMaxSampleBytes {
		t.Errorf("maxSampleBytes = %d", o.maxSampleBytes)
	}
	if o.host != nil || o.filter != nil {
		t.Error("host and filter should default to nil")
	}
}

func TestOptionsApply(t *testing.T) {
	h := &countingHost{}
	v := NewView(
		WithHost(h),
		WithBorderWidth(-3),
		WithBorderColor(White),
		WithBorderOverlay(true),
		WithInterpolation(InterpNearest),
		WithColorFilter(Grayscale()),
		WithMaxSampleBytes(0),
	)

	if v.BorderWidth() != 0 {
		t.Errorf("negative border width = %d, want 0", v.BorderWidth())
	}
	if v.BorderColor() != White || !v.BorderOverlay() {
		t.Errorf("border = %+v", v.Border())
	}
	if v.interp != InterpNearest {
		t.Errorf("interp = %v, want Nearest", v.interp)
	}
	if v.ColorFilter() != ColorFilter(Grayscale()) {
		t.Error("color filter not applied")
	}
	if v.maxSampleBytes != DefaultMaxSampleBytes {
		t.Errorf("maxSampleBytes = %d, want default", v.maxSampleBytes)
	}
	if v.host != Host(h) {
		t.Error("host not applied")
	}
}
