package ui

import "testing"

func TestLerpEndpoints(t *testing.T) {
	a, b := RGB(0, 0, 0), RGB(255, 255, 255)
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(.., 0) = %+v, want a", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(.., 1) = %+v, want b", got)
	}
}

func TestLerpNonRGBFallsBack(t *testing.T) {
	if got := Lerp(Red, RGB(0, 0, 0), 0.2); got != Red {
		t.Errorf("low t = %+v, want first color", got)
	}
	if got := Lerp(Red, RGB(0, 0, 0), 0.8); got != RGB(0, 0, 0) {
		t.Errorf("high t = %+v, want second color", got)
	}
}

func TestMeterColorRamp(t *testing.T) {
	empty := MeterColor(0)
	full := MeterColor(1)
	if empty.R <= empty.G {
		t.Errorf("empty meter %+v not red-dominant", empty)
	}
	if full.G <= full.R {
		t.Errorf("full meter %+v not green-dominant", full)
	}
	// Out-of-range ratios clamp.
	if MeterColor(-3) != empty || MeterColor(42) != full {
		t.Errorf("out-of-range ratios did not clamp")
	}
}
