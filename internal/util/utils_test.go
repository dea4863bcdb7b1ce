package util

import "testing"

func TestLerp(t *testing.T) {
	if Lerp(0, 10, 0.5) != 5 {
		t.Error("Lerp midpoint")
	}
	if Lerp(2, 4, 0) != 2 || Lerp(2, 4, 1) != 4 {
		t.Error("Lerp endpoints")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, min, max, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestMap(t *testing.T) {
	if got := Map(5, 0, 10, 0, 100); got != 50 {
		t.Errorf("Map = %v, want 50", got)
	}
	// Out-of-range input clamps to the output range
	if got := Map(20, 0, 10, 0, 100); got != 100 {
		t.Errorf("Map out of range = %v, want 100", got)
	}
}

func TestSmoothStep(t *testing.T) {
	if SmoothStep(0, 1, 0) != 0 || SmoothStep(0, 1, 1) != 1 {
		t.Error("SmoothStep endpoints")
	}
	if SmoothStep(0, 1, 0.5) != 0.5 {
		t.Error("SmoothStep midpoint")
	}
}
