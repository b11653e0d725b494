package utils

import "testing"

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   float64
		want int16
	}{
		{"zero", 0.0, 0},
		{"positive full scale", 1.0, 32767},
		{"negative full scale", -1.0, -32767},
		{"half scale", 0.5, 16384},
		{"clamps above unity", 1.5, 32767},
		{"clamps below negative unity", -1.5, -32767},
		{"marginal overshoot after normalization", 1.0000001, 32767},
		{"small value rounds", 0.00001, 0},
	}

	for _, tc := range cases {
		if got := Float64ToInt16(tc.in); got != tc.want {
			t.Errorf("%s: Float64ToInt16(%v) = %d, want %d", tc.name, tc.in, got, tc.want)
		}
	}
}
