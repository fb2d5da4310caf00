package ui

import "testing"

func TestCellMetrics(t *testing.T) {
	cases := []struct {
		text string
		w, h int
	}{
		{"", 0, 0},
		{"hello", 5, 1},
		{"a\nlonger\nx", 6, 3},
		{"船出", 4, 1},
		{"trailing\n", 8, 1},
	}
	var m CellMetrics
	for _, tc := range cases {
		w, h := m.Measure(tc.text)
		if w != tc.w || h != tc.h {
			t.Errorf("Measure(%q) = %dx%d, want %dx%d", tc.text, w, h, tc.w, tc.h)
		}
	}
}
