package ui

import "testing"

func TestProgressBar(t *testing.T) {
	cases := []struct {
		value, total, width int
		want                string
	}{
		{0, 50, 10, "[----------]"},
		{25, 50, 10, "[#####-----]"},
		{80, 50, 10, "[##########]"},
		{-5, 0, 1, "[---]"},
	}
	for _, tc := range cases {
		if got := ProgressBar(tc.value, tc.total, tc.width); got != tc.want {
			t.Fatalf("ProgressBar(%d,%d,%d)=%q, want %q", tc.value, tc.total, tc.width, got, tc.want)
		}
	}
}
