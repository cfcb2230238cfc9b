package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name         string
		width        int
		height       int
		fieldWidth   int
		resultWidth  int
		resultHeight int
	}{
		{name: "narrow", width: 80, height: 24, fieldWidth: 20, resultWidth: 74, resultHeight: 6},
		{name: "wide", width: 200, height: 40, fieldWidth: 60, resultWidth: 194, resultHeight: 22},
		{name: "tiny", width: 30, height: 10, fieldWidth: 10, resultWidth: 40, resultHeight: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.fieldWidth != tc.fieldWidth {
				t.Fatalf("field width mismatch: got %d want %d", layout.fieldWidth, tc.fieldWidth)
			}
			if layout.resultWidth != tc.resultWidth {
				t.Fatalf("result width mismatch: got %d want %d", layout.resultWidth, tc.resultWidth)
			}
			if layout.resultHeight != tc.resultHeight {
				t.Fatalf("result height mismatch: got %d want %d", layout.resultHeight, tc.resultHeight)
			}
		})
	}
}
