package core

import "testing"

func TestViewportCellMapping(t *testing.T) {
	v := Viewport{FieldW: 320, FieldH: 568, ScreenW: 80, ScreenH: 71}

	tests := []struct {
		name   string
		p      Vec2
		cx, cy int
	}{
		{"origin", V(0, 0), 0, 0},
		{"center", V(160, 284), 40, 35},
		{"near bottom-right", V(319, 567), 79, 70},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.Cell(tc.p)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("Cell(%v) = (%d, %d), expected (%d, %d)", tc.p, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestViewportLogicalRoundTrip(t *testing.T) {
	v := Viewport{FieldW: 320, FieldH: 568, ScreenW: 64, ScreenH: 48}

	// The logical center of any cell must map back to the same cell.
	for _, cell := range [][2]int{{0, 0}, {10, 20}, {63, 47}} {
		p := v.Logical(cell[0], cell[1])
		cx, cy := v.Cell(p)
		if cx != cell[0] || cy != cell[1] {
			t.Errorf("round trip for cell %v gave (%d, %d)", cell, cx, cy)
		}
	}
}

func TestViewportValid(t *testing.T) {
	if (Viewport{}).Valid() {
		t.Error("zero viewport should be invalid")
	}
	if !(Viewport{FieldW: 320, FieldH: 568, ScreenW: 1, ScreenH: 1}).Valid() {
		t.Error("1x1 viewport should be valid")
	}
	if (Viewport{FieldW: 320, FieldH: 568, ScreenW: 0, ScreenH: 24}).Valid() {
		t.Error("zero-width screen should be invalid")
	}
}
