package core

// Viewport maps the fixed logical playfield onto a terminal cell grid.
// The simulation works exclusively in logical units; only rendering and
// pointer translation cross this boundary.
type Viewport struct {
	FieldW, FieldH   float64 // Logical playfield dimensions
	ScreenW, ScreenH int     // Terminal dimensions in cells
}

// Valid reports whether the viewport can map anything at all.
// A zero-size screen means the drawing surface is not attached yet;
// callers should skip the frame rather than fail.
func (v Viewport) Valid() bool {
	return v.FieldW > 0 && v.FieldH > 0 && v.ScreenW > 0 && v.ScreenH > 0
}

// Cell converts a logical position to a cell coordinate.
// Positions outside the field map to out-of-range cells, which the
// Screen buffer silently clips.
func (v Viewport) Cell(p Vec2) (x, y int) {
	x = int(p.X * float64(v.ScreenW) / v.FieldW)
	y = int(p.Y * float64(v.ScreenH) / v.FieldH)
	return x, y
}

// Logical converts a cell coordinate to the logical position of the
// cell's center. Used to translate mouse events into pointer positions.
func (v Viewport) Logical(x, y int) Vec2 {
	return Vec2{
		X: (float64(x) + 0.5) * v.FieldW / float64(v.ScreenW),
		Y: (float64(y) + 0.5) * v.FieldH / float64(v.ScreenH),
	}
}
