package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI codes; the core stays
// terminal-agnostic.
type Color uint8

// Palette used by the starfall renderer.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorRed
	ColorBrightRed
	ColorYellow
	ColorBrightYellow
	ColorCyan
	ColorBrightCyan
	ColorMagenta
	ColorGreen
	ColorOrange
)
