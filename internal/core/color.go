package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorCyan
	ColorYellow
	ColorWhite
	ColorGray
	ColorBrightCyan
	ColorBrightWhite
	ColorBrightRed
)
