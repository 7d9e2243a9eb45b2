package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the terminal platform and onto
// RGB in the canvas platform.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
)
