package core

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI color; games only pick roles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorMagenta // purple snake
	ColorCyan    // dark teal border and title
	ColorWhite
	ColorBrightWhite
	ColorOrange // fish
	ColorGray
)
