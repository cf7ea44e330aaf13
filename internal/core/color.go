package core

// Color is a foreground color for a screen cell. The platform maps each value
// to an ANSI 256-color style.
type Color uint8

// Palette, with the board element each color is used for.
const (
	ColorDefault      Color = iota
	ColorRed                // Invalid marker
	ColorGreen              // Valid marker
	ColorYellow             // Falling domino
	ColorMagenta            // Pusher
	ColorCyan               // Goal
	ColorWhite              // Cursor
	ColorBrightGreen        // Win overlay
	ColorBrightYellow       // Waypoint, standing domino
	ColorBrightCyan         // Start point
	ColorOrange             // Fallen domino
	ColorGray               // Walls, footer
	ColorDarkGray           // Floor grid, curve
)
