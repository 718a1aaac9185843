package core

// Color is the foreground of a screen cell. The platform maps each value to
// a terminal color.
type Color uint8

// Cell colors used by the desert scene.
const (
	ColorDefault      Color = iota
	ColorRed                // enemies
	ColorGreen              // grass on platform tops
	ColorYellow             // coin counter, notices
	ColorBlue               // player body
	ColorWhite              // flag pole
	ColorBrightRed          // player hat, lost banner
	ColorBrightGreen        // pennant, win banner
	ColorBrightYellow       // coins, score
	ColorBrown              // platform bodies
	// ColorTheme is resolved by the platform to the level's theme color.
	ColorTheme
)
