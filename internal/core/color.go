package core

// Color is a paint slot for a screen cell. The platform layer maps each slot
// to a concrete terminal colour through the configured theme.
type Color uint8

// Paint slots for game elements.
const (
	ColorDefault Color = iota
	ColorHead
	ColorBody
	ColorBorder
	ColorHUD
	ColorOverlay
	ColorApple
	ColorBanana
	ColorOrange
	ColorPear
)
