package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of grid rendering.
// The controller itself never reads these; only render sinks do.
type Theme struct {
	HighlightColor       sdl.Color // Focused cell background
	TextColor            sdl.Color // Default label color
	HighlightedTextColor sdl.Color // Label color on the focused cell
	HintColor            sdl.Color // Footer help text
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
}

var currentTheme = Theme{
	HighlightColor:       HexToColor(0xFFFFFF),
	TextColor:            HexToColor(0xFFFFFF),
	HighlightedTextColor: HexToColor(0x000000),
	HintColor:            HexToColor(0xB4B4B4),
	BackgroundColor:      HexToColor(0x000000),
}

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
