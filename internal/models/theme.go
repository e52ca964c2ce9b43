package models

import (
	"image/color"

	"qr-contact-card/internal/apperrors"
)

// Theme represents a named color scheme for the generated card
type Theme int

const (
	ThemeNavy Theme = iota
	ThemeForest
	ThemeMaroon
	ThemeCharcoal
	ThemePurple
)

// Palette holds the immutable color pair of a theme. Primary colors the
// dark QR modules and fills the banner; Accent draws the banner headline.
type Palette struct {
	Primary color.NRGBA
	Accent  color.NRGBA
}

var palettes = map[Theme]Palette{
	ThemeNavy:     {Primary: hexColor(0x0D2B55), Accent: hexColor(0xF5C842)},
	ThemeForest:   {Primary: hexColor(0x1A4731), Accent: hexColor(0x4ADE80)},
	ThemeMaroon:   {Primary: hexColor(0x6B0F1A), Accent: hexColor(0xFCA5A5)},
	ThemeCharcoal: {Primary: hexColor(0x111111), Accent: hexColor(0xF59E0B)},
	ThemePurple:   {Primary: hexColor(0x3B0764), Accent: hexColor(0xC084FC)},
}

// ParseTheme resolves a theme name to a Theme. Unknown names fail with a
// ValidationError instead of falling back to a default.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "navy":
		return ThemeNavy, nil
	case "forest":
		return ThemeForest, nil
	case "maroon":
		return ThemeMaroon, nil
	case "charcoal":
		return ThemeCharcoal, nil
	case "purple":
		return ThemePurple, nil
	default:
		return ThemeNavy, &apperrors.ValidationError{
			Field:   "color",
			Message: "unknown theme: " + name,
		}
	}
}

// String returns the theme name
func (t Theme) String() string {
	switch t {
	case ThemeNavy:
		return "navy"
	case ThemeForest:
		return "forest"
	case ThemeMaroon:
		return "maroon"
	case ThemeCharcoal:
		return "charcoal"
	case ThemePurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Palette returns the color pair of the theme
func (t Theme) Palette() Palette {
	p, ok := palettes[t]
	if !ok {
		return palettes[ThemeNavy]
	}
	return p
}

// hexColor converts a 0xRRGGBB value to an opaque NRGBA color
func hexColor(rgb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xFF,
	}
}
