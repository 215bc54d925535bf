package diagram

import "strings"

// ColorTag is one of the colors the canvas can draw.
type ColorTag string

const (
	ColorYellow      ColorTag = "yellow"
	ColorBlue        ColorTag = "blue"
	ColorGreen       ColorTag = "green"
	ColorOrange      ColorTag = "orange"
	ColorRed         ColorTag = "red"
	ColorViolet      ColorTag = "violet"
	ColorGrey        ColorTag = "grey"
	ColorBlack       ColorTag = "black"
	ColorWhite       ColorTag = "white"
	ColorLightBlue   ColorTag = "light-blue"
	ColorLightGreen  ColorTag = "light-green"
	ColorLightRed    ColorTag = "light-red"
	ColorLightViolet ColorTag = "light-violet"
)

// Colors is the palette advertised to the completion service.
var Colors = []ColorTag{
	ColorYellow, ColorBlue, ColorGreen, ColorOrange, ColorRed, ColorViolet, ColorGrey, ColorBlack,
	ColorLightBlue, ColorLightGreen, ColorLightRed, ColorLightViolet,
}

var colorAliases = map[string]ColorTag{
	"gray":        ColorGrey,
	"purple":      ColorViolet,
	"pink":        ColorLightRed,
	"cyan":        ColorLightBlue,
	"lightblue":   ColorLightBlue,
	"lightgreen":  ColorLightGreen,
	"lightred":    ColorLightRed,
	"lightviolet": ColorLightViolet,
	"jaune":       ColorYellow,
	"bleu":        ColorBlue,
	"vert":        ColorGreen,
	"rouge":       ColorRed,
	"violet":      ColorViolet,
	"gris":        ColorGrey,
	"noir":        ColorBlack,
	"blanc":       ColorWhite,
}

var branchPalette = []ColorTag{ColorBlue, ColorGreen, ColorOrange, ColorRed, ColorViolet, ColorYellow}

// NormalizeColor maps s onto a known tag, returning def when nothing matches.
func NormalizeColor(s string, def ColorTag) ColorTag {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, " ", "-")
	if key == "" {
		return def
	}
	if key == string(ColorWhite) {
		return ColorWhite
	}
	for _, c := range Colors {
		if key == string(c) {
			return c
		}
	}
	if c, ok := colorAliases[strings.ReplaceAll(key, "-", "")]; ok {
		return c
	}
	return def
}

func NoteColor(s string) ColorTag { return NormalizeColor(s, ColorYellow) }

func ConnectorColor(s string) ColorTag { return NormalizeColor(s, ColorGrey) }

// Palette cycles through the branch colors.
func Palette(i int) ColorTag {
	if i < 0 {
		i = -i
	}
	return branchPalette[i%len(branchPalette)]
}

// Light returns the light variant of c, or c itself when it has none.
func Light(c ColorTag) ColorTag {
	switch c {
	case ColorBlue:
		return ColorLightBlue
	case ColorGreen:
		return ColorLightGreen
	case ColorRed, ColorOrange:
		return ColorLightRed
	case ColorViolet:
		return ColorLightViolet
	}
	return c
}

// Known reports whether s is a palette color without aliasing.
func Known(s string) bool {
	for _, c := range Colors {
		if string(c) == s {
			return true
		}
	}
	return s == string(ColorWhite)
}
