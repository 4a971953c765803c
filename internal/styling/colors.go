package styling

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func colorfulColorToTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.RGB255()

	rgb := ((uint32(r)) << 16) | (uint32(g) << 8) | (uint32(b))

	return tcell.NewHexColor(int32(rgb))
}

// shiftLightness moves the color's lightness the given percentage of the way
// towards white (positive percentages) or black (negative percentages).
func shiftLightness(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	ltn = min(max(ltn, 0), 1)

	scalar := float64(percentage) / 100.0
	if scalar >= 0 {
		ltn += (1.0 - ltn) * scalar
	} else {
		ltn += ltn * scalar
	}

	return colorful.Hsl(hue, sat, min(max(ltn, 0), 1))
}

func lightenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	return shiftLightness(color, percentage)
}

func darkenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	return shiftLightness(color, -percentage)
}

// blendColorfulColor lays color over base with the given opacity (0 to 1).
func blendColorfulColor(base, color colorful.Color, opacity float64) colorful.Color {
	if opacity <= 0 {
		return base
	}
	if opacity >= 1 {
		return color
	}
	return base.BlendRgb(color, opacity).Clamped()
}

func colorfulColorFromHexString(hex string) colorful.Color {
	color, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("unable to create colorful.Color from '%s' due to error: '%s'", hex, err.Error()))
	}
	return color
}

// ValidateHex returns an error if the given string is not a color in
// hexadecimal notation as expected by StyleFromHex.
func ValidateHex(hex string) error {
	// colorful.Hex ignores trailing characters
	digits, ok := strings.CutPrefix(hex, "#")
	if !ok || (len(digits) != 3 && len(digits) != 6) || strings.Trim(digits, "0123456789abcdefABCDEF") != "" {
		return fmt.Errorf("invalid color '%s' (expected '#rgb' or '#rrggbb')", hex)
	}
	_, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("invalid color '%s' (%w)", hex, err)
	}
	return nil
}
