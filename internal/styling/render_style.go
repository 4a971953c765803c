package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/pinpad/internal/config"
)

// DrawStyling is what is drawn with: foreground and background color and
// font modifiers.
// All modifications return a modified copy.
type DrawStyling interface {
	AsTcell() tcell.Style

	// DefaultDimmed lightens both colors, e.g. for disabled elements.
	DefaultDimmed() DrawStyling
	// DefaultEmphasized darkens both colors.
	DefaultEmphasized() DrawStyling
	DarkenedBG(percentage int) DrawStyling
	// BlendedBG lays the given color over the background with the given opacity
	// (0 to 1).
	BlendedBG(hex string, opacity float64) DrawStyling

	Italicized() DrawStyling
	Bolded() DrawStyling
	Underlined() DrawStyling
	// WithFont adds the given modifiers; modifiers already set stay set.
	WithFont(bold, italic, underlined bool) DrawStyling

	fmt.Stringer
}

// FallbackStyling is a DrawStyling that holds renderer-independent colors.
type FallbackStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s *FallbackStyling) AsTcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(colorfulColorToTcellColor(s.fg)).
		Background(colorfulColorToTcellColor(s.bg)).
		Bold(s.bold).
		Italic(s.italic).
		Underline(s.underlined)
}

func (s *FallbackStyling) DefaultDimmed() DrawStyling {
	return s.modified(func(r *FallbackStyling) {
		r.fg = lightenColorfulColor(r.fg, 50)
		r.bg = lightenColorfulColor(r.bg, 50)
	})
}

func (s *FallbackStyling) DefaultEmphasized() DrawStyling {
	return s.modified(func(r *FallbackStyling) {
		r.fg = darkenColorfulColor(r.fg, 20)
		r.bg = darkenColorfulColor(r.bg, 20)
	})
}

func (s *FallbackStyling) DarkenedBG(percentage int) DrawStyling {
	return s.modified(func(r *FallbackStyling) { r.bg = darkenColorfulColor(r.bg, percentage) })
}

// BlendedBG returns a copy with the given color laid over the background.
// The foreground takes on the resulting background color, so that only the
// blended box remains visible (this is used to draw shadows).
func (s *FallbackStyling) BlendedBG(hex string, opacity float64) DrawStyling {
	return s.modified(func(r *FallbackStyling) {
		r.bg = blendColorfulColor(r.bg, colorfulColorFromHexString(hex), opacity)
		r.fg = r.bg
	})
}

func (s *FallbackStyling) Italicized() DrawStyling { return s.WithFont(false, true, false) }
func (s *FallbackStyling) Bolded() DrawStyling     { return s.WithFont(true, false, false) }
func (s *FallbackStyling) Underlined() DrawStyling { return s.WithFont(false, false, true) }

func (s *FallbackStyling) WithFont(bold, italic, underlined bool) DrawStyling {
	return s.modified(func(r *FallbackStyling) {
		r.bold = r.bold || bold
		r.italic = r.italic || italic
		r.underlined = r.underlined || underlined
	})
}

// String returns a representation of this styling for logging.
func (s *FallbackStyling) String() string {
	return fmt.Sprintf("[fg:'%s' bg:'%s' (b:%t i:%t u:%t)]", s.fg.Hex(), s.bg.Hex(), s.bold, s.italic, s.underlined)
}

func (s *FallbackStyling) modified(modify func(*FallbackStyling)) *FallbackStyling {
	result := *s
	modify(&result)
	return &result
}

// StyleFromHex constructs and returns a styling from two colors in
// hexadecimal notation with a leading '#', e.g. '#ff0000', '#fff' or
// '#BEEF42'.
// It panics on invalid colors, so colors from configuration have to be
// checked with ValidateHex first.
func StyleFromHex(fg, bg string) *FallbackStyling {
	return StyleFromColors(colorfulColorFromHexString(fg), colorfulColorFromHexString(bg))
}

// StyleFromColors constructs a style by the given colors.
func StyleFromColors(fg, bg colorful.Color) *FallbackStyling {
	return &FallbackStyling{fg: fg, bg: bg}
}

// StyleFromConfig constructs a style from a styling as defined in a config
// file.
func StyleFromConfig(c config.Styling) *FallbackStyling {
	s := StyleFromHex(c.Fg, c.Bg)
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s
}
