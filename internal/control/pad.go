package control

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ja-he/pinpad/internal/config"
	"github.com/ja-he/pinpad/internal/pincode"
	"github.com/ja-he/pinpad/internal/styling"
)

// DefaultFeedbackDuration is how long a verification result is shown, unless
// configured otherwise.
const DefaultFeedbackDuration = 1 * time.Second

// Verification describes how entered results of a pad are verified.
type Verification struct {
	Secret           string
	FeedbackDuration time.Duration
	// MaxAttempts is the number of failed attempts after which the pad locks,
	// 0 meaning unlimited attempts.
	MaxAttempts int
}

// PadFromConfig converts a pad as defined in a config file to a decorator
// configuration.
// Unset values take on their defaults; the result is validated.
func PadFromConfig(pad config.Pad) (pincode.Config, error) {
	cfg := pincode.DefaultConfig()

	for i, g := range pad.SecureGlyphs {
		glyph, err := glyphFromConfig(g)
		if err != nil {
			return cfg, fmt.Errorf("invalid secure glyph %d (%w)", i, err)
		}
		cfg.SecureGlyphs = append(cfg.SecureGlyphs, glyph)
	}

	empty, err := glyphFromConfig(pad.EmptyGlyph)
	if err != nil {
		return cfg, fmt.Errorf("invalid empty glyph (%w)", err)
	}
	cfg.EmptyGlyph = empty

	if pad.SuccessGlyph != nil {
		success, err := glyphFromConfig(*pad.SuccessGlyph)
		if err != nil {
			return cfg, fmt.Errorf("invalid success glyph (%w)", err)
		}
		cfg.SuccessGlyph = &success
	}
	if pad.FailureGlyph != nil {
		failure, err := glyphFromConfig(*pad.FailureGlyph)
		if err != nil {
			return cfg, fmt.Errorf("invalid failure glyph (%w)", err)
		}
		cfg.FailureGlyph = &failure
	}

	if pad.Shadow != nil {
		shadow, err := shadowFromConfig(*pad.Shadow)
		if err != nil {
			return cfg, fmt.Errorf("invalid shadow (%w)", err)
		}
		cfg.Shadow = &shadow
	}

	if pad.Font != nil {
		cfg.Font = pincode.Font{
			Bold:       pad.Font.Bold,
			Italic:     pad.Font.Italic,
			Underlined: pad.Font.Underlined,
		}
	}

	cfg.Padding = pincode.Insets{
		Top:    pad.Padding.Top,
		Left:   pad.Padding.Left,
		Bottom: pad.Padding.Bottom,
		Right:  pad.Padding.Right,
	}
	cfg.SymbolOffset = pincode.Offset{X: pad.SymbolOffset.X, Y: pad.SymbolOffset.Y}

	if pad.MaskDelay != "" {
		cfg.MaskDelay, err = time.ParseDuration(pad.MaskDelay)
		if err != nil {
			return cfg, fmt.Errorf("invalid mask delay (%w)", err)
		}
	}

	if pad.KeyboardEnabled != nil {
		cfg.KeyboardEnabled = *pad.KeyboardEnabled
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid pad '%s' (%w)", pad.Name, err)
	}
	return cfg, nil
}

// VerificationFromConfig extracts how results of a pad as defined in a config
// file are verified.
func VerificationFromConfig(pad config.Pad) (Verification, error) {
	v := Verification{
		Secret:           pad.Secret,
		FeedbackDuration: DefaultFeedbackDuration,
		MaxAttempts:      pad.MaxAttempts,
	}
	if pad.FeedbackDuration != "" {
		d, err := time.ParseDuration(pad.FeedbackDuration)
		if err != nil {
			return v, fmt.Errorf("invalid feedback duration (%w)", err)
		}
		v.FeedbackDuration = d
	}
	if v.FeedbackDuration < 0 {
		return v, fmt.Errorf("negative feedback duration (%s)", v.FeedbackDuration)
	}
	if v.MaxAttempts < 0 {
		return v, fmt.Errorf("negative max attempts (%d)", v.MaxAttempts)
	}
	return v, nil
}

func glyphFromConfig(g config.Glyph) (pincode.Glyph, error) {
	if utf8.RuneCountInString(g.Rune) != 1 {
		return pincode.Glyph{}, fmt.Errorf("rune '%s' is not exactly one character", g.Rune)
	}
	if err := styling.ValidateHex(g.Fg); err != nil {
		return pincode.Glyph{}, fmt.Errorf("invalid foreground color (%w)", err)
	}
	if err := styling.ValidateHex(g.Bg); err != nil {
		return pincode.Glyph{}, fmt.Errorf("invalid background color (%w)", err)
	}
	r, _ := utf8.DecodeRuneInString(g.Rune)
	return pincode.Glyph{Rune: r, Fg: g.Fg, Bg: g.Bg}, nil
}

func shadowFromConfig(s config.Shadow) (pincode.Shadow, error) {
	opts := []pincode.ShadowOption{}
	if s.Color != "" {
		if err := styling.ValidateHex(s.Color); err != nil {
			return pincode.Shadow{}, fmt.Errorf("invalid color (%w)", err)
		}
		opts = append(opts, pincode.WithShadowColor(s.Color))
	}
	if s.Opacity != nil {
		opts = append(opts, pincode.WithShadowOpacity(*s.Opacity))
	}
	if s.Offset != nil {
		opts = append(opts, pincode.WithShadowOffset(s.Offset.X, s.Offset.Y))
	}
	if s.Radius != nil {
		opts = append(opts, pincode.WithShadowRadius(*s.Radius))
	}
	if s.Scale != nil {
		opts = append(opts, pincode.WithShadowScale(*s.Scale))
	}
	return pincode.NewShadow(opts...), nil
}
