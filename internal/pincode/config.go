package pincode

import (
	"fmt"
	"time"
)

// DefaultMaskDelay is the delay between revealing a symbol and masking it,
// unless configured otherwise.
const DefaultMaskDelay = 200 * time.Millisecond

// Config is the full configuration of a Decorator.
// The number of secure glyphs determines the number of slots.
type Config struct {
	SecureGlyphs []Glyph
	EmptyGlyph   Glyph
	SuccessGlyph *Glyph
	FailureGlyph *Glyph

	Shadow *Shadow
	Font   Font

	Padding      Insets
	SymbolOffset Offset

	MaskDelay time.Duration

	// KeyboardEnabled determines whether direct keyboard entry is possible,
	// i.E. whether the keyboard can be shown at all.
	KeyboardEnabled bool
}

// DefaultConfig returns a configuration with all defaults but no slots.
func DefaultConfig() Config {
	return Config{
		MaskDelay:       DefaultMaskDelay,
		KeyboardEnabled: true,
	}
}

// SlotCount returns the number of slots this configuration describes.
func (c Config) SlotCount() int { return len(c.SecureGlyphs) }

// Validate checks whether this configuration can be used to set up a
// Decorator.
func (c Config) Validate() error {
	if len(c.SecureGlyphs) == 0 {
		return fmt.Errorf("no secure glyphs configured (need one per slot)")
	}
	if !c.EmptyGlyph.IsSet() {
		return fmt.Errorf("no empty glyph configured")
	}
	if c.MaskDelay < 0 {
		return fmt.Errorf("negative mask delay (%s)", c.MaskDelay)
	}
	return nil
}

func (c Config) successGlyph() Glyph {
	if c.SuccessGlyph == nil {
		return Glyph{}
	}
	return *c.SuccessGlyph
}

func (c Config) failureGlyph() Glyph {
	if c.FailureGlyph == nil {
		return Glyph{}
	}
	return *c.FailureGlyph
}
