package pincode

// Appearance is what an icon currently shows.
type Appearance struct {
	State IconState
	Glyph Glyph
	// Symbol is the revealed symbol; only meaningful in StateRevealed, where it
	// is drawn on top of Glyph (the empty glyph).
	Symbol rune
	Shadow *Shadow
}

// Icon is a single slot of a Decorator.
// Its state is changed exclusively via Show; every accepted change re-renders
// its appearance.
type Icon struct {
	empty   Glyph
	secure  Glyph
	success Glyph
	failure Glyph

	symbol rune
	shadow *Shadow

	state      IconState
	appearance Appearance
	renders    int
}

// NewIcon constructs an icon in the empty state.
// The success and failure glyphs may be unset, in which case the icon refuses
// to show the respective state.
func NewIcon(empty, secure, success, failure Glyph) *Icon {
	i := &Icon{
		empty:   empty,
		secure:  secure,
		success: success,
		failure: failure,
		state:   StateEmpty,
	}
	i.render()
	return i
}

// Show transitions the icon to the given state.
// Transitions to StateSuccess and StateFailure are ignored if the respective
// glyph is not set.
// Returns whether the transition was accepted.
func (i *Icon) Show(state IconState) bool {
	switch {
	case state == StateSuccess && !i.success.IsSet():
		return false
	case state == StateFailure && !i.failure.IsSet():
		return false
	}
	i.state = state
	i.render()
	return true
}

// State returns the icon's current state.
func (i *Icon) State() IconState { return i.state }

// SetSymbol sets the symbol to be shown in StateRevealed.
func (i *Icon) SetSymbol(r rune) {
	i.symbol = r
	i.render()
}

// Symbol returns the last symbol set on this icon.
func (i *Icon) Symbol() rune { return i.symbol }

// SetShadow sets (or, with nil, removes) the icon's shadow.
func (i *Icon) SetShadow(s *Shadow) {
	i.shadow = s
	i.render()
}

// EmptyGlyph returns the glyph this icon shows when empty.
func (i *Icon) EmptyGlyph() Glyph { return i.empty }

// Appearance returns what the icon currently shows.
func (i *Icon) Appearance() Appearance { return i.appearance }

// Renders returns how often the icon has (re-)rendered its appearance.
func (i *Icon) Renders() int { return i.renders }

func (i *Icon) render() {
	a := Appearance{State: i.state, Shadow: i.shadow}
	switch i.state {
	case StateEmpty:
		a.Glyph = i.empty
	case StateRevealed:
		a.Glyph = i.empty
		a.Symbol = i.symbol
	case StateMasked:
		a.Glyph = i.secure
	case StateSuccess:
		a.Glyph = i.success
	case StateFailure:
		a.Glyph = i.failure
	}
	i.appearance = a
	i.renders++
}
