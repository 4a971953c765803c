package pincode

// IconState is the display state of a single slot icon.
type IconState int

const (
	// StateEmpty shows the empty glyph, i.E. nothing has been entered for the
	// slot.
	StateEmpty IconState = iota
	// StateRevealed shows the entered symbol on top of the empty glyph.
	StateRevealed
	// StateMasked shows the slot's secure glyph in place of the symbol.
	StateMasked
	// StateSuccess shows the success glyph.
	StateSuccess
	// StateFailure shows the failure glyph.
	StateFailure
)

// String returns the name of this state, primarily for logging purposes.
func (s IconState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateRevealed:
		return "revealed"
	case StateMasked:
		return "masked"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	}
	return "[unknown]"
}
