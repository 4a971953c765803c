package pincode

// Glyph is what a slot shows for a given state: a rune drawn on a box of the
// background color.
// The zero value is "no glyph".
type Glyph struct {
	Rune rune
	Fg   string
	Bg   string
}

// IsSet returns whether this glyph has been defined.
func (g Glyph) IsSet() bool {
	return g != Glyph{}
}

// Insets describes the padding on the four sides of a slot, in cells.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Offset is a horizontal and vertical displacement, in cells.
type Offset struct {
	X, Y int
}

// Font describes the style in which a revealed symbol is drawn.
type Font struct {
	Bold       bool
	Italic     bool
	Underlined bool
}
