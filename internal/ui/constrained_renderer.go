package ui

import (
	"github.com/ja-he/pinpad/internal/styling"
	"github.com/ja-he/pinpad/internal/util"
)

// CR is a constrained renderer for a TUI.
// It draws with the underlying renderer, clipping every request to its
// constraint (usually the dimensions of the pane it belongs to).
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a renderer drawing with the given one within
// the given constraint.
func NewConstrainedRenderer(
	renderer Renderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the current constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text within the given box, clipped to the
// constraint.
// Single-line text that is cut off at the left loses the cut off runes rather
// than moving right.
func (r *CR) DrawText(x, y, w, h int, styling styling.DrawStyling, text string) {
	clipped := r.clip(x, y, w, h)
	if clipped.Empty() {
		return
	}
	if cut := clipped.X - x; cut > 0 && h == 1 {
		runes := []rune(text)
		text = string(runes[min(cut, len(runes)):])
	}
	r.renderer.DrawText(clipped.X, clipped.Y, clipped.W, clipped.H, styling, text)
}

// DrawBox draws a box of the given dimensions, clipped to the constraint.
func (r *CR) DrawBox(x, y, w, h int, sty styling.DrawStyling) {
	clipped := r.clip(x, y, w, h)
	if clipped.Empty() {
		return
	}
	r.renderer.DrawBox(clipped.X, clipped.Y, clipped.W, clipped.H, sty)
}

func (r *CR) clip(x, y, w, h int) util.Rect {
	return util.NewRect(x, y, w, h).Intersect(util.NewRect(r.constraint()))
}
