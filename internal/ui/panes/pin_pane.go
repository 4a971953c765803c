package panes

import (
	"fmt"

	"github.com/ja-he/pinpad/internal/input"
	"github.com/ja-he/pinpad/internal/pincode"
	"github.com/ja-he/pinpad/internal/styling"
	"github.com/ja-he/pinpad/internal/ui"
	"github.com/ja-he/pinpad/internal/util"
)

// PinView is what a PinPane needs to know of the decorator it shows.
type PinView interface {
	Appearances() []pincode.Appearance
	Config() pincode.Config
	CursorIndex() int
	KeyboardVisible() bool
}

// PinPane shows the slots of a PIN entry decorator.
//
// Its box is split into equally wide slots, each inset by the configured
// padding, and each drawing its shadow and then its glyph.
type PinPane struct {
	ui.LeafPane

	view           PinView
	cursorWrangler ui.CursorLocationRequestHandler
}

// Draw draws the slots.
// The layout is recomputed from the current dimensions and configuration on
// every draw.
func (p *PinPane) Draw() {
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Pad)

	cfg := p.view.Config()
	slots := p.SlotBoxes()
	appearances := p.view.Appearances()
	if len(appearances) > len(slots) {
		appearances = appearances[:len(slots)]
	}

	// all shadows go below all slots
	for i, a := range appearances {
		if a.Shadow != nil && slots[i].W > 0 && slots[i].H > 0 {
			shadow := ShadowBox(slots[i], *a.Shadow)
			p.Renderer.DrawBox(shadow.X, shadow.Y, shadow.W, shadow.H, p.Stylesheet.Pad.BlendedBG(a.Shadow.Color, a.Shadow.Opacity))
		}
	}
	for i, a := range appearances {
		p.drawSlot(slots[i], a, cfg)
	}

	next := p.view.CursorIndex() + 1
	if p.view.KeyboardVisible() && p.HasFocus() && next < len(slots) {
		cx, cy := slots[next].Center()
		p.cursorWrangler.Put(ui.CursorLocation{X: cx, Y: cy}, p.requesterID())
	} else {
		p.cursorWrangler.Delete(p.requesterID())
	}
}

// Undraw removes the pane's cursor request.
func (p *PinPane) Undraw() {
	p.cursorWrangler.Delete(p.requesterID())
}

// SlotBoxes returns the boxes of the slots' glyphs, i.E. with the padding
// already applied.
func (p *PinPane) SlotBoxes() []util.Rect {
	cfg := p.view.Config()
	n := cfg.SlotCount()
	if n == 0 {
		return nil
	}
	slots := util.NewRect(p.Dimensions()).SplitHorizontally(n)
	for i := range slots {
		slots[i] = slots[i].Inset(cfg.Padding.Top, cfg.Padding.Left, cfg.Padding.Bottom, cfg.Padding.Right)
	}
	return slots
}

func (p *PinPane) drawSlot(box util.Rect, a pincode.Appearance, cfg pincode.Config) {
	if box.W <= 0 || box.H <= 0 {
		return
	}

	style := styling.DrawStyling(styling.StyleFromHex(a.Glyph.Fg, a.Glyph.Bg))
	p.Renderer.DrawBox(box.X, box.Y, box.W, box.H, style)

	cx, cy := box.Center()
	switch a.State {
	case pincode.StateRevealed:
		style = style.WithFont(cfg.Font.Bold, cfg.Font.Italic, cfg.Font.Underlined)
		sx, sy := cx+cfg.SymbolOffset.X, cy+cfg.SymbolOffset.Y
		if box.Contains(sx, sy) {
			p.Renderer.DrawText(sx, sy, 1, 1, style, string(a.Symbol))
		}
	default:
		if a.Glyph.Rune != 0 {
			p.Renderer.DrawText(cx, cy, 1, 1, style, string(a.Glyph.Rune))
		}
	}
}

func (p *PinPane) requesterID() string {
	return fmt.Sprintf("pin-pane-%d", p.Identify())
}

// ShadowBox returns the box of the shadow of a slot with the given box: the
// slot's box, displaced by the shadow's (effective) offset and grown by its
// radius on all sides.
// Scaled shadows also grow twice as wide horizontally.
func ShadowBox(box util.Rect, shadow pincode.Shadow) util.Rect {
	offset := shadow.EffectiveOffset()
	rx, ry := shadow.Radius, shadow.Radius
	if shadow.Scale {
		rx *= 2
	}
	return util.Rect{
		X: box.X + offset.X - rx,
		Y: box.Y + offset.Y - ry,
		W: box.W + 2*rx,
		H: box.H + 2*ry,
	}
}

// NewPinPane constructs and returns a new PinPane.
func NewPinPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view PinView,
	cursorWrangler ui.CursorLocationRequestHandler,
	inputProcessor input.ModalInputProcessor,
) *PinPane {
	p := &PinPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		view:           view,
		cursorWrangler: cursorWrangler,
	}
	return p
}
