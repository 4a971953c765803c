package panes

import (
	"github.com/ja-he/pinpad/internal/styling"
	"github.com/ja-he/pinpad/internal/ui"
	"github.com/ja-he/pinpad/internal/util"
)

// KeypadButtonKind is the kind of a keypad button, i.E. what pressing it does.
type KeypadButtonKind int

const (
	_ KeypadButtonKind = iota
	// KeypadButtonSymbol enters its symbol.
	KeypadButtonSymbol
	// KeypadButtonDelete deletes the most recently entered symbol.
	KeypadButtonDelete
	// KeypadButtonClear clears all entered symbols.
	KeypadButtonClear
)

// KeypadButton is a single button on the keypad.
type KeypadButton struct {
	Label  string
	Symbol string
	Kind   KeypadButtonKind
}

// DefaultKeypadLayout is the layout of a phone-style digit keypad.
var DefaultKeypadLayout = [][]KeypadButton{
	{digitButton("1"), digitButton("2"), digitButton("3")},
	{digitButton("4"), digitButton("5"), digitButton("6")},
	{digitButton("7"), digitButton("8"), digitButton("9")},
	{
		{Label: "⌫", Kind: KeypadButtonDelete},
		digitButton("0"),
		{Label: "C", Kind: KeypadButtonClear},
	},
}

func digitButton(d string) KeypadButton {
	return KeypadButton{Label: d, Symbol: d, Kind: KeypadButtonSymbol}
}

// KeypadPane is an on-screen keypad that can be used with the mouse.
type KeypadPane struct {
	ui.LeafPane

	layout  [][]KeypadButton
	onPress func(KeypadButton)
	enabled func() bool
	hovered func() (x, y int, ok bool)
}

// Draw draws the keypad's buttons.
// Buttons are dimmed while the keypad is not enabled, otherwise the button
// under the mouse is emphasized.
func (p *KeypadPane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Keypad)

	style := p.Stylesheet.KeypadButton
	if !p.enabled() {
		style = style.DefaultDimmed()
	}
	hx, hy, hovering := p.hovered()
	p.forEachButton(func(box util.Rect, button KeypadButton) {
		buttonStyle := style
		if hovering && p.enabled() && box.Contains(hx, hy) {
			buttonStyle = style.DefaultEmphasized().Bolded()
		}
		p.Renderer.DrawBox(box.X, box.Y, box.W, box.H, buttonStyle)
		cx, cy := box.Center()
		p.Renderer.DrawText(cx, cy, box.W-(cx-box.X), 1, buttonStyle, button.Label)
	})
}

// ButtonAt returns the button at the given position, if any.
func (p *KeypadPane) ButtonAt(x, y int) (KeypadButton, bool) {
	var result KeypadButton
	found := false
	p.forEachButton(func(box util.Rect, button KeypadButton) {
		if box.Contains(x, y) {
			result, found = button, true
		}
	})
	return result, found
}

// Press presses the button at the given position.
// Returns whether there was an (enabled) button to press.
func (p *KeypadPane) Press(x, y int) bool {
	if !p.IsVisible() || !p.enabled() {
		return false
	}
	button, ok := p.ButtonAt(x, y)
	if !ok {
		return false
	}
	p.onPress(button)
	return true
}

func (p *KeypadPane) forEachButton(f func(util.Rect, KeypadButton)) {
	const gap = 1
	rows := util.NewRect(p.Dimensions()).SplitVertically(len(p.layout))
	for r, row := range p.layout {
		cells := rows[r].SplitHorizontally(len(row))
		for c, button := range row {
			box := cells[c]
			if box.W > 2*gap {
				box = box.Inset(0, 0, 0, gap)
			}
			if box.H > gap {
				box = box.Inset(0, 0, gap, 0)
			}
			f(box, button)
		}
	}
}

// NewKeypadPane constructs and returns a new KeypadPane.
// hovered returns the mouse position, if the mouse is in use.
func NewKeypadPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	layout [][]KeypadButton,
	enabled func() bool,
	hovered func() (x, y int, ok bool),
	onPress func(KeypadButton),
) *KeypadPane {
	return &KeypadPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		layout:  layout,
		onPress: onPress,
		enabled: enabled,
		hovered: hovered,
	}
}
