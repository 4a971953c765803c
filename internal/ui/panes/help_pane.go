package panes

import (
	"github.com/ja-he/pinpad/internal/input"
	"github.com/ja-he/pinpad/internal/styling"
	"github.com/ja-he/pinpad/internal/ui"
	"github.com/ja-he/pinpad/internal/util"
)

// A HelpPane is a pane that displays a help popup.
// For example, it could display a list of key mappings and their actions.
type HelpPane struct {
	ui.LeafPane

	Content input.Help
}

// Draw draws the help popup, one line per action with all the sequences
// mapped to it.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const maxKeysWidth = 20
	const pad = 2
	keysOffset := x + border
	explanationOffset := keysOffset + maxKeysWidth + pad
	explanationWidth := w - (explanationOffset - x) - border

	for i, entry := range p.Content.Entries() {
		if i >= h-2*border {
			break
		}
		keys := util.TruncateAt(entry.Keys(), maxKeysWidth)
		keysWidth := len([]rune(keys))
		p.Renderer.DrawText(keysOffset+maxKeysWidth-keysWidth, y+border+i, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), keys)
		p.Renderer.DrawText(explanationOffset, y+border+i, explanationWidth, 1, p.Stylesheet.Help.Italicized(), util.TruncateAt(entry.Explanation, explanationWidth))
	}
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
) *HelpPane {
	p := &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
	}
	p.InputProcessor = inputProcessor
	return p
}
