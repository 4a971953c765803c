package panes

import (
	"github.com/ja-he/pinpad/internal/styling"
	"github.com/ja-he/pinpad/internal/ui"
	"github.com/ja-he/pinpad/internal/util"
)

// StatusPane is a status bar that displays the pad's title and the current
// state of the verification, e.g. the number of failed attempts.
type StatusPane struct {
	ui.LeafPane

	title  func() string
	status func() string
	mode   func() string
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	// title on the left
	title := p.title()
	titleWidth := min(len([]rune(title))+2, w/2)
	p.Renderer.DrawBox(x, y, titleWidth, h, bgStyleEmph)
	p.Renderer.DrawText(x+1, y, titleWidth-1, 1, bgStyleEmph.Bolded(), util.TruncateAt(title, titleWidth-2))

	// status after the title
	status := p.status()
	p.Renderer.DrawText(x+titleWidth+1, y, w-titleWidth-1, 1, bgStyle, status)

	// mode string
	modeStr := p.mode()
	p.Renderer.DrawText(x+w-len([]rune(modeStr))-2, y+h-1, len([]rune(modeStr)), 1, bgStyleEmph.DarkenedBG(10).Italicized(), modeStr)
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	title func() string,
	status func() string,
	mode func() string,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		title:  title,
		status: status,
		mode:   mode,
	}
}
