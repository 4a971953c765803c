package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/pinpad/internal/input"
	"github.com/ja-he/pinpad/internal/ui"
)

// RootPane is the root of the pane tree and runs the render cycle.
//
// Its subpanes are drawn in two layers: the base layer (e.g. the pin pane and
// the keypad) and popups above it (e.g. help). The topmost visible popup has
// the focus; without popups the first base pane has it. An overlay (e.g.
// performance metrics) is drawn above everything without ever taking focus.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler
	dimensions     func() (x, y, w, h int)

	base    []ui.Pane
	popups  []ui.Pane
	overlay ui.Pane

	inputProcessor input.ModalInputProcessor

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// IsVisible returns true, the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw redraws the whole screen.
// Invisible panes are undrawn first, so that they can withdraw cursor
// requests before visible panes make theirs.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	panes := p.inDrawOrder()
	for _, pane := range panes {
		if !pane.IsVisible() {
			pane.Undraw()
		}
	}
	for _, pane := range panes {
		if pane.IsVisible() {
			p.log.Trace().Uint("pane", uint(pane.Identify())).Msg("drawing")
			pane.Draw()
		}
	}

	p.cursorWrangler.Enact()
	p.renderer.Show()
}

// Undraw undraws all subpanes.
func (p *RootPane) Undraw() {
	p.renderer.Clear()
	for _, pane := range p.inDrawOrder() {
		pane.Undraw()
	}
	p.cursorWrangler.Enact()
	p.renderer.Show()
}

// CapturesInput returns whether the root's own processor or the focussed pane
// captures input.
func (p *RootPane) CapturesInput() bool {
	return p.inputProcessor.CapturesInput() || p.focussedPane().CapturesInput()
}

// ProcessInput gives the key to whoever captures input, otherwise first to
// the focussed pane and then to the root's own processor.
func (p *RootPane) ProcessInput(key input.Key) bool {
	switch {
	case p.inputProcessor.CapturesInput():
		return p.inputProcessor.ProcessInput(key)
	case p.focussedPane().CapturesInput():
		return p.focussedPane().ProcessInput(key)
	default:
		return p.focussedPane().ProcessInput(key) || p.inputProcessor.ProcessInput(key)
	}
}

// Identify returns the panes ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// HasFocus returns true, the root pane always has focus.
func (p *RootPane) HasFocus() bool { return true }

// Focusses returns the ID of the currently focussed subpane.
func (p *RootPane) Focusses() ui.PaneID {
	return p.focussedPane().Identify()
}

// PopupShown returns whether any popup is visible.
func (p *RootPane) PopupShown() bool {
	for _, popup := range p.popups {
		if popup.IsVisible() {
			return true
		}
	}
	return false
}

// FocusPrev does nothing, focus follows the popups.
func (p *RootPane) FocusPrev() {}

// FocusNext does nothing, focus follows the popups.
func (p *RootPane) FocusNext() {}

func (p *RootPane) focussedPane() ui.Pane {
	for i := len(p.popups) - 1; i >= 0; i-- {
		if p.popups[i].IsVisible() {
			return p.popups[i]
		}
	}
	return p.base[0]
}

func (p *RootPane) inDrawOrder() []ui.Pane {
	result := make([]ui.Pane, 0, len(p.base)+len(p.popups)+1)
	result = append(result, p.base...)
	result = append(result, p.popups...)
	if p.overlay != nil {
		result = append(result, p.overlay)
	}
	return result
}

// SetParent panics, the root pane has no parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}
func (p *RootPane) PopModalOverlay() error      { return p.inputProcessor.PopModalOverlay() }
func (p *RootPane) PopModalOverlays(index uint) { p.inputProcessor.PopModalOverlays(index) }
func (p *RootPane) HasOverlays() bool           { return p.inputProcessor.HasOverlays() }

// GetHelp returns the help of the root's own processor, extended (and
// overridden) by the focussed pane's help.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}
	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}
	return result
}

// NewRootPane constructs and returns a new RootPane.
// There has to be at least one base pane, the first one is focussed when no
// popup is shown. The overlay may be nil.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	base []ui.Pane,
	popups []ui.Pane,
	overlay ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *RootPane {
	if len(base) == 0 {
		panic("root pane without base panes")
	}
	rootPane := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		base:           base,
		popups:         popups,
		overlay:        overlay,
		inputProcessor: inputProcessor,
		log:            log.With().Str("component", "root-pane").Logger(),
	}

	for _, pane := range rootPane.inDrawOrder() {
		pane.SetParent(rootPane)
	}
	rootPane.log.Trace().Uint("id", uint(rootPane.ID)).Msg("created root pane")

	return rootPane
}
