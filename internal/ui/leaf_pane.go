package ui

import (
	"fmt"

	"github.com/ja-he/pinpad/internal/input"
	"github.com/ja-he/pinpad/internal/styling"
)

// BasePane is the base data of a UI pane.
// The ID has to be assigned on construction, usually with GeneratePaneID.
type BasePane struct {
	ID             PaneID
	Parent         PaneQuerier
	InputProcessor input.ModalInputProcessor
	Visible        func() bool
}

// Identify returns the panes ID.
func (p *BasePane) Identify() PaneID {
	if p.ID == NonePaneID {
		panic("pane has not been assigned an ID")
	}
	return p.ID
}

// SetParent sets the pane's parent.
func (p *BasePane) SetParent(parent PaneQuerier) { p.Parent = parent }

// IsVisible indicates whether the pane is visible.
// Panes without a visibility condition are always visible.
func (p *BasePane) IsVisible() bool { return p.Visible == nil || p.Visible() }

// LeafPane is a pane without subpanes, which makes the actual draw calls.
// Embedders have to implement Draw.
type LeafPane struct {
	BasePane
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet styling.Stylesheet
}

func (p *LeafPane) Dimensions() (x, y, w, h int) {
	return p.Dims()
}

// Draw panics, as it has to be overridden.
func (p *LeafPane) Draw() {
	panic(fmt.Sprintf("pane %d does not implement Draw", p.Identify()))
}

// Undraw does nothing. Override this, if necessary.
func (p *LeafPane) Undraw() {}

// HasFocus returns whether the pane has focus.
func (p *LeafPane) HasFocus() bool {
	return p.Parent != nil && p.Parent.HasFocus() && p.Parent.Focusses() == p.Identify()
}

// Focusses returns the "none pane", as a leaf does not focus another pane.
func (p *LeafPane) Focusses() PaneID { return NonePaneID }

// CapturesInput returns whether the pane's input processor captures input.
func (p *LeafPane) CapturesInput() bool {
	return p.InputProcessor != nil && p.InputProcessor.CapturesInput()
}

// ProcessInput defers to the pane's input processor, if it has one.
func (p *LeafPane) ProcessInput(key input.Key) bool {
	return p.InputProcessor != nil && p.InputProcessor.ProcessInput(key)
}

// ApplyModalOverlay applies an overlay to the pane's input processor.
func (p *LeafPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.modalProcessor("ApplyModalOverlay").ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from the pane's input processor.
func (p *LeafPane) PopModalOverlay() error {
	return p.modalProcessor("PopModalOverlay").PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *LeafPane) PopModalOverlays(index uint) {
	p.modalProcessor("PopModalOverlays").PopModalOverlays(index)
}

// HasOverlays returns whether the pane's input processor has overlays
// applied.
func (p *LeafPane) HasOverlays() bool {
	return p.InputProcessor != nil && p.InputProcessor.HasOverlays()
}

// GetHelp returns the input help of the pane's input processor.
func (p *LeafPane) GetHelp() input.Help {
	if p.InputProcessor == nil {
		return input.Help{}
	}
	return p.InputProcessor.GetHelp()
}

// FocusPrev does nothing, as a leaf does not focus anything.
func (p *LeafPane) FocusPrev() {}

// FocusNext does nothing, as a leaf does not focus anything.
func (p *LeafPane) FocusNext() {}

// modalProcessor returns the pane's input processor for overlay operations,
// which make no sense on panes that don't process input.
func (p *LeafPane) modalProcessor(operation string) input.ModalInputProcessor {
	if p.InputProcessor == nil {
		panic(fmt.Sprintf("%s on pane %d, which has no input processor", operation, p.Identify()))
	}
	return p.InputProcessor
}
