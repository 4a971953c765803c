package processors

import (
	"fmt"

	"github.com/ja-he/pinpad/internal/input"
)

// ModalInputProcessor delegates all input to the topmost of its overlays or,
// without overlays, to its base processor.
// The base can be replaced without disturbing the overlays, e.g. when the key
// configuration is reloaded while a popup is open.
// Implements input.ModalInputProcessor.
type ModalInputProcessor struct {
	base     input.SimpleInputProcessor
	overlays []input.SimpleInputProcessor
}

// NewModalInputProcessor returns a pointer to a new ModalInputProcessor with
// the given base processor and no overlays.
func NewModalInputProcessor(base input.SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{base: base}
}

// CapturesInput returns whether the active processor captures input.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.active().CapturesInput()
}

// ProcessInput lets the active processor process the key.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	return p.active().ProcessInput(key)
}

// GetHelp returns the help of the active processor.
func (p *ModalInputProcessor) GetHelp() input.Help {
	return p.active().GetHelp()
}

// ApplyModalOverlay makes the given processor the active one, until popped.
func (p *ModalInputProcessor) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	p.overlays = append(p.overlays, overlay)
	return uint(len(p.overlays) - 1)
}

// PopModalOverlay removes the topmost overlay.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.overlays) == 0 {
		return fmt.Errorf("no overlay to pop")
	}
	p.overlays = p.overlays[:len(p.overlays)-1]
	return nil
}

// PopModalOverlays removes the overlay at the given index and all overlays
// above it. Indices beyond the top are ignored.
func (p *ModalInputProcessor) PopModalOverlays(index uint) {
	if index < uint(len(p.overlays)) {
		p.overlays = p.overlays[:index]
	}
}

// HasOverlays returns whether any overlays are applied.
func (p *ModalInputProcessor) HasOverlays() bool {
	return len(p.overlays) > 0
}

// SetBase replaces the base processor, keeping all overlays.
func (p *ModalInputProcessor) SetBase(base input.SimpleInputProcessor) {
	p.base = base
}

func (p *ModalInputProcessor) active() input.SimpleInputProcessor {
	if len(p.overlays) > 0 {
		return p.overlays[len(p.overlays)-1]
	}
	return p.base
}
