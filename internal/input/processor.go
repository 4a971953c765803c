package input

// SimpleInputProcessor processes the keys it is configured for and explains
// its configuration.
type SimpleInputProcessor interface {

	// CapturesInput returns whether the processor has to get the next key before
	// any other processor, e.g. because it holds a partially entered sequence or
	// because it is an overlay that swallows everything.
	CapturesInput() bool

	// ProcessInput attempts to process the given key and returns whether it
	// applied, i.E. whether the processor did something with it.
	ProcessInput(key Key) bool

	// GetHelp returns the input help for this processor.
	GetHelp() Help
}

// ModalInputProcessor is a SimpleInputProcessor that can be temporarily
// overlaid by other processors, e.g. while a popup is shown.
// Only the topmost overlay (or the base, without overlays) processes input.
type ModalInputProcessor interface {
	SimpleInputProcessor

	// ApplyModalOverlay puts the given processor on top and returns its index,
	// which PopModalOverlays takes.
	ApplyModalOverlay(SimpleInputProcessor) (index uint)

	// PopModalOverlay removes the topmost overlay.
	PopModalOverlay() error

	// PopModalOverlays removes all overlays down to and including the one at the
	// given index.
	PopModalOverlays(index uint)

	// HasOverlays returns whether any overlays are applied.
	HasOverlays() bool
}
