package processors

import (
	"fmt"

	"github.com/ja-he/pinpad/internal/control/action"
	"github.com/ja-he/pinpad/internal/input"
)

// TextInputProcessor is a SimpleInputProcessor specifically for text input.
// It can have a number of defined mappings for non-runes (e.g. BACKSPACE for a
// callback to remove the last entered symbol).
// Any runes it is asked to process will be given to its callback function for
// runes, which could, e.g., enter the given rune into a pad; the callback
// reports whether it accepted the rune.
type TextInputProcessor struct {
	mappings map[input.Key]action.Action

	runeCallback func(r rune) bool

	capturing bool
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if key.IsRune() {
		return p.runeCallback(key.Ch)
	}

	action, mappingExists := p.mappings[key]
	if !mappingExists {
		return false
	}
	action.Do()
	return true
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
// A text processor captures input unless constructed as a passthrough
// processor, in which case keys it has no use for can reach other processors.
func (p *TextInputProcessor) CapturesInput() bool {
	return p.capturing
}

// GetHelp returns the input help map for this processor.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		result[input.ToConfigIdentifierString(k)] = a.Explain()
	}
	return result
}

// NewTextInputProcessor returns a pointer to a new TextInputProcessor, which
// captures input.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune) bool,
) (*TextInputProcessor, error) {
	keyMappings := map[input.Key]action.Action{}
	for keyspec, action := range mappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys (%s)", keyspec, err.Error())
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for text processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		keyMappings[keys[0]] = action
	}
	return &TextInputProcessor{
		mappings:     keyMappings,
		runeCallback: runeCallback,
		capturing:    true,
	}, nil
}

// NewPassthroughTextInputProcessor returns a pointer to a new
// TextInputProcessor, which does not capture input.
func NewPassthroughTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune) bool,
) (*TextInputProcessor, error) {
	p, err := NewTextInputProcessor(mappings, runeCallback)
	if err != nil {
		return nil, err
	}
	p.capturing = false
	return p, nil
}
