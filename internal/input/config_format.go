package input

import (
	"fmt"

	"github.com/ja-he/pinpad/internal/control/action"
)

// Keyspec is a key sequence specification, e.g. "<c-u>" or "12<bs>".
type Keyspec string

// Actionspec names an action, e.g. "delete-symbol".
type Actionspec string

// InputConfig maps key sequences to the names of the actions they trigger.
type InputConfig map[Keyspec]Actionspec

// InputConfigFromMap converts a plain mapping, as read from a config file.
func InputConfigFromMap(m map[string]string) InputConfig {
	result := make(InputConfig, len(m))
	for k, v := range m {
		result[Keyspec(k)] = Actionspec(v)
	}
	return result
}

// Resolve binds the configured action names to the given actions.
// Mapping a sequence to an unknown action name is an error.
func (c InputConfig) Resolve(actions map[Actionspec]action.Action) (map[Keyspec]action.Action, error) {
	result := make(map[Keyspec]action.Action, len(c))
	for keyspec, actionspec := range c {
		a, ok := actions[actionspec]
		if !ok {
			return nil, fmt.Errorf("unknown action '%s' mapped to '%s'", actionspec, keyspec)
		}
		result[keyspec] = a
	}
	return result, nil
}
