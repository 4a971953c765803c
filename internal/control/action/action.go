// Package action provides the actions that input can be mapped to.
package action

// Action is something that can be done in response to input and that can
// explain itself, e.g. for a help display.
type Action interface {
	Do()
	Explain() string
}
