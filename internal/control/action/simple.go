package action

// Simple implements the Action interface.
// It models a simple action as a func() which is called on Do.
type Simple struct {
	action  func()
	explain func() string
}

// Do performs this simple action.
func (a *Simple) Do() {
	a.action()
}

// Explain returns the explanation for this simple action's Do member.
func (a *Simple) Explain() string {
	return a.explain()
}

// NewSimple returns a pointer to a new simple action, which stores the given
// action function and the given explainer to use when prompted with Do or
// Explain respectively.
func NewSimple(explainer func() string, action func()) *Simple {
	return &Simple{
		action:  action,
		explain: explainer,
	}
}

// Guarded is an action that is only performed while its condition holds.
// This allows, e.g., ignoring pad input while a result is being verified.
type Guarded struct {
	Simple
	condition func() bool
}

// Do performs the action, if the condition holds.
func (a *Guarded) Do() {
	if a.condition() {
		a.action()
	}
}

// NewGuarded returns a pointer to a new guarded action.
func NewGuarded(explainer func() string, condition func() bool, action func()) *Guarded {
	return &Guarded{
		Simple:    Simple{action: action, explain: explainer},
		condition: condition,
	}
}
