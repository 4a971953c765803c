// Package ui defines the pane tree the TUI is made of and what panes draw
// with.
package ui

import (
	"fmt"

	"github.com/ja-he/pinpad/internal/input"
	"github.com/ja-he/pinpad/internal/styling"
)

// Pane is a part of the UI.
// It draws itself within its dimensions and processes input, possibly by
// delegating it to the subpane it focusses.
//
// Panes form a tree: every pane but the root has a parent (see SetParent),
// which it asks whether it has focus.
type Pane interface {
	Draw()
	// Undraw is called instead of Draw while the pane is invisible, e.g. to
	// withdraw a cursor request.
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)

	input.ModalInputProcessor

	PaneQuerier

	SetParent(PaneQuerier)

	FocusNext()
	FocusPrev()
}

// PaneQuerier is the part of a pane its children may access.
type PaneQuerier interface {
	HasFocus() bool
	Focusses() PaneID
	IsVisible() bool
	Identify() PaneID
}

// PaneID identifies a pane.
type PaneID uint

// NonePaneID stands for "no pane" and is never generated.
const NonePaneID PaneID = 0

var lastPaneID = NonePaneID

// GeneratePaneID returns a new pane ID. It is not safe for concurrent use,
// panes are constructed on a single goroutine.
func GeneratePaneID() PaneID {
	lastPaneID++
	return lastPaneID
}

// Renderer is what panes draw with.
// Coordinates are cells, with the origin in the top left.
type Renderer interface {
	// DrawBox fills the box with the style's background.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// DrawText draws the text into the box, continuing on the next line when
	// a line is full and stopping when the box is.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that does not draw outside of its
// dimensions.
type ConstrainedRenderer interface {
	Renderer

	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the part of the screen the root pane needs to
// run a render cycle.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// MouseCursorPos is the position of the mouse cursor, in cells from the top
// left.
type MouseCursorPos struct {
	X, Y int
}

// TextCursorController shows or hides the text cursor of a terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is the location of a text cursor on the screen.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}
