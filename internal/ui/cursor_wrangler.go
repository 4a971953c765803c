package ui

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CursorLocationRequestHandler is an interface for a type that can handle
// requests to place a (text/terminal) cursor on the screen.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requesterID string)
	Delete(requesterID string)
}

type cursorRequest struct {
	location  CursorLocation
	requester string
}

// CursorWrangler collects the requests to place a (text/terminal) cursor made
// while drawing and enacts the most recent one afterwards.
// It is owned by the goroutine drawing the UI.
type CursorWrangler struct {
	cc TextCursorController

	desired *cursorRequest
	enacted *CursorLocation
	fresh   bool

	log zerolog.Logger
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{
		cc:    controller,
		fresh: true,
		log:   log.With().Str("component", "cursor-wrangler").Logger(),
	}
}

// Put requests the cursor at the given location, overriding any other
// requester's request.
func (w *CursorWrangler) Put(l CursorLocation, requesterID string) {
	if w.desired != nil && w.desired.requester != requesterID {
		w.log.Warn().
			Str("requester", requesterID).
			Str("previous-requester", w.desired.requester).
			Stringer("location", l).
			Msg("cursor requested while placed by another requester, overriding")
	}
	w.desired = &cursorRequest{location: l, requester: requesterID}
}

// Delete removes the requester's cursor request.
// Requests by other requesters are left alone.
func (w *CursorWrangler) Delete(requesterID string) {
	if w.desired == nil || w.desired.requester != requesterID {
		return
	}
	w.desired = nil
}

// Requester returns the ID of the requester whose request is active, if any.
func (w *CursorWrangler) Requester() (string, bool) {
	if w.desired == nil {
		return "", false
	}
	return w.desired.requester, true
}

// Enact shows the cursor at the requested location or hides it, if there is
// no request.
// The underlying controller is only called on changes.
func (w *CursorWrangler) Enact() {
	switch {
	case w.desired == nil && (w.fresh || w.enacted != nil):
		w.cc.HideCursor()
		w.enacted = nil
	case w.desired != nil && (w.fresh || w.enacted == nil || *w.enacted != w.desired.location):
		location := w.desired.location
		w.cc.ShowCursor(location)
		w.enacted = &location
	}
	w.fresh = false
}
