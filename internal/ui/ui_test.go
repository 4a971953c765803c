package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ja-he/pinpad/internal/styling"
	"github.com/ja-he/pinpad/internal/ui"
	"github.com/ja-he/pinpad/internal/util"
)

type drawCall struct {
	box  util.Rect
	text string
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawBox(x, y, w, h int, _ styling.DrawStyling) {
	r.calls = append(r.calls, drawCall{box: util.NewRect(x, y, w, h)})
}
func (r *recordingRenderer) DrawText(x, y, w, h int, _ styling.DrawStyling, text string) {
	r.calls = append(r.calls, drawCall{box: util.NewRect(x, y, w, h), text: text})
}

func TestConstrainedRenderer(t *testing.T) {
	style := styling.StyleFromHex("#ffffff", "#000000")
	setup := func() (*recordingRenderer, *ui.CR) {
		r := &recordingRenderer{}
		return r, ui.NewConstrainedRenderer(r, func() (x, y, w, h int) { return 10, 5, 20, 4 })
	}

	t.Run("within", func(t *testing.T) {
		r, cr := setup()
		cr.DrawBox(12, 6, 3, 2, style)
		cr.DrawText(12, 6, 5, 1, style, "12345")
		assert.Equal(t, []drawCall{
			{box: util.Rect{X: 12, Y: 6, W: 3, H: 2}},
			{box: util.Rect{X: 12, Y: 6, W: 5, H: 1}, text: "12345"},
		}, r.calls)
	})

	t.Run("clipped", func(t *testing.T) {
		r, cr := setup()
		cr.DrawBox(0, 0, 100, 100, style)
		cr.DrawBox(25, 8, 10, 10, style)
		assert.Equal(t, []drawCall{
			{box: util.Rect{X: 10, Y: 5, W: 20, H: 4}},
			{box: util.Rect{X: 25, Y: 8, W: 5, H: 1}},
		}, r.calls)
	})

	t.Run("text cut off at the left", func(t *testing.T) {
		r, cr := setup()
		cr.DrawText(8, 6, 5, 1, style, "äbcde")
		assert.Equal(t, []drawCall{{box: util.Rect{X: 10, Y: 6, W: 3, H: 1}, text: "cde"}}, r.calls)
	})

	t.Run("outside", func(t *testing.T) {
		r, cr := setup()
		cr.DrawBox(0, 0, 5, 5, style)
		cr.DrawText(40, 6, 5, 1, style, "x")
		assert.Empty(t, r.calls)
	})
}

type cursorController struct {
	calls    int
	shown    bool
	location ui.CursorLocation
}

func (c *cursorController) HideCursor() {
	c.calls++
	c.shown = false
}
func (c *cursorController) ShowCursor(l ui.CursorLocation) {
	c.calls++
	c.shown, c.location = true, l
}

func TestCursorWrangler(t *testing.T) {

	t.Run("most recent request wins", func(t *testing.T) {
		cc := &cursorController{}
		w := ui.NewCursorWrangler(cc)
		w.Put(ui.CursorLocation{X: 1, Y: 1}, "a")
		w.Put(ui.CursorLocation{X: 2, Y: 2}, "b")
		w.Enact()
		assert.True(t, cc.shown)
		assert.Equal(t, ui.CursorLocation{X: 2, Y: 2}, cc.location)

		w.Delete("a")
		requester, ok := w.Requester()
		assert.True(t, ok)
		assert.Equal(t, "b", requester)

		w.Delete("b")
		w.Enact()
		assert.False(t, cc.shown)
		_, ok = w.Requester()
		assert.False(t, ok)
	})

	t.Run("only changes are enacted", func(t *testing.T) {
		cc := &cursorController{}
		w := ui.NewCursorWrangler(cc)
		w.Enact()
		w.Enact()
		assert.Equal(t, 1, cc.calls)

		w.Put(ui.CursorLocation{X: 1, Y: 1}, "a")
		w.Enact()
		w.Put(ui.CursorLocation{X: 1, Y: 1}, "a")
		w.Enact()
		assert.Equal(t, 2, cc.calls)

		w.Put(ui.CursorLocation{X: 3, Y: 1}, "a")
		w.Enact()
		assert.Equal(t, 3, cc.calls)
		assert.Equal(t, ui.CursorLocation{X: 3, Y: 1}, cc.location)
	})
}
