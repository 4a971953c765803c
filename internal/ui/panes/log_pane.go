package panes

import (
	"fmt"
	"sort"

	"github.com/ja-he/pinpad/internal/input"
	"github.com/ja-he/pinpad/internal/potatolog"
	"github.com/ja-he/pinpad/internal/styling"
	"github.com/ja-he/pinpad/internal/ui"
	"github.com/ja-he/pinpad/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	row := 2

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.LogTitleBox, title)

	entries := p.logReader.Get()
	levelLen := len(" error ")
	extraDataIndent := x + levelLen + 1
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]

		p.Renderer.DrawText(
			x, y+row, levelLen, 1,
			p.levelStyle(entryString(entry, "level")),
			util.PadCenter(entryString(entry, "level"), levelLen),
		)

		col := extraDataIndent
		for _, part := range []struct {
			key   string
			style styling.DrawStyling
		}{
			{"message", p.Stylesheet.LogDefault},
			{"component", p.Stylesheet.LogEntryLocation},
			{"caller", p.Stylesheet.LogEntryLocation},
			{"time", p.Stylesheet.LogEntryTime},
		} {
			s := entryString(entry, part.key)
			if s == "" {
				continue
			}
			p.Renderer.DrawText(col, y+row, x+w-col, 1, part.style, s)
			col += len([]rune(s)) + 1
		}
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "caller", "message", "time", "level", "component":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= h {
				break
			}
			p.Renderer.DrawText(extraDataIndent, y+row, w, 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(extraDataIndent+len(k)+2, y+row, w, 1, p.Stylesheet.LogEntryLocation, entryString(entry, k))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

func entryString(entry potatolog.LogEntry, key string) string {
	v, ok := entry[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
	inputProcessor input.ModalInputProcessor,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				Visible:        condition,
				InputProcessor: inputProcessor,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}
