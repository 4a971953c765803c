package panes

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/pinpad/internal/styling"
	"github.com/ja-he/pinpad/internal/ui"
	"github.com/ja-he/pinpad/internal/util"
)

// PerfPane is an ephemeral pane used for showing render and input processing
// times, e.g. to check that masking timers are handled without delay.
type PerfPane struct {
	ui.LeafPane

	renderTime          util.MetricsGetter
	eventProcessingTime util.MetricsGetter
}

// Draw draws this pane: the last and the average render and event handling
// times, the last ones tinted the more they exceed the average.
func (p *PerfPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dims()
	lastWidth := len(" render time: ....... xs ")
	avgWidth := w - lastWidth

	defaultStyle := styling.StyleFromHex("#000000", "#f0f0f0")
	bad := colorful.Color{R: 1.0, G: 0.8, B: 0.8}
	hue, _, ltn := bad.Hsl()
	deviationStyle := func(last, avg time.Duration) styling.DrawStyling {
		sat := float64(0)
		if last > avg && avg > 0 {
			sat = math.Min(float64(last-avg)/float64(avg), 1.0)
		}
		return styling.StyleFromColors(colorful.Hsl(0, 0, 0), colorful.Hsl(hue, sat, ltn))
	}

	p.Renderer.DrawBox(x, y, w, h, defaultStyle)
	for i, m := range []struct {
		label   string
		metrics util.MetricsGetter
	}{
		{"render", p.renderTime},
		{"event ", p.eventProcessingTime},
	} {
		last, avg := m.metrics.Last(), m.metrics.Avg()
		p.Renderer.DrawText(x, y+i, lastWidth, 1, deviationStyle(last, avg), fmt.Sprintf(" %s time: % 7d µs ", m.label, last.Microseconds()))
		p.Renderer.DrawText(x+lastWidth, y+i, avgWidth, 1, defaultStyle, fmt.Sprintf(" %s avg ~ % 7d µs", m.label, avg.Microseconds()))
	}
}

// NewPerfPane constructs and returns a new PerfPane.
func NewPerfPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	condition func() bool,
	renderTime util.MetricsGetter,
	eventProcessingTime util.MetricsGetter,
) *PerfPane {
	return &PerfPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer: renderer,
			Dims:     dimensions,
		},
		renderTime:          renderTime,
		eventProcessingTime: eventProcessingTime,
	}
}
