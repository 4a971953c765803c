// Package pincode implements a PIN/password entry widget: a fixed number of
// slots which briefly reveal each entered symbol before masking it, and which
// report the entered string once all slots are filled.
package pincode

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Decorator is the PIN entry widget's core.
// It owns the slot icons, the cursor index, the entered symbols and the
// pending mask tasks.
//
// A Decorator is not safe for concurrent use. All calls, including the
// callbacks it schedules via its Scheduler, have to happen on one sequence.
type Decorator struct {
	id uuid.UUID

	cfg   Config
	icons []*Icon

	// index of the most recently filled slot, -1 if none
	index  int
	result []rune

	inputEnabled    bool
	keyboardVisible bool

	// Every slot's pending mask task is bound to a sequence number, which is
	// replaced whenever the slot is written, erased or cleared. A task whose
	// sequence number does not match anymore is stale and does nothing.
	seq         uint64
	generations []uint64
	pending     []Task
	notified    bool

	scheduler Scheduler
	receiver  ResultReceiver

	log zerolog.Logger
}

// NewDecorator constructs a new, unconfigured Decorator.
// It has no slots until configured via Configure.
func NewDecorator(scheduler Scheduler, receiver ResultReceiver) *Decorator {
	id := uuid.New()
	return &Decorator{
		id:           id,
		cfg:          DefaultConfig(),
		index:        -1,
		inputEnabled: true,
		scheduler:    scheduler,
		receiver:     receiver,
		log:          log.With().Str("component", "decorator").Str("decorator", id.String()).Logger(),
	}
}

// ID returns the decorator's identifier, which is stable for its lifetime.
func (d *Decorator) ID() uuid.UUID { return d.id }

// SetReceiver sets the receiver to be notified of results.
func (d *Decorator) SetReceiver(receiver ResultReceiver) { d.receiver = receiver }

// Configure applies the given configuration, rebuilding and re-laying out all
// icons. Applying the same configuration repeatedly is harmless.
//
// If the number of slots stays the same, the entered symbols and icon states
// are kept. Otherwise the decorator is cleared.
func (d *Decorator) Configure(cfg Config) {
	cfg.SecureGlyphs = append([]Glyph(nil), cfg.SecureGlyphs...)
	var shadow *Shadow
	if cfg.Shadow != nil {
		s := *cfg.Shadow
		shadow = &s
	}
	cfg.Shadow = shadow

	prev := d.icons
	keep := len(prev) == cfg.SlotCount()

	icons := make([]*Icon, cfg.SlotCount())
	for i, secure := range cfg.SecureGlyphs {
		icon := NewIcon(cfg.EmptyGlyph, secure, cfg.successGlyph(), cfg.failureGlyph())
		icon.SetShadow(shadow)
		if keep {
			icon.SetSymbol(prev[i].Symbol())
			if !icon.Show(prev[i].State()) && i <= d.index {
				icon.Show(StateMasked)
			}
		}
		icons[i] = icon
	}

	d.cfg = cfg
	d.icons = icons
	if !cfg.KeyboardEnabled {
		d.keyboardVisible = false
	}

	if !keep {
		d.stopAll()
		d.generations = make([]uint64, len(icons))
		d.pending = make([]Task, len(icons))
		d.index = -1
		d.result = nil
		d.notified = false
		if len(prev) > 0 {
			d.log.Debug().Int("slots", len(icons)).Int("previous-slots", len(prev)).Msg("slot count changed, cleared")
		}
	}

	d.log.Debug().Int("slots", len(icons)).Dur("mask-delay", cfg.MaskDelay).Msg("configured")
}

// Config returns the decorator's current configuration.
func (d *Decorator) Config() Config { return d.cfg }

// AddSymbol enters the last character of the given string into the next
// free slot, where it is revealed until the mask delay has passed.
// Does nothing if input is disabled, the string is empty or all slots are
// filled.
func (d *Decorator) AddSymbol(symbol string) {
	if !d.inputEnabled {
		d.log.Debug().Msg("ignoring symbol, input disabled")
		return
	}
	if symbol == "" {
		d.log.Debug().Msg("ignoring empty symbol")
		return
	}
	next := d.index + 1
	if next >= len(d.icons) {
		d.log.Debug().Int("slots", len(d.icons)).Msg("ignoring symbol, all slots filled")
		return
	}

	r, _ := utf8.DecodeLastRuneInString(symbol)

	d.index = next
	icon := d.icons[next]
	icon.SetSymbol(r)
	icon.Show(StateRevealed)
	d.result = append(d.result, r)

	d.invalidate(next)
	gen := d.generations[next]
	d.pending[next] = d.scheduler.AfterFunc(d.cfg.MaskDelay, func() { d.mask(next, gen) })

	d.log.Trace().Int("index", next).Int("length", len(d.result)).Msg("added symbol")
}

// DelSymbol erases the most recently entered symbol.
// Does nothing if input is disabled or nothing has been entered.
func (d *Decorator) DelSymbol() {
	if !d.inputEnabled {
		d.log.Debug().Msg("ignoring deletion, input disabled")
		return
	}
	if d.index < 0 || len(d.icons) == 0 {
		d.log.Debug().Msg("ignoring deletion, nothing entered")
		return
	}
	if d.index >= len(d.icons) {
		d.index = len(d.icons) - 1
	}

	if len(d.result) > 0 {
		d.result = d.result[:len(d.result)-1]
	}
	d.invalidate(d.index)
	d.icons[d.index].Show(StateEmpty)
	d.index--
	d.notified = false

	d.log.Trace().Int("index", d.index+1).Int("length", len(d.result)).Msg("deleted symbol")
}

// Clear empties all slots and discards everything entered.
// Pending mask tasks are invalidated.
func (d *Decorator) Clear() {
	d.stopAll()
	for i := range d.icons {
		d.icons[i].Show(StateEmpty)
	}
	d.index = -1
	d.result = nil
	d.notified = false

	d.log.Debug().Msg("cleared")
}

// ShowSuccess shows all slots in the success state.
// Neither the entered symbols nor the cursor index are changed.
func (d *Decorator) ShowSuccess() {
	d.showAll(StateSuccess)
}

// ShowFailure shows all slots in the failure state.
// Neither the entered symbols nor the cursor index are changed.
func (d *Decorator) ShowFailure() {
	d.showAll(StateFailure)
}

// StopTapping disables input; symbols can neither be added nor deleted.
// Already pending mask tasks are unaffected.
func (d *Decorator) StopTapping() { d.inputEnabled = false }

// AllowTapping (re-)enables input.
func (d *Decorator) AllowTapping() { d.inputEnabled = true }

// ShowKeyboard requests direct keyboard entry (e.g. focus and text cursor)
// from the host. Does nothing if the keyboard is not enabled.
func (d *Decorator) ShowKeyboard() {
	if !d.cfg.KeyboardEnabled {
		d.log.Debug().Msg("not showing keyboard, keyboard disabled")
		return
	}
	d.keyboardVisible = true
}

// HideKeyboard revokes the request for direct keyboard entry.
func (d *Decorator) HideKeyboard() { d.keyboardVisible = false }

// Result returns the symbols entered so far.
func (d *Decorator) Result() string { return string(d.result) }

// CursorIndex returns the index of the most recently filled slot, or -1 if
// no slot is filled.
func (d *Decorator) CursorIndex() int { return d.index }

// SlotCount returns the number of slots.
func (d *Decorator) SlotCount() int { return len(d.icons) }

// InputEnabled returns whether symbols can currently be added and deleted.
func (d *Decorator) InputEnabled() bool { return d.inputEnabled }

// KeyboardVisible returns whether direct keyboard entry is requested.
func (d *Decorator) KeyboardVisible() bool { return d.keyboardVisible }

// Icons returns the slot icons, in order.
func (d *Decorator) Icons() []*Icon { return append([]*Icon(nil), d.icons...) }

// Appearances returns the current appearance of each slot, in order.
func (d *Decorator) Appearances() []Appearance {
	result := make([]Appearance, len(d.icons))
	for i := range d.icons {
		result[i] = d.icons[i].Appearance()
	}
	return result
}

// States returns the current state of each slot, in order.
func (d *Decorator) States() []IconState {
	result := make([]IconState, len(d.icons))
	for i := range d.icons {
		result[i] = d.icons[i].State()
	}
	return result
}

func (d *Decorator) mask(index int, gen uint64) {
	if index < 0 || index >= len(d.icons) || d.generations[index] != gen {
		d.log.Trace().Int("index", index).Msg("dropping stale mask")
		return
	}
	d.pending[index] = nil
	d.icons[index].Show(StateMasked)
	d.checkResult()
}

// checkResult notifies the receiver once per fill, when all slots are filled
// and masked.
func (d *Decorator) checkResult() {
	if len(d.result) != len(d.icons) || d.notified {
		return
	}
	for _, t := range d.pending {
		if t != nil {
			return
		}
	}
	d.notified = true
	d.log.Debug().Int("length", len(d.result)).Msg("all slots filled")
	if d.receiver != nil {
		d.receiver.ProvideResult(d, string(d.result))
	}
}

func (d *Decorator) showAll(state IconState) {
	for i := range d.icons {
		if !d.icons[i].Show(state) {
			d.log.Debug().Int("index", i).Stringer("state", state).Msg("no glyph for state, ignored")
		}
	}
}

// invalidate stops the slot's pending task and assigns the slot a fresh
// sequence number.
func (d *Decorator) invalidate(index int) {
	if t := d.pending[index]; t != nil {
		t.Stop()
		d.pending[index] = nil
	}
	d.seq++
	d.generations[index] = d.seq
}

func (d *Decorator) stopAll() {
	for i := range d.pending {
		d.invalidate(i)
	}
}
