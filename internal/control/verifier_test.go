package control_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/pinpad/internal/control"
	"github.com/ja-he/pinpad/internal/pincode"
	"github.com/ja-he/pinpad/internal/pincode/pincodetest"
)

const (
	testMaskDelay = 200 * time.Millisecond
	testFeedback  = time.Second
)

func setupVerifier(t *testing.T, maxAttempts int) (*pincode.Decorator, *control.Verifier, *pincodetest.ManualScheduler) {
	t.Helper()
	s := &pincodetest.ManualScheduler{}
	d := pincode.NewDecorator(s, nil)
	success := pincode.Glyph{Rune: '+', Fg: "#00ff00", Bg: "#000000"}
	failure := pincode.Glyph{Rune: '-', Fg: "#ff0000", Bg: "#000000"}
	d.Configure(pincode.Config{
		SecureGlyphs: []pincode.Glyph{
			{Rune: 'a', Fg: "#ffffff", Bg: "#000000"},
			{Rune: 'b', Fg: "#ffffff", Bg: "#000000"},
			{Rune: 'c', Fg: "#ffffff", Bg: "#000000"},
		},
		EmptyGlyph:      pincode.Glyph{Rune: '_', Fg: "#ffffff", Bg: "#000000"},
		SuccessGlyph:    &success,
		FailureGlyph:    &failure,
		MaskDelay:       testMaskDelay,
		KeyboardEnabled: true,
	})
	v := control.NewVerifier(d, s, control.Verification{
		Secret:           "123",
		FeedbackDuration: testFeedback,
		MaxAttempts:      maxAttempts,
	})
	return d, v, s
}

func enter(d *pincode.Decorator, s *pincodetest.ManualScheduler, symbols string) {
	for _, r := range symbols {
		d.AddSymbol(string(r))
	}
	s.Advance(testMaskDelay)
}

func allIn(states []pincode.IconState, state pincode.IconState) bool {
	for _, s := range states {
		if s != state {
			return false
		}
	}
	return true
}

func TestVerifier(t *testing.T) {

	t.Run("success locks", func(t *testing.T) {
		d, v, s := setupVerifier(t, 0)
		changes := []control.VerifierState{}
		v.OnChange(func(state control.VerifierState) { changes = append(changes, state) })

		enter(d, s, "123")

		assert.Equal(t, control.VerifierSuccess, v.State())
		assert.True(t, allIn(d.States(), pincode.StateSuccess))
		assert.False(t, d.InputEnabled())
		assert.Equal(t, 0, v.Attempts())
		assert.Equal(t, []control.VerifierState{control.VerifierSuccess}, changes)

		s.Advance(10 * testFeedback)
		assert.Equal(t, control.VerifierSuccess, v.State())
		assert.Equal(t, "123", d.Result())
	})

	t.Run("failure retries after feedback", func(t *testing.T) {
		d, v, s := setupVerifier(t, 0)

		enter(d, s, "124")
		assert.Equal(t, control.VerifierFailure, v.State())
		assert.True(t, allIn(d.States(), pincode.StateFailure))
		assert.False(t, d.InputEnabled())
		assert.Equal(t, 1, v.Attempts())

		d.AddSymbol("9")
		assert.Equal(t, "124", d.Result(), "input is disabled while showing failure")

		s.Advance(testFeedback - time.Millisecond)
		assert.Equal(t, control.VerifierFailure, v.State())

		s.Advance(time.Millisecond)
		assert.Equal(t, control.VerifierIdle, v.State())
		assert.True(t, d.InputEnabled())
		assert.Equal(t, "", d.Result())
		assert.Equal(t, -1, d.CursorIndex())
		assert.True(t, allIn(d.States(), pincode.StateEmpty))

		enter(d, s, "123")
		assert.Equal(t, control.VerifierSuccess, v.State())
		assert.Equal(t, 1, v.Attempts())
	})

	t.Run("locks after max attempts", func(t *testing.T) {
		d, v, s := setupVerifier(t, 2)
		require.Equal(t, 2, v.MaxAttempts())

		enter(d, s, "000")
		s.Advance(testFeedback)
		require.Equal(t, control.VerifierIdle, v.State())

		enter(d, s, "000")
		assert.Equal(t, control.VerifierLocked, v.State())
		assert.Equal(t, 2, v.Attempts())

		s.Advance(10 * testFeedback)
		assert.Equal(t, control.VerifierLocked, v.State())
		assert.False(t, d.InputEnabled())
		assert.True(t, allIn(d.States(), pincode.StateFailure))
	})

	t.Run("ignores results of other decorators", func(t *testing.T) {
		_, v, _ := setupVerifier(t, 0)
		other := pincode.NewDecorator(&pincodetest.ManualScheduler{}, nil)

		v.ProvideResult(other, "123")
		assert.Equal(t, control.VerifierIdle, v.State())
		v.ProvideResult(nil, "123")
		assert.Equal(t, control.VerifierIdle, v.State())
	})

	t.Run("ignores results while not idle", func(t *testing.T) {
		d, v, s := setupVerifier(t, 0)
		enter(d, s, "999")
		require.Equal(t, control.VerifierFailure, v.State())

		v.ProvideResult(d, "123")
		assert.Equal(t, control.VerifierFailure, v.State())
		assert.Equal(t, 1, v.Attempts())
	})

	t.Run("reset", func(t *testing.T) {
		d, v, s := setupVerifier(t, 1)
		enter(d, s, "999")
		require.Equal(t, control.VerifierLocked, v.State())

		v.Reset()
		assert.Equal(t, control.VerifierIdle, v.State())
		assert.Equal(t, 0, v.Attempts())
		assert.True(t, d.InputEnabled())
		assert.Equal(t, "", d.Result())
		assert.True(t, allIn(d.States(), pincode.StateEmpty))
	})

	t.Run("reset drops scheduled retry", func(t *testing.T) {
		d, v, s := setupVerifier(t, 0)
		enter(d, s, "999")
		require.Equal(t, control.VerifierFailure, v.State())

		v.Reset()
		d.AddSymbol("1")
		s.Advance(testFeedback)
		assert.Equal(t, "1", d.Result(), "stale retry must not clear new input")
		assert.Equal(t, control.VerifierIdle, v.State())
	})

	t.Run("stale retry after expiry is dropped", func(t *testing.T) {
		d, v, s := setupVerifier(t, 0)
		enter(d, s, "999")
		require.Equal(t, control.VerifierFailure, v.State())
		retry := s.Scheduled() - 1

		v.Reset()
		d.AddSymbol("1")
		s.FireStopped(retry)
		assert.Equal(t, "1", d.Result())
	})

	t.Run("configure", func(t *testing.T) {
		d, v, s := setupVerifier(t, 0)
		enter(d, s, "999")

		v.Configure(control.Verification{Secret: "999", FeedbackDuration: testFeedback, MaxAttempts: 5})
		assert.Equal(t, control.VerifierIdle, v.State())
		assert.Equal(t, 5, v.MaxAttempts())
		assert.Equal(t, 0, v.Attempts())

		enter(d, s, "999")
		assert.Equal(t, control.VerifierSuccess, v.State())
	})
}

func TestVerifierStateString(t *testing.T) {
	assert.Equal(t, "idle", control.VerifierIdle.String())
	assert.Equal(t, "success", control.VerifierSuccess.String())
	assert.Equal(t, "failure", control.VerifierFailure.String())
	assert.Equal(t, "locked", control.VerifierLocked.String())
	assert.Equal(t, "unknown", control.VerifierState(42).String())
}
