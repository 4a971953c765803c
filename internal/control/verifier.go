package control

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/pinpad/internal/pincode"
)

// VerifierState is the state of a Verifier.
type VerifierState int

const (
	// VerifierIdle means the verifier waits for a result.
	VerifierIdle VerifierState = iota
	// VerifierSuccess means the correct secret was entered.
	VerifierSuccess
	// VerifierFailure means a wrong secret was entered and the failure is
	// being shown.
	VerifierFailure
	// VerifierLocked means too many wrong secrets were entered.
	VerifierLocked
)

func (s VerifierState) String() string {
	switch s {
	case VerifierIdle:
		return "idle"
	case VerifierSuccess:
		return "success"
	case VerifierFailure:
		return "failure"
	case VerifierLocked:
		return "locked"
	}
	return "unknown"
}

// Verifier receives the results of a decorator and compares them to the
// secret.
//
// On a match, the decorator shows success and stays locked. Otherwise it
// shows failure for the feedback duration and is then cleared for another
// attempt, unless the maximum number of attempts has been used up.
//
// Like the decorator, a Verifier must only be used from one sequence; its
// scheduler must run the callbacks on that sequence.
type Verifier struct {
	decorator    *pincode.Decorator
	scheduler    pincode.Scheduler
	verification Verification

	state    VerifierState
	attempts int

	// round is increased whenever a scheduled retry becomes obsolete
	round   uint64
	pending pincode.Task

	onChange func(VerifierState)

	log zerolog.Logger
}

// NewVerifier returns a pointer to a new Verifier, which is set as the given
// decorator's receiver.
func NewVerifier(decorator *pincode.Decorator, scheduler pincode.Scheduler, verification Verification) *Verifier {
	v := &Verifier{
		decorator:    decorator,
		scheduler:    scheduler,
		verification: verification,
		state:        VerifierIdle,
		log:          log.With().Str("component", "verifier").Str("decorator", decorator.ID().String()).Logger(),
	}
	decorator.SetReceiver(v)
	return v
}

// OnChange sets a callback that is called on every state change.
func (v *Verifier) OnChange(f func(VerifierState)) { v.onChange = f }

// State returns the verifier's current state.
func (v *Verifier) State() VerifierState { return v.state }

// Attempts returns the number of failed attempts.
func (v *Verifier) Attempts() int { return v.attempts }

// MaxAttempts returns the maximum number of attempts, 0 meaning unlimited.
func (v *Verifier) MaxAttempts() int { return v.verification.MaxAttempts }

// ProvideResult verifies the result entered into the decorator.
// Results from other decorators are ignored.
func (v *Verifier) ProvideResult(d *pincode.Decorator, result string) {
	if d == nil || d.ID() != v.decorator.ID() {
		v.log.Warn().Msg("ignoring result from unknown decorator")
		return
	}
	if v.state != VerifierIdle {
		v.log.Debug().Stringer("state", v.state).Msg("ignoring result, not waiting for one")
		return
	}

	d.StopTapping()

	if result == v.verification.Secret {
		v.log.Info().Msg("correct secret entered")
		d.ShowSuccess()
		v.setState(VerifierSuccess)
		return
	}

	v.attempts++
	v.log.Info().Int("attempts", v.attempts).Int("max-attempts", v.verification.MaxAttempts).Msg("wrong secret entered")
	d.ShowFailure()

	if v.verification.MaxAttempts > 0 && v.attempts >= v.verification.MaxAttempts {
		v.log.Warn().Msg("no attempts left, locked")
		v.setState(VerifierLocked)
		return
	}

	v.setState(VerifierFailure)
	round := v.round
	v.pending = v.scheduler.AfterFunc(v.verification.FeedbackDuration, func() { v.retry(round) })
}

// Reset starts over: all attempts are forgotten and the decorator is cleared
// and accepts input again.
func (v *Verifier) Reset() {
	v.cancelRetry()
	v.attempts = 0
	v.decorator.Clear()
	v.decorator.AllowTapping()
	v.setState(VerifierIdle)
	v.log.Debug().Msg("reset")
}

// Configure replaces the verification, e.g. after the configuration was
// reloaded, and resets.
func (v *Verifier) Configure(verification Verification) {
	v.verification = verification
	v.Reset()
}

func (v *Verifier) retry(round uint64) {
	if round != v.round || v.state != VerifierFailure {
		v.log.Trace().Msg("dropping stale retry")
		return
	}
	v.pending = nil
	v.decorator.Clear()
	v.decorator.AllowTapping()
	v.setState(VerifierIdle)
}

func (v *Verifier) cancelRetry() {
	if v.pending != nil {
		v.pending.Stop()
		v.pending = nil
	}
	v.round++
}

func (v *Verifier) setState(state VerifierState) {
	v.state = state
	if v.onChange != nil {
		v.onChange(state)
	}
}
