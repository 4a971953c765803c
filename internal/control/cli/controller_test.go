package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/pinpad/internal/config"
	"github.com/ja-he/pinpad/internal/control"
	"github.com/ja-he/pinpad/internal/input"
	"github.com/ja-he/pinpad/internal/tui"
)

const verdictTimeout = 5 * time.Second

func keys(t *testing.T, spec string) []input.Key {
	t.Helper()
	result, err := input.ConfigKeyspecToKeys(input.Keyspec(spec))
	require.NoError(t, err)
	return result
}

type runningController struct {
	*Controller
	screen   tcell.SimulationScreen
	verdicts chan Verdict
	stopped  chan struct{}
}

// startController runs a controller on a simulation screen for the default
// config, until the test ends.
func startController(t *testing.T, padName string) runningController {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screenHandler, err := tui.NewScreenHandler(screen)
	require.NoError(t, err)
	screen.SetSize(80, 24)

	c, err := NewController(screenHandler, control.EnvData{PadName: padName}, config.Default(config.Dark))
	require.NoError(t, err)

	verdicts := make(chan Verdict, 8)
	c.OnVerifierStateChange(func(state control.VerifierState, result string) {
		if state != control.VerifierIdle {
			verdicts <- Verdict{State: state, Result: result}
		}
	})

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		c.Run()
	}()
	t.Cleanup(func() {
		c.Exit()
		<-stopped
	})

	return runningController{Controller: c, screen: screen, verdicts: verdicts, stopped: stopped}
}

// query runs f on the controller's goroutine and returns its result.
func query[T any](c *Controller, f func() T) T {
	result := make(chan T, 1)
	c.Post(func() { result <- f() })
	return <-result
}

func (r runningController) post(t *testing.T, event tcell.Event) {
	t.Helper()
	require.NoError(t, postEvent(r.screen, event, r.stopped))
}

func (r runningController) typeKeys(t *testing.T, spec string) {
	t.Helper()
	for _, k := range keys(t, spec) {
		r.post(t, tcell.NewEventKey(k.Key, k.Ch, k.Mod))
	}
}

func (r runningController) click(t *testing.T, x, y int) {
	t.Helper()
	r.post(t, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	r.post(t, tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func (r runningController) awaitVerdict(t *testing.T) Verdict {
	t.Helper()
	select {
	case v := <-r.verdicts:
		return v
	case <-time.After(verdictTimeout):
		t.Fatal("no verdict")
		return Verdict{}
	}
}

func (r runningController) eventuallyResult(t *testing.T, expected string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return query(r.Controller, r.decorator.Result) == expected
	}, verdictTimeout, 10*time.Millisecond)
}

func TestController(t *testing.T) {

	t.Run("correct pin via keyboard", func(t *testing.T) {
		r := startController(t, "pin")
		r.typeKeys(t, "12<bs>234")
		assert.Equal(t, Verdict{State: control.VerifierSuccess, Result: "1234"}, r.awaitVerdict(t))
	})

	t.Run("wrong pin then retry", func(t *testing.T) {
		r := startController(t, "pin")
		r.typeKeys(t, "9999")
		assert.Equal(t, Verdict{State: control.VerifierFailure, Result: "9999"}, r.awaitVerdict(t))

		assert.Eventually(t, func() bool {
			return query(r.Controller, r.verifier.State) == control.VerifierIdle
		}, verdictTimeout, 10*time.Millisecond)
		assert.Equal(t, "", query(r.Controller, r.decorator.Result))

		r.typeKeys(t, "1234")
		assert.Equal(t, control.VerifierSuccess, r.awaitVerdict(t).State)
		assert.Equal(t, 1, query(r.Controller, r.verifier.Attempts))
	})

	t.Run("clear", func(t *testing.T) {
		r := startController(t, "pin")
		r.typeKeys(t, "12<c-u>3")
		r.eventuallyResult(t, "3")
	})

	t.Run("hidden keyboard ignores typing", func(t *testing.T) {
		r := startController(t, "pin")
		r.typeKeys(t, "<c-k>1<c-k>2")
		r.eventuallyResult(t, "2")
	})

	t.Run("open help ignores typing", func(t *testing.T) {
		r := startController(t, "pin")
		r.typeKeys(t, "<c-g>1q2")
		r.eventuallyResult(t, "2")
	})

	t.Run("keypad via mouse", func(t *testing.T) {
		r := startController(t, "pin")

		// 80x24 screen: keypad at x 28..51, y 8..19, buttons 8x3 cells
		r.click(t, 30, 9)  // 1
		r.click(t, 38, 9)  // 2
		r.click(t, 46, 12) // 6
		r.click(t, 30, 18) // delete
		r.click(t, 46, 9)  // 3
		r.click(t, 30, 12) // 4
		assert.Equal(t, Verdict{State: control.VerifierSuccess, Result: "1234"}, r.awaitVerdict(t))
	})

	t.Run("password locks after max attempts", func(t *testing.T) {
		r := startController(t, "password")
		for i := 0; i < 3; i++ {
			r.typeKeys(t, "letmein")
			v := r.awaitVerdict(t)
			if i < 2 {
				assert.Equal(t, control.VerifierFailure, v.State)
				assert.Eventually(t, func() bool {
					return query(r.Controller, r.verifier.State) == control.VerifierIdle
				}, verdictTimeout, 10*time.Millisecond)
			} else {
				assert.Equal(t, control.VerifierLocked, v.State)
			}
		}

		r.typeKeys(t, "<c-r>company")
		assert.Equal(t, Verdict{State: control.VerifierSuccess, Result: "company"}, r.awaitVerdict(t))
	})

	t.Run("quit", func(t *testing.T) {
		screen := tcell.NewSimulationScreen("UTF-8")
		screenHandler, err := tui.NewScreenHandler(screen)
		require.NoError(t, err)
		c, err := NewController(screenHandler, control.EnvData{}, config.Default(config.Dark))
		require.NoError(t, err)

		stopped := make(chan struct{})
		go func() {
			defer close(stopped)
			c.Run()
		}()
		screen.InjectKey(tcell.KeyESC, 0, tcell.ModNone)

		select {
		case <-stopped:
		case <-time.After(verdictTimeout):
			t.Fatal("controller did not stop")
		}
	})
}

func TestNewControllerErrors(t *testing.T) {
	newController := func(envData control.EnvData, cfg config.Config) error {
		screenHandler, err := tui.NewScreenHandler(tcell.NewSimulationScreen("UTF-8"))
		require.NoError(t, err)
		defer screenHandler.Fini()
		_, err = NewController(screenHandler, envData, cfg)
		return err
	}

	t.Run("unknown pad", func(t *testing.T) {
		assert.Error(t, newController(control.EnvData{PadName: "nope"}, config.Default(config.Dark)))
	})
	t.Run("invalid pad", func(t *testing.T) {
		cfg := config.Default(config.Dark)
		cfg.Pads[0].MaskDelay = "never"
		assert.Error(t, newController(control.EnvData{}, cfg))
	})
	t.Run("unknown action", func(t *testing.T) {
		cfg := config.Default(config.Dark)
		cfg.Keys["<c-x>"] = "self-destruct"
		assert.Error(t, newController(control.EnvData{}, cfg))
	})
	t.Run("invalid stylesheet color", func(t *testing.T) {
		cfg := config.Default(config.Dark)
		cfg.Stylesheet.Normal.Fg = "#zzzzzz"
		err := newController(control.EnvData{}, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "style 'normal'")
	})
	t.Run("invalid keyspec", func(t *testing.T) {
		cfg := config.Default(config.Dark)
		cfg.Keys["<c-x"] = "quit"
		assert.Error(t, newController(control.EnvData{}, cfg))
	})
}

func TestApplyConfig(t *testing.T) {
	screenHandler, err := tui.NewScreenHandler(tcell.NewSimulationScreen("UTF-8"))
	require.NoError(t, err)
	defer screenHandler.Fini()

	cfg := config.Default(config.Dark)
	c, err := NewController(screenHandler, control.EnvData{}, cfg)
	require.NoError(t, err)

	c.decorator.AddSymbol("1")
	c.decorator.AddSymbol("2")

	t.Run("same slot count keeps input", func(t *testing.T) {
		changed := config.Default(config.Dark)
		changed.Pads[0].MaskDelay = "1s"
		c.ApplyConfig(changed)
		assert.Equal(t, time.Second, c.decorator.Config().MaskDelay)
		assert.Equal(t, "12", c.decorator.Result())
	})

	t.Run("invalid config is not applied", func(t *testing.T) {
		changed := config.Default(config.Dark)
		changed.Pads[0].MaskDelay = "never"
		c.ApplyConfig(changed)
		assert.Equal(t, time.Second, c.decorator.Config().MaskDelay)
		assert.Equal(t, "12", c.decorator.Result())
	})

	t.Run("changed secret resets", func(t *testing.T) {
		changed := config.Default(config.Dark)
		changed.Pads[0].MaskDelay = "1s"
		changed.Pads[0].Secret = "4321"
		c.ApplyConfig(changed)
		assert.Equal(t, "", c.decorator.Result())
		assert.Equal(t, control.VerifierIdle, c.verifier.State())
	})

	t.Run("changed slot count clears", func(t *testing.T) {
		c.decorator.AddSymbol("1")
		changed := config.Default(config.Dark)
		changed.Pads[0].MaskDelay = "1s"
		changed.Pads[0].Secret = "4321"
		changed.Pads[0].SecureGlyphs = changed.Pads[0].SecureGlyphs[:2]
		c.ApplyConfig(changed)
		assert.Equal(t, 2, c.decorator.SlotCount())
		assert.Equal(t, "", c.decorator.Result())
	})

	t.Run("changed keys", func(t *testing.T) {
		changed := config.Default(config.Dark)
		changed.Pads[0].MaskDelay = "1s"
		changed.Pads[0].Secret = "4321"
		changed.Pads[0].SecureGlyphs = changed.Pads[0].SecureGlyphs[:2]
		changed.Keys["<c-x>"] = "toggle-log"
		c.ApplyConfig(changed)
		require.False(t, c.data.ShowLog)
		assert.True(t, c.rootPane.ProcessInput(input.Key{Key: tcell.KeyCtrlX}))
		assert.True(t, c.data.ShowLog)
	})
}

func TestReportVerdict(t *testing.T) {
	var b bytes.Buffer
	assert.NoError(t, reportVerdict(&b, Verdict{State: control.VerifierSuccess, Result: "1234"}))
	assert.Equal(t, "result:  1234\nverdict: success\n", b.String())

	b.Reset()
	assert.Error(t, reportVerdict(&b, Verdict{State: control.VerifierFailure, Result: "9999"}))
	assert.Contains(t, b.String(), "verdict: failure")
}

func TestSimulate(t *testing.T) {
	cfg := config.Default(config.Dark)

	t.Run("success", func(t *testing.T) {
		v, err := Simulate(tcell.NewSimulationScreen("UTF-8"), control.EnvData{}, cfg, keys(t, "1234"), time.Millisecond, verdictTimeout)
		require.NoError(t, err)
		assert.Equal(t, Verdict{State: control.VerifierSuccess, Result: "1234"}, v)
	})

	t.Run("failure", func(t *testing.T) {
		v, err := Simulate(tcell.NewSimulationScreen("UTF-8"), control.EnvData{PadName: "password"}, cfg, keys(t, "compani"), time.Millisecond, verdictTimeout)
		require.NoError(t, err)
		assert.Equal(t, Verdict{State: control.VerifierFailure, Result: "compani"}, v)
	})

	t.Run("more keys than the event queue holds", func(t *testing.T) {
		v, err := Simulate(tcell.NewSimulationScreen("UTF-8"), control.EnvData{}, cfg, keys(t, "1<bs>2<bs>3<bs>4<bs>5<bs>6<bs>1234"), 0, verdictTimeout)
		require.NoError(t, err)
		assert.Equal(t, Verdict{State: control.VerifierSuccess, Result: "1234"}, v)
	})

	t.Run("quit before a verdict", func(t *testing.T) {
		_, err := Simulate(tcell.NewSimulationScreen("UTF-8"), control.EnvData{}, cfg, keys(t, "12<esc>"), time.Millisecond, verdictTimeout)
		assert.Error(t, err)
	})

	t.Run("incomplete", func(t *testing.T) {
		_, err := Simulate(tcell.NewSimulationScreen("UTF-8"), control.EnvData{}, cfg, keys(t, "12"), time.Millisecond, 500*time.Millisecond)
		assert.Error(t, err)
	})
}
