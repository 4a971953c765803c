package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/pinpad/internal/config"
	"github.com/ja-he/pinpad/internal/control"
	"github.com/ja-he/pinpad/internal/input"
	"github.com/ja-he/pinpad/internal/tui"
)

// Flags for the `simulate` command line command, for `go-flags` to parse
// command line args into.
type SimulateCommand struct {
	Keys     string        `short:"k" long:"keys" description:"the keys to enter, e.g. '12<bs>234'" value-name:"<keyspec>" required:"true"`
	Interval time.Duration `short:"i" long:"interval" description:"the time between two keys" value-name:"<duration>" default:"50ms"`
	Timeout  time.Duration `long:"timeout" description:"how long to wait for a verdict after the last key" value-name:"<duration>" default:"5s"`

	Pad   string `long:"pad" description:"Select the pad to use by name (otherwise the first configured pad is used)" value-name:"<name>"`
	Theme string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme"`

	Verbose bool `short:"v" long:"verbose" description:"provide verbose output"`
}

// Verdict is the outcome of a simulated entry.
type Verdict struct {
	State  control.VerifierState
	Result string
}

// Executes the simulate command.
// (This gets called by `go-flags` when `simulate` is provided on the command
// line)
func (command *SimulateCommand) Execute(args []string) error {
	if !command.Verbose {
		log.Logger = log.Level(zerolog.WarnLevel)
	}

	keys, err := input.ConfigKeyspecToKeys(input.Keyspec(command.Keys))
	if err != nil {
		return fmt.Errorf("invalid keys (%w)", err)
	}

	configData, err := config.NewLoader(config.ResolvePath(baseDirPath()), themeFromString(command.Theme)).Load()
	if err != nil {
		return fmt.Errorf("can't load config (%w)", err)
	}

	verdict, err := Simulate(
		tcell.NewSimulationScreen("UTF-8"),
		control.EnvData{BaseDirPath: baseDirPath(), PadName: command.Pad},
		configData,
		keys,
		command.Interval,
		command.Timeout,
	)
	if err != nil {
		return err
	}
	return reportVerdict(os.Stdout, verdict)
}

func reportVerdict(w io.Writer, verdict Verdict) error {
	fmt.Fprintf(w, "result:  %s\n", verdict.Result)
	fmt.Fprintf(w, "verdict: %s\n", verdict.State)
	if verdict.State != control.VerifierSuccess {
		return fmt.Errorf("entered secret not accepted (%s)", verdict.State)
	}
	return nil
}

// Simulate runs a controller on the given simulation screen, enters the given
// keys one after the other and returns the verifier's first verdict.
// It is an error if there is no verdict within the timeout after the last
// key, e.g. because too few symbols were entered.
func Simulate(
	screen tcell.SimulationScreen,
	envData control.EnvData,
	configData config.Config,
	keys []input.Key,
	interval time.Duration,
	timeout time.Duration,
) (Verdict, error) {
	screenHandler, err := tui.NewScreenHandler(screen)
	if err != nil {
		return Verdict{}, err
	}
	screen.SetSize(80, 24)

	controller, err := NewController(screenHandler, envData, configData)
	if err != nil {
		screenHandler.Fini()
		return Verdict{}, err
	}

	verdicts := make(chan Verdict, 1)
	controller.OnVerifierStateChange(func(state control.VerifierState, result string) {
		if state == control.VerifierIdle {
			return
		}
		select {
		case verdicts <- Verdict{State: state, Result: result}:
		default:
		}
	})

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		controller.Run()
	}()
	defer func() {
		controller.Exit()
		<-stopped
	}()

	for i, key := range keys {
		if i > 0 {
			time.Sleep(interval)
		}
		event := log.Debug().Int("index", i)
		if !key.IsRune() {
			event = event.Str("key", key.ToDebugString())
		}
		event.Msg("injecting key")
		if err := postEvent(screen, tcell.NewEventKey(key.Key, key.Ch, key.Mod), stopped); err != nil {
			return Verdict{}, fmt.Errorf("could not enter key %d (%w)", i, err)
		}
	}

	select {
	case verdict := <-verdicts:
		return verdict, nil
	case <-stopped:
		select {
		case verdict := <-verdicts:
			return verdict, nil
		default:
			return Verdict{}, fmt.Errorf("stopped without a verdict")
		}
	case <-time.After(timeout):
		return Verdict{}, fmt.Errorf("no verdict within %s after the last key (too few symbols entered?)", timeout)
	}
}

// postEvent posts the event to the screen, waiting while the screen's event
// queue is full (which the simulation screen's Inject* functions would
// silently drop the event for).
func postEvent(screen tcell.Screen, event tcell.Event, stopped <-chan struct{}) error {
	for screen.PostEvent(event) != nil {
		select {
		case <-stopped:
			return fmt.Errorf("controller stopped")
		case <-time.After(time.Millisecond):
		}
	}
	return nil
}
