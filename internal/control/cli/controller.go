package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/pinpad/internal/config"
	"github.com/ja-he/pinpad/internal/control"
	"github.com/ja-he/pinpad/internal/control/action"
	"github.com/ja-he/pinpad/internal/input"
	"github.com/ja-he/pinpad/internal/input/processors"
	"github.com/ja-he/pinpad/internal/pincode"
	"github.com/ja-he/pinpad/internal/potatolog"
	"github.com/ja-he/pinpad/internal/styling"
	"github.com/ja-he/pinpad/internal/tui"
	"github.com/ja-he/pinpad/internal/ui"
	"github.com/ja-he/pinpad/internal/ui/panes"
)

// Controller is the struct for the TUI controller.
//
// All state (the decorator, the verifier and the panes) is owned by the
// goroutine executing Run. Everything else has to post to it.
type Controller struct {
	data *control.ControlData

	decorator *pincode.Decorator
	verifier  *control.Verifier
	pad       config.Pad

	rootPane                *panes.RootPane
	keypadPane              *panes.KeypadPane
	helpPane                *panes.HelpPane
	rootPaneInputProcessor  *processors.ModalInputProcessor
	previousMouseButtonMask tcell.ButtonMask

	controllerEvents chan controllerEvent
	tasks            chan func()
	done             chan struct{}

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer

	log zerolog.Logger
}

// NewController creates a new Controller drawing to the given screen, for the
// pad selected in the environment data from the given configuration.
func NewController(
	screen *tui.ScreenHandler,
	envData control.EnvData,
	configData config.Config,
) (*Controller, error) {
	controller := &Controller{
		data:             control.NewControlData(envData),
		controllerEvents: make(chan controllerEvent, 32),
		tasks:            make(chan func(), 32),
		done:             make(chan struct{}),
		log:              log.With().Str("component", "controller").Logger(),
	}

	pad, err := configData.PadByName(envData.PadName)
	if err != nil {
		return nil, err
	}
	padConfig, err := control.PadFromConfig(pad)
	if err != nil {
		return nil, err
	}
	verification, err := control.VerificationFromConfig(pad)
	if err != nil {
		return nil, fmt.Errorf("invalid pad '%s' (%w)", pad.Name, err)
	}
	controller.pad = pad

	scheduler := pincode.NewLoopScheduler(controller.post)
	controller.decorator = pincode.NewDecorator(scheduler, nil)
	controller.decorator.Configure(padConfig)
	controller.decorator.ShowKeyboard()
	controller.verifier = control.NewVerifier(controller.decorator, scheduler, verification)
	controller.verifier.OnChange(func(state control.VerifierState) {
		controller.log.Debug().Stringer("state", state).Msg("verifier state changed")
	})

	parsedStylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		return nil, fmt.Errorf("invalid stylesheet (%w)", err)
	}
	stylesheet := *parsedStylesheet
	screen.SetStyle(stylesheet.Normal)
	cursorWrangler := ui.NewCursorWrangler(screen)

	screenDimensions := screen.Dimensions
	statusDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		return screenX, screenY + screenH - 1, screenW, 1
	}
	pinDimensions := func() (x, y, w, h int) {
		_, _, screenW, screenH := screenDimensions()
		w = min(screenW-4, controller.decorator.SlotCount()*slotWidth)
		h = pinHeight
		y = max(1, (screenH-1-pinHeight-1-keypadHeight)/2)
		return (screenW - w) / 2, y, w, h
	}
	keypadDimensions := func() (x, y, w, h int) {
		_, pinY, _, pinH := pinDimensions()
		_, _, screenW, _ := screenDimensions()
		return (screenW - keypadWidth) / 2, pinY + pinH + 1, keypadWidth, keypadHeight
	}
	helpDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		helpWidth := min(screenW, 60)
		helpHeight := min(screenH-1, 16)
		return screenX + (screenW-helpWidth)/2, screenY + (screenH-1-helpHeight)/2, helpWidth, helpHeight
	}
	logDimensions := func() (x, y, w, h int) {
		screenX, screenY, screenW, screenH := screenDimensions()
		return screenX, screenY, screenW, screenH - 1
	}
	perfDimensions := func() (x, y, w, h int) { return 2, 2, 50, 2 }

	pinPaneInputProcessor, err := processors.NewPassthroughTextInputProcessor(
		map[input.Keyspec]action.Action{},
		func(r rune) bool {
			if !controller.decorator.KeyboardVisible() || !controller.decorator.InputEnabled() {
				return false
			}
			controller.decorator.AddSymbol(string(r))
			return true
		},
	)
	if err != nil {
		return nil, err
	}
	pinPane := panes.NewPinPane(
		ui.NewConstrainedRenderer(screen, pinDimensions),
		pinDimensions,
		stylesheet,
		controller.decorator,
		cursorWrangler,
		processors.NewModalInputProcessor(pinPaneInputProcessor),
	)

	controller.keypadPane = panes.NewKeypadPane(
		ui.NewConstrainedRenderer(screen, keypadDimensions),
		keypadDimensions,
		stylesheet,
		func() bool { return true },
		panes.DefaultKeypadLayout,
		controller.decorator.InputEnabled,
		func() (x, y int, ok bool) {
			return controller.data.CursorPos.X, controller.data.CursorPos.Y, controller.data.MouseMode
		},
		controller.press,
	)

	statusPane := panes.NewStatusPane(
		ui.NewConstrainedRenderer(screen, statusDimensions),
		statusDimensions,
		stylesheet,
		func() string {
			if controller.pad.Title != "" {
				return controller.pad.Title
			}
			return controller.pad.Name
		},
		controller.statusString,
		func() string {
			switch {
			case controller.data.MouseMode:
				return "-- MOUSE --"
			case controller.decorator.KeyboardVisible():
				return "-- KEYBOARD --"
			default:
				return "-- KEYPAD --"
			}
		},
	)

	closeHelp := action.NewSimple(func() string { return "close help" }, func() { controller.data.ShowHelp = false })
	helpPaneInputTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"?":     closeHelp,
		"q":     closeHelp,
		"<esc>": closeHelp,
	})
	if err != nil {
		return nil, err
	}
	controller.helpPane = panes.NewHelpPane(
		ui.NewConstrainedRenderer(screen, helpDimensions),
		helpDimensions,
		stylesheet,
		func() bool { return controller.data.ShowHelp },
		processors.NewModalInputProcessor(helpPaneInputTree),
	)

	closeLog := action.NewSimple(func() string { return "close log" }, func() { controller.data.ShowLog = false })
	logPaneInputTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"q":     closeLog,
		"<esc>": closeLog,
	})
	if err != nil {
		return nil, err
	}
	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(screen, logDimensions),
		logDimensions,
		stylesheet,
		func() bool { return controller.data.ShowLog },
		func() string { return "LOG" },
		&potatolog.GlobalMemoryLogReaderWriter,
		processors.NewModalInputProcessor(logPaneInputTree),
	)

	rootPaneInputTree, err := controller.inputTree(configData.Keys)
	if err != nil {
		return nil, err
	}
	controller.rootPaneInputProcessor = processors.NewModalInputProcessor(rootPaneInputTree)

	controller.rootPane = panes.NewRootPane(
		screen,
		cursorWrangler,
		screenDimensions,
		[]ui.Pane{pinPane, controller.keypadPane, statusPane},
		[]ui.Pane{logPane, controller.helpPane},
		panes.NewPerfPane(
			ui.NewConstrainedRenderer(screen, perfDimensions),
			perfDimensions,
			func() bool { return controller.data.ShowDebug },
			&controller.data.RenderTimes,
			&controller.data.EventProcessingTimes,
		),
		controller.rootPaneInputProcessor,
	)

	controller.screenEvents = screen.GetEventPollable()
	controller.initializedScreen = screen
	controller.syncer = screen

	return controller, nil
}

const (
	slotWidth    = 8
	pinHeight    = 5
	keypadWidth  = 24
	keypadHeight = 12
)

// actions returns the actions that keys can be mapped to in the config file,
// by their names.
func (c *Controller) actions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		"delete-symbol": action.NewSimple(func() string { return "delete last symbol" }, c.decorator.DelSymbol),
		"clear":         action.NewSimple(func() string { return "clear all symbols" }, c.decorator.Clear),
		"reset":         action.NewSimple(func() string { return "reset attempts" }, c.verifier.Reset),
		"toggle-keyboard": action.NewGuarded(
			func() string { return "toggle keyboard entry" },
			func() bool { return c.decorator.Config().KeyboardEnabled },
			func() {
				if c.decorator.KeyboardVisible() {
					c.decorator.HideKeyboard()
				} else {
					c.decorator.ShowKeyboard()
				}
			},
		),
		"toggle-help": action.NewSimple(func() string { return "toggle help" }, func() {
			if !c.data.ShowHelp {
				c.helpPane.Content = c.rootPane.GetHelp()
			}
			c.data.ShowHelp = !c.data.ShowHelp
		}),
		"toggle-log": action.NewSimple(func() string { return "toggle log" }, func() {
			c.data.ShowLog = !c.data.ShowLog
		}),
		"toggle-debug": action.NewSimple(func() string { return "toggle performance overlay" }, func() {
			c.data.ShowDebug = !c.data.ShowDebug
		}),
		"quit": action.NewSimple(func() string { return "exit program" }, func() {
			c.controllerEvents <- controllerEventExit
		}),
	}
}

// inputTree constructs the global input tree from the configured keys.
func (c *Controller) inputTree(keys map[string]string) (*input.Tree, error) {
	mappings, err := input.InputConfigFromMap(keys).Resolve(c.actions())
	if err != nil {
		return nil, fmt.Errorf("invalid key configuration (%w)", err)
	}
	tree, err := input.ConstructInputTree(mappings)
	if err != nil {
		return nil, fmt.Errorf("invalid key configuration (%w)", err)
	}
	return tree, nil
}

func (c *Controller) press(button panes.KeypadButton) {
	switch button.Kind {
	case panes.KeypadButtonSymbol:
		c.decorator.AddSymbol(button.Symbol)
	case panes.KeypadButtonDelete:
		c.decorator.DelSymbol()
	case panes.KeypadButtonClear:
		c.decorator.Clear()
	}
}

func (c *Controller) statusString() string {
	attempts := fmt.Sprintf("attempts: %d", c.verifier.Attempts())
	if c.verifier.MaxAttempts() > 0 {
		attempts = fmt.Sprintf("attempts: %d/%d", c.verifier.Attempts(), c.verifier.MaxAttempts())
	}
	return fmt.Sprintf("%s | %s", c.verifier.State(), attempts)
}

// ApplyConfig applies a changed configuration, e.g. after the config file was
// edited.
// The pad keeps its entered symbols if its number of slots did not change,
// only changed verification settings reset the verifier.
//
// Must be called on the controller's goroutine, see Post.
func (c *Controller) ApplyConfig(configData config.Config) {
	pad, err := configData.PadByName(c.data.EnvData.PadName)
	if err != nil {
		c.log.Error().Err(err).Msg("could not apply config, keeping previous")
		return
	}
	padConfig, err := control.PadFromConfig(pad)
	if err != nil {
		c.log.Error().Err(err).Msg("could not apply config, keeping previous")
		return
	}
	verification, err := control.VerificationFromConfig(pad)
	if err != nil {
		c.log.Error().Err(err).Msg("could not apply config, keeping previous")
		return
	}
	if _, err := styling.NewStylesheetFromConfig(configData.Stylesheet); err != nil {
		c.log.Warn().Err(err).Msg("invalid stylesheet in changed config")
	}
	tree, err := c.inputTree(configData.Keys)
	if err != nil {
		c.log.Error().Err(err).Msg("could not apply key config, keeping previous keys")
	} else {
		c.rootPaneInputProcessor.SetBase(tree)
	}

	previousVerification, _ := control.VerificationFromConfig(c.pad)
	c.pad = pad
	c.decorator.Configure(padConfig)
	if verification != previousVerification {
		c.verifier.Configure(verification)
	}
	c.log.Info().Str("pad", pad.Name).Msg("applied changed config")
}

// Post hands the given function to the controller's goroutine to be called
// there, followed by a render.
// Functions posted after the controller stopped are dropped.
func (c *Controller) Post(f func()) { c.post(f) }

func (c *Controller) post(f func()) {
	select {
	case c.tasks <- f:
	case <-c.done:
	}
}

// Exit prompts the controller to stop.
func (c *Controller) Exit() {
	select {
	case c.controllerEvents <- controllerEventExit:
	case <-c.done:
	}
}

// OnVerifierStateChange registers a callback for changes of the verifier's
// state, which is called on the controller's goroutine with the state and the
// entered result.
// Must be called before Run.
func (c *Controller) OnVerifierStateChange(f func(state control.VerifierState, result string)) {
	c.verifier.OnChange(func(state control.VerifierState) {
		c.log.Debug().Stringer("state", state).Msg("verifier state changed")
		f(state, c.decorator.Result())
	})
}

func (c *Controller) updateCursorPos(x, y int) {
	c.data.CursorPos = ui.MouseCursorPos{X: x, Y: y}
}

func (c *Controller) handleScreenEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		c.data.MouseMode = false

		key := input.KeyFromTcellEvent(e)
		inputApplied := c.rootPane.ProcessInput(key)
		switch {
		case inputApplied:
		case key.IsRune():
			// runes might be (part of) the secret, they don't go into the log
			c.log.Debug().Msg("could not apply rune input")
		default:
			c.log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
		}

	case *tcell.EventMouse:
		c.data.MouseMode = true

		x, y := e.Position()
		c.updateCursorPos(x, y)

		buttons := e.Buttons()
		pressed := buttons&tcell.Button1 != 0 && c.previousMouseButtonMask&tcell.Button1 == 0
		c.previousMouseButtonMask = buttons
		if pressed && !c.rootPane.PopupShown() {
			if !c.keypadPane.Press(x, y) {
				c.log.Trace().Int("x", x).Int("y", y).Msg("click hit no enabled keypad button")
			}
		}

	case *tcell.EventResize:
		c.syncer.NeedsSync()

	}
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
	controllerEventRender
)

// Run runs the controller until it is prompted to exit, e.g. by the quit
// action. The screen is finalized before returning.
func (c *Controller) Run() {
	c.log.Info().Str("pad", c.pad.Name).Msg("pinpad TUI started")

	defer c.initializedScreen.Fini()
	defer close(c.done)

	// Poll screen events in the background, as polling blocks.
	screenEvents := make(chan tcell.Event)
	go func() {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				return
			}
			select {
			case screenEvents <- ev:
			case <-c.done:
				return
			}
		}
	}()

	c.render()
	for {
		select {

		case ev := <-screenEvents:
			c.data.EventProcessingTimes.Track(func() { c.handleScreenEvent(ev) })

		case f := <-c.tasks:
			c.data.EventProcessingTimes.Track(f)

		case controllerEvent := <-c.controllerEvents:
			switch controllerEvent {
			case controllerEventExit:
				c.log.Info().Msg("exiting")
				return
			case controllerEventRender:
			default:
				c.log.Error().Interface("event", controllerEvent).Msg("unhandled controller event")
			}

		}

		// an exit requested while handling must not be delayed by a render
		if emptyRenderEvents(c.controllerEvents) {
			c.log.Info().Msg("exiting")
			return
		}
		c.render()
	}
}

// Empties all render events from the channel.
// Returns true, if an exit event was encountered so the caller
// knows to exit.
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				{
					// dump extra render events
				}
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

func (c *Controller) render() {
	c.data.RenderTimes.Track(c.rootPane.Draw)
}
