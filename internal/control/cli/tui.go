package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/ja-he/pinpad/internal/config"
	"github.com/ja-he/pinpad/internal/control"
	"github.com/ja-he/pinpad/internal/potatolog"
	"github.com/ja-he/pinpad/internal/tui"
)

// Flags for the `tui` command line command, for `go-flags` to parse command
// line args into.
type TUICommand struct {
	Pad           string `long:"pad" description:"Select the pad to use by name (otherwise the first configured pad is used)" value-name:"<name>"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in the config file"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Executes the tui command.
// (This gets called by `go-flags` when `tui` is provided on the command line)
func (command *TUICommand) Execute(args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal, consider the 'simulate' command instead")
	}

	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging (%w)", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	envData := control.EnvData{
		BaseDirPath: baseDirPath(),
		PadName:     command.Pad,
	}

	loader := config.NewLoader(config.ResolvePath(envData.BaseDirPath), themeFromString(command.Theme))
	configData, err := loader.Load()
	if err != nil {
		return fmt.Errorf("can't load config (%w)", err)
	}

	screen, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}
	controller, err := NewController(screen, envData, configData)
	if err != nil {
		screen.Fini()
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loader.OnChange(func(c config.Config) {
		controller.Post(func() { controller.ApplyConfig(c) })
	})
	if err := loader.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("not watching config file for changes")
	}
	defer loader.Close()

	controller.Run()
	return nil
}
