package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/pinpad/internal/control/cli"
)

func main() {
	// stderr logger until a command (e.g. tui) sets up its own
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	parser := flags.NewParser(&cli.Opts, flags.Default)
	parser.SubcommandsOptional = true

	_, err := parser.Parse()
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		fatal(err)
	}

	switch {
	case cli.Opts.Version:
		err = (&cli.VersionCommand{}).Execute(nil)
	case parser.Active == nil:
		// plain `pinpad` is `pinpad tui`
		err = cli.Opts.TUICommand.Execute(nil)
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "fatal error:\n > %s\n", err.Error())
	os.Exit(1)
}
