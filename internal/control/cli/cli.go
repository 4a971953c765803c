// Package cli provides the command-line interface for pinpad.
package cli

import (
	"os"
	"strings"

	"github.com/ja-he/pinpad/internal/config"
)

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TUICommand      TUICommand      `command:"tui" subcommands-optional:"true"`
	SimulateCommand SimulateCommand `command:"simulate" subcommands-optional:"true"`
	VersionCommand  VersionCommand  `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts

// baseDirPath returns the directory containing the config file, which is
// '${PINPAD_HOME}' if set and '~/.config/pinpad' otherwise.
func baseDirPath() string {
	pinpadHome := os.Getenv("PINPAD_HOME")
	if pinpadHome == "" {
		return os.Getenv("HOME") + "/.config/pinpad"
	}
	return strings.TrimRight(pinpadHome, "/")
}

func themeFromString(theme string) config.ColorschemeType {
	switch theme {
	case "light":
		return config.Light
	case "dark":
		return config.Dark
	default:
		return config.Dark
	}
}
