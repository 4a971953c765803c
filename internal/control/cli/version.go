package cli

import (
	"fmt"
	"runtime/debug"
)

// For release builds, these variables should be set via ldflags. Otherwise
// the version control info embedded by the go toolchain is used, if present.
var version = "development"
var hash = "unknown"

// Flags for the `version` command line command, for `go-flags` to parse
// command line args into.
type VersionCommand struct {
}

// Executes the version command.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	fmt.Println(versionString())
	return nil
}

func versionString() string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(version, hash, info)
}

func formatVersion(version, hash string, info *debug.BuildInfo) string {
	if info != nil {
		if version == "development" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch {
			case setting.Key == "vcs.revision" && hash == "unknown":
				hash = setting.Value
			case setting.Key == "vcs.modified" && setting.Value == "true":
				hash += "-dirty"
			}
		}
	}
	return fmt.Sprintf("%s (%s)", version, hash)
}
