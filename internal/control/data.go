package control

import (
	"github.com/ja-he/pinpad/internal/ui"
	"github.com/ja-he/pinpad/internal/util"
)

// EnvData represents the environment data.
type EnvData struct {
	// BaseDirPath is the directory containing the config file.
	BaseDirPath string
	// PadName is the name of the configured pad to use, the first one if empty.
	PadName string
}

// ControlData is the state of the TUI controller that is not owned by the
// decorator or the verifier.
type ControlData struct {
	CursorPos ui.MouseCursorPos

	EnvData EnvData

	ShowLog   bool
	ShowHelp  bool
	ShowDebug bool

	RenderTimes          util.MetricsHandler
	EventProcessingTimes util.MetricsHandler

	MouseMode bool
}

// NewControlData returns a pointer to new control data for the given
// environment.
func NewControlData(envData EnvData) *ControlData {
	return &ControlData{EnvData: envData}
}
