package styling

import (
	"errors"
	"fmt"

	"github.com/ja-he/pinpad/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	Pad          DrawStyling
	Keypad       DrawStyling
	KeypadButton DrawStyling

	Status DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet, or returns an error naming the styles with invalid colors.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	var errs []error
	style := func(name string, s config.Styling) DrawStyling {
		for _, hex := range []string{s.Fg, s.Bg} {
			if err := ValidateHex(hex); err != nil {
				errs = append(errs, fmt.Errorf("style '%s': %w", name, err))
				return nil
			}
		}
		return StyleFromConfig(s)
	}

	stylesheet := &Stylesheet{
		Normal:            style("normal", c.Normal),
		Pad:               style("pad", c.Pad),
		Keypad:            style("keypad", c.Keypad),
		KeypadButton:      style("keypad-button", c.KeypadButton),
		Status:            style("status", c.Status),
		LogDefault:        style("log-default", c.LogDefault),
		LogTitleBox:       style("log-title-box", c.LogTitleBox),
		LogEntryTypeError: style("log-entry-type-error", c.LogEntryTypeError),
		LogEntryTypeWarn:  style("log-entry-type-warn", c.LogEntryTypeWarn),
		LogEntryTypeInfo:  style("log-entry-type-info", c.LogEntryTypeInfo),
		LogEntryTypeDebug: style("log-entry-type-debug", c.LogEntryTypeDebug),
		LogEntryTypeTrace: style("log-entry-type-trace", c.LogEntryTypeTrace),
		LogEntryLocation:  style("log-entry-location", c.LogEntryLocation),
		LogEntryTime:      style("log-entry-time", c.LogEntryTime),
		Help:              style("help", c.Help),
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return stylesheet, nil
}
