package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${PINPAD_HOME}/config.yaml' (or 'config.toml').
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet" toml:"stylesheet"`
	Pads       []Pad             `yaml:"pads" toml:"pads"`
	Keys       map[string]string `yaml:"keys" toml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal" toml:"normal"`
	Pad               Styling `yaml:"pad" toml:"pad"`
	Keypad            Styling `yaml:"keypad" toml:"keypad"`
	KeypadButton      Styling `yaml:"keypad-button" toml:"keypad-button"`
	Status            Styling `yaml:"status" toml:"status"`
	LogDefault        Styling `yaml:"log-default" toml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box" toml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error" toml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn" toml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info" toml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug" toml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace" toml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location" toml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time" toml:"log-entry-time"`
	Help              Styling `yaml:"help" toml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg" toml:"fg"`
	Bg    string     `yaml:"bg" toml:"bg"`
	Style *FontStyle `yaml:"style" toml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty" toml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty" toml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty" toml:"underlined,omitempty"`
}

// A Pad is an entry pad as defined in a config file, i.E. the look of its
// slots and the secret it expects.
//
// Durations are in the format of time.ParseDuration.
type Pad struct {
	Name   string `yaml:"name" toml:"name"`
	Title  string `yaml:"title,omitempty" toml:"title,omitempty"`
	Secret string `yaml:"secret" toml:"secret"`

	SecureGlyphs []Glyph `yaml:"secure-glyphs" toml:"secure-glyphs"`
	EmptyGlyph   Glyph   `yaml:"empty-glyph" toml:"empty-glyph"`
	SuccessGlyph *Glyph  `yaml:"success-glyph,omitempty" toml:"success-glyph,omitempty"`
	FailureGlyph *Glyph  `yaml:"failure-glyph,omitempty" toml:"failure-glyph,omitempty"`

	Shadow *Shadow    `yaml:"shadow,omitempty" toml:"shadow,omitempty"`
	Font   *FontStyle `yaml:"font,omitempty" toml:"font,omitempty"`

	Padding      Insets `yaml:"padding,omitempty" toml:"padding,omitempty"`
	SymbolOffset Offset `yaml:"symbol-offset,omitempty" toml:"symbol-offset,omitempty"`

	MaskDelay        string `yaml:"mask-delay,omitempty" toml:"mask-delay,omitempty"`
	KeyboardEnabled  *bool  `yaml:"keyboard-enabled,omitempty" toml:"keyboard-enabled,omitempty"`
	FeedbackDuration string `yaml:"feedback-duration,omitempty" toml:"feedback-duration,omitempty"`
	MaxAttempts      int    `yaml:"max-attempts,omitempty" toml:"max-attempts,omitempty"`
}

// A Glyph is the look of a slot in a certain state: a single character on a
// colored box.
type Glyph struct {
	Rune string `yaml:"rune" toml:"rune"`
	Fg   string `yaml:"fg" toml:"fg"`
	Bg   string `yaml:"bg" toml:"bg"`
}

// A Shadow is the drop shadow of the slots of a pad.
// Unset values take on defaults.
type Shadow struct {
	Color   string   `yaml:"color,omitempty" toml:"color,omitempty"`
	Opacity *float64 `yaml:"opacity,omitempty" toml:"opacity,omitempty"`
	Offset  *Offset  `yaml:"offset,omitempty" toml:"offset,omitempty"`
	Radius  *int     `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Scale   *bool    `yaml:"scale,omitempty" toml:"scale,omitempty"`
}

// Insets are paddings for four sides.
type Insets struct {
	Top    int `yaml:"top" toml:"top"`
	Left   int `yaml:"left" toml:"left"`
	Bottom int `yaml:"bottom" toml:"bottom"`
	Right  int `yaml:"right" toml:"right"`
}

// Offset is a horizontal and vertical offset.
type Offset struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
}

// PadByName returns the pad with the given name.
// If the name is empty, the first pad is returned.
func (c Config) PadByName(name string) (Pad, error) {
	if len(c.Pads) == 0 {
		return Pad{}, fmt.Errorf("no pads configured")
	}
	if name == "" {
		return c.Pads[0], nil
	}
	for _, pad := range c.Pads {
		if pad.Name == name {
			return pad, nil
		}
	}
	return Pad{}, fmt.Errorf("no pad named '%s' configured", name)
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

// ParseTOMLConfigAugmentDefaults parses the configuration specified in
// TOML-formatted data and uses it to augment a given default configuration.
func ParseTOMLConfigAugmentDefaults(defaultTheme ColorschemeType, tomlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	_, err := toml.Decode(string(tomlData), &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error decoding toml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if len(augment.Pads) > 0 {
		result.Pads = augment.Pads
	}

	result.Keys = make(map[string]string, len(base.Keys)+len(augment.Keys))
	for k, v := range base.Keys {
		result.Keys[k] = v
	}
	for k, v := range augment.Keys {
		result.Keys[k] = v
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Pad.overwriteIfDefined(augment.Pad)
	result.Keypad.overwriteIfDefined(augment.Keypad)
	result.KeypadButton.overwriteIfDefined(augment.KeypadButton)
	result.Status.overwriteIfDefined(augment.Status)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)
	result.Help.overwriteIfDefined(augment.Help)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
