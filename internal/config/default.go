package config

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Pads:       defaultPads(colorschemeType),
		Keys: map[string]string{
			"<bs>":   "delete-symbol",
			"<c-bs>": "delete-symbol",
			"<del>":  "delete-symbol",
			"<c-u>":  "clear",
			"<c-r>":  "reset",
			"<c-k>":  "toggle-keyboard",
			"<c-g>":  "toggle-help",
			"<c-o>":  "toggle-log",
			"<c-p>":  "toggle-debug",
			"<esc>":  "quit",
			"<c-c>":  "quit",
		},
	}
}

func defaultPads(colorschemeType ColorschemeType) []Pad {
	emptyBg, fg := "#202020", "#f0f0f0"
	if colorschemeType == Light {
		emptyBg, fg = "#f0f0f0", "#000000"
	}
	opacity := 0.4
	return []Pad{
		{
			Name:   "pin",
			Title:  `Pin is "1234"`,
			Secret: "1234",
			SecureGlyphs: []Glyph{
				{Rune: "L", Fg: "#ffffff", Bg: "#3a751a"},
				{Rune: "O", Fg: "#ffffff", Bg: "#0065a3"},
				{Rune: "G", Fg: "#ffffff", Bg: "#cc8f00"},
				{Rune: "O", Fg: "#ffffff", Bg: "#a3008b"},
			},
			EmptyGlyph:       Glyph{Rune: "·", Fg: fg, Bg: emptyBg},
			SuccessGlyph:     &Glyph{Rune: "☺", Fg: "#c2edab", Bg: "#3a751a"},
			FailureGlyph:     &Glyph{Rune: "☹", Fg: "#ffaaaa", Bg: "#882222"},
			Shadow:           &Shadow{Color: "#000000"},
			Font:             &FontStyle{Bold: true},
			Padding:          Insets{Top: 0, Left: 1, Bottom: 0, Right: 1},
			SymbolOffset:     Offset{X: 0, Y: 0},
			MaskDelay:        "200ms",
			FeedbackDuration: "600ms",
		},
		{
			Name:   "password",
			Title:  `Password is "company"`,
			Secret: "company",
			SecureGlyphs: []Glyph{
				{Rune: "C", Fg: "#ffffff", Bg: "#404080"},
				{Rune: "O", Fg: "#ffffff", Bg: "#404080"},
				{Rune: "M", Fg: "#ffffff", Bg: "#404080"},
				{Rune: "P", Fg: "#ffffff", Bg: "#404080"},
				{Rune: "A", Fg: "#ffffff", Bg: "#404080"},
				{Rune: "N", Fg: "#ffffff", Bg: "#404080"},
				{Rune: "Y", Fg: "#ffffff", Bg: "#404080"},
			},
			EmptyGlyph:       Glyph{Rune: "□", Fg: fg, Bg: emptyBg},
			SuccessGlyph:     &Glyph{Rune: "▲", Fg: "#c2edab", Bg: "#3a751a"},
			FailureGlyph:     &Glyph{Rune: "▼", Fg: "#ffaaaa", Bg: "#882222"},
			Shadow:           &Shadow{Color: "#0000ff", Opacity: &opacity, Offset: &Offset{X: 2, Y: -2}},
			Padding:          Insets{Top: 1, Left: 1, Bottom: 1, Right: 1},
			MaskDelay:        "200ms",
			FeedbackDuration: "1s",
			MaxAttempts:      3,
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Pad:               Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Keypad:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			KeypadButton:      Styling{Fg: "#000000", Bg: "#f2f2f2", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#f0f0f0", Bg: "#ffffff", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Pad:               Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Keypad:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		KeypadButton:      Styling{Fg: "#ffffff", Bg: "#303030", Style: &FontStyle{Bold: true}},
		Status:            Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
		Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
	}
}
