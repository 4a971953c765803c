package pincode

// Shadow describes the drop shadow drawn below each slot icon.
type Shadow struct {
	Color   string
	Opacity float64
	Offset  Offset
	Radius  int
	// Scale indicates that the offset should be scaled to the display, i.E.
	// horizontal offsets are doubled to account for terminal cells being about
	// twice as high as they are wide.
	Scale bool
}

// DefaultShadow returns the default shadow.
func DefaultShadow() Shadow {
	return Shadow{
		Color:   "#000000",
		Opacity: 0.5,
		Offset:  Offset{X: 1, Y: 1},
		Radius:  1,
		Scale:   true,
	}
}

// ShadowOption modifies a shadow under construction.
type ShadowOption func(*Shadow)

// WithShadowColor sets the shadow color (hex notation, e.g. '#0000ff').
func WithShadowColor(color string) ShadowOption {
	return func(s *Shadow) { s.Color = color }
}

// WithShadowOpacity sets the shadow opacity; values are clamped to [0,1].
func WithShadowOpacity(opacity float64) ShadowOption {
	return func(s *Shadow) {
		switch {
		case opacity < 0:
			s.Opacity = 0
		case opacity > 1:
			s.Opacity = 1
		default:
			s.Opacity = opacity
		}
	}
}

// WithShadowOffset sets the shadow offset.
func WithShadowOffset(x, y int) ShadowOption {
	return func(s *Shadow) { s.Offset = Offset{X: x, Y: y} }
}

// WithShadowRadius sets the shadow radius; negative values are treated as 0.
func WithShadowRadius(radius int) ShadowOption {
	return func(s *Shadow) {
		if radius < 0 {
			radius = 0
		}
		s.Radius = radius
	}
}

// WithShadowScale sets whether the offset is scaled to the display.
func WithShadowScale(scale bool) ShadowOption {
	return func(s *Shadow) { s.Scale = scale }
}

// NewShadow returns the default shadow modified by the given options.
func NewShadow(opts ...ShadowOption) Shadow {
	s := DefaultShadow()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// EffectiveOffset returns the offset at which the shadow is to be drawn,
// taking scaling into account.
func (s Shadow) EffectiveOffset() Offset {
	if s.Scale {
		return Offset{X: s.Offset.X * 2, Y: s.Offset.Y}
	}
	return s.Offset
}
