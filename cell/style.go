package cell

// Weight is the font weight axis of CellStyle.
type Weight uint8

const (
	Normal Weight = iota
	Bold
	Dim
)

// CellStyle is the "current graphics rendition" record (C4): a single
// mutable register updated by SGR attribute lists and copied onto every
// cell written while it is active (spec.md §3/§4.4).
type CellStyle struct {
	Foreground    Color
	Background    Color
	Reversed      bool
	Weight        Weight
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// Default is the CellStyle a fresh register (or `SetGraphicsMode([])`)
// resets to.
func Default() CellStyle {
	return CellStyle{Foreground: DefaultColor, Background: DefaultColor}
}

// ForegroundColor reports the colour that should actually render as the
// foreground, honouring Reversed without mutating the stored pair
// (spec.md §3 "Reversing swaps the reported foreground/background at
// render time without mutating the stored pair").
func (s CellStyle) ForegroundColor() Color {
	if s.Reversed {
		return s.Background
	}
	return s.Foreground
}

// BackgroundColor is the render-time counterpart to ForegroundColor.
func (s CellStyle) BackgroundColor() Color {
	if s.Reversed {
		return s.Foreground
	}
	return s.Background
}

// Modify interprets an SGR attribute list left-to-right, per spec.md
// §4.4. An empty list resets to Default. Unknown attribute values are
// skipped without being logged, here or by the caller; extended-colour forms
// (38/48;5;n and 38/48;2;r;g;b) consume the following parameters as part
// of the same attribute, matching original_source's
// `CellStyle::modify`/`Graphics::parse_ansi` left-to-right walk. The
// 90-97/100-107 aixterm bright-colour codes map to the NamedColor
// Bright* variants, not their 30-37/40-47 counterparts.
func (s *CellStyle) Modify(attrs []int) {
	if len(attrs) == 0 {
		*s = Default()
		return
	}

	for i := 0; i < len(attrs); i++ {
		a := attrs[i]
		switch {
		case a == 0:
			*s = Default()
		case a == 1:
			s.Weight = Bold
		case a == 2:
			s.Weight = Dim
		case a == 3:
			s.Italic = true
		case a == 4:
			s.Underline = true
		case a == 7:
			s.Reversed = true
		case a == 9:
			s.Strikethrough = true
		case a == 24:
			s.Underline = false
		case a == 27:
			s.Reversed = false
		case a == 39:
			s.Foreground = DefaultColor
		case a == 49:
			s.Background = DefaultColor
		case a >= 10 && a <= 19:
			// Font select, not modelled (spec.md §4.4): accepted, ignored.
		case a >= 30 && a <= 37:
			s.Foreground = NewNamedColor(NamedColor(a - 30))
		case a >= 90 && a <= 97:
			s.Foreground = NewNamedColor(NamedColor(a-90) + BrightBlack)
		case a >= 40 && a <= 47:
			s.Background = NewNamedColor(NamedColor(a - 40))
		case a >= 100 && a <= 107:
			s.Background = NewNamedColor(NamedColor(a-100) + BrightBlack)
		case a == 38 || a == 48:
			consumed := applyExtendedColor(s, a, attrs[i+1:])
			i += consumed
		default:
			// Unknown attribute: skipped, not logged.
		}
	}
}

// applyExtendedColor handles `38;5;n`, `48;5;n`, `38;2;r;g;b`,
// `48;2;r;g;b`. Returns how many additional attrs (beyond the leading
// 38/48) were consumed so the caller's loop index can skip past them.
func applyExtendedColor(s *CellStyle, which int, rest []int) int {
	if len(rest) == 0 {
		return 0
	}
	isFg := which == 38

	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return 1
		}
		c := NewIndexedColor(uint8(rest[1]))
		if isFg {
			s.Foreground = c
		} else {
			s.Background = c
		}
		return 2
	case 2:
		if len(rest) < 4 {
			return len(rest)
		}
		c := NewRGBColor(uint8(rest[1]), uint8(rest[2]), uint8(rest[3]))
		if isFg {
			s.Foreground = c
		} else {
			s.Background = c
		}
		return 4
	default:
		return 1
	}
}
