// Package cell implements the cell-style register (C4): the Color sum
// type and the CellStyle SGR attribute interpreter. Grounded in
// cliofy-govte's ansi.go (NamedColor/Color shapes) and
// original_source/structs/cell.rs (CellStyle.modify dispatch shape), with
// the 8-bit palette conversion following spec.md §9's exact formula.
package cell

import "fmt"

// ColorKind tags which field of Color is meaningful.
type ColorKind uint8

const (
	// ColorDefault is the terminal's default foreground/background.
	ColorDefault ColorKind = iota
	// ColorNamed is one of the 8 base ANSI colours (0-7) or their bright
	// counterparts (8-15).
	ColorNamed
	// ColorIndexed is an 8-bit palette index (0-255).
	ColorIndexed
	// ColorRGB is a 24-bit true-colour value.
	ColorRGB
)

// NamedColor enumerates the 16 standard ANSI colours.
type NamedColor uint8

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Color is a sum type over {Default, Named, Indexed(0-255), RGB}.
// Reversing a CellStyle swaps which Color is reported as foreground vs
// background at render time without mutating either field (spec.md §3).
type Color struct {
	Kind    ColorKind
	Named   NamedColor
	Index   uint8
	R, G, B uint8
}

// DefaultColor is the zero Color (ColorDefault).
var DefaultColor = Color{Kind: ColorDefault}

// NewNamedColor constructs a Color wrapping a NamedColor.
func NewNamedColor(c NamedColor) Color { return Color{Kind: ColorNamed, Named: c} }

// NewIndexedColor constructs a Color wrapping an 8-bit palette index.
func NewIndexedColor(index uint8) Color { return Color{Kind: ColorIndexed, Index: index} }

// NewRGBColor constructs a 24-bit true-colour Color.
func NewRGBColor(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// ToRGB resolves any Color variant to a concrete 24-bit triple. Named
// colours use the conventional xterm 16-colour palette; ColorDefault
// resolves to light grey (0xbf, 0xbf, 0xbf) whether it is used as a
// foreground or a background (CellStyle.ForegroundColor()/BackgroundColor()
// return ColorDefault unresolved, so it is this method that maps it).
func (c Color) ToRGB() (uint8, uint8, uint8) {
	switch c.Kind {
	case ColorNamed:
		return namedToRGB(c.Named)
	case ColorIndexed:
		return indexedToRGB(c.Index)
	case ColorRGB:
		return c.R, c.G, c.B
	default:
		return 0xbf, 0xbf, 0xbf
	}
}

func (c Color) String() string {
	switch c.Kind {
	case ColorNamed:
		return fmt.Sprintf("Named(%d)", c.Named)
	case ColorIndexed:
		return fmt.Sprintf("Indexed(%d)", c.Index)
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	default:
		return "Default"
	}
}

var namedPalette = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
	{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
	{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

func namedToRGB(n NamedColor) (uint8, uint8, uint8) {
	if int(n) >= len(namedPalette) {
		return 0, 0, 0
	}
	rgb := namedPalette[n]
	return rgb[0], rgb[1], rgb[2]
}

// indexedToRGB converts an 8-bit palette index to 24-bit RGB per spec.md
// §9: indices 0-15 are the named colours, 16-231 are a 6x6x6 colour cube
// (r = (n-16)/36, g = (n-16)/6 mod 6, b = (n-16) mod 6, each scaled
// 0->0, k>0->55+40k), and 232-255 are a grey ramp (gray = 8+10(n-232)).
//
// This formula numerically coincides with the fixed lookup table
// {0,95,135,175,215,255} the teacher used (55+40*1=95, 55+40*2=135, ...);
// it is implemented as the formula here because spec.md §9 is the
// authoritative wire-format contract, not because the two disagree.
func indexedToRGB(n uint8) (uint8, uint8, uint8) {
	switch {
	case n < 16:
		return namedToRGB(NamedColor(n))
	case n < 232:
		m := int(n) - 16
		r := m / 36
		g := (m / 6) % 6
		b := m % 6
		return cubeScale(r), cubeScale(g), cubeScale(b)
	default:
		gray := 8 + 10*(int(n)-232)
		return uint8(gray), uint8(gray), uint8(gray)
	}
}

func cubeScale(k int) uint8 {
	if k == 0 {
		return 0
	}
	return uint8(55 + 40*k)
}
