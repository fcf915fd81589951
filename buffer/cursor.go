// Package buffer implements the screen buffer (C3): a rows x cols Cell
// grid with cursor, saved cursor, scroll region and resize/erase/scroll
// primitives. Grounded in cliofy-govte/terminal/buffer.go for method shape
// and doc-comment style, generalized to original_source/structs/buffer.rs
// semantics (top-discarding resize, shift_row/unshift_row, clear_selection
// variants).
package buffer

import "github.com/vteterm/engine/cell"

// Style is the cursor's visual style, set by CSI n SP q (DECSCUSR).
// All six VT-100 variants are modelled (spec.md §3); the teacher's
// original CursorShape only had three (Block/Beam/Underline) — expanded
// here per SPEC_FULL.md §12, grounded in
// original_source/structs/cursor.rs::CursorStyle.
type Style uint8

const (
	BlinkingBlock Style = iota
	SteadyBlock
	BlinkingUnderline
	SteadyUnderline
	BlinkingBar
	SteadyBar
)

// StyleFromParam maps the CSI `n SP q` parameter to a Style, per
// spec.md §4.5's CursorStyle dispatch table. Unknown values fall back to
// SteadyBlock (original_source's CursorStyle::default()).
func StyleFromParam(n int) Style {
	switch n {
	case 0, 1:
		return BlinkingBlock
	case 2:
		return SteadyBlock
	case 3:
		return BlinkingUnderline
	case 4:
		return SteadyUnderline
	case 5:
		return BlinkingBar
	case 6:
		return SteadyBar
	default:
		return SteadyBlock
	}
}

// Cursor is the current write position plus its visual style and
// visibility (spec.md §3).
type Cursor struct {
	Row, Col int
	Style    Style
	Hidden   bool
}

// Saved is the {row, col, style} snapshot taken by CSI s / restored by
// CSI u (spec.md §3 "per-buffer").
type Saved struct {
	Row, Col int
	Style    Style
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetPosition clamps (row, col) into the buffer per spec.md §4.3.
func (c *Cursor) SetPosition(row, col, maxRow, maxCol int) {
	c.Row = clamp(row, 0, maxRow)
	c.Col = clamp(col, 0, maxCol)
}
