package buffer

import "github.com/vteterm/engine/cell"

// DirectionKind is which axis/way Buffer.MoveCursor moves.
type DirectionKind uint8

const (
	Up DirectionKind = iota
	Down
	Left
	Right
)

// Direction is a move_cursor argument: a DirectionKind plus a step count.
type Direction struct {
	Kind DirectionKind
	N    int
}

// Selection names the span clear_selection zeroes to the default Cell
// (spec.md §4.3).
type Selection struct {
	Kind SelectionKind
	N    int // only meaningful for SelectionCharacters
}

type SelectionKind uint8

const (
	SelLine SelectionKind = iota
	SelFromStartOfLine
	SelToEndOfLine
	SelToEndOfDisplay
	SelCharacters
)

// Buffer is the C3 screen buffer: a rows x cols Cell grid, row-major, with
// a cursor, saved cursor and scroll region. Invariants (spec.md §3/§4.3):
// len(Data) == Rows*Cols at all times; 0 <= Top <= Bottom < Rows;
// Cursor.Row in [0,Rows), Cursor.Col in [0,Cols] (the Cols value only
// transiently, as a deferred-wrap marker).
type Buffer struct {
	Rows, Cols int
	Data       []cell.Cell
	Top, Bottom int
	Cursor      Cursor
	savedCursor *Saved
}

// New creates a Buffer of the given shape, filled with default cells and
// a scroll region spanning the whole grid.
func New(rows, cols int) *Buffer {
	data := make([]cell.Cell, rows*cols)
	for i := range data {
		data[i] = cell.DefaultCell()
	}
	return &Buffer{
		Rows: rows, Cols: cols, Data: data,
		Top: 0, Bottom: rows - 1,
	}
}

func (b *Buffer) index(row, col int) int { return row*b.Cols + col }

// Get returns a pointer to the cell at (row, col), or nil if out of range.
func (b *Buffer) Get(row, col int) *cell.Cell {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols {
		return nil
	}
	return &b.Data[b.index(row, col)]
}

// wrapCursorDown resolves a pending deferred-wrap: advances to column 0
// of the next row, scrolling the scroll region if already at the last row
// of the buffer (mirrors Newline's scroll condition exactly, since a wrap
// at the bottom row behaves identically to a bare line feed).
func (b *Buffer) wrapCursorDown() {
	if b.Cursor.Row == b.Rows-1 {
		b.shiftRow()
	} else {
		b.Cursor.Row = clamp(b.Cursor.Row+1, 0, b.Rows-1)
	}
	b.Cursor.Col = 0
}

// Write stores ch/style at the cursor (spec.md §4.3). If the cursor is in
// the deferred-wrap transient (Col == Cols) from a prior AdvanceCursor,
// the wrap is resolved first so the character lands at column 0 of the
// next row — "next write first wraps then emits", per spec.md §3.
func (b *Buffer) Write(ch rune, style cell.CellStyle) {
	if b.Cursor.Col == b.Cols {
		b.wrapCursorDown()
	}
	if c := b.Get(b.Cursor.Row, b.Cursor.Col); c != nil {
		c.Content = ch
		c.Style = style
	}
}

// AdvanceCursor moves the cursor after a write, per spec.md §4.3: if
// already at the last column and wrap is enabled, the column becomes the
// deferred-wrap marker (Cols); if wrap is disabled the cursor simply
// stays put at the last column; otherwise the column advances by one.
func (b *Buffer) AdvanceCursor(wrap bool) {
	if b.Cursor.Col >= b.Cols-1 {
		if wrap {
			b.Cursor.Col = b.Cols
		}
		return
	}
	b.Cursor.Col++
}

// MoveCursor moves the cursor by Direction.N, saturating at the buffer
// edges (not the scroll-region edges), per spec.md §4.3.
func (b *Buffer) MoveCursor(d Direction) {
	switch d.Kind {
	case Up:
		b.Cursor.Row = clamp(b.Cursor.Row-d.N, 0, b.Rows-1)
	case Down:
		b.Cursor.Row = clamp(b.Cursor.Row+d.N, 0, b.Rows-1)
	case Left:
		b.Cursor.Col = clamp(b.Cursor.Col-d.N, 0, b.Cols-1)
	case Right:
		b.Cursor.Col = clamp(b.Cursor.Col+d.N, 0, b.Cols-1)
	}
}

// SetPosition clamps the cursor to (row, col) within the buffer.
func (b *Buffer) SetPosition(row, col int) {
	b.Cursor.SetPosition(row, col, b.Rows-1, b.Cols-1)
}

// SaveCursor snapshots {row, col, style} (spec.md §4.3).
func (b *Buffer) SaveCursor() {
	b.savedCursor = &Saved{Row: b.Cursor.Row, Col: b.Cursor.Col, Style: b.Cursor.Style}
}

// RestoreCursor restores the snapshot taken by SaveCursor and clears it.
func (b *Buffer) RestoreCursor() {
	if b.savedCursor == nil {
		return
	}
	b.Cursor.Row = b.savedCursor.Row
	b.Cursor.Col = b.savedCursor.Col
	b.Cursor.Style = b.savedCursor.Style
	b.savedCursor = nil
}

// shiftRow appends an empty row at Bottom and removes the row at Top
// within the scroll region (forward scroll, used by Newline).
func (b *Buffer) shiftRow() {
	from := b.Top * b.Cols
	to := (b.Bottom + 1) * b.Cols
	copy(b.Data[from:to-b.Cols], b.Data[from+b.Cols:to])
	for i := to - b.Cols; i < to; i++ {
		b.Data[i] = cell.DefaultCell()
	}
}

// Newline implements spec.md §4.3's newline primitive: scrolls the
// region when already at the buffer's last row (matching
// original_source's Buffer::newline, which checks against the buffer's
// last row rather than the scroll region's Bottom), otherwise moves the
// cursor down one. If newlineMode is set, the cursor also returns to
// column 0.
func (b *Buffer) Newline(newlineMode bool) {
	if b.Cursor.Row == b.Rows-1 {
		b.shiftRow()
	} else {
		b.Cursor.Row = clamp(b.Cursor.Row+1, 0, b.Rows-1)
	}
	if newlineMode {
		b.Cursor.Col = 0
	}
}

// UnshiftRow implements reverse index (ESC M): if the cursor sits at the
// scroll region's Top, the region's contents shift down by one (a blank
// row appears at Top); otherwise the cursor simply moves up one.
func (b *Buffer) UnshiftRow() {
	if b.Cursor.Row == b.Top {
		from := b.Top * b.Cols
		to := b.Bottom * b.Cols
		copy(b.Data[from+b.Cols:to+b.Cols], b.Data[from:to])
		for i := from; i < from+b.Cols; i++ {
			b.Data[i] = cell.DefaultCell()
		}
		return
	}
	b.Cursor.Row = clamp(b.Cursor.Row-1, 0, b.Rows-1)
}

// CarriageReturn moves the cursor to column 0.
func (b *Buffer) CarriageReturn() { b.Cursor.Col = 0 }

// Backspace moves the cursor left by one without erasing.
func (b *Buffer) Backspace() {
	b.Cursor.Col = clamp(b.Cursor.Col-1, 0, b.Cols-1)
}

// ClearSelection zeroes the named span to the default Cell (spec.md §4.3).
func (b *Buffer) ClearSelection(sel Selection) {
	row := b.Cursor.Row
	var from, to int
	switch sel.Kind {
	case SelLine:
		from, to = row*b.Cols, (row+1)*b.Cols
	case SelFromStartOfLine:
		from, to = row*b.Cols, row*b.Cols+b.Cursor.Col
	case SelToEndOfLine:
		from, to = row*b.Cols+b.Cursor.Col, (row+1)*b.Cols
	case SelToEndOfDisplay:
		from, to = row*b.Cols+b.Cursor.Col, len(b.Data)
	case SelCharacters:
		from = row*b.Cols + b.Cursor.Col
		to = from + sel.N
	}
	from = clamp(from, 0, len(b.Data))
	to = clamp(to, 0, len(b.Data))
	for i := from; i < to; i++ {
		b.Data[i] = cell.DefaultCell()
	}
}

// Resize reshapes the buffer to rows x cols. When shrinking the row
// count, rows are discarded from the top, preserving the most recently
// written content (spec.md §4.3 "matching a natural shell workflow") —
// a deliberate deviation from the teacher's terminal/buffer.go, which
// discarded from the bottom; see DESIGN.md.
func (b *Buffer) Resize(rows, cols int) {
	if rows < b.Rows {
		dropped := b.Rows - rows
		b.Data = append([]cell.Cell(nil), b.Data[dropped*b.Cols:]...)
		b.Rows = rows
		b.Cursor.Row = clamp(b.Cursor.Row-dropped, 0, max(rows-1, 0))
		if b.savedCursor != nil {
			b.savedCursor.Row = clamp(b.savedCursor.Row-dropped, 0, max(rows-1, 0))
		}
	}

	if rows != b.Rows || cols != b.Cols {
		newData := make([]cell.Cell, rows*cols)
		for i := range newData {
			newData[i] = cell.DefaultCell()
		}
		copyRows := min(b.Rows, rows)
		copyCols := min(b.Cols, cols)
		for r := 0; r < copyRows; r++ {
			copy(newData[r*cols:r*cols+copyCols], b.Data[r*b.Cols:r*b.Cols+copyCols])
		}
		b.Data = newData
		b.Rows = rows
		b.Cols = cols
	}

	b.Cursor.Col = clamp(b.Cursor.Col, 0, max(b.Cols-1, 0))
	b.Cursor.Row = clamp(b.Cursor.Row, 0, max(b.Rows-1, 0))
	if b.Bottom >= b.Rows {
		b.Bottom = b.Rows - 1
	}
	if b.Top > b.Bottom {
		b.Top = 0
	}
}

// SetTopBottom sets the scroll region. Both arguments are zero-based here
// even though the wire protocol is 1-based; the controller translates
// (spec.md §4.3).
func (b *Buffer) SetTopBottom(top, bottom int) {
	b.Top = clamp(top, 0, b.Rows-1)
	b.Bottom = clamp(bottom, b.Top, b.Rows-1)
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

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
