package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vteterm/engine/cell"
)

func TestNewBufferInvariants(t *testing.T) {
	b := New(24, 80)
	assert.Len(t, b.Data, 24*80)
	assert.Equal(t, 0, b.Top)
	assert.Equal(t, 23, b.Bottom)
	assert.Equal(t, cell.DefaultCell(), *b.Get(0, 0))
}

func TestWriteAndAdvanceDeferredWrap(t *testing.T) {
	b := New(2, 3)
	style := cell.Default()

	b.Write('a', style)
	b.AdvanceCursor(true)
	b.Write('b', style)
	b.AdvanceCursor(true)
	b.Write('c', style)
	b.AdvanceCursor(true)
	// Cursor is now in the deferred-wrap transient (Col == Cols).
	require.Equal(t, 3, b.Cursor.Col)
	require.Equal(t, 0, b.Cursor.Row)

	// Next write resolves the wrap before emitting.
	b.Write('d', style)
	assert.Equal(t, 1, b.Cursor.Row)
	assert.Equal(t, 0, b.Cursor.Col)
	assert.Equal(t, 'd', b.Get(1, 0).Content)
	assert.Equal(t, 'a', b.Get(0, 0).Content)
	assert.Equal(t, 'c', b.Get(0, 2).Content)
}

func TestAdvanceCursorNoWrapClampsAtLastColumn(t *testing.T) {
	b := New(2, 3)
	b.Cursor.Col = 2
	b.AdvanceCursor(false)
	assert.Equal(t, 2, b.Cursor.Col)
}

func TestNewlineScrollsAtLastRow(t *testing.T) {
	b := New(2, 3)
	b.Data[0*3+0] = cell.Cell{Content: 'A'}
	b.Data[1*3+0] = cell.Cell{Content: 'B'}
	b.Cursor.Row = 1

	b.Newline(true)

	assert.Equal(t, 1, b.Cursor.Row)
	assert.Equal(t, 0, b.Cursor.Col)
	assert.Equal(t, 'B', b.Get(0, 0).Content)
	assert.Equal(t, ' ', b.Get(1, 0).Content)
}

func TestUnshiftRowAtTop(t *testing.T) {
	b := New(3, 2)
	b.Data[0*2+0] = cell.Cell{Content: 'X'}
	b.Cursor.Row = 0

	b.UnshiftRow()

	assert.Equal(t, ' ', b.Get(0, 0).Content)
	assert.Equal(t, 'X', b.Get(1, 0).Content)
	assert.Equal(t, 0, b.Cursor.Row)
}

func TestSaveRestoreCursor(t *testing.T) {
	b := New(5, 5)
	b.Cursor.Row, b.Cursor.Col = 2, 3
	b.SaveCursor()
	b.Cursor.Row, b.Cursor.Col = 0, 0
	b.RestoreCursor()
	assert.Equal(t, 2, b.Cursor.Row)
	assert.Equal(t, 3, b.Cursor.Col)
}

func TestResizeShrinkDiscardsFromTop(t *testing.T) {
	b := New(4, 2)
	for r := 0; r < 4; r++ {
		b.Data[r*2] = cell.Cell{Content: rune('A' + r)}
	}
	b.Cursor.Row = 3

	b.Resize(2, 2)

	assert.Equal(t, 2, b.Rows)
	assert.Equal(t, 'C', b.Get(0, 0).Content)
	assert.Equal(t, 'D', b.Get(1, 0).Content)
	assert.Equal(t, 1, b.Cursor.Row)
}

func TestResizeGrowPreservesContent(t *testing.T) {
	b := New(2, 2)
	b.Data[0] = cell.Cell{Content: 'Z'}
	b.Resize(4, 4)
	assert.Equal(t, 4, b.Rows)
	assert.Equal(t, 4, b.Cols)
	assert.Equal(t, 'Z', b.Get(0, 0).Content)
	assert.Equal(t, cell.DefaultCell(), *b.Get(3, 3))
}

func TestResizeIdempotent(t *testing.T) {
	b := New(10, 20)
	b.Resize(10, 20)
	assert.Equal(t, 10, b.Rows)
	assert.Equal(t, 20, b.Cols)
}

func TestClearSelectionToEndOfLine(t *testing.T) {
	b := New(1, 5)
	for i := 0; i < 5; i++ {
		b.Data[i] = cell.Cell{Content: 'x'}
	}
	b.Cursor.Col = 2
	b.ClearSelection(Selection{Kind: SelToEndOfLine})
	assert.Equal(t, 'x', b.Get(0, 0).Content)
	assert.Equal(t, 'x', b.Get(0, 1).Content)
	assert.Equal(t, ' ', b.Get(0, 2).Content)
	assert.Equal(t, ' ', b.Get(0, 4).Content)
}

func TestSetTopBottomClamps(t *testing.T) {
	b := New(10, 10)
	b.SetTopBottom(2, 100)
	assert.Equal(t, 2, b.Top)
	assert.Equal(t, 9, b.Bottom)
}
