// Package terminal implements the terminal controller (C5): mode flags,
// the primary/alternate buffer switch, and the dispatch table that
// applies C2's Output stream to the active buffer. Grounded in
// cliofy-govte/processor.go's CSI dispatch-table shape, generalized from
// Handler-callback style to a direct switch over ansiseq.AnsiSequence
// variants, and in original_source/src/term/terminal_output.rs for the
// token-to-effect mapping.
package terminal

import (
	"github.com/google/uuid"

	"github.com/vteterm/engine/buffer"
	"github.com/vteterm/engine/cell"
)

// Options configures a new Terminal (spec.md §3 "Lifecycles").
type Options struct {
	Rows, Cols int
}

// Terminal owns the primary buffer and an optional alternate buffer, the
// current cell-style register, and the modal flags spec.md §3 names.
// Only one of Primary/Alternate is ever "active"; Active returns whichever
// one is selected so callers never hold two mutable aliases at once
// (spec.md §9 "Cyclic references and mutable aliasing").
type Terminal struct {
	ID uuid.UUID

	primary   *buffer.Buffer
	alternate *buffer.Buffer
	onAlt     bool

	CurrentStyle cell.CellStyle

	ApplicationMode bool
	NewlineMode     bool
	FocusMode       bool
	AutoWrapMode    bool
	CursorVisible   bool
}

// New creates a Terminal with a fresh primary buffer of the given shape;
// the alternate buffer is allocated lazily on first `?1049h`.
func New(opts Options) *Terminal {
	return &Terminal{
		ID:            uuid.New(),
		primary:       buffer.New(opts.Rows, opts.Cols),
		CurrentStyle:  cell.Default(),
		AutoWrapMode:  true,
		CursorVisible: true,
	}
}

// Active returns the buffer every read/write currently targets: the
// alternate buffer when selected, the primary buffer otherwise.
func (t *Terminal) Active() *buffer.Buffer {
	if t.onAlt && t.alternate != nil {
		return t.alternate
	}
	return t.primary
}

// Primary exposes the primary buffer directly (e.g. for a read-only UI
// snapshot; spec.md §6 rendering contract).
func (t *Terminal) Primary() *buffer.Buffer { return t.primary }

// EnterAlternate allocates (if needed) and switches to the alternate
// buffer. The primary buffer's cells and cursor are left untouched
// (spec.md §3).
func (t *Terminal) EnterAlternate() {
	if t.alternate == nil {
		t.alternate = buffer.New(t.primary.Rows, t.primary.Cols)
	}
	t.onAlt = true
}

// ExitAlternate switches back to the primary buffer. The alternate
// buffer's contents are dropped (spec.md §8's
// `DecPrivateModeSet(1049); DecPrivateModeReset(1049)` law only promises
// the primary buffer is restored exactly, not that the alternate survives).
func (t *Terminal) ExitAlternate() {
	t.onAlt = false
	t.alternate = nil
}

// Resize mutates the active buffer's dimensions in place (spec.md §3
// "Resizes mutate the active buffer's dimensions"). Only the active buffer
// is resized: while the alternate screen is active, the primary buffer
// keeps its previous shape.
func (t *Terminal) Resize(rows, cols int) {
	t.Active().Resize(rows, cols)
}
