package pty

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer sends input bytes to the PTY master and reports window-size
// changes to the kernel via TIOCSWINSZ (spec.md §6 external interface),
// grounded in cliofy-govte/examples/capture_tui/main.go's use of
// golang.org/x/term alongside creack/pty, generalized from that
// example's read-only capture to a writable session.
type Writer struct {
	f *os.File
}

func NewWriter(f *os.File) *Writer { return &Writer{f: f} }

// Write forwards keystrokes/paste bytes to the child process unchanged.
func (w *Writer) Write(p []byte) (int, error) { return w.f.Write(p) }

// Resize reports a new terminal size to the PTY so the child's own
// SIGWINCH handling fires (spec.md §4.6/§6: "on resize(rows, cols),
// send a WindowResized message out of band" describes the controller
// side; this is the matching transport-side ioctl).
func (w *Writer) Resize(rows, cols int) error {
	ws := &unix.Winsize{Row: uint16(rows), Col: uint16(cols)}
	return unix.IoctlSetWinsize(int(w.f.Fd()), unix.TIOCSWINSZ, ws)
}
