// Command vteterm is the C0 session wiring: it spawns a child process
// under a PTY, pumps its output through the terminal engine, and prints
// a snapshot of the resulting screen on exit. Grounded in
// cliofy-govte/examples/capture_tui/main.go's
// creack/pty + golang.org/x/term goroutine idiom, generalized from a
// fixed-duration capture to a run-until-exit session and from the
// teacher's TerminalBuffer to the vteterm/engine terminal package.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	creackpty "github.com/creack/pty"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vteterm/engine/internal/logging"
	"github.com/vteterm/engine/pty"
	vteterm "github.com/vteterm/engine/terminal"
)

func main() {
	var (
		verbose = pflag.BoolP("verbose", "v", false, "enable debug logging")
		colors  = pflag.Bool("colors", true, "accepted but unused: the final snapshot is always plain text")
	)
	pflag.Parse()

	log := logging.New(logging.Options{Verbose: *verbose})

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{os.Getenv("SHELL")}
		if args[0] == "" {
			args = []string{"/bin/sh"}
		}
	}

	cols, rows := termSize()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	master, err := creackpty.StartWithSize(cmd, &creackpty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		log.Error().Err(err).Msg("vteterm: unable to start PTY")
		os.Exit(1)
	}
	defer master.Close()

	vt := vteterm.New(vteterm.Options{Rows: rows, Cols: cols})
	ctrl := vteterm.NewController(vt, log)

	reader := pty.NewReader(master, log)
	writer := pty.NewWriter(master)
	done := make(chan struct{})
	go reader.Run(done)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	go watchResize(sig, writer, ctrl, done)

	go pumpStdin(os.Stdin, writer, done)

	for {
		select {
		case tokens, ok := <-reader.Tokens:
			if !ok {
				close(done)
				goto drained
			}
			ctrl.ApplyBatch(tokens)
		case err := <-reader.Errs:
			log.Warn().Err(err).Msg("vteterm: pty read ended")
		}
	}

drained:
	_ = cmd.Wait()
	fmt.Print(snapshot(vt, *colors))
}

func termSize() (cols, rows int) {
	w, h, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		return 80, 24
	}
	return w, h
}

func watchResize(sig <-chan os.Signal, w *pty.Writer, ctrl *vteterm.Controller, done <-chan struct{}) {
	for {
		select {
		case <-sig:
			cols, rows := termSize()
			ctrl.Resize(rows, cols)
			_ = w.Resize(rows, cols)
		case <-done:
			return
		}
	}
}

func pumpStdin(r *os.File, w *pty.Writer, done <-chan struct{}) {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			return
		}
		select {
		case <-done:
			return
		default:
		}
	}
}

// snapshot renders the active buffer as plain text, one line per row
// with trailing blanks trimmed — grounded in the teacher's
// render_output's final textual dump. The colors flag is reserved for a
// richer renderer; plain text is always safe to print to a pipe.
func snapshot(t *vteterm.Terminal, withColors bool) string {
	buf := t.Active()
	var b strings.Builder
	for r := 0; r < buf.Rows; r++ {
		var line strings.Builder
		for c := 0; c < buf.Cols; c++ {
			if cell := buf.Get(r, c); cell != nil {
				line.WriteRune(cell.Content)
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
