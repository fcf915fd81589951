package pty

import (
	"errors"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// pollInterval is the read-deadline granularity grounded in
// original_source/src/term/pty_reader.rs's 16ms poll loop (one frame at
// 60Hz) and mirrored by cliofy-govte/examples/capture_tui/main.go's
// SetReadDeadline pattern.
const pollInterval = 16 * time.Millisecond

// readChunk bounds a single read so one burst of output can't starve the
// controller goroutine; output that overflows it is picked up on the
// next poll.
const readChunk = 65536

// Reader drives a goroutine that polls a PTY master file for output,
// frames it into TerminalOutput tokens (C1), and delivers token batches
// to Tokens. One batch corresponds to one non-empty read, applied
// atomically by whatever consumes Tokens (spec.md §5).
type Reader struct {
	Tokens chan []TerminalOutput
	Errs   chan error

	f   *os.File
	log zerolog.Logger
}

// NewReader wraps an already-open PTY master file descriptor (spec.md
// §6: "owns reading from an already-open PTY" — opening/spawning the
// child process is cmd/vteterm's job, not this package's).
func NewReader(f *os.File, log zerolog.Logger) *Reader {
	return &Reader{
		Tokens: make(chan []TerminalOutput, 64),
		Errs:   make(chan error, 1),
		f:      f,
		log:    log,
	}
}

// Run polls f until ctx-like stop via done, or a fatal read error.
// Deadline timeouts (WouldBlock, per spec.md §7) are not errors — they
// just mean "nothing to read yet" and the loop continues; io.EOF ends the
// loop without a report; any other error is reported on Errs and the loop
// exits.
func (r *Reader) Run(done <-chan struct{}) {
	defer close(r.Tokens)
	buf := make([]byte, readChunk)
	var carry []byte

	for {
		select {
		case <-done:
			return
		default:
		}

		if err := r.f.SetReadDeadline(time.Now().Add(pollInterval)); err != nil {
			r.log.Warn().Err(err).Msg("pty: set read deadline failed")
		}

		n, err := r.f.Read(buf)
		if n > 0 {
			// A multi-byte rune cut off at the end of this read is held
			// back and prepended to the next read.
			data := append(carry, buf[:n]...)
			carry = nil
			for i := len(data) - 1; i >= 0 && i > len(data)-utf8.UTFMax; i-- {
				if utf8.RuneStart(data[i]) {
					if !utf8.FullRune(data[i:]) {
						carry = append([]byte(nil), data[i:]...)
						data = data[:i]
					}
					break
				}
			}
			tokens := Frame(data)
			if len(tokens) > 0 {
				select {
				case r.Tokens <- tokens:
				case <-done:
					return
				}
			}
		}

		if err == nil {
			continue
		}
		if isTimeout(err) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return
		}
		r.log.Error().Err(err).Msg("pty: fatal read error")
		select {
		case r.Errs <- err:
		default:
		}
		return
	}
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
