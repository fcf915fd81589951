// Package pty implements the PTY byte framer (C1) and the PTY transport
// (C6): reading raw bytes non-blockingly from a PTY master, framing them
// into tokens, and writing/resizing the far end. Grounded in
// original_source/src/term/pty_reader.rs (exact framing algorithm and
// byte classification) and cliofy-govte/examples/capture_tui/main.go
// (creack/pty + golang.org/x/term goroutine idiom).
package pty

import "unicode/utf8"

// TokenKind tags which field of TerminalOutput is meaningful.
type TokenKind uint8

const (
	// TokenText is a run of bytes that are neither BS, LF nor CR — UTF-8
	// text, including any embedded ESC sequences (spec.md §4.1: "ESC is
	// *not* separated here ... passed through inside Text tokens").
	TokenText TokenKind = iota
	TokenNewLine
	TokenCarriageReturn
	TokenBackspace
)

// TerminalOutput is one C1 output token (spec.md §4.1), grounded in
// original_source/src/term/terminal_output.rs's
// `TerminalOutput{Text(String), NewLine, CarriageReturn, Backspace}`.
type TerminalOutput struct {
	Kind TokenKind
	Text string
}

const (
	bsByte = 0x08
	lfByte = 0x0A
	crByte = 0x0D
)

// Frame scans raw bytes left to right and splits them into
// TerminalOutput tokens, per spec.md §4.1: BS/LF/CR each flush any
// pending text run and emit their own control token; everything else
// accumulates into the pending run, which is flushed as a final Text
// token after the scan (possibly empty, in which case it is omitted).
// Invalid UTF-8 is replaced rather than rejected — Frame never fails on
// arbitrary bytes.
func Frame(data []byte) []TerminalOutput {
	var out []TerminalOutput
	var pending []byte

	flush := func() {
		if len(pending) == 0 {
			return
		}
		out = append(out, TerminalOutput{Kind: TokenText, Text: toValidUTF8(pending)})
		pending = nil
	}

	for _, b := range data {
		switch b {
		case bsByte:
			flush()
			out = append(out, TerminalOutput{Kind: TokenBackspace})
		case lfByte:
			flush()
			out = append(out, TerminalOutput{Kind: TokenNewLine})
		case crByte:
			flush()
			out = append(out, TerminalOutput{Kind: TokenCarriageReturn})
		default:
			pending = append(pending, b)
		}
	}
	flush()
	return out
}

// toValidUTF8 replaces invalid byte sequences with the Unicode
// replacement character rather than failing, per spec.md §4.1. PTY
// reads can split a multi-byte rune across two reads, so a raw bytes
// run may legitimately contain a trailing partial sequence; that case
// is handled by Reader buffering the remainder rather than here (Frame
// itself has no notion of "more data is coming").
func toValidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return string([]rune(string(b)))
}
