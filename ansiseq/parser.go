// Package ansiseq implements the escape-sequence parser (C2): a lazy
// sequence of Output items pulled from a text blob, where each AnsiSequence
// has a canonical wire rendering satisfying the round-trip law
//
//	parse(render(parse(s))) == parse(s)
//
// Tokenisation itself is delegated to govte.Parser, the byte-at-a-time
// CSI/OSC/ESC state machine: Parser drives it one byte at a time and a
// sink (a govte.Performer) buffers whatever it produces until there is a
// whole Output ready to hand back, so the push-based state machine ends up
// behind a pull-based Next(). The variant set and wire strings are
// grounded in the CSI/OSC/ESC grammar recognised by the original Rust
// reference implementation (ansi_parser/ansi_sequences.rs), adapted to Go
// idiom: each variant is a concrete struct implementing the AnsiSequence
// interface instead of a Rust enum.
package ansiseq

import "github.com/vteterm/engine"

// maxSGRParams bounds the SGR attribute list (spec.md §9 "Fixed-capacity
// SGR list"); an SGR sequence with more parameters is a parse failure, not
// a crash — it falls back to TextBlock recovery like any other failure.
const maxSGRParams = 16

// Parser is the lazy escape-sequence iterator described in spec.md §4.2.
// It walks a text blob one Output at a time without buffering the whole
// result, mirroring original_source's `AnsiParseIterator`.
type Parser struct {
	input []byte
	pos   int
	vte   *govte.Parser
	sink  *sink
}

// New creates a Parser over the given text.
func New(s string) *Parser {
	return &Parser{
		input: []byte(s),
		vte:   govte.NewParser(),
		sink:  newSink(),
	}
}

// Next returns the next Output and true, or the zero Output and false when
// the input is exhausted.
func (p *Parser) Next() (Output, bool) {
	for {
		if o, ok := p.sink.pop(); ok {
			return o, true
		}
		if p.pos >= len(p.input) {
			if o, ok := p.sink.drain(); ok {
				return o, true
			}
			return Output{}, false
		}

		b := p.input[p.pos]
		p.pos++
		if b == 0x1B || p.vte.State() != govte.StateGround {
			p.sink.raw = append(p.sink.raw, b)
		}
		p.vte.Advance(p.sink, []byte{b})
		if p.vte.State() == govte.StateGround && len(p.sink.raw) > 0 {
			// Returned to ground without any dispatch callback firing
			// (e.g. a CSI sequence that fell into StateCSIIgnore) — the
			// consumed bytes never became a recognised sequence, so they
			// fall back to plain text like any other parse failure.
			p.sink.absorbRaw()
		}
	}
}

// All drains the Parser into a slice. Convenience for tests and small
// inputs; production code should prefer Next in a loop to stay lazy.
func All(s string) []Output {
	p := New(s)
	var out []Output
	for {
		o, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, o)
	}
}
