package ansiseq

import "github.com/vteterm/engine"

// sink is a govte.Performer that buffers completed Output values instead
// of acting on them directly, so Parser.Next can stay a pull-based
// iterator over a push-based state machine. Print/Execute accumulate into
// pendingText; a successful Csi/Esc/OscDispatch flushes pendingText ahead
// of the recognised sequence so ordering is preserved. raw mirrors the
// exact wire bytes of whatever escape is currently in flight, so an
// unrecognised or truncated sequence can fall back to literal text rather
// than being silently dropped.
type sink struct {
	pendingText []rune
	raw         []byte
	queue       []Output
}

func newSink() *sink {
	return &sink{}
}

var _ govte.Performer = (*sink)(nil)

func (s *sink) Print(c rune) { s.pendingText = append(s.pendingText, c) }

func (s *sink) Execute(b byte) { s.pendingText = append(s.pendingText, rune(b)) }

func (s *sink) Hook(params *govte.Params, intermediates []byte, ignore bool, action rune) {}

func (s *sink) Put(b byte) {}

func (s *sink) Unhook() {}

func (s *sink) OscDispatch(params [][]byte, bellTerminated bool) {
	if seq, ok := buildOSCSequence(params); ok {
		s.flushText()
		s.queue = append(s.queue, Seq(seq))
		s.raw = nil
		return
	}
	s.absorbRaw()
}

func (s *sink) CsiDispatch(params *govte.Params, intermediates []byte, ignore bool, action rune) {
	if !ignore {
		if seq, ok := buildCSISequence(params, intermediates, action); ok {
			s.flushText()
			s.queue = append(s.queue, Seq(seq))
			s.raw = nil
			return
		}
	}
	s.absorbRaw()
}

func (s *sink) EscDispatch(intermediates []byte, ignore bool, b byte) {
	if !ignore {
		if seq, ok := buildESCSequence(intermediates, b); ok {
			s.flushText()
			s.queue = append(s.queue, Seq(seq))
			s.raw = nil
			return
		}
	}
	s.absorbRaw()
}

func (s *sink) flushText() {
	if len(s.pendingText) == 0 {
		return
	}
	s.queue = append(s.queue, TextBlock(string(s.pendingText)))
	s.pendingText = nil
}

// absorbRaw folds whatever raw wire bytes are in flight back into
// pendingText, for the parse-failure and truncated-input recovery paths.
func (s *sink) absorbRaw() {
	if len(s.raw) > 0 {
		s.pendingText = append(s.pendingText, []rune(string(s.raw))...)
	}
	s.raw = nil
}

func (s *sink) pop() (Output, bool) {
	if len(s.queue) == 0 {
		return Output{}, false
	}
	o := s.queue[0]
	s.queue = s.queue[1:]
	return o, true
}

// drain flushes any leftover raw/pending text at end of input and pops the
// result; used once Parser has no more bytes to feed the state machine.
func (s *sink) drain() (Output, bool) {
	s.absorbRaw()
	s.flushText()
	return s.pop()
}

// flatParams collapses a govte.Params' parameter groups to their main
// (non-subparameter) values. ansiseq has no variant that needs colon
// subparameters, so the subparameter position of each group is dropped,
// matching the flat ';'-separated parameter model spec.md §9 describes.
func flatParams(params *govte.Params) []int {
	groups := params.Iter()
	out := make([]int, len(groups))
	for i, g := range groups {
		if len(g) > 0 {
			out[i] = int(g[0])
		}
	}
	return out
}

// hasSubparams reports whether any parameter group carries a colon
// subparameter (e.g. the truecolor `38:2:r:g:b` form). None of the
// recognised CSI variants use them, so a sequence that does falls back to
// TextBlock recovery rather than silently dropping the subparameter
// values.
func hasSubparams(params *govte.Params) bool {
	for _, g := range params.Iter() {
		if len(g) > 1 {
			return true
		}
	}
	return false
}

func intAt(params []int, i, def int) int {
	if i >= len(params) {
		return def
	}
	return params[i]
}

// intAtMin1 is intAt for the family of 1-based position/count parameters
// where VT-100 treats an explicit 0 the same as an omitted parameter
// (default 1) — e.g. `CSI 0;0H` lands at (1,1), never (0,0), per spec.md
// §8 "CursorPos(0, 0) is rejected from the wire form".
func intAtMin1(params []int, i, def int) int {
	v := intAt(params, i, def)
	if v == 0 {
		return def
	}
	return v
}

func csiMarker(intermediates []byte) byte {
	for _, b := range intermediates {
		if b >= 0x3C && b <= 0x3F {
			return b
		}
	}
	return 0
}

func csiHasSpace(intermediates []byte) bool {
	for _, b := range intermediates {
		if b == ' ' {
			return true
		}
	}
	return false
}

func buildCSISequence(params *govte.Params, intermediates []byte, action rune) (AnsiSequence, bool) {
	if hasSubparams(params) {
		return nil, false
	}
	ps := flatParams(params)
	m := csiMarker(intermediates)

	switch {
	case m == '?' && action == 'h':
		return DecPrivateModeSet{N: intAt(ps, 0, 0)}, true
	case m == '?' && action == 'l':
		return DecPrivateModeReset{N: intAt(ps, 0, 0)}, true
	case m == '=' && action == 'h':
		return SetMode{N: intAt(ps, 0, 0)}, true
	case m == '=' && action == 'l':
		return ResetMode{N: intAt(ps, 0, 0)}, true
	case m != 0:
		return nil, false
	case csiHasSpace(intermediates) && action == 'q':
		return CursorStyle{N: intAt(ps, 0, 0)}, true
	case len(intermediates) != 0:
		return nil, false
	}

	switch action {
	case 'H', 'f':
		return CursorPos{Row: intAtMin1(ps, 0, 1), Col: intAtMin1(ps, 1, 1)}, true
	case 'A':
		return CursorUp{N: intAtMin1(ps, 0, 1)}, true
	case 'B':
		return CursorDown{N: intAtMin1(ps, 0, 1)}, true
	case 'C':
		return CursorForward{N: intAtMin1(ps, 0, 1)}, true
	case 'D':
		return CursorBackward{N: intAtMin1(ps, 0, 1)}, true
	case 'd':
		return LinePositionAbsolute{N: intAtMin1(ps, 0, 1)}, true
	case 'G':
		return CursorCharacterAbsolute{N: intAtMin1(ps, 0, 1)}, true
	case 's':
		return CursorSave{}, true
	case 'u':
		return CursorRestore{}, true
	case 'J':
		return EraseDisplay{Mode: intAt(ps, 0, 0)}, true
	case 'K':
		return EraseInLine{Mode: intAt(ps, 0, 0)}, true
	case 'X':
		return EraseCharacters{N: intAtMin1(ps, 0, 1)}, true
	case 'm':
		if len(ps) > maxSGRParams {
			return nil, false
		}
		return SetGraphicsMode{Params: ps}, true
	case 'r':
		return SetTopAndBottom{Top: intAtMin1(ps, 0, 1), Bottom: intAt(ps, 1, 0)}, true
	case 'h':
		if len(ps) == 1 && ps[0] == 20 {
			return SetNewLineMode{}, true
		}
		return nil, false
	case 'l':
		if len(ps) == 1 && ps[0] == 20 {
			return SetLineFeedMode{}, true
		}
		return nil, false
	}
	return nil, false
}

func buildOSCSequence(params [][]byte) (AnsiSequence, bool) {
	if len(params) == 1 && string(params[0]) == "112" {
		return ResetCursorColor{}, true
	}
	return nil, false
}

func buildESCSequence(intermediates []byte, b byte) (AnsiSequence, bool) {
	if len(intermediates) == 0 {
		switch b {
		case '=':
			return SetAlternateKeypad{}, true
		case '>':
			return SetNumericKeypad{}, true
		case 'N':
			return SetSingleShift2{}, true
		case 'O':
			return SetSingleShift3{}, true
		case 'M':
			return ReverseIndex{}, true
		case '7':
			return CursorSave{}, true
		case '8':
			return CursorRestore{}, true
		}
		return nil, false
	}
	if len(intermediates) == 1 {
		switch intermediates[0] {
		case '(':
			switch b {
			case 'A':
				return SetUKG0{}, true
			case 'B':
				return SetUSG0{}, true
			case '0':
				return SetG0SpecialChars{}, true
			case '1':
				return SetG0AlternateChar{}, true
			case '2':
				return SetG0AltAndSpecialGraph{}, true
			}
		case ')':
			switch b {
			case 'A':
				return SetUKG1{}, true
			case 'B':
				return SetUSG1{}, true
			case '0':
				return SetG1SpecialChars{}, true
			case '1':
				return SetG1AlternateChar{}, true
			case '2':
				return SetG1AltAndSpecialGraph{}, true
			}
		}
	}
	return nil, false
}
