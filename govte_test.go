package govte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStringAndValidity(t *testing.T) {
	assert.Equal(t, "Ground", StateGround.String())
	assert.Equal(t, "CSIEntry", StateCSIEntry.String())
	assert.Equal(t, "SOSPMApcString", StateSOSPMApcString.String())
	assert.Contains(t, State(99).String(), "Unknown")

	assert.True(t, StateDCSIgnore.IsValid())
	assert.False(t, State(99).IsValid())
}

func TestParamsPushAndSubparams(t *testing.T) {
	p := NewParams()
	require.True(t, p.IsEmpty())

	p.Push(38)
	p.Extend(2)
	p.Extend(255)
	p.Push(1)

	require.Equal(t, 4, p.Len())
	groups := p.Iter()
	assert.Equal(t, []uint16{38, 2, 255}, groups[0])
	assert.Equal(t, []uint16{1}, groups[1])
}

func TestParamsFullStopsAcceptingNewParams(t *testing.T) {
	p := NewParams()
	for i := 0; i < MaxParams; i++ {
		p.Push(uint16(i))
	}
	require.True(t, p.IsFull())
	assert.Equal(t, MaxParams, p.Len())

	p.Clear()
	assert.True(t, p.IsEmpty())
}

// recordingPerformer buffers every callback it receives so a test can
// assert on the exact sequence of tokens a Parser run produced.
type recordingPerformer struct {
	NoopPerformer
	printed    []rune
	executed   []byte
	csi        []csiCall
	esc        []escCall
	osc        [][][]byte
}

type csiCall struct {
	params        []uint16
	intermediates []byte
	action        rune
	ignore        bool
}

type escCall struct {
	intermediates []byte
	action        byte
}

func (r *recordingPerformer) Print(c rune)   { r.printed = append(r.printed, c) }
func (r *recordingPerformer) Execute(b byte) { r.executed = append(r.executed, b) }

func (r *recordingPerformer) CsiDispatch(params *Params, intermediates []byte, ignore bool, action rune) {
	flat := make([]uint16, 0, params.Len())
	for _, g := range params.Iter() {
		flat = append(flat, g[0])
	}
	r.csi = append(r.csi, csiCall{params: flat, intermediates: append([]byte(nil), intermediates...), action: action, ignore: ignore})
}

func (r *recordingPerformer) EscDispatch(intermediates []byte, ignore bool, b byte) {
	r.esc = append(r.esc, escCall{intermediates: append([]byte(nil), intermediates...), action: b})
}

func (r *recordingPerformer) OscDispatch(params [][]byte, bellTerminated bool) {
	r.osc = append(r.osc, params)
}

var _ Performer = (*recordingPerformer)(nil)

func TestParserDrivesCSIDispatchByteAtATime(t *testing.T) {
	parser := NewParser()
	rec := &recordingPerformer{}

	for _, b := range []byte("\x1b[1;31m") {
		parser.Advance(rec, []byte{b})
	}

	require.Len(t, rec.csi, 1)
	assert.Equal(t, []uint16{1, 31}, rec.csi[0].params)
	assert.Equal(t, 'm', rec.csi[0].action)
	assert.Equal(t, StateGround, parser.State())
}

func TestParserCollectsDecPrivateMarker(t *testing.T) {
	parser := NewParser()
	rec := &recordingPerformer{}
	parser.Advance(rec, []byte("\x1b[?25h"))

	require.Len(t, rec.csi, 1)
	assert.Contains(t, rec.csi[0].intermediates, byte('?'))
	assert.Equal(t, 'h', rec.csi[0].action)
}

func TestParserEscDispatchWithIntermediate(t *testing.T) {
	parser := NewParser()
	rec := &recordingPerformer{}
	parser.Advance(rec, []byte("\x1b(B"))

	require.Len(t, rec.esc, 1)
	assert.Equal(t, []byte{'('}, rec.esc[0].intermediates)
	assert.Equal(t, byte('B'), rec.esc[0].action)
}

func TestParserOSCSingleParamBellTerminated(t *testing.T) {
	parser := NewParser()
	rec := &recordingPerformer{}
	parser.Advance(rec, []byte("\x1b]112\x07"))

	require.Len(t, rec.osc, 1)
	assert.Equal(t, [][]byte{[]byte("112")}, rec.osc[0])
}

func TestParserPrintAndExecuteInterleaved(t *testing.T) {
	parser := NewParser()
	rec := &recordingPerformer{}
	parser.Advance(rec, []byte("ab\ncd"))

	assert.Equal(t, []rune("abcd"), rec.printed)
	assert.Equal(t, []byte{'\n'}, rec.executed)
}

func TestParserTooManyIntermediatesSetsIgnore(t *testing.T) {
	parser := NewParser()
	rec := &recordingPerformer{}
	// Three intermediate bytes exceeds MaxIntermediates (2); the CSI
	// should still dispatch, flagged as ignored rather than hanging.
	parser.Advance(rec, []byte("\x1b[!!!p"))

	require.Len(t, rec.csi, 1)
	assert.Equal(t, 'p', rec.csi[0].action)
	assert.True(t, rec.csi[0].ignore)
}

func TestParserMultibyteUTF8AcrossCalls(t *testing.T) {
	parser := NewParser()
	rec := &recordingPerformer{}
	// Feed a two-byte rune ('é', U+00E9) one byte per Advance call to
	// exercise the partial-UTF8 carry path the way a byte-at-a-time PTY
	// reader would.
	r := []byte("é")
	require.Len(t, r, 2)
	parser.Advance(rec, r[:1])
	parser.Advance(rec, r[1:])

	assert.Equal(t, []rune("é"), rec.printed)
}

func TestNoopPerformerSatisfiesInterface(t *testing.T) {
	var n NoopPerformer
	n.Print('x')
	n.Execute(0x07)
	n.Hook(NewParams(), nil, false, 'q')
	n.Put(0x41)
	n.Unhook()
	n.OscDispatch(nil, false)
	n.CsiDispatch(NewParams(), nil, false, 'm')
	n.EscDispatch(nil, false, 'M')
}
