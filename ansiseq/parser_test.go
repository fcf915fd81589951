package ansiseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextBlockPassthrough(t *testing.T) {
	out := All("hello world")
	require.Len(t, out, 1)
	assert.Equal(t, OutputText, out[0].Kind)
	assert.Equal(t, "hello world", out[0].Text)
}

func TestCursorPosDefaults(t *testing.T) {
	for _, s := range []string{"\x1b[H", "\x1b[1;1H", "\x1b[0;0H"} {
		out := All(s)
		require.Len(t, out, 1)
		require.Equal(t, OutputSequence, out[0].Kind)
		assert.Equal(t, CursorPos{Row: 1, Col: 1}, out[0].Sequence)
	}
}

func TestRoundTripLaw(t *testing.T) {
	samples := []string{
		"\x1b[3;7H",
		"\x1b[31;1m",
		"\x1b[2J",
		"\x1b[K",
		"\x1b[?25h",
		"\x1b[?25l",
		"\x1b[?1049h",
		"\x1b[1;24r",
		"\x1b[2 q",
		"\x1b]112\x07",
		"\x1b(B",
		"\x1bM",
		"\x1b7",
		"\x1b8",
	}
	for _, s := range samples {
		first := All(s)
		require.Len(t, first, 1, "input %q", s)
		rendered := first[0].String()
		second := All(rendered)
		require.Len(t, second, 1, "re-parse of %q", rendered)
		assert.Equal(t, first[0].Sequence, second[0].Sequence, "round trip of %q", s)
	}
}

func TestMixedTextAndSequence(t *testing.T) {
	out := All("hi\x1b[31mred\x1b[0m plain")
	require.Len(t, out, 5)
	assert.Equal(t, TextBlock("hi"), out[0])
	assert.Equal(t, Seq(SetGraphicsMode{Params: []int{31}}), out[1])
	assert.Equal(t, TextBlock("red"), out[2])
	assert.Equal(t, Seq(SetGraphicsMode{Params: []int{0}}), out[3])
	assert.Equal(t, TextBlock(" plain"), out[4])
}

func TestUnterminatedEscapeFallsBackToText(t *testing.T) {
	out := All("abc\x1b[9")
	require.Len(t, out, 1)
	assert.Equal(t, OutputText, out[0].Kind)
	assert.Equal(t, "abc\x1b[9", out[0].Text)
}

func TestSGRParamCapRecovers(t *testing.T) {
	overflow := "\x1b[" + repeat("1;", 20) + "0m"
	out := All(overflow)
	require.Len(t, out, 1)
	assert.Equal(t, OutputText, out[0].Kind)
}

func TestEraseDisplayModes(t *testing.T) {
	cases := map[string]int{"\x1b[J": 0, "\x1b[0J": 0, "\x1b[1J": 1, "\x1b[2J": 2}
	for wire, mode := range cases {
		out := All(wire)
		require.Len(t, out, 1)
		assert.Equal(t, EraseDisplay{Mode: mode}, out[0].Sequence)
	}
}

func TestDecPrivateModePolarity(t *testing.T) {
	set := All("\x1b[?25h")
	reset := All("\x1b[?25l")
	assert.Equal(t, DecPrivateModeSet{N: 25}, set[0].Sequence)
	assert.Equal(t, DecPrivateModeReset{N: 25}, reset[0].Sequence)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
