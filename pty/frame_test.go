package pty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameSplitsOnControlBytes(t *testing.T) {
	tokens := Frame([]byte("Hi\r\n!"))
	require.Len(t, tokens, 4)
	assert.Equal(t, TerminalOutput{Kind: TokenText, Text: "Hi"}, tokens[0])
	assert.Equal(t, TerminalOutput{Kind: TokenCarriageReturn}, tokens[1])
	assert.Equal(t, TerminalOutput{Kind: TokenNewLine}, tokens[2])
	assert.Equal(t, TerminalOutput{Kind: TokenText, Text: "!"}, tokens[3])
}

func TestFrameBackspace(t *testing.T) {
	tokens := Frame([]byte("ab\bc"))
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenText, tokens[0].Kind)
	assert.Equal(t, "ab", tokens[0].Text)
	assert.Equal(t, TokenBackspace, tokens[1].Kind)
	assert.Equal(t, "c", tokens[2].Text)
}

func TestFrameEmptyInput(t *testing.T) {
	assert.Empty(t, Frame(nil))
}

func TestFramePassesEscapeSequencesThroughText(t *testing.T) {
	tokens := Frame([]byte("\x1b[31mred"))
	require.Len(t, tokens, 1)
	assert.Equal(t, "\x1b[31mred", tokens[0].Text)
}

func TestFrameInvalidUTF8Sanitized(t *testing.T) {
	tokens := Frame([]byte{'a', 0xff, 'b'})
	require.Len(t, tokens, 1)
	assert.Contains(t, tokens[0].Text, "a")
	assert.Contains(t, tokens[0].Text, "b")
}
