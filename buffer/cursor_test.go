package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleFromParam(t *testing.T) {
	cases := map[int]Style{
		0: BlinkingBlock,
		1: BlinkingBlock,
		2: SteadyBlock,
		3: BlinkingUnderline,
		4: SteadyUnderline,
		5: BlinkingBar,
		6: SteadyBar,
		9: SteadyBlock,
	}
	for param, want := range cases {
		assert.Equal(t, want, StyleFromParam(param))
	}
}

func TestCursorSetPositionClamps(t *testing.T) {
	var c Cursor
	c.SetPosition(-1, 999, 23, 79)
	assert.Equal(t, 0, c.Row)
	assert.Equal(t, 79, c.Col)
}
