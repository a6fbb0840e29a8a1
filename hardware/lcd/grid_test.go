package lcd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridPrint(t *testing.T) {
	t.Parallel()

	g, err := NewGrid(8, 2, "")
	require.NoError(t, err)
	cols, rows := g.Size()
	assert.Equal(t, 8, cols)
	assert.Equal(t, 2, rows)
	assert.Equal(t, "        \n        ", g.String())

	g.SetCursor(1, 0)
	g.Print("hello")
	g.Print(" world")
	g.SetCursor(0, 1)
	g.Print(">")
	g.SetCursor(12, 1)
	g.Print("dropped")
	assert.Equal(t, " hello w\n>       ", g.String())

	g.Clear()
	g.Print("ёж")
	assert.Equal(t, "??      ", string(g.Line(0)))
}

func TestGridInvalid(t *testing.T) {
	t.Parallel()

	_, err := NewGrid(0, 2, "")
	require.Error(t, err)
	_, err = NewGrid(16, 5, "")
	require.Error(t, err)
	_, err = NewGrid(16, 2, "no-such-codepage")
	require.Error(t, err)

	g, err := NewGrid(16, 2, "")
	require.NoError(t, err)
	assert.Panics(t, func() { g.SetCursor(0, 2) })
	assert.Panics(t, func() { g.SetCursor(-1, 0) })
}

func TestGridCodepage(t *testing.T) {
	t.Parallel()

	g, err := NewGrid(16, 2, "windows-1251")
	require.NoError(t, err)
	g.Print("Время")
	assert.Equal(t, []byte{0xc2, 0xf0, 0xe5, 0xec, 0xff}, g.Line(0)[:5])
}

func TestGridFlush(t *testing.T) {
	t.Parallel()

	g, dev := NewMockGrid(8, 2)
	g.Flush(dev)
	assert.Equal(t, 2, dev.Writes())
	assert.Equal(t, "        \n        ", dev.String())

	g.SetCursor(2, 1)
	g.Print("ab")
	g.Flush(dev)
	assert.Equal(t, 3, dev.Writes(), "only modified row")
	assert.Equal(t, "  ab    ", dev.Line(2))

	g.Flush(dev)
	assert.Equal(t, 3, dev.Writes(), "nothing modified")
}

func TestConsoleDevicer(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	g, err := NewGrid(4, 2, "")
	require.NoError(t, err)
	dev := NewConsoleDevicer(&out, 4, 2)
	g.Print(">ab")
	g.Flush(dev)
	expect := "+----+\n" +
		"|>ab |\n" +
		"|    |\n" +
		"+----+\n"
	assert.Equal(t, expect, out.String())
}

func TestFormatFrame(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+--+\n|ab|\n|  |\n+--+\n", FormatFrame("abc", 2, 2))
}
