package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_PlainTextMatchesInputLines(t *testing.T) {
	in := NewInterpreter(10, 40)
	in.Feed("first line\nsecond\nthird")

	snap := in.Snapshot()
	lines := snap.Lines()

	// A bare LF preserves the column, so subsequent lines start at the
	// column where the previous one ended. Feeding with CR+LF gives the
	// conventional left-aligned result.
	in2 := NewInterpreter(10, 40)
	in2.Feed("first line\r\nsecond\r\nthird")
	lines2 := in2.Snapshot().Lines()

	assert.Equal(t, "first line", lines2[0])
	assert.Equal(t, "second", lines2[1])
	assert.Equal(t, "third", lines2[2])

	// Bare-LF variant: line content appears indented by the prior column.
	assert.Equal(t, "first line", lines[0])
	assert.Equal(t, strings.Repeat(" ", 10)+"second", lines[1])
}

func TestFeed_CarriageReturnOverwrites(t *testing.T) {
	in := NewInterpreter(5, 20)
	in.Feed("abc\rXY")

	snap := in.Snapshot()
	assert.Equal(t, "XYc", snap.Lines()[0])
	assert.Equal(t, Position{Row: 0, Col: 2}, snap.Cursor)
}

func TestFeed_BareLFIsNotCRLF(t *testing.T) {
	in := NewInterpreter(5, 20)
	in.Feed("ab\ncd")

	snap := in.Snapshot()
	assert.Equal(t, "ab", snap.Lines()[0])
	assert.Equal(t, "  cd", snap.Lines()[1])
}

func TestFeed_WrapsAtColumnOverflow(t *testing.T) {
	in := NewInterpreter(5, 4)
	in.Feed("abcdef")

	snap := in.Snapshot()
	assert.Equal(t, "abcd", snap.Lines()[0])
	assert.Equal(t, "ef", snap.Lines()[1])
}

func TestFeed_ExactWidthLineDoesNotDoubleWrap(t *testing.T) {
	in := NewInterpreter(5, 4)
	in.Feed("abcd\r\nef")

	snap := in.Snapshot()
	assert.Equal(t, "abcd", snap.Lines()[0])
	assert.Equal(t, "ef", snap.Lines()[1])
	assert.Equal(t, "", snap.Lines()[2])
}

func TestFeed_ScrollDiscardsTopRow(t *testing.T) {
	in := NewInterpreter(3, 20)
	in.Feed("one\r\ntwo\r\nthree\r\nfour")

	snap := in.Snapshot()
	assert.Equal(t, []string{"two", "three", "four"}, snap.Lines())
	assert.Equal(t, 2, snap.Cursor.Row)
}

func TestFeed_SGRStylesSubsequentCells(t *testing.T) {
	in := NewInterpreter(5, 20)
	in.Feed("\x1b[1;32mok\x1b[0m plain")

	g := in.Grid()
	ok0 := g.Cell(0, 0)
	assert.Equal(t, "o", ok0.Glyph)
	assert.True(t, ok0.Bold)
	assert.Equal(t, Color("green"), ok0.FG)

	plain := g.Cell(0, 3)
	assert.Equal(t, "p", plain.Glyph)
	assert.False(t, plain.Bold)
	assert.Empty(t, plain.FG)
}

func TestFeed_SGRExtendedColors(t *testing.T) {
	in := NewInterpreter(5, 20)
	in.Feed("\x1b[38;5;196mA\x1b[48;2;16;32;48mB")

	g := in.Grid()
	assert.Equal(t, Color("256:196"), g.Cell(0, 0).FG)
	assert.Equal(t, Color("#102030"), g.Cell(0, 1).BG)
	assert.Equal(t, Color("256:196"), g.Cell(0, 1).FG)
}

func TestFeed_SGRInverseAndReset(t *testing.T) {
	in := NewInterpreter(5, 20)
	in.Feed("\x1b[7mX\x1b[27mY\x1b[4mZ\x1b[mW")

	g := in.Grid()
	assert.True(t, g.Cell(0, 0).Inverse)
	assert.False(t, g.Cell(0, 1).Inverse)
	assert.True(t, g.Cell(0, 2).Underline)
	assert.Equal(t, Style{}, g.Cell(0, 3).Style)
}

func TestFeed_CursorMovementClamped(t *testing.T) {
	in := NewInterpreter(5, 10)
	in.Feed("\x1b[99A\x1b[99D") // way past the top-left corner

	assert.Equal(t, Position{}, in.Grid().Cursor())

	in.Feed("\x1b[99B\x1b[99C") // way past the bottom-right corner
	assert.Equal(t, Position{Row: 4, Col: 9}, in.Grid().Cursor())
}

func TestFeed_CursorMovementDefaultsToOne(t *testing.T) {
	in := NewInterpreter(5, 10)
	in.Feed("\x1b[B\x1b[C")

	assert.Equal(t, Position{Row: 1, Col: 1}, in.Grid().Cursor())
}

func TestFeed_CursorPositioning(t *testing.T) {
	in := NewInterpreter(5, 10)
	in.Feed("\x1b[3;4HX")

	g := in.Grid()
	assert.Equal(t, "X", g.Cell(2, 3).Glyph)

	// Out-of-bounds requests clamp silently.
	in.Feed("\x1b[99;99H")
	assert.Equal(t, Position{Row: 4, Col: 9}, g.Cursor())
}

func TestFeed_EraseInLine(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"to end", "abcdef\r\x1b[2C\x1b[K", "ab"},
		{"to start", "abcdef\r\x1b[2C\x1b[1K", "   def"},
		{"all", "abcdef\x1b[2K", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInterpreter(3, 10)
			in.Feed(tt.seq)
			assert.Equal(t, tt.want, in.Snapshot().Lines()[0])
		})
	}
}

func TestFeed_EraseInDisplayAll(t *testing.T) {
	in := NewInterpreter(3, 10)
	in.Feed("one\r\ntwo\r\nthree\x1b[2J")

	snap := in.Snapshot()
	assert.Equal(t, []string{"", "", ""}, snap.Lines())
	assert.Equal(t, Position{}, snap.Cursor)
}

func TestFeed_UnknownCSIFinalIgnored(t *testing.T) {
	in := NewInterpreter(3, 10)
	in.Feed("ab")
	before := in.Snapshot()

	in.Feed("\x1b[5;2X") // unsupported final byte
	after := in.Snapshot()

	assert.Equal(t, before.Lines(), after.Lines())
	assert.Equal(t, before.Cursor, after.Cursor)
}

func TestFeed_UnknownSingleCharEscapeDiscarded(t *testing.T) {
	in := NewInterpreter(3, 10)
	in.Feed("a\x1b(b") // charset designation we do not implement

	// ESC swallows '(' and parsing resumes at ground; 'b' is printed.
	assert.Equal(t, "ab", in.Snapshot().Lines()[0])
}

func TestFeed_OSCSwallowed(t *testing.T) {
	in := NewInterpreter(3, 20)
	in.Feed("\x1b]0;window title\x07visible")
	assert.Equal(t, "visible", in.Snapshot().Lines()[0])

	in2 := NewInterpreter(3, 20)
	in2.Feed("\x1b]2;title\x1b\\also visible")
	assert.Equal(t, "also visible", in2.Snapshot().Lines()[0])
}

func TestFeed_SequenceSplitAcrossChunks(t *testing.T) {
	in := NewInterpreter(3, 10)
	in.Feed("\x1b[3")
	in.Feed("2mG")

	cell := in.Grid().Cell(0, 0)
	assert.Equal(t, "G", cell.Glyph)
	assert.Equal(t, Color("green"), cell.FG)
}

func TestFeed_CursorVisibility(t *testing.T) {
	in := NewInterpreter(3, 10)
	require.True(t, in.Grid().CursorVisible())

	in.Feed("\x1b[?25l")
	assert.False(t, in.Grid().CursorVisible())

	in.Feed("\x1b[?25h")
	assert.True(t, in.Grid().CursorVisible())
}

func TestFeed_WideRunesOccupyTwoColumns(t *testing.T) {
	in := NewInterpreter(3, 10)
	in.Feed("█ok") // box block is narrow; use a CJK rune for width 2
	in.Feed("\r\n例x")

	g := in.Grid()
	assert.Equal(t, "例", g.Cell(1, 0).Glyph)
	assert.Equal(t, "x", g.Cell(1, 2).Glyph)
}

func TestFeed_TabAndBackspace(t *testing.T) {
	in := NewInterpreter(3, 20)
	in.Feed("a\tb")
	assert.Equal(t, "a       b", in.Snapshot().Lines()[0])

	in2 := NewInterpreter(3, 20)
	in2.Feed("abc\bX")
	assert.Equal(t, "abX", in2.Snapshot().Lines()[0])
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	in := NewInterpreter(3, 10)
	in.Feed("abc")
	snap := in.Snapshot()

	in.Feed("\rxyz")
	assert.Equal(t, "abc", snap.Lines()[0])
	assert.Equal(t, "xyz", in.Snapshot().Lines()[0])
}

func TestSnapshot_TextTrimsTrailingBlankRows(t *testing.T) {
	in := NewInterpreter(5, 10)
	in.Feed("a\r\nb")
	assert.Equal(t, "a\nb", in.Snapshot().Text())
}
