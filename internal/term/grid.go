package term

import "strings"

// Position is a zero-based (row, col) cursor position.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is a fixed rows×cols rectangle of cells plus a cursor. It is mutated
// exclusively by the Interpreter that owns it; consumers only ever see deep
// Snapshot copies.
type Grid struct {
	rows, cols    int
	cells         [][]Cell
	cursor        Position
	cursorVisible bool
}

// NewGrid returns a blank grid of the given dimensions. Dimensions below 1
// are raised to 1 so the cursor invariant (always in bounds) holds trivially.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Grid{
		rows:          rows,
		cols:          cols,
		cells:         cells,
		cursorVisible: true,
	}
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Cursor returns the current cursor position.
func (g *Grid) Cursor() Position { return g.cursor }

// CursorVisible reports whether the cursor should be drawn.
func (g *Grid) CursorVisible() bool { return g.cursorVisible }

// Cell returns the cell at (row, col), or a blank cell when out of bounds.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}
	}
	return g.cells[row][col]
}

// Line returns the plain text of one row with trailing blanks trimmed.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[row] {
		if c.Glyph == "" {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(c.Glyph)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// scroll discards the top row and appends a blank row at the bottom. This is
// the only operation that destroys cell data.
func (g *Grid) scroll() {
	copy(g.cells, g.cells[1:])
	g.cells[g.rows-1] = make([]Cell, g.cols)
}

// clearLine blanks columns [from, to] of the given row, clamped to bounds.
func (g *Grid) clearLine(row, from, to int) {
	if row < 0 || row >= g.rows {
		return
	}
	if from < 0 {
		from = 0
	}
	if to >= g.cols {
		to = g.cols - 1
	}
	for c := from; c <= to; c++ {
		g.cells[row][c] = Cell{}
	}
}

// Snapshot captures the grid as a deep, independent copy.
func (g *Grid) Snapshot() *Snapshot {
	cells := make([][]Cell, g.rows)
	for r := range cells {
		cells[r] = make([]Cell, g.cols)
		copy(cells[r], g.cells[r])
	}
	return &Snapshot{
		Cells:         cells,
		Cursor:        g.cursor,
		CursorVisible: g.cursorVisible,
	}
}

// Snapshot is a frozen copy of a grid at a point in time. It shares no
// storage with the grid it was captured from.
type Snapshot struct {
	Cells         [][]Cell `json:"cells"`
	Cursor        Position `json:"cursor"`
	CursorVisible bool     `json:"cursor_visible"`
}

// Lines returns the plain text of every row, trailing blanks trimmed.
func (s *Snapshot) Lines() []string {
	lines := make([]string, len(s.Cells))
	for r, row := range s.Cells {
		var sb strings.Builder
		for _, c := range row {
			if c.Glyph == "" {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(c.Glyph)
			}
		}
		lines[r] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

// Text returns the visible screen content as a single string with trailing
// blank rows trimmed.
func (s *Snapshot) Text() string {
	lines := s.Lines()
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}
