package term

import "github.com/mattn/go-runewidth"

// parse state for the escape-sequence machine.
type parseState int

const (
	stGround parseState = iota
	stEscape             // seen ESC
	stCSI                // seen ESC [
	stOSC                // seen ESC ], consuming until terminator
	stOSCEsc             // seen ESC inside OSC, expecting \ terminator
)

// maxCSIParams bounds parameter accumulation so hostile input cannot grow
// memory; real sequences use a handful at most.
const maxCSIParams = 16

// Interpreter consumes a terminal byte stream incrementally and maintains a
// Grid. It never fails: malformed or unsupported sequences are swallowed and
// numeric parameters default to their documented values. Construct one
// Interpreter per compilation; instances share no state.
type Interpreter struct {
	grid  *Grid
	style Style

	state    parseState
	params   []int
	curParam int
	hasDigit bool
	private  bool

	// wrapPending is set after a printable fills the last column: the cursor
	// visually stays on that column and the wrap happens on the next write,
	// matching real terminal autowrap. Any explicit cursor motion clears it.
	wrapPending bool
}

// NewInterpreter returns an interpreter over a fresh blank grid.
func NewInterpreter(rows, cols int) *Interpreter {
	return &Interpreter{
		grid:   NewGrid(rows, cols),
		params: make([]int, 0, maxCSIParams),
	}
}

// Grid exposes the interpreter's grid for in-package readers.
func (in *Interpreter) Grid() *Grid { return in.grid }

// Snapshot captures the current screen state as a deep copy.
func (in *Interpreter) Snapshot() *Snapshot { return in.grid.Snapshot() }

// Feed processes a chunk of terminal output. Escape sequences may span
// multiple Feed calls; parse state is carried across chunks.
func (in *Interpreter) Feed(data string) {
	for _, r := range data {
		switch in.state {
		case stGround:
			in.ground(r)
		case stEscape:
			in.escape(r)
		case stCSI:
			in.csi(r)
		case stOSC:
			if r == 0x07 {
				in.state = stGround
			} else if r == 0x1b {
				in.state = stOSCEsc
			}
		case stOSCEsc:
			// ESC \ is the string terminator; anything else aborts the OSC.
			in.state = stGround
		}
	}
}

func (in *Interpreter) ground(r rune) {
	switch {
	case r == 0x1b:
		in.state = stEscape
	case r == '\r':
		in.grid.cursor.Col = 0
		in.wrapPending = false
	case r == '\n':
		in.lineFeed()
	case r == '\b':
		if in.grid.cursor.Col > 0 {
			in.grid.cursor.Col--
		}
		in.wrapPending = false
	case r == '\t':
		next := (in.grid.cursor.Col/8 + 1) * 8
		if next > in.grid.cols-1 {
			next = in.grid.cols - 1
		}
		in.grid.cursor.Col = next
		in.wrapPending = false
	case r >= 0x20 && r != 0x7f:
		in.put(r)
	}
}

func (in *Interpreter) escape(r rune) {
	switch r {
	case '[':
		in.state = stCSI
		in.params = in.params[:0]
		in.curParam = 0
		in.hasDigit = false
		in.private = false
	case ']':
		in.state = stOSC
	case 0x1b:
		// Stay: a fresh ESC restarts the sequence.
	default:
		// Unrecognized single-character escape: discard.
		in.state = stGround
	}
}

func (in *Interpreter) csi(r rune) {
	switch {
	case r >= '0' && r <= '9':
		if in.curParam < 1<<20 {
			in.curParam = in.curParam*10 + int(r-'0')
		}
		in.hasDigit = true
	case r == ';':
		in.pushParam()
	case r == '?':
		in.private = true
	case r >= 0x40 && r <= 0x7e:
		in.pushParam()
		in.dispatchCSI(byte(r))
		in.state = stGround
	default:
		// Other parameter or intermediate bytes (':', '<', '>', '=', space,
		// '!', ...) belong to sequences we do not implement; keep consuming
		// so the eventual final byte is dropped as a unit.
	}
}

func (in *Interpreter) pushParam() {
	if len(in.params) < maxCSIParams {
		if in.hasDigit {
			in.params = append(in.params, in.curParam)
		} else {
			in.params = append(in.params, -1) // omitted parameter
		}
	}
	in.curParam = 0
	in.hasDigit = false
}

// param returns the i-th CSI parameter, or def when omitted.
func (in *Interpreter) param(i, def int) int {
	if i >= len(in.params) || in.params[i] < 0 {
		return def
	}
	return in.params[i]
}

func (in *Interpreter) dispatchCSI(final byte) {
	g := in.grid
	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'f':
		in.wrapPending = false
	}
	switch final {
	case 'A':
		g.cursor.Row = clamp(g.cursor.Row-in.param(0, 1), 0, g.rows-1)
	case 'B':
		g.cursor.Row = clamp(g.cursor.Row+in.param(0, 1), 0, g.rows-1)
	case 'C':
		g.cursor.Col = clamp(g.cursor.Col+in.param(0, 1), 0, g.cols-1)
	case 'D':
		g.cursor.Col = clamp(g.cursor.Col-in.param(0, 1), 0, g.cols-1)
	case 'H', 'f':
		g.cursor.Row = clamp(in.param(0, 1)-1, 0, g.rows-1)
		g.cursor.Col = clamp(in.param(1, 1)-1, 0, g.cols-1)
	case 'K':
		in.eraseInLine(in.param(0, 0))
	case 'J':
		in.eraseInDisplay(in.param(0, 0))
	case 'm':
		in.applySGR()
	case 'h':
		if in.private && in.param(0, 0) == 25 {
			g.cursorVisible = true
		}
	case 'l':
		if in.private && in.param(0, 0) == 25 {
			g.cursorVisible = false
		}
	default:
		// Unsupported operation: dropped whole, grid untouched.
	}
}

func (in *Interpreter) eraseInLine(mode int) {
	g := in.grid
	switch mode {
	case 0:
		g.clearLine(g.cursor.Row, g.cursor.Col, g.cols-1)
	case 1:
		g.clearLine(g.cursor.Row, 0, g.cursor.Col)
	case 2:
		g.clearLine(g.cursor.Row, 0, g.cols-1)
	}
}

func (in *Interpreter) eraseInDisplay(mode int) {
	g := in.grid
	switch mode {
	case 0:
		g.clearLine(g.cursor.Row, g.cursor.Col, g.cols-1)
		for r := g.cursor.Row + 1; r < g.rows; r++ {
			g.clearLine(r, 0, g.cols-1)
		}
	case 1:
		for r := 0; r < g.cursor.Row; r++ {
			g.clearLine(r, 0, g.cols-1)
		}
		g.clearLine(g.cursor.Row, 0, g.cursor.Col)
	case 2:
		for r := 0; r < g.rows; r++ {
			g.clearLine(r, 0, g.cols-1)
		}
		g.cursor = Position{}
	}
}

// put writes a printable rune at the cursor with the current style. Wide
// runes occupy two columns; the continuation cell is left blank so overwrites
// stay cell-aligned. Column overflow triggers a soft line feed that, unlike a
// bare LF, resets the column to 0.
func (in *Interpreter) put(r rune) {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return // combining or non-spacing rune: no cell of its own
	}
	g := in.grid
	if in.wrapPending || g.cursor.Col+w > g.cols {
		g.cursor.Col = 0
		in.advanceRow()
		in.wrapPending = false
	}
	g.cells[g.cursor.Row][g.cursor.Col] = Cell{Glyph: string(r), Style: in.style}
	if w == 2 && g.cursor.Col+1 < g.cols {
		g.cells[g.cursor.Row][g.cursor.Col+1] = Cell{Style: in.style}
	}
	if g.cursor.Col+w >= g.cols {
		g.cursor.Col = g.cols - 1
		in.wrapPending = true
	} else {
		g.cursor.Col += w
	}
}

// lineFeed moves the cursor down one row, scrolling at the bottom. The
// column is deliberately preserved: a bare LF is not CR+LF.
func (in *Interpreter) lineFeed() {
	in.advanceRow()
	in.wrapPending = false
}

func (in *Interpreter) advanceRow() {
	g := in.grid
	if g.cursor.Row < g.rows-1 {
		g.cursor.Row++
	} else {
		g.scroll()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
