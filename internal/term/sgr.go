package term

import "fmt"

// Basic ANSI color names, indexed by code offset (30–37 / 40–47).
var ansiColors = [8]Color{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// applySGR interprets the accumulated CSI parameters as a Select Graphic
// Rendition sequence, updating the style applied to subsequently written
// cells. An empty parameter list means reset. Unknown codes are ignored.
func (in *Interpreter) applySGR() {
	if len(in.params) == 0 {
		in.style = Style{}
		return
	}
	for i := 0; i < len(in.params); i++ {
		code := in.params[i]
		if code < 0 {
			code = 0 // omitted parameter defaults to reset
		}
		switch {
		case code == 0:
			in.style = Style{}
		case code == 1:
			in.style.Bold = true
		case code == 2:
			in.style.Dim = true
		case code == 4:
			in.style.Underline = true
		case code == 7:
			in.style.Inverse = true
		case code == 22:
			in.style.Bold = false
			in.style.Dim = false
		case code == 24:
			in.style.Underline = false
		case code == 27:
			in.style.Inverse = false
		case code >= 30 && code <= 37:
			in.style.FG = ansiColors[code-30]
		case code == 38:
			color, skip := extendedColor(in.params[i+1:])
			if skip == 0 {
				return // malformed extended color: drop the rest
			}
			in.style.FG = color
			i += skip
		case code == 39:
			in.style.FG = ""
		case code >= 40 && code <= 47:
			in.style.BG = ansiColors[code-40]
		case code == 48:
			color, skip := extendedColor(in.params[i+1:])
			if skip == 0 {
				return
			}
			in.style.BG = color
			i += skip
		case code == 49:
			in.style.BG = ""
		case code >= 90 && code <= 97:
			in.style.FG = "bright-" + ansiColors[code-90]
		case code >= 100 && code <= 107:
			in.style.BG = "bright-" + ansiColors[code-100]
		}
	}
}

// extendedColor decodes the tail of a 38/48 sequence: 5;n selects a
// 256-palette entry, 2;r;g;b a truecolor value. Returns the symbolic color
// and how many parameters were consumed, or skip 0 when malformed.
func extendedColor(rest []int) (Color, int) {
	if len(rest) >= 2 && rest[0] == 5 && rest[1] >= 0 {
		return Color(fmt.Sprintf("256:%d", rest[1])), 2
	}
	if len(rest) >= 4 && rest[0] == 2 {
		r, g, b := clamp(rest[1], 0, 255), clamp(rest[2], 0, 255), clamp(rest[3], 0, 255)
		return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)), 4
	}
	return "", 0
}
