// Package layout computes screen placement for prompt text.
package layout

import "strings"

// Position is the screen cell of a single rune within wrapped text.
type Position struct {
	Row int
	Col int
}

// Flow wraps text into lines no wider than width using greedy fill over
// space-separated tokens. Tokens are never split: a token wider than the
// width overflows its line. The returned positions slice holds exactly one
// entry per rune of text, index-aligned with []rune(text), so callers can map
// any rune offset to its screen cell in O(1).
//
// Separator spaces that do not fit on their line are assigned trailing cells
// just past the end of the line they close and appear in no line string; this
// keeps the alignment guarantee intact across line breaks. Text that begins
// with spaces keeps them at the head of the first line, so no two runes ever
// share a cell.
func Flow(text string, width int) ([]string, []Position) {
	tokens := strings.Split(text, " ")

	var lines []string
	positions := make([]Position, 0, len(text))
	var line []rune
	row := 0
	col := 0
	// One past the cell of the last separator that closed a line; consecutive
	// spaces swallowed by the same break stack after it.
	var breakEnd Position

	for i, token := range tokens {
		if i > 0 {
			switch {
			case col == 0 && row > 0:
				positions = append(positions, breakEnd)
				breakEnd.Col++
			case col > 0 && col+1+len([]rune(token)) > width:
				positions = append(positions, Position{Row: row, Col: col})
				breakEnd = Position{Row: row, Col: col + 1}
				lines = append(lines, string(line))
				line = line[:0]
				row++
				col = 0
			default:
				line = append(line, ' ')
				positions = append(positions, Position{Row: row, Col: col})
				col++
			}
		}
		for _, r := range token {
			line = append(line, r)
			positions = append(positions, Position{Row: row, Col: col})
			col++
		}
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, string(line))
	}
	return lines, positions
}
