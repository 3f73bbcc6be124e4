package layout

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestFlowPacksWordsGreedily(t *testing.T) {
	lines, positions := Flow("hello world foo", 10)
	want := []string{"hello", "world foo"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("expected lines %q, got %q", want, lines)
	}
	if len(positions) != len("hello world foo") {
		t.Fatalf("expected %d positions, got %d", len("hello world foo"), len(positions))
	}
}

func TestFlowBreakSeparatorKeepsLineEndCell(t *testing.T) {
	_, positions := Flow("hello world foo", 10)
	// The space between "hello" and "world" forces the break; it stays on the
	// first row, one past the last character.
	if positions[5] != (Position{Row: 0, Col: 5}) {
		t.Fatalf("expected break separator at (0,5), got %+v", positions[5])
	}
	if positions[6] != (Position{Row: 1, Col: 0}) {
		t.Fatalf("expected 'w' at (1,0), got %+v", positions[6])
	}
	// The space between "world" and "foo" fits and lands in the line.
	if positions[11] != (Position{Row: 1, Col: 5}) {
		t.Fatalf("expected in-line separator at (1,5), got %+v", positions[11])
	}
}

func TestFlowLeadingSpacesKeepDistinctCells(t *testing.T) {
	lines, positions := Flow("  hello", 10)
	want := []string{"  hello"}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("expected lines %q, got %q", want, lines)
	}
	if positions[0] != (Position{Row: 0, Col: 0}) || positions[1] != (Position{Row: 0, Col: 1}) {
		t.Fatalf("expected leading spaces at (0,0) and (0,1), got %+v", positions[:2])
	}
	if positions[2] != (Position{Row: 0, Col: 2}) {
		t.Fatalf("expected 'h' at (0,2), got %+v", positions[2])
	}
	seen := make(map[Position]bool, len(positions))
	for k, pos := range positions {
		if seen[pos] {
			t.Fatalf("rune index %d reuses cell %+v", k, pos)
		}
		seen[pos] = true
	}
}

func TestFlowReconstructsText(t *testing.T) {
	texts := []string{
		"the quick fox",
		"one",
		"cat    next word",
		" padded start",
		"alpha beta gamma delta epsilon zeta",
	}
	for _, text := range texts {
		lines, positions := Flow(text, 12)
		if len(positions) != utf8.RuneCountInString(text) {
			t.Fatalf("text %q: expected %d positions, got %d", text, utf8.RuneCountInString(text), len(positions))
		}
		rebuilt := make([]rune, 0, len(positions))
		for _, pos := range positions {
			lineRunes := []rune(lines[pos.Row])
			if pos.Col < len(lineRunes) {
				rebuilt = append(rebuilt, lineRunes[pos.Col])
			} else {
				rebuilt = append(rebuilt, ' ')
			}
		}
		if string(rebuilt) != text {
			t.Fatalf("text %q: reconstructed %q", text, string(rebuilt))
		}
	}
}

func TestFlowNeverSplitsLongTokens(t *testing.T) {
	lines, positions := Flow("extraordinarily big", 8)
	if lines[0] != "extraordinarily" {
		t.Fatalf("expected overflowing first line, got %q", lines[0])
	}
	if lines[1] != "big" {
		t.Fatalf("expected %q on second line, got %q", "big", lines[1])
	}
	if len(positions) != len("extraordinarily big") {
		t.Fatalf("expected one position per rune, got %d", len(positions))
	}
}

func TestFlowCharactersStayWithinWidth(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta"
	width := 13
	lines, positions := Flow(text, width)
	runes := []rune(text)
	for k, pos := range positions {
		if runes[k] == ' ' {
			continue
		}
		if pos.Col > width-1 {
			t.Fatalf("rune %q at index %d exceeds width: %+v", runes[k], k, pos)
		}
		if pos.Row < 0 || pos.Row >= len(lines) {
			t.Fatalf("rune index %d has out-of-range row: %+v", k, pos)
		}
	}
}

func TestFlowEmptyText(t *testing.T) {
	lines, positions := Flow("", 20)
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected one empty line, got %q", lines)
	}
	if len(positions) != 0 {
		t.Fatalf("expected no positions, got %d", len(positions))
	}
}

func TestFlowIdempotent(t *testing.T) {
	text := "repeat me twice and compare"
	lines1, positions1 := Flow(text, 11)
	lines2, positions2 := Flow(text, 11)
	if !reflect.DeepEqual(lines1, lines2) || !reflect.DeepEqual(positions1, positions2) {
		t.Fatalf("expected identical output across calls")
	}
}
