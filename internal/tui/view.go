package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mqzpt/koalatype/internal/layout"
	"github.com/mqzpt/koalatype/internal/session"
)

const (
	titleText = "🐨 koalatype 🐨"

	// Rows above the prompt area: title, countdown, one blank line.
	promptTopRows = 3
	// Rows below it: one blank line, then the help footer.
	promptBottomRows = 2

	minPromptWidth = 20
)

type charClass int

const (
	classUntyped charClass = iota
	classMatch
	classMismatch
	classCursor
)

type cell struct {
	r     rune
	class charClass
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.phase == phaseResults {
		return m.viewResults()
	}
	return m.viewTyping()
}

func (m *Model) viewTyping() string {
	promptWidth := m.width - 2
	if promptWidth < minPromptWidth {
		promptWidth = minPromptWidth
	}
	maxLines := m.height - promptTopRows - promptBottomRows
	if maxLines < 0 {
		maxLines = 0
	}
	cells := buildScreenCells(m.state, promptWidth, maxLines)

	var b strings.Builder
	b.WriteString(headerStyle.Render(truncate(titleText, m.width-1)))
	b.WriteByte('\n')
	countdown := fmt.Sprintf("Time left: %4.1fs", m.clock.Remaining().Seconds())
	b.WriteString(headerStyle.Render(truncate(countdown, m.width-1)))
	b.WriteString("\n\n")
	for _, row := range cells {
		b.WriteString(renderCells(row))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(typingKeys))
	return b.String()
}

func (m *Model) viewResults() string {
	rows := []string{
		resultTitleStyle.Render("Test complete"),
		"",
		"WPM       " + resultValueStyle.Render(fmt.Sprintf("%.1f", m.result.WPM)),
		"Accuracy  " + resultValueStyle.Render(fmt.Sprintf("%.1f%%", m.result.Accuracy)),
		"Words     " + resultValueStyle.Render(fmt.Sprintf("%d/%d", m.result.Correct, m.result.Total)),
		"Time      " + resultValueStyle.Render(fmt.Sprintf("%.1fs", m.elapsed.Seconds())),
	}
	box := resultsBoxStyle.Render(strings.Join(rows, "\n"))
	content := box + "\n\n" + m.help.View(resultsKeys)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// buildScreenCells lays the prompt out at the given width and paints the
// typed runes over it: a typed rune shows as itself, matched runes in the
// match style and everything else in the mismatch style. Rows beyond maxLines
// are clipped. The cursor marks the next cell to type, clamped to the last
// laid-out cell once the prompt is exhausted.
func buildScreenCells(st session.State, width, maxLines int) [][]cell {
	rendered, starts := layout.Rendered(st.Prompt(), st.Typed())
	lines, positions := layout.Flow(rendered, width)

	visible := len(lines)
	if visible > maxLines {
		visible = maxLines
	}
	cells := make([][]cell, visible)
	for i := 0; i < visible; i++ {
		runes := []rune(lines[i])
		row := make([]cell, len(runes))
		for j, r := range runes {
			row[j] = cell{r: r, class: classUntyped}
		}
		cells[i] = row
	}

	prompt := st.Prompt()
	for w, buf := range st.Typed() {
		if w >= len(prompt) {
			break
		}
		expected := []rune(prompt[w])
		for j, r := range buf {
			k := starts[w] + j
			if k >= len(positions) {
				break
			}
			class := classMismatch
			if j < len(expected) && r == expected[j] {
				class = classMatch
			}
			putCell(cells, positions[k], cell{r: r, class: class})
		}
	}

	if len(positions) > 0 && st.WordIndex() < len(prompt) {
		k := starts[st.WordIndex()] + st.CurrentLen()
		if k > len(positions)-1 {
			k = len(positions) - 1
		}
		markCursor(cells, positions[k])
	}
	return cells
}

// putCell writes c at pos, widening the row with blank cells when the
// position lies past the end of its line.
func putCell(cells [][]cell, pos layout.Position, c cell) {
	if pos.Row < 0 || pos.Row >= len(cells) {
		return
	}
	row := cells[pos.Row]
	for len(row) <= pos.Col {
		row = append(row, cell{r: ' ', class: classUntyped})
	}
	row[pos.Col] = c
	cells[pos.Row] = row
}

func markCursor(cells [][]cell, pos layout.Position) {
	if pos.Row < 0 || pos.Row >= len(cells) {
		return
	}
	row := cells[pos.Row]
	for len(row) <= pos.Col {
		row = append(row, cell{r: ' ', class: classUntyped})
	}
	row[pos.Col].class = classCursor
	cells[pos.Row] = row
}

func renderCells(row []cell) string {
	var b strings.Builder
	for _, c := range row {
		b.WriteString(styleFor(c.class).Render(string(c.r)))
	}
	return b.String()
}

func styleFor(class charClass) lipgloss.Style {
	switch class {
	case classMatch:
		return matchStyle
	case classMismatch:
		return mismatchStyle
	case classCursor:
		return cursorStyle
	default:
		return untypedStyle
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}
