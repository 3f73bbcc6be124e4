// Package layout computes screen placement for prompt text.
package layout

import (
	"strings"
	"unicode/utf8"
)

// Rendered builds the display text for a prompt given the per-word typed
// buffers, plus the rune offset of each prompt word's first character. A word
// the user overtyped is padded with trailing spaces so every typed rune keeps
// a screen cell after Flow; without the padding, overrun characters would
// collide with the following words.
func Rendered(words []string, typed [][]rune) (string, []int) {
	var b strings.Builder
	starts := make([]int, 0, len(words))
	length := 0
	for i, word := range words {
		if i > 0 {
			b.WriteByte(' ')
			length++
		}
		starts = append(starts, length)
		b.WriteString(word)
		wordLen := utf8.RuneCountInString(word)
		extra := 0
		if i < len(typed) && len(typed[i]) > wordLen {
			extra = len(typed[i]) - wordLen
		}
		if extra > 0 {
			b.WriteString(strings.Repeat(" ", extra))
		}
		length += wordLen + extra
	}
	return b.String(), starts
}
