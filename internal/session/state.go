// Package session models the input state of a typing test.
package session

import "strings"

// State is the complete input state: the prompt words, one typed buffer per
// visited word, and the index of the word being typed. States are values;
// Apply never modifies its receiver, so old states stay valid for comparison
// and replay.
type State struct {
	prompt []string
	typed  [][]rune
	index  int
}

// New returns the initial state for a prompt, with a single empty buffer for
// the first word.
func New(prompt []string) State {
	return State{
		prompt: prompt,
		typed:  [][]rune{{}},
	}
}

// Apply processes one event and reports whether the session completed. The
// only completing transition is an advance on the final word whose buffer
// matches it exactly.
func (s State) Apply(ev Event) (State, bool) {
	switch ev := ev.(type) {
	case CharEvent:
		return s.withChar(ev.Rune), false
	case BackspaceEvent:
		return s.withBackspace(), false
	case AdvanceEvent:
		return s.withAdvance()
	default:
		// Resize and tick carry no typing content.
		return s, false
	}
}

// Prompt returns the prompt words. Callers must not modify the slice.
func (s State) Prompt() []string {
	return s.prompt
}

// Typed returns the per-word buffers. Callers must not modify them.
func (s State) Typed() [][]rune {
	return s.typed
}

// WordIndex returns the index of the word currently being typed.
func (s State) WordIndex() int {
	return s.index
}

// CurrentLen returns the length of the current word's buffer.
func (s State) CurrentLen() int {
	return len(s.typed[s.index])
}

// Transcript joins all typed buffers with single spaces, empty buffers
// included.
func (s State) Transcript() string {
	parts := make([]string, 0, len(s.typed))
	for _, buf := range s.typed {
		parts = append(parts, string(buf))
	}
	return strings.Join(parts, " ")
}

func (s State) withChar(r rune) State {
	typed := cloneTyped(s.typed)
	current := append([]rune{}, typed[s.index]...)
	typed[s.index] = append(current, r)
	s.typed = typed
	return s
}

func (s State) withBackspace() State {
	if len(s.typed[s.index]) > 0 {
		typed := cloneTyped(s.typed)
		current := typed[s.index]
		typed[s.index] = append([]rune{}, current[:len(current)-1]...)
		s.typed = typed
		return s
	}
	if s.index == 0 {
		return s
	}
	// Step back into the previous word; the abandoned empty buffer is
	// discarded so the transcript shrinks with it.
	typed := cloneTyped(s.typed)
	s.typed = typed[:len(typed)-1]
	s.index--
	return s
}

func (s State) withAdvance() (State, bool) {
	if len(s.prompt) == 0 {
		return s, false
	}
	if s.index >= len(s.prompt)-1 {
		if string(s.typed[s.index]) == s.prompt[s.index] {
			return s, true
		}
		// A non-matching final word swallows the advance; the user must fix
		// it or wait out the clock.
		return s, false
	}
	typed := cloneTyped(s.typed)
	s.index++
	if len(typed) <= s.index {
		typed = append(typed, []rune{})
	}
	s.typed = typed
	return s, false
}

func cloneTyped(typed [][]rune) [][]rune {
	out := make([][]rune, len(typed))
	copy(out, typed)
	return out
}
