package session

import (
	"reflect"
	"testing"
)

func typeWord(s State, word string) State {
	for _, r := range word {
		s, _ = s.Apply(CharEvent{Rune: r})
	}
	return s
}

func TestCharAppendsToCurrentWord(t *testing.T) {
	s := New([]string{"the", "fox"})
	s = typeWord(s, "th")
	if got := string(s.Typed()[0]); got != "th" {
		t.Fatalf("expected buffer %q, got %q", "th", got)
	}
	if s.WordIndex() != 0 {
		t.Fatalf("expected word index 0, got %d", s.WordIndex())
	}
}

func TestOvertypingIsUnbounded(t *testing.T) {
	s := New([]string{"cat", "dog"})
	s = typeWord(s, "catdog")
	if got := string(s.Typed()[0]); got != "catdog" {
		t.Fatalf("expected overtyped buffer kept, got %q", got)
	}
}

func TestBackspaceTrimsCurrentWord(t *testing.T) {
	s := New([]string{"the"})
	s = typeWord(s, "thx")
	s, done := s.Apply(BackspaceEvent{})
	if done {
		t.Fatalf("backspace must not complete a session")
	}
	if got := string(s.Typed()[0]); got != "th" {
		t.Fatalf("expected %q after backspace, got %q", "th", got)
	}
}

func TestBackspaceCrossesWordBoundary(t *testing.T) {
	s := New([]string{"the", "fox"})
	s = typeWord(s, "the")
	s, _ = s.Apply(AdvanceEvent{})
	if s.WordIndex() != 1 || len(s.Typed()) != 2 {
		t.Fatalf("expected to be on word 1 with 2 buffers, got index %d, %d buffers", s.WordIndex(), len(s.Typed()))
	}
	s, _ = s.Apply(BackspaceEvent{})
	if s.WordIndex() != 0 {
		t.Fatalf("expected to return to word 0, got %d", s.WordIndex())
	}
	if len(s.Typed()) != 1 {
		t.Fatalf("expected abandoned buffer discarded, got %d buffers", len(s.Typed()))
	}
	if s.Transcript() != "the" {
		t.Fatalf("expected transcript %q, got %q", "the", s.Transcript())
	}
}

func TestBackspaceAtOriginIsNoOp(t *testing.T) {
	s := New([]string{"the", "fox"})
	after, done := s.Apply(BackspaceEvent{})
	if done {
		t.Fatalf("backspace must not complete a session")
	}
	if !reflect.DeepEqual(s, after) {
		t.Fatalf("expected identical state after backspace at origin")
	}
}

func TestAdvanceCreatesNextBuffer(t *testing.T) {
	s := New([]string{"a", "b", "c"})
	s = typeWord(s, "x")
	s, done := s.Apply(AdvanceEvent{})
	if done {
		t.Fatalf("advance on a middle word must not complete")
	}
	if s.WordIndex() != 1 {
		t.Fatalf("expected word index 1, got %d", s.WordIndex())
	}
	if s.CurrentLen() != 0 {
		t.Fatalf("expected fresh empty buffer, got length %d", s.CurrentLen())
	}
}

func TestAdvanceOnUnmatchedFinalWordIsSwallowed(t *testing.T) {
	s := New([]string{"one", "two"})
	s = typeWord(s, "one")
	s, _ = s.Apply(AdvanceEvent{})
	s = typeWord(s, "twX")
	after, done := s.Apply(AdvanceEvent{})
	if done {
		t.Fatalf("unmatched final word must not complete the session")
	}
	if !reflect.DeepEqual(s, after) {
		t.Fatalf("expected swallowed advance to leave state unchanged")
	}
}

func TestAdvanceOnExactFinalWordCompletes(t *testing.T) {
	s := New([]string{"one", "two"})
	s = typeWord(s, "one")
	s, _ = s.Apply(AdvanceEvent{})
	s = typeWord(s, "two")
	s, done := s.Apply(AdvanceEvent{})
	if !done {
		t.Fatalf("expected exact final word to complete the session")
	}
	if s.Transcript() != "one two" {
		t.Fatalf("expected transcript %q, got %q", "one two", s.Transcript())
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	before := New([]string{"pure", "state"})
	before = typeWord(before, "pu")
	snapshot := before.Transcript()

	_, _ = before.Apply(CharEvent{Rune: 'r'})
	_, _ = before.Apply(BackspaceEvent{})
	_, _ = before.Apply(AdvanceEvent{})
	if before.Transcript() != snapshot {
		t.Fatalf("receiver mutated: %q became %q", snapshot, before.Transcript())
	}
	if before.WordIndex() != 0 {
		t.Fatalf("receiver index mutated: %d", before.WordIndex())
	}
}

func TestResizeAndTickLeaveStateUntouched(t *testing.T) {
	s := New([]string{"the", "fox"})
	s = typeWord(s, "th")
	for _, ev := range []Event{ResizeEvent{}, TickEvent{}} {
		after, done := s.Apply(ev)
		if done {
			t.Fatalf("%T must not complete a session", ev)
		}
		if !reflect.DeepEqual(s, after) {
			t.Fatalf("%T must not change the state", ev)
		}
	}
}

func TestScenarioMistypedMiddleWordStillCompletes(t *testing.T) {
	s := New([]string{"the", "quick", "fox"})
	done := false
	for _, word := range []string{"the", "quik", "fox"} {
		s = typeWord(s, word)
		s, done = s.Apply(AdvanceEvent{})
	}
	if !done {
		t.Fatalf("expected early completion on the final advance")
	}
	if s.Transcript() != "the quik fox" {
		t.Fatalf("expected transcript %q, got %q", "the quik fox", s.Transcript())
	}
}
