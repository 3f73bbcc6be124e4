// Package score computes typing test results.
package score

import (
	"strings"
	"time"
)

// Result is an immutable summary of a finished test.
type Result struct {
	WPM      float64
	Accuracy float64
	Correct  int
	Total    int
}

// Score compares a typed transcript against the prompt it was typed from.
// Accuracy counts positionally equal words against the prompt length; WPM
// counts every typed word, right or wrong, as raw throughput. Degenerate
// inputs clamp instead of failing: an empty prompt scores against a total of
// one, and zero or negative elapsed time floors the minutes at an epsilon so
// an empty transcript still yields zero WPM.
func Score(prompt, typed string, elapsed time.Duration) Result {
	promptWords := strings.Fields(prompt)
	typedWords := strings.Fields(typed)

	correct := 0
	for i, word := range typedWords {
		if i >= len(promptWords) {
			break
		}
		if word == promptWords[i] {
			correct++
		}
	}

	total := len(promptWords)
	if total < 1 {
		total = 1
	}

	minutes := elapsed.Minutes()
	if minutes < 1e-9 {
		minutes = 1e-9
	}

	return Result{
		WPM:      float64(len(typedWords)) / minutes,
		Accuracy: 100 * float64(correct) / float64(total),
		Correct:  correct,
		Total:    total,
	}
}
