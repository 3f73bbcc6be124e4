// Package generator builds typing prompts.
package generator

import (
	"fmt"
	"math/rand"
	"time"
	"unicode"
)

// Generator produces randomized typing prompts.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Generator with a fixed seed for repeatable prompts.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Prompt selects count words uniformly with replacement and applies the
// caps/punctuation rules. A non-positive count or an empty word list is a
// configuration error.
func (g *Generator) Prompt(words []string, count int, capsPct, punctPct float64, punctSet []rune) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("word count must be positive")
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, capsPct)
		word = applyPunct(g.rnd, word, punctPct, punctSet)
		result = append(result, word)
	}
	return result, nil
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
