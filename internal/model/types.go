// Package model defines shared data structures.
package model

import "time"

// Config defines resolved test settings.
type Config struct {
	Pack     string
	Words    int
	Duration time.Duration
	CapsPct  float64
	PunctPct float64
	PunctSet string

	// Seed, when set, makes prompt generation repeatable. Nil means a fresh
	// random prompt per test.
	Seed *int64
}
