// Package game implements the number guessing session: a secret drawn once
// from a bounded range, candidates parsed from text lines, and the three-way
// comparison that drives the loop until the secret is found.
package game

import (
	"cmp"
	"fmt"
)

// Outcome is the result of comparing a candidate with the secret.
type Outcome int

const (
	Less    Outcome = -1
	Equal   Outcome = 0
	Greater Outcome = 1
)

// String returns a lowercase name suitable for logs.
func (o Outcome) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Compare orders candidate against secret.
func Compare(candidate, secret int) Outcome {
	return Outcome(cmp.Compare(candidate, secret))
}
