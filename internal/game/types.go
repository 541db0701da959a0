package game

import "strings"

// Clue classifies one guessed character against the secret code.
type Clue string

const (
	Fermi   Clue = "Fermi"   // right character, right position
	Pico    Clue = "Pico"    // present elsewhere, an unclaimed occurrence remains
	Over    Clue = "Over"    // present, but every occurrence is already claimed
	Crumpet Clue = "Crumpet" // absent from the code
)

// BagelsText is how a result with no correct characters is reported.
const BagelsText = "Bagels"

// Result is the outcome of evaluating one guess. Clues always holds one tag per
// position; Bagels is set when every tag is Crumpet.
type Result struct {
	Clues  []Clue `json:"clues"`
	Bagels bool   `json:"bagels"`
}

func (r Result) String() string {
	if r.Bagels {
		return BagelsText
	}
	parts := make([]string, len(r.Clues))
	for i, c := range r.Clues {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}

func (r Result) PercentSolved() float64 { return PercentSolved(r.Clues) }

// Solved reports whether every position is a Fermi.
func (r Result) Solved() bool {
	if len(r.Clues) == 0 {
		return false
	}
	for _, c := range r.Clues {
		if c != Fermi {
			return false
		}
	}
	return true
}

// Tally holds per-tag counts of a clue sequence.
type Tally struct {
	Fermi   int `json:"fermi"`
	Pico    int `json:"pico"`
	Over    int `json:"over"`
	Crumpet int `json:"crumpet"`
}

func (t Tally) Total() int { return t.Fermi + t.Pico + t.Over + t.Crumpet }
