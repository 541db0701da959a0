package game

import (
	"maps"

	"example.com/crumpets/internal/code"
)

// Knowledge is everything the player has learned during one game.
// Only Evaluate writes to it; the hint synthesizer reads it.
type Knowledge struct {
	// Fermis maps a confirmed position to its character. Entries never change.
	Fermis map[int]rune
	// Picos maps a position to the character most recently reported Pico there.
	Picos map[int]rune
	// Crumpets are characters known to be absent from the code.
	Crumpets map[rune]struct{}
	// Unmatched is the code's occurrence count minus confirmed Fermis, per character.
	Unmatched code.Counts
}

func NewKnowledge(counts code.Counts) *Knowledge {
	return &Knowledge{
		Fermis:    make(map[int]rune),
		Picos:     make(map[int]rune),
		Crumpets:  make(map[rune]struct{}),
		Unmatched: counts.Clone(),
	}
}

func (k *Knowledge) IsCrumpet(r rune) bool {
	_, ok := k.Crumpets[r]
	return ok
}

func (k *Knowledge) recordFermi(pos int, r rune) {
	if _, ok := k.Fermis[pos]; ok {
		return
	}
	k.Fermis[pos] = r
	if k.Unmatched[r] > 0 {
		k.Unmatched[r]--
	}
}

func (k *Knowledge) recordPico(pos int, r rune) { k.Picos[pos] = r }

func (k *Knowledge) recordCrumpet(r rune) { k.Crumpets[r] = struct{}{} }

func (k *Knowledge) Clone() *Knowledge {
	return &Knowledge{
		Fermis:    maps.Clone(k.Fermis),
		Picos:     maps.Clone(k.Picos),
		Crumpets:  maps.Clone(k.Crumpets),
		Unmatched: k.Unmatched.Clone(),
	}
}
