package game

import "example.com/crumpets/internal/code"

// Evaluate classifies every position of guess against secret and folds what was
// learned into k. guess must have the same number of characters as secret.
//
// Exact matches are resolved for the whole guess before any other position is
// looked at, so the per-character budget left for Pico/Over reflects every Fermi.
func Evaluate(secret string, counts code.Counts, guess string, k *Knowledge) Result {
	s := []rune(secret)
	g := []rune(guess)
	n := len(g)

	clues := make([]Clue, n)
	left := counts.Clone()

	// exact
	for i := 0; i < n; i++ {
		if g[i] == s[i] {
			clues[i] = Fermi
			left[g[i]]--
			k.recordFermi(i, g[i])
		}
	}

	// present / absent
	bagels := true
	for i := 0; i < n; i++ {
		if clues[i] == Fermi {
			bagels = false
			continue
		}
		r := g[i]
		switch {
		case !counts.Has(r):
			clues[i] = Crumpet
			k.recordCrumpet(r)
		case left[r] > 0:
			clues[i] = Pico
			left[r]--
			k.recordPico(i, r)
			bagels = false
		default:
			clues[i] = Over
			bagels = false
		}
	}

	return Result{Clues: clues, Bagels: bagels && n > 0}
}

// PercentSolved is the share of Fermi tags in clues, from 0 to 100.
func PercentSolved(clues []Clue) float64 {
	if len(clues) == 0 {
		return 0
	}
	return 100 * float64(CountClues(clues).Fermi) / float64(len(clues))
}

func CountClues(clues []Clue) Tally {
	var t Tally
	for _, c := range clues {
		switch c {
		case Fermi:
			t.Fermi++
		case Pico:
			t.Pico++
		case Over:
			t.Over++
		case Crumpet:
			t.Crumpet++
		}
	}
	return t
}
