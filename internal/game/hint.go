package game

import (
	"maps"
	"math/rand/v2"
	"slices"

	"example.com/crumpets/internal/code"
)

// Placeholder marks a hint position that reveals nothing.
const Placeholder = '_'

// Synthesize builds n hint candidates for secret. Each candidate keeps every
// confirmed Fermi, reveals at most one further secret character, moves every
// known Pico away from the position it was guessed at and fills the rest with
// characters that are not known to be absent.
func Synthesize(rng *rand.Rand, secret string, counts code.Counts, k *Knowledge, alphabet string, n int) []string {
	s := []rune(secret)
	pool := hintPool(alphabet, k)

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, synthesizeOne(rng, s, counts, k, pool))
	}
	return out
}

type candidate struct {
	cells []rune
	used  code.Counts
	k     *Knowledge
}

func (c *candidate) place(pos int, r rune) {
	c.cells[pos] = r
	c.used[r]++
}

// open lists placeholder positions where r would not contradict a Pico.
func (c *candidate) open(r rune) []int {
	var free []int
	for i, cell := range c.cells {
		if cell != Placeholder {
			continue
		}
		if p, ok := c.k.Picos[i]; ok && p == r {
			continue
		}
		free = append(free, i)
	}
	return free
}

func synthesizeOne(rng *rand.Rand, secret []rune, counts code.Counts, k *Knowledge, pool []rune) string {
	c := &candidate{
		cells: make([]rune, len(secret)),
		used:  make(code.Counts),
		k:     k,
	}
	for i := range c.cells {
		c.cells[i] = Placeholder
	}

	for _, pos := range slices.Sorted(maps.Keys(k.Fermis)) {
		if pos < len(c.cells) {
			c.place(pos, k.Fermis[pos])
		}
	}

	// reveal one more secret character
	var unrevealed []rune
	for _, r := range secret {
		if counts[r] > c.used[r] && !k.IsCrumpet(r) {
			unrevealed = append(unrevealed, r)
		}
	}
	if len(unrevealed) > 0 {
		r := unrevealed[rng.IntN(len(unrevealed))]
		if free := c.open(r); len(free) > 0 {
			c.place(free[rng.IntN(len(free))], r)
		}
	}

	for _, pos := range slices.Sorted(maps.Keys(k.Picos)) {
		r := k.Picos[pos]
		if free := c.open(r); len(free) > 0 {
			c.place(free[rng.IntN(len(free))], r)
		}
	}

	for i, cell := range c.cells {
		if cell != Placeholder {
			continue
		}
		var choices []rune
		for _, r := range pool {
			if counts[r] <= c.used[r] {
				continue
			}
			if p, ok := k.Picos[i]; ok && p == r {
				continue
			}
			choices = append(choices, r)
		}
		if len(choices) > 0 {
			c.place(i, choices[rng.IntN(len(choices))])
		}
	}

	return string(c.cells)
}

// hintPool is the alphabet without duplicates and without known-absent characters.
func hintPool(alphabet string, k *Knowledge) []rune {
	seen := make(map[rune]bool)
	var pool []rune
	for _, r := range alphabet {
		if seen[r] || k.IsCrumpet(r) {
			continue
		}
		seen[r] = true
		pool = append(pool, r)
	}
	return pool
}
