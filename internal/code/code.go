package code

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

const (
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	DefaultLength   = 8
)

var (
	ErrLength   = errors.New("code has wrong length")
	ErrAlphabet = errors.New("code uses characters outside the alphabet")
)

// Counts maps a character to the number of times it occurs in a code.
type Counts map[rune]int

// OccurrenceCounts counts every distinct character of code.
func OccurrenceCounts(code string) Counts {
	c := make(Counts, len(code))
	for _, r := range code {
		c[r]++
	}
	return c
}

func (c Counts) Clone() Counts {
	out := make(Counts, len(c))
	for r, n := range c {
		out[r] = n
	}
	return out
}

// Has reports whether r occurs at least once.
func (c Counts) Has(r rune) bool { return c[r] > 0 }

// Generate samples a code of the given length uniformly from alphabet.
func Generate(rng *rand.Rand, length int, alphabet string) string {
	chars := []rune(alphabet)
	if len(chars) == 0 || length <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteRune(chars[rng.IntN(len(chars))])
	}
	return b.String()
}

// Validate checks a fixed code against the configured length and alphabet.
func Validate(code string, length int, alphabet string) error {
	if n := utf8.RuneCountInString(code); n != length {
		return fmt.Errorf("%w: %d characters, want %d", ErrLength, n, length)
	}
	for _, r := range code {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("%w: %q", ErrAlphabet, r)
		}
	}
	return nil
}
