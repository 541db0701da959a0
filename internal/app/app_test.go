package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"example.com/crumpets/internal/code"
	"example.com/crumpets/internal/config"
	"example.com/crumpets/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string, maxGuesses int) config.Config {
	var c config.Config
	c.Env = "dev"
	c.Log.Format = "text"
	c.Log.Level = "warn"
	c.Game.CodeLength = len(secret)
	c.Game.MaxGuesses = maxGuesses
	c.Game.Alphabet = code.DefaultAlphabet
	c.Game.Hints = 3
	c.Game.FixedCode = secret
	return c
}

func runApp(t *testing.T, cfg config.Config, script string) (*App, string) {
	t.Helper()
	var out bytes.Buffer
	a, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		In:   strings.NewReader(script),
		Out:  &out,
		Rand: rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))
	return a, out.String()
}

func TestApp_WinAfterRetry(t *testing.T) {
	a, out := runApp(t, testConfig("248cyuu8", 10), "abc\nc88uzt3c\n248CYUU8\nno\n")

	assert.Contains(t, out, "Crumpets, a deductive logic game.")
	assert.Contains(t, out, "Please enter a 8-character code.")
	assert.Equal(t, 2, strings.Count(out, "Guess #1/10: "), "a rejected guess does not use a turn")
	assert.Contains(t, out, "Guess #2/10: ")
	assert.Contains(t, out, "Clues: Pico Pico Fermi Pico Crumpet Crumpet Crumpet Over")
	assert.Contains(t, out, "Percentage solved: [##------------------] 12.50%")
	assert.Contains(t, out, "Percentage solved: [####################] 100.00%")
	assert.Contains(t, out, "You got it!")
	assert.Equal(t, 1, strings.Count(out, "Hints: "))
	assert.Contains(t, out, "Do you want to play again? (yes/no): ")
	assert.Contains(t, out, "Games played: 1, won: 1, lost: 0")

	assert.Equal(t, Series{Played: 1, Won: 1}, a.Series())
}

func TestApp_LoseThenReplay(t *testing.T) {
	a, out := runApp(t, testConfig("ab", 1), "zz\nyes\nab\nn\n")

	assert.Contains(t, out, "Clues: Bagels")
	assert.Contains(t, out, "You ran out of guesses. The secret code was ab.")
	assert.Contains(t, out, "You got it!")
	assert.Equal(t, 2, strings.Count(out, "Crumpets, a deductive logic game."))
	assert.Contains(t, out, "Games played: 2, won: 1, lost: 1")

	assert.Equal(t, Series{Played: 2, Won: 1, Lost: 1}, a.Series())
}

func TestApp_HintsShowKnownFermis(t *testing.T) {
	_, out := runApp(t, testConfig("abcd", 1), "axxx\nn\n")

	i := strings.Index(out, "Hints: ")
	require.GreaterOrEqual(t, i, 0)
	line := out[i+len("Hints: "):]
	line = line[:strings.Index(line, "\n")]

	hints := strings.Split(line, ", ")
	require.Len(t, hints, 3)
	for _, h := range hints {
		assert.True(t, strings.HasPrefix(h, "a"), "hint %q keeps the Fermi", h)
		assert.NotContains(t, h, "x")
	}
}

func TestApp_EndOfInput(t *testing.T) {
	a, out := runApp(t, testConfig("abc", 3), "zzz\n")

	assert.Contains(t, out, "Clues: Bagels")
	assert.Contains(t, out, "Games played: 0, won: 0, lost: 0")
	assert.Equal(t, Series{}, a.Series())
}

func TestApp_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	a, err := New(testConfig("abc", 3), nil, Options{In: pr, Out: io.Discard})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, a.Run(ctx), context.Canceled)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(testConfig("abc", 3), nil, Options{Out: io.Discard})
	require.Error(t, err)

	bad := testConfig("abc", 3)
	bad.Game.MaxGuesses = 0
	_, err = New(bad, nil, Options{In: strings.NewReader(""), Out: io.Discard})
	require.Error(t, err)

	upper := testConfig("AB", 2)
	upper.Game.Alphabet = "ABCD"
	_, err = New(upper, nil, Options{In: strings.NewReader("AB\nAB\n"), Out: io.Discard})
	require.ErrorContains(t, err, "lower case")
}

func TestGameConfig(t *testing.T) {
	c := testConfig("ab12", 6)
	c.Game.Hints = 5

	assert.Equal(t, game.Config{
		CodeLength: 4,
		MaxGuesses: 6,
		Alphabet:   code.DefaultAlphabet,
		Hints:      5,
		FixedCode:  "ab12",
	}, gameConfig(c))
}
