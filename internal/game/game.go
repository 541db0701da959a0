package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"example.com/crumpets/internal/code"
	"github.com/google/uuid"
)

const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

var (
	ErrInvalidLength = errors.New("guess has wrong length")
	ErrGameOver      = errors.New("game already finished")
)

type Config struct {
	CodeLength int
	MaxGuesses int
	Alphabet   string
	Hints      int    // candidates per hint request
	FixedCode  string // "" => random code
}

func DefaultConfig() Config {
	return Config{
		CodeLength: code.DefaultLength,
		MaxGuesses: 10,
		Alphabet:   code.DefaultAlphabet,
		Hints:      3,
	}
}

func (c Config) Validate() error {
	if c.CodeLength <= 0 {
		return fmt.Errorf("code length must be positive, got %d", c.CodeLength)
	}
	if c.MaxGuesses <= 0 {
		return fmt.Errorf("max guesses must be positive, got %d", c.MaxGuesses)
	}
	if c.Hints < 0 {
		return fmt.Errorf("hint count must not be negative, got %d", c.Hints)
	}
	if c.Alphabet == "" {
		return errors.New("alphabet is empty")
	}
	if strings.ContainsRune(c.Alphabet, Placeholder) {
		return fmt.Errorf("alphabet must not contain the placeholder %q", Placeholder)
	}
	// guesses are lowercased before scoring
	for _, r := range c.Alphabet {
		if unicode.ToLower(r) != r {
			return fmt.Errorf("alphabet must be lower case, got %q", r)
		}
	}
	if c.FixedCode != "" {
		if err := code.Validate(c.FixedCode, c.CodeLength, c.Alphabet); err != nil {
			return fmt.Errorf("fixed code: %w", err)
		}
	}
	return nil
}

// Game is one round of Crumpets: a secret code and everything learned about it.
// A Game is not safe for concurrent use.
type Game struct {
	id  string
	cfg Config
	rng *rand.Rand

	secret string
	counts code.Counts
	know   *Knowledge

	state   string
	guesses []string
	last    Result
}

// New starts a game with a fresh secret code and empty knowledge.
func New(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("random source is nil")
	}

	secret := cfg.FixedCode
	if secret == "" {
		secret = code.Generate(rng, cfg.CodeLength, cfg.Alphabet)
	}
	counts := code.OccurrenceCounts(secret)

	return &Game{
		id:     uuid.NewString(),
		cfg:    cfg,
		rng:    rng,
		secret: secret,
		counts: counts,
		know:   NewKnowledge(counts),
		state:  StatePlaying,
	}, nil
}

func (g *Game) ID() string         { return g.id }
func (g *Game) Config() Config     { return g.cfg }
func (g *Game) State() string      { return g.state }
func (g *Game) Finished() bool     { return g.state != StatePlaying }
func (g *Game) GuessCount() int    { return len(g.guesses) }
func (g *Game) GuessesLeft() int   { return g.cfg.MaxGuesses - len(g.guesses) }
func (g *Game) LastResult() Result { return g.last }

// Secret returns the code. Front ends show it only once the game is over.
func (g *Game) Secret() string { return g.secret }

// Guess evaluates guess and updates the game's knowledge and state.
// A guess of the wrong length is rejected without touching any state.
func (g *Game) Guess(guess string) (Result, error) {
	if g.Finished() {
		return Result{}, ErrGameOver
	}
	if n := utf8.RuneCountInString(guess); n != g.cfg.CodeLength {
		return Result{}, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, n, g.cfg.CodeLength)
	}

	res := Evaluate(g.secret, g.counts, guess, g.know)
	g.guesses = append(g.guesses, guess)
	g.last = res

	switch {
	case g.IsWin(guess):
		g.state = StateWon
	case len(g.guesses) >= g.cfg.MaxGuesses:
		g.state = StateLost
	}
	return res, nil
}

// Hints returns Config.Hints candidates consistent with the current knowledge.
func (g *Game) Hints() []string {
	return Synthesize(g.rng, g.secret, g.counts, g.know, g.cfg.Alphabet, g.cfg.Hints)
}

func (g *Game) IsWin(guess string) bool { return guess == g.secret }

// Knowledge returns a copy of what has been learned so far.
func (g *Game) Knowledge() *Knowledge { return g.know.Clone() }
