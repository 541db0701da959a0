package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"example.com/crumpets/internal/config"
	"example.com/crumpets/internal/game"
	"example.com/crumpets/internal/term"
)

// App runs the interactive loop: one game after another until the player
// declines a replay, input ends or the context is cancelled.
type App struct {
	cfg     config.Config
	gameCfg game.Config
	log     *slog.Logger

	in   io.Reader
	view *term.View
	rng  *rand.Rand

	series Series
}

// Series tallies finished games for the lifetime of the process.
type Series struct {
	Played int
	Won    int
	Lost   int
}

type Options struct {
	In   io.Reader
	Out  io.Writer
	Rand *rand.Rand // optional; if nil, seeded from cfg.Game.Seed or the clock
}

func New(cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("app: input and output are required")
	}

	gameCfg := gameConfig(cfg)
	if err := gameCfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Game.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		log.Debug("random source ready", "seed", seed)
	}

	return &App{
		cfg:     cfg,
		gameCfg: gameCfg,
		log:     log,
		in:      opts.In,
		view:    term.NewView(opts.Out, cfg.UI.Color),
		rng:     rng,
	}, nil
}

func gameConfig(cfg config.Config) game.Config {
	return game.Config{
		CodeLength: cfg.Game.CodeLength,
		MaxGuesses: cfg.Game.MaxGuesses,
		Alphabet:   cfg.Game.Alphabet,
		Hints:      cfg.Game.Hints,
		FixedCode:  cfg.Game.FixedCode,
	}
}

func (a *App) Series() Series { return a.series }

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, a.in)

	for {
		err := a.play(ctx, lines)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		answer, err := a.ask(ctx, lines, "Do you want to play again? (yes/no): ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			break
		}
		a.view.Println()
	}

	a.view.Printf("Games played: %d, won: %d, lost: %d\n", a.series.Played, a.series.Won, a.series.Lost)
	return nil
}

func (a *App) play(ctx context.Context, lines <-chan input) error {
	g, err := game.New(a.gameCfg, a.rng)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	log := a.log.With("game_id", g.ID())
	log.Info("game started", "code_length", a.gameCfg.CodeLength, "max_guesses", a.gameCfg.MaxGuesses)

	a.intro()

	for !g.Finished() {
		line, err := a.ask(ctx, lines, fmt.Sprintf("Guess #%d/%d: ", g.GuessCount()+1, a.gameCfg.MaxGuesses))
		if err != nil {
			log.Info("game abandoned", "guesses", g.GuessCount(), "reason", err)
			return err
		}

		res, err := g.Guess(strings.ToLower(strings.TrimSpace(line)))
		if errors.Is(err, game.ErrInvalidLength) {
			log.Debug("guess rejected", "err", err)
			a.view.Printf("Please enter a %d-character code.\n\n", a.gameCfg.CodeLength)
			continue
		}
		if err != nil {
			return err
		}
		log.Debug("guess evaluated", "snapshot", g.Snapshot())

		a.view.Printf("Clues: %s\n\n", a.view.Clues(res))
		a.view.Printf("Percentage solved: %s\n\n", a.view.Progress(res.PercentSolved()))

		if g.State() == game.StateWon {
			a.view.Printf("%s\n\n", a.view.Good("You got it!"))
			break
		}

		a.view.Println(a.view.Muted(strings.Repeat("-", 100)))
		if a.gameCfg.Hints > 0 {
			a.view.Printf("Hints: %s\n\n", a.view.Hints(g.Hints()))
		}

		if g.State() == game.StateLost {
			a.view.Printf("%s\n\n", a.view.Bad(fmt.Sprintf("You ran out of guesses. The secret code was %s.", g.Secret())))
		}
	}

	a.series.Played++
	switch g.State() {
	case game.StateWon:
		a.series.Won++
	case game.StateLost:
		a.series.Lost++
	}
	log.Info("game finished", "state", g.State(), "guesses", g.GuessCount())
	return nil
}

func (a *App) ask(ctx context.Context, lines <-chan input, prompt string) (string, error) {
	a.view.Printf("%s", prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case in, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		return in.text, in.err
	}
}

type input struct {
	text string
	err  error
}

// readLines feeds lines from r until r is exhausted or ctx is done.
// The final value carries the read error, io.EOF on a clean end.
func readLines(ctx context.Context, r io.Reader) <-chan input {
	ch := make(chan input)
	go func() {
		defer close(ch)
		send := func(in input) bool {
			select {
			case ch <- in:
				return true
			case <-ctx.Done():
				return false
			}
		}

		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if !send(input{text: sc.Text()}) {
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		send(input{err: err})
	}()
	return ch
}
