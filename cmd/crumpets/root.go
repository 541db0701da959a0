package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"example.com/crumpets/internal/app"
	"example.com/crumpets/internal/config"
	"github.com/spf13/cobra"
)

type flags struct {
	length     int
	maxGuesses int
	hints      int
	seed       uint64
	code       string
	alphabet   string
	noColor    bool
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "crumpets",
		Short: "Crumpets - guess the secret code from Fermi/Pico/Over/Crumpet clues",
		Long: `Crumpets is a deductive logic game played in the terminal.

A secret code of letters and digits is hidden. After every guess each
character is classified as Fermi (right place), Pico (wrong place),
Over (too many of it) or Crumpet (not in the code), and a few hints
consistent with everything learned so far are shown.

Settings are read from the environment (and a .env file); flags win.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			applyFlags(cmd, f, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := newLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}

			a, err := app.New(cfg, log, app.Options{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			if err := a.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.length, "length", "l", 0, "secret code length (CRUMPETS_CODE_LENGTH)")
	fl.IntVarP(&f.maxGuesses, "max-guesses", "g", 0, "guesses per game (CRUMPETS_MAX_GUESSES)")
	fl.IntVar(&f.hints, "hints", 0, "hint candidates shown after each guess (CRUMPETS_HINTS)")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed, 0 for clock seeded (CRUMPETS_SEED)")
	fl.StringVar(&f.code, "code", "", "play against a fixed code (CRUMPETS_FIXED_CODE)")
	fl.StringVar(&f.alphabet, "alphabet", "", "characters a code is drawn from (CRUMPETS_ALPHABET)")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored output (CRUMPETS_COLOR=false)")
	fl.StringVar(&f.logLevel, "log-level", "", "debug|info|warn|error (LOG_LEVEL)")
	fl.StringVar(&f.logFormat, "log-format", "", "text|json (LOG_FORMAT)")

	return cmd
}

// applyFlags overrides env settings with every flag the user set explicitly.
func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("length") {
		cfg.Game.CodeLength = f.length
	}
	if changed("max-guesses") {
		cfg.Game.MaxGuesses = f.maxGuesses
	}
	if changed("hints") {
		cfg.Game.Hints = f.hints
	}
	if changed("seed") {
		cfg.Game.Seed = f.seed
	}
	if changed("code") {
		cfg.Game.FixedCode = f.code
	}
	if changed("alphabet") {
		cfg.Game.Alphabet = f.alphabet
	}
	if changed("no-color") {
		cfg.UI.Color = !f.noColor
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch cfg.Log.Format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Log.Format)
	}
	return slog.New(h).With("env", cfg.Env), nil
}
