package game

import (
	"maps"
	"slices"
)

// Snapshot is a serialisable view of a game. The secret and the remaining
// per-character counts are only filled in once the game is finished.
type Snapshot struct {
	GameID string `json:"gameId"`

	State      string `json:"state"`
	CodeLength int    `json:"codeLength"`
	MaxGuesses int    `json:"maxGuesses"`

	Guesses []string `json:"guesses"`
	Last    Result   `json:"last"`

	Fermis    map[int]string `json:"fermis"`
	Picos     map[int]string `json:"picos"`
	Crumpets  []string       `json:"crumpets"`
	Unmatched map[string]int `json:"unmatched,omitempty"`

	RevealedSecret string `json:"revealedSecret,omitempty"`
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		GameID:     g.id,
		State:      g.state,
		CodeLength: g.cfg.CodeLength,
		MaxGuesses: g.cfg.MaxGuesses,
		Guesses:    append([]string(nil), g.guesses...),
		Last:       g.last,
		Fermis:     make(map[int]string, len(g.know.Fermis)),
		Picos:      make(map[int]string, len(g.know.Picos)),
		Unmatched:  make(map[string]int),
	}
	for pos, r := range g.know.Fermis {
		snap.Fermis[pos] = string(r)
	}
	for pos, r := range g.know.Picos {
		snap.Picos[pos] = string(r)
	}
	for _, r := range slices.Sorted(maps.Keys(g.know.Crumpets)) {
		snap.Crumpets = append(snap.Crumpets, string(r))
	}
	// per-character counts describe the code's composition, so they wait for the end too
	if g.Finished() {
		snap.RevealedSecret = g.secret
		for r, n := range g.know.Unmatched {
			if n > 0 {
				snap.Unmatched[string(r)] = n
			}
		}
	}
	return snap
}
