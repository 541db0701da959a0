package app

const introText = `Crumpets, a deductive logic game.

I am thinking of a %d-character secret code made up of letters and numbers.
Try to guess what it is. You have %d guesses. Here are some clues:
When I say:     That means:
Crumpet         The character does not exist in the code.
Fermi           The character is a perfect match.
Pico            The character is in the wrong place.
Over            There are too many of this character.
Bagels          No characters are in the code.

For example, if the secret code was 248cyuu8 and your guess was c88uzt3c, the
clues would be Pico Pico Fermi Pico Crumpet Crumpet Crumpet Over.

After each guess you get %d hints. A hint keeps every character you have
placed, reveals one more, and marks unknown positions with _.

`

func (a *App) intro() {
	a.view.Printf(introText, a.gameCfg.CodeLength, a.gameCfg.MaxGuesses, a.gameCfg.Hints)
}
