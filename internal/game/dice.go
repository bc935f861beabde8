package game

import "math/rand/v2"

const diceSides = 6

// RandSource yields uniform values in [0, n). It exists so tests can
// feed deterministic sequences instead of the global generator.
type RandSource interface {
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int {
	return rand.IntN(n)
}

// Dice draws two independent uniform dice per roll.
type Dice struct {
	src RandSource
}

func NewDice(src RandSource) *Dice {
	if src == nil {
		src = defaultSource{}
	}
	return &Dice{src: src}
}

// Roll returns the two dice values and whether they sum to seven. The
// win flag is derived here and nowhere else.
func (d *Dice) Roll() (dice1, dice2 int, win bool) {
	dice1 = d.src.IntN(diceSides) + 1
	dice2 = d.src.IntN(diceSides) + 1
	return dice1, dice2, dice1+dice2 == 7
}
