// Package strategy provides the built-in Prisoner's Dilemma decision
// strategies and a name-based registry for constructing them.
package strategy

import (
	"math/rand/v2"

	"github.com/louisbranch/dilemma/internal/dilemma"
)

// AlwaysCooperate cooperates on every round.
type AlwaysCooperate struct{}

func (AlwaysCooperate) Name() string { return "AlwaysCooperate" }

func (AlwaysCooperate) Decide(dilemma.History, dilemma.Side) dilemma.Move {
	return dilemma.Cooperate
}

// AlwaysDefect defects on every round.
type AlwaysDefect struct{}

func (AlwaysDefect) Name() string { return "AlwaysDefect" }

func (AlwaysDefect) Decide(dilemma.History, dilemma.Side) dilemma.Move {
	return dilemma.Defect
}

// TitForTat cooperates on the first round and thereafter mirrors the
// opponent's previous move.
type TitForTat struct{}

func (TitForTat) Name() string { return "TitForTat" }

func (TitForTat) Decide(h dilemma.History, side dilemma.Side) dilemma.Move {
	last, ok := h.Last()
	if !ok {
		return dilemma.Cooperate
	}
	return last.Move(side.Opponent())
}

// TwoTitsForTat defects only when the opponent defected on both of the
// two preceding rounds. Fewer than two rounds of history is treated as
// insufficient evidence of defection.
type TwoTitsForTat struct{}

func (TwoTitsForTat) Name() string { return "TwoTitsForTat" }

func (TwoTitsForTat) Decide(h dilemma.History, side dilemma.Side) dilemma.Move {
	if h.Len() < 2 {
		return dilemma.Cooperate
	}
	opponent := side.Opponent()
	if h[h.Len()-1].Move(opponent) == dilemma.Defect &&
		h[h.Len()-2].Move(opponent) == dilemma.Defect {
		return dilemma.Defect
	}
	return dilemma.Cooperate
}

// Random cooperates or defects with uniform probability, independent
// of history. Draws come from the math/rand/v2 global generator, which
// is safe for concurrent use, so a single Random value may be shared
// across matches running in parallel.
type Random struct{}

func (Random) Name() string { return "Random" }

func (Random) Decide(dilemma.History, dilemma.Side) dilemma.Move {
	if rand.IntN(2) == 0 {
		return dilemma.Cooperate
	}
	return dilemma.Defect
}
