package dilemma

import "errors"

// Move is a single-round binary decision.
type Move int

const (
	Cooperate Move = iota
	Defect
)

func (m Move) String() string {
	switch m {
	case Cooperate:
		return "Cooperate"
	case Defect:
		return "Defect"
	default:
		return "Unknown"
	}
}

// Side identifies which seat of a match a strategy occupies.
type Side int

const (
	SideA Side = iota
	SideB
)

// Opponent returns the other seat.
func (s Side) Opponent() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "Unknown"
	}
}

// Outcome records both moves of a single round, indexed by Side.
type Outcome [2]Move

// Move returns the move played by the given side in this round.
func (o Outcome) Move(s Side) Move {
	return o[s]
}

// History is the ordered record of all outcomes in a match, indexed
// from round 0. It grows by one Outcome per round and entries are
// never altered once appended. A History belongs to exactly one match
// execution; strategies receive it read-only.
type History []Outcome

// Len reports the number of completed rounds.
func (h History) Len() int {
	return len(h)
}

// Last returns the most recent outcome, if any round has completed.
func (h History) Last() (Outcome, bool) {
	if len(h) == 0 {
		return Outcome{}, false
	}
	return h[len(h)-1], true
}

// Strategy is a decision capability mapping a match history and a seat
// to the next move.
//
// Decide is called with the history as it stood before the current
// round: h.Len() equals the zero-based round number. h[i].Move(side)
// is the caller's own move at round i and h[i].Move(side.Opponent())
// the opponent's. Implementations must cooperate-by-default rather
// than index rounds that have not happened, and must be safe for
// concurrent use across matches: no mutable per-match state, and any
// randomness self-contained per invocation.
type Strategy interface {
	Name() string
	Decide(h History, side Side) Move
}

// ErrNegativeRounds indicates a negative iteration count.
var ErrNegativeRounds = errors.New("rounds must be non-negative")

// ErrMissingStrategy indicates a match or roster entry without a strategy.
var ErrMissingStrategy = errors.New("strategy is required")
