package dilemma

// Payoff returns the points awarded to the player who played self
// against an opponent who played opponent:
//
//	Cooperate / Cooperate → 2
//	Cooperate / Defect    → 0
//	Defect    / Cooperate → 3
//	Defect    / Defect    → 1
//
// Defection dominates per round (3 > 2 and 1 > 0) while mutual
// cooperation maximizes the joint total (4 vs 2 or 3).
func Payoff(self, opponent Move) int {
	switch {
	case self == Cooperate && opponent == Cooperate:
		return 2
	case self == Cooperate && opponent == Defect:
		return 0
	case self == Defect && opponent == Cooperate:
		return 3
	default:
		return 1
	}
}

// Payoffs returns both players' points for a single round at once.
func Payoffs(a, b Move) (int, int) {
	return Payoff(a, b), Payoff(b, a)
}
