package dilemma

// MatchResult captures the final scores and full history of one
// completed match.
type MatchResult struct {
	ScoreA  int
	ScoreB  int
	History History
}

// PlayMatch runs exactly rounds rounds between two strategies and
// returns the cumulative scores.
//
// Both decisions for a round are computed against the history as it
// stood before that round: neither strategy can observe the other's
// current-round move before committing its own. The history grows by
// one Outcome per round and is never rewritten.
//
// rounds == 0 is valid and yields a 0-0 result with an empty history.
// A negative rounds returns ErrNegativeRounds and a nil strategy
// returns ErrMissingStrategy; no rounds are played in either case.
func PlayMatch(a, b Strategy, rounds int) (MatchResult, error) {
	if a == nil || b == nil {
		return MatchResult{}, ErrMissingStrategy
	}
	if rounds < 0 {
		return MatchResult{}, ErrNegativeRounds
	}

	history := make(History, 0, rounds)
	scoreA, scoreB := 0, 0

	for r := 0; r < rounds; r++ {
		moveA := a.Decide(history, SideA)
		moveB := b.Decide(history, SideB)

		payA, payB := Payoffs(moveA, moveB)
		scoreA += payA
		scoreB += payB

		history = append(history, Outcome{moveA, moveB})
	}

	return MatchResult{
		ScoreA:  scoreA,
		ScoreB:  scoreB,
		History: history,
	}, nil
}
