package dilemma

import (
	"errors"
	"testing"
)

type stubStrategy struct {
	name   string
	decide func(h History, side Side) Move
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) Decide(h History, side Side) Move { return s.decide(h, side) }

func constant(move Move) Strategy {
	return stubStrategy{
		name:   move.String(),
		decide: func(History, Side) Move { return move },
	}
}

func TestPlayMatchValidation(t *testing.T) {
	cooperator := constant(Cooperate)

	tests := []struct {
		name    string
		a, b    Strategy
		rounds  int
		wantErr error
	}{
		{name: "nil a", a: nil, b: cooperator, rounds: 1, wantErr: ErrMissingStrategy},
		{name: "nil b", a: cooperator, b: nil, rounds: 1, wantErr: ErrMissingStrategy},
		{name: "negative rounds", a: cooperator, b: cooperator, rounds: -1, wantErr: ErrNegativeRounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlayMatch(tt.a, tt.b, tt.rounds)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PlayMatch() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlayMatchZeroRounds(t *testing.T) {
	result, err := PlayMatch(constant(Defect), constant(Defect), 0)
	if err != nil {
		t.Fatalf("play match: %v", err)
	}
	if result.ScoreA != 0 || result.ScoreB != 0 {
		t.Errorf("scores = (%d, %d), want (0, 0)", result.ScoreA, result.ScoreB)
	}
	if result.History.Len() != 0 {
		t.Errorf("history length = %d, want 0", result.History.Len())
	}
}

func TestPlayMatchConstantPairings(t *testing.T) {
	const rounds = 50

	tests := []struct {
		name       string
		a, b       Strategy
		wantScoreA int
		wantScoreB int
	}{
		{name: "both cooperate", a: constant(Cooperate), b: constant(Cooperate), wantScoreA: 2 * rounds, wantScoreB: 2 * rounds},
		{name: "both defect", a: constant(Defect), b: constant(Defect), wantScoreA: rounds, wantScoreB: rounds},
		{name: "cooperatorexploited", a: constant(Cooperate), b: constant(Defect), wantScoreA: 0, wantScoreB: 3 * rounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PlayMatch(tt.a, tt.b, rounds)
			if err != nil {
				t.Fatalf("play match: %v", err)
			}
			if result.ScoreA != tt.wantScoreA || result.ScoreB != tt.wantScoreB {
				t.Errorf("scores = (%d, %d), want (%d, %d)",
					result.ScoreA, result.ScoreB, tt.wantScoreA, tt.wantScoreB)
			}
			if result.History.Len() != rounds {
				t.Errorf("history length = %d, want %d", result.History.Len(), rounds)
			}
		})
	}
}

func TestPlayMatchHistoryRecordsMovesBySide(t *testing.T) {
	result, err := PlayMatch(constant(Cooperate), constant(Defect), 3)
	if err != nil {
		t.Fatalf("play match: %v", err)
	}
	for i, outcome := range result.History {
		if outcome.Move(SideA) != Cooperate {
			t.Errorf("round %d: side A move = %v, want Cooperate", i, outcome.Move(SideA))
		}
		if outcome.Move(SideB) != Defect {
			t.Errorf("round %d: side B move = %v, want Defect", i, outcome.Move(SideB))
		}
	}
}

// Both strategies must decide every round from the history as it stood
// before that round: the observed history length equals the zero-based
// round number on every invocation, for both seats.
func TestPlayMatchSimultaneousDecisions(t *testing.T) {
	const rounds = 10

	seen := map[Side][]int{}
	probe := func(side Side) Strategy {
		return stubStrategy{
			name: "Probe",
			decide: func(h History, s Side) Move {
				if s != side {
					t.Errorf("probe for side %v invoked with side %v", side, s)
				}
				seen[side] = append(seen[side], h.Len())
				return Cooperate
			},
		}
	}

	if _, err := PlayMatch(probe(SideA), probe(SideB), rounds); err != nil {
		t.Fatalf("play match: %v", err)
	}

	for side, lengths := range seen {
		if len(lengths) != rounds {
			t.Fatalf("side %v decided %d times, want %d", side, len(lengths), rounds)
		}
		for round, length := range lengths {
			if length != round {
				t.Errorf("side %v saw history length %d at round %d", side, length, round)
			}
		}
	}
}

func TestPlayMatchScoreBounds(t *testing.T) {
	for _, rounds := range []int{0, 1, 7, 100} {
		strategies := []Strategy{constant(Cooperate), constant(Defect)}
		for _, a := range strategies {
			for _, b := range strategies {
				result, err := PlayMatch(a, b, rounds)
				if err != nil {
					t.Fatalf("play match: %v", err)
				}
				if result.ScoreA < 0 || result.ScoreA > 3*rounds {
					t.Errorf("score A = %d, want within [0, %d]", result.ScoreA, 3*rounds)
				}
				if result.ScoreB < 0 || result.ScoreB > 3*rounds {
					t.Errorf("score B = %d, want within [0, %d]", result.ScoreB, 3*rounds)
				}
				total := result.ScoreA + result.ScoreB
				if total < 2*rounds || total > 4*rounds {
					t.Errorf("joint total = %d, want within [%d, %d]", total, 2*rounds, 4*rounds)
				}
			}
		}
	}
}
