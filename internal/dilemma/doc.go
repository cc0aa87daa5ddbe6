// Package dilemma implements the core model for an iterated Prisoner's
// Dilemma match: moves, per-round outcomes, match history, the payoff
// table, the strategy contract, and the match runner.
//
// The package is pure computation. Strategy variants live in the
// strategy subpackage and the parallel scheduler in the tournament
// subpackage.
package dilemma
