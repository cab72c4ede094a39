package epidemic

import (
	"github.com/ougirez/vaxboard/internal/domain"
)

// RunSIR advances a susceptible-infected-recovered model for the given
// number of days with an explicit one-day Euler step, recording the state
// after each step. beta is derived as r0*gamma.
//
// Float64 throughout and deterministic. Compartments are intentionally not
// clamped: extreme parameter combinations can push S slightly negative,
// which is an accepted artifact of the discretization, and the model is only
// used to compare two scenarios against each other.
func RunSIR(population, initialInfected, r0, gamma float64, days int) []domain.SIRState {
	beta := r0 * gamma

	s, i, r := population-initialInfected, initialInfected, 0.0
	states := make([]domain.SIRState, 0, days)
	for t := 0; t < days; t++ {
		var newInfections float64
		if population > 0 {
			newInfections = beta * s * i / population
		}
		newRecoveries := gamma * i

		s -= newInfections
		i += newInfections - newRecoveries
		r += newRecoveries

		states = append(states, domain.SIRState{Day: t, S: s, I: i, R: r})
	}

	return states
}
