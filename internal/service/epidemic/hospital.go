package epidemic

import (
	"github.com/ougirez/vaxboard/internal/domain"
)

// Estimator converts infected-compartment counts into hospitalization
// estimates through a flat conversion ratio. The ratio is a placeholder and
// stays injectable so it can be recalibrated without touching callers.
type Estimator struct {
	ratio float64
}

func NewEstimator(ratio float64) *Estimator {
	return &Estimator{ratio: ratio}
}

// Curves maps two trajectories onto day-aligned hospitalization estimates.
// Trajectories of unequal length are truncated to the shorter one.
func (e *Estimator) Curves(baseline, boosted []domain.SIRState) (hospBaseline, hospBoosted []float64) {
	n := len(baseline)
	if len(boosted) < n {
		n = len(boosted)
	}

	hospBaseline = make([]float64, n)
	hospBoosted = make([]float64, n)
	for i := 0; i < n; i++ {
		hospBaseline[i] = baseline[i].I * e.ratio
		hospBoosted[i] = boosted[i].I * e.ratio
	}
	return hospBaseline, hospBoosted
}

// Table returns the full baseline/boosted/avoided table for charting. It is
// derived from the same curves as Curves, so the two call shapes can never
// disagree for the same pair of runs.
func (e *Estimator) Table(baseline, boosted []domain.SIRState) []domain.AvoidedRow {
	hospBaseline, hospBoosted := e.Curves(baseline, boosted)

	rows := make([]domain.AvoidedRow, len(hospBaseline))
	for i := range rows {
		rows[i] = domain.AvoidedRow{
			Day:          baseline[i].Day,
			HospBaseline: hospBaseline[i],
			HospBoosted:  hospBoosted[i],
			Avoided:      hospBaseline[i] - hospBoosted[i],
		}
	}
	return rows
}
