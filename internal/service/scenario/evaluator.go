package scenario

import (
	"math"
	"sort"

	"github.com/ougirez/vaxboard/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// recentRateWindow is how many trailing days feed the extrapolation when the
// target is not reached inside the observed range.
const recentRateWindow = 14

// Service projects coverage scenarios for alternative capacity boosts. The
// avoided-hospitalization conversion is a flat per-dose placeholder and is
// injected so it can be recalibrated.
type Service struct {
	avoidedPerDose float64
}

func NewScenarioService(avoidedPerDose float64) *Service {
	return &Service{avoidedPerDose: avoidedPerDose}
}

// Params describes one evaluation request. Boosts are treated as a set:
// duplicates collapse and results come back in ascending boost order.
type Params struct {
	Boosts     []float64
	TargetPct  float64
	Population float64
}

// Evaluate projects, for each boost percentage, when cumulative doses reach
// population*target_pct/100 if the daily pace were rolling_avg*(1+boost/100)
// over the observed range. When the target is not reached in range, the date
// is extrapolated from the mean boosted rate of the trailing 14 days; a
// non-positive recent rate leaves the scenario marked not reached, which is
// an expected outcome rather than a fault.
func (s *Service) Evaluate(series domain.DailySeries, p Params) []domain.ScenarioResult {
	if series.Empty() {
		return nil
	}

	boosts := dedupeSorted(p.Boosts)
	target := p.Population * p.TargetPct / 100
	lastActualCum := series.Points[len(series.Points)-1].CumDoses

	results := make([]domain.ScenarioResult, 0, len(boosts))
	for _, boost := range boosts {
		boostedDaily := make([]float64, len(series.Points))
		for i, pt := range series.Points {
			boostedDaily[i] = pt.Rolling7dDoses * (1 + boost/100)
		}

		cum := 0.0
		hitIdx := -1
		for i, daily := range boostedDaily {
			cum += daily
			if hitIdx < 0 && cum >= target {
				hitIdx = i
			}
		}

		res := domain.ScenarioResult{
			BoostPct:        boost,
			ExtraVaccinated: math.Max(0, cum-lastActualCum),
		}
		res.AvoidedEstimate = res.ExtraVaccinated * s.avoidedPerDose

		switch {
		case hitIdx >= 0:
			date := series.Points[hitIdx].Date
			res.Reached = true
			res.DateTargetReached = &date
		default:
			lo := len(boostedDaily) - recentRateWindow
			if lo < 0 {
				lo = 0
			}
			meanRecent := stat.Mean(boostedDaily[lo:], nil)
			if meanRecent > 0 {
				daysNeeded := int(math.Ceil((target - cum) / meanRecent))
				date := series.End().AddDate(0, 0, daysNeeded)
				res.Reached = true
				res.DateTargetReached = &date
			}
		}

		results = append(results, res)
	}

	return results
}

func dedupeSorted(boosts []float64) []float64 {
	seen := make(map[float64]struct{}, len(boosts))
	out := make([]float64, 0, len(boosts))
	for _, b := range boosts {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	sort.Float64s(out)
	return out
}
