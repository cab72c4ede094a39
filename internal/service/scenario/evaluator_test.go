package scenario

import (
	"testing"
	"time"

	"github.com/ougirez/vaxboard/internal/domain"
)

// constantSeries builds a days-long series at a flat daily pace, with the
// rolling and cumulative fields an aggregator would have derived.
func constantSeries(days int, dosesPerDay float64) domain.DailySeries {
	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	var s domain.DailySeries
	cum := 0.0
	for i := 0; i < days; i++ {
		cum += dosesPerDay
		s.Points = append(s.Points, domain.SeriesPoint{
			Date:           start.AddDate(0, 0, i),
			Doses:          dosesPerDay,
			Rolling7dDoses: dosesPerDay,
			CumDoses:       cum,
		})
	}
	return s
}

func TestEvaluateEmptySeries(t *testing.T) {
	svc := NewScenarioService(0.0005)
	results := svc.Evaluate(domain.DailySeries{}, Params{Boosts: []float64{0, 10}, TargetPct: 75, Population: 1000})
	if len(results) != 0 {
		t.Fatalf("expected no results for empty series, got %d", len(results))
	}
}

func TestEvaluateDedupesAndOrders(t *testing.T) {
	svc := NewScenarioService(0.0005)
	results := svc.Evaluate(constantSeries(10, 1000), Params{
		Boosts:     []float64{10, 0, 10, 5},
		TargetPct:  50,
		Population: 10_000,
	})

	want := []float64{0, 5, 10}
	if len(results) != len(want) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(want))
	}
	for i, b := range want {
		if results[i].BoostPct != b {
			t.Errorf("results[%d].BoostPct = %v, want %v", i, results[i].BoostPct, b)
		}
	}
}

func TestEvaluateTargetAlreadyReached(t *testing.T) {
	svc := NewScenarioService(0.0005)
	// target = 5000, reached on day 5 at 1000/day regardless of a 10% boost.
	results := svc.Evaluate(constantSeries(10, 1000), Params{
		Boosts:     []float64{0, 10},
		TargetPct:  50,
		Population: 10_000,
	})

	if !results[0].Reached || !results[1].Reached {
		t.Fatal("both scenarios should reach the target in range")
	}
	if !results[0].DateTargetReached.Equal(*results[1].DateTargetReached) {
		t.Errorf("boost changed an already-reached date: %v vs %v",
			results[0].DateTargetReached, results[1].DateTargetReached)
	}
}

func TestEvaluateExtrapolation(t *testing.T) {
	svc := NewScenarioService(0.0005)
	// Observed cumulative is 10_000; target is 20_000.
	results := svc.Evaluate(constantSeries(10, 1000), Params{
		Boosts:     []float64{0, 10},
		TargetPct:  100,
		Population: 20_000,
	})

	base, boosted := results[0], results[1]
	if !base.Reached || !boosted.Reached {
		t.Fatal("both scenarios should project a date")
	}

	// 0%: 10_000 missing at 1000/day -> +10 days. 10%: 9_000 at 1100/day -> +9.
	end := constantSeries(10, 1000).End()
	if want := end.AddDate(0, 0, 10); !base.DateTargetReached.Equal(want) {
		t.Errorf("base date = %v, want %v", base.DateTargetReached, want)
	}
	if want := end.AddDate(0, 0, 9); !boosted.DateTargetReached.Equal(want) {
		t.Errorf("boosted date = %v, want %v", boosted.DateTargetReached, want)
	}
	if boosted.DateTargetReached.After(*base.DateTargetReached) {
		t.Error("a boost must never push the projected date later")
	}
}

func TestEvaluateExtraVaccinatedMonotone(t *testing.T) {
	svc := NewScenarioService(0.0005)
	results := svc.Evaluate(constantSeries(10, 1000), Params{
		Boosts:     []float64{0, 5, 10, 20, 30},
		TargetPct:  75,
		Population: 67_000_000,
	})

	for i := 1; i < len(results); i++ {
		if results[i].ExtraVaccinated < results[i-1].ExtraVaccinated {
			t.Fatalf("extra vaccinated decreased between boost %v and %v: %v -> %v",
				results[i-1].BoostPct, results[i].BoostPct,
				results[i-1].ExtraVaccinated, results[i].ExtraVaccinated)
		}
	}
}

func TestEvaluateExtraVaccinatedFloor(t *testing.T) {
	svc := NewScenarioService(0.0005)
	results := svc.Evaluate(constantSeries(10, 1000), Params{
		Boosts:     []float64{0},
		TargetPct:  75,
		Population: 67_000_000,
	})

	// Boosted pace equals actual pace: the floor keeps extra doses at zero.
	if got := results[0].ExtraVaccinated; got != 0 {
		t.Errorf("extra vaccinated = %v, want 0", got)
	}
	if got := results[0].AvoidedEstimate; got != 0 {
		t.Errorf("avoided estimate = %v, want 0", got)
	}
}

func TestEvaluateNotReachedSentinel(t *testing.T) {
	svc := NewScenarioService(0.0005)
	// Nothing is moving: no projection is possible.
	results := svc.Evaluate(constantSeries(10, 0), Params{
		Boosts:     []float64{0, 10},
		TargetPct:  75,
		Population: 67_000_000,
	})

	for _, res := range results {
		if res.Reached {
			t.Fatalf("boost %v: reached=true with a zero rate", res.BoostPct)
		}
		if res.DateTargetReached != nil {
			t.Fatalf("boost %v: expected nil date, got %v", res.BoostPct, res.DateTargetReached)
		}
	}
}

func TestEvaluateAvoidedFactorInjectable(t *testing.T) {
	series := constantSeries(10, 1000)
	params := Params{Boosts: []float64{20}, TargetPct: 75, Population: 67_000_000}

	a := NewScenarioService(0.0005).Evaluate(series, params)[0]
	b := NewScenarioService(0.001).Evaluate(series, params)[0]

	if a.ExtraVaccinated != b.ExtraVaccinated {
		t.Fatalf("extra vaccinated should not depend on the conversion factor")
	}
	if b.AvoidedEstimate != 2*a.AvoidedEstimate {
		t.Errorf("doubling the factor should double the estimate: %v vs %v", a.AvoidedEstimate, b.AvoidedEstimate)
	}
}
