package epidemic

import (
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sort"

	"github.com/ougirez/vaxboard/internal/domain"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	r0Sigma       = 0.2
	gammaSigmaRel = 0.15
	minR0         = 0.1
	minGamma      = 0.01
)

// Service runs the epidemic projections: deterministic avoided-hospitalization
// tables and the sampled sensitivity band around them.
type Service struct {
	estimator       *Estimator
	initialInfected float64
}

func NewEpidemicService(hospRatio, initialInfected float64) *Service {
	return &Service{
		estimator:       NewEstimator(hospRatio),
		initialInfected: initialInfected,
	}
}

func (s *Service) Estimator() *Estimator {
	return s.estimator
}

// AvoidedTable runs the baseline and boosted scenarios once with the central
// parameters and returns the full hospitalization comparison table.
func (s *Service) AvoidedTable(totalPopulation, baselineCov, boostedCov, r0, gamma float64, days int) []domain.AvoidedRow {
	baseline := RunSIR(unvaccinated(totalPopulation, baselineCov), s.initialInfected, r0, gamma, days)
	boosted := RunSIR(unvaccinated(totalPopulation, boostedCov), s.initialInfected, r0, gamma, days)
	return s.estimator.Table(baseline, boosted)
}

// SensitivityParams describes one sensitivity request. Seed is part of the
// input on purpose: the same seed and parameters must reproduce the same
// band exactly.
type SensitivityParams struct {
	TotalPopulation  float64
	BaselineCoverage float64
	BoostedCoverage  float64
	R0Center         float64
	GammaCenter      float64
	Days             int
	Runs             int
	Seed             uint64
}

// Sensitivity samples R0 ~ N(center, 0.2) and gamma ~ N(center, 0.15*center),
// clamps each draw (R0 >= 0.1, gamma >= 0.01) so degenerate rates cannot
// destabilize the simulator, runs the baseline/boosted pair per sample and
// aggregates per-day p10/median/p90 of avoided hospitalizations.
//
// All parameter draws happen up front from a single seeded source, R0 first
// and then gamma. The per-sample runs are independent and fan out across
// CPUs; quantile aggregation only starts after every run has finished.
func (s *Service) Sensitivity(p SensitivityParams) (domain.SensitivityBand, error) {
	if p.Runs <= 0 || p.Days <= 0 {
		return domain.SensitivityBand{}, nil
	}

	src := rand.NewPCG(p.Seed, p.Seed)
	r0Dist := distuv.Normal{Mu: p.R0Center, Sigma: r0Sigma, Src: src}
	gammaDist := distuv.Normal{Mu: p.GammaCenter, Sigma: gammaSigmaRel * p.GammaCenter, Src: src}

	r0s := make([]float64, p.Runs)
	for i := range r0s {
		r0s[i] = math.Max(minR0, r0Dist.Rand())
	}
	gammas := make([]float64, p.Runs)
	for i := range gammas {
		gammas[i] = math.Max(minGamma, gammaDist.Rand())
	}

	baseN := unvaccinated(p.TotalPopulation, p.BaselineCoverage)
	boostN := unvaccinated(p.TotalPopulation, p.BoostedCoverage)

	avoided := make([][]float64, p.Runs)
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < p.Runs; i++ {
		i := i
		eg.Go(func() error {
			baseline := RunSIR(baseN, s.initialInfected, r0s[i], gammas[i], p.Days)
			boosted := RunSIR(boostN, s.initialInfected, r0s[i], gammas[i], p.Days)

			hospBaseline, hospBoosted := s.estimator.Curves(baseline, boosted)
			row := make([]float64, p.Days)
			for day := range row {
				row[day] = hospBaseline[day] - hospBoosted[day]
			}
			avoided[i] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return domain.SensitivityBand{}, fmt.Errorf("sensitivity runs: %w", err)
	}

	points := make([]domain.BandPoint, p.Days)
	column := make([]float64, p.Runs)
	for day := 0; day < p.Days; day++ {
		for i := 0; i < p.Runs; i++ {
			column[i] = avoided[i][day]
		}
		sort.Float64s(column)
		points[day] = domain.BandPoint{
			Day:    day,
			P10:    quantile(column, 0.10),
			Median: quantile(column, 0.50),
			P90:    quantile(column, 0.90),
		}
	}

	return domain.SensitivityBand{Points: points}, nil
}

// unvaccinated is the susceptible pool left over after coverage, truncated
// to whole persons the same way the population splits are configured.
func unvaccinated(totalPopulation, coverage float64) float64 {
	return math.Trunc(totalPopulation * (1 - coverage))
}
