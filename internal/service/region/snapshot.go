package region

import (
	"strings"

	"github.com/ougirez/vaxboard/internal/domain"
	"github.com/ougirez/vaxboard/internal/domain/dto"
	"github.com/shopspring/decimal"
)

// doseVariableMarker selects the coverage variables that count dispensed
// doses; the coverage export mixes dose counts with rate indicators.
const doseVariableMarker = "DOSES"

// Service joins regional coverage aggregates onto the boundary collection.
type Service struct {
	regionPopulation float64
}

func NewRegionService(regionPopulation float64) *Service {
	return &Service{regionPopulation: regionPopulation}
}

// BuildSnapshot sums dose-variable coverage values per normalized region
// code and left-joins them onto the geometry collection. Regions without any
// coverage rows keep zero totals; coverage rows without a boundary are
// dropped, since the snapshot exists to be drawn on the map.
func (s *Service) BuildSnapshot(coverage []*domain.CoverageRecord, regions []*domain.RegionGeometry) domain.RegionalSnapshot {
	totals := make(map[string]decimal.Decimal)
	for _, rec := range coverage {
		if !strings.Contains(strings.ToUpper(rec.Variable), doseVariableMarker) {
			continue
		}
		code := dto.NormalizeRegionCode(rec.RegionCode)
		totals[code] = totals[code].Add(decimal.NewFromFloat(rec.Value))
	}

	stats := make([]domain.RegionStat, 0, len(regions))
	for _, geo := range regions {
		code := dto.NormalizeRegionCode(geo.Code)
		total := totals[code].InexactFloat64()

		stats = append(stats, domain.RegionStat{
			RegionCode:  code,
			RegionName:  geo.Name,
			TotalDoses:  total,
			Population:  s.regionPopulation,
			DosesPer10k: total / s.regionPopulation * 10_000,
			Geometry:    geo.Geometry,
		})
	}

	return domain.RegionalSnapshot{Regions: stats}
}
