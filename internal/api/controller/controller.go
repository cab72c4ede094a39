package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ougirez/vaxboard/internal/domain"
	"github.com/ougirez/vaxboard/internal/domain/dto"
	"github.com/ougirez/vaxboard/internal/pkg/config"
	"github.com/ougirez/vaxboard/internal/pkg/constants"
	"github.com/ougirez/vaxboard/internal/service/epidemic"
	"github.com/ougirez/vaxboard/internal/service/ingest"
	"github.com/ougirez/vaxboard/internal/service/region"
	"github.com/ougirez/vaxboard/internal/service/scenario"
	"github.com/ougirez/vaxboard/internal/service/series"
)

// Controller serves the precomputed aggregates and runs the on-demand
// projections. The series and the regional snapshot are derived once from
// the ingestion snapshot at construction and never mutated afterward.
type Controller struct {
	cfg *config.Config

	daily    domain.DailySeries
	regional map[string]*domain.RegionalSeries
	regions  domain.RegionalSnapshot

	seriesService   *series.Service
	scenarioService *scenario.Service
	epidemicService *epidemic.Service
}

func NewController(
	cfg *config.Config,
	snap *ingest.Snapshot,
	seriesService *series.Service,
	regionService *region.Service,
	scenarioService *scenario.Service,
	epidemicService *epidemic.Service,
) *Controller {
	return &Controller{
		cfg:             cfg,
		daily:           seriesService.BuildDaily(snap.Doses),
		regional:        seriesService.BuildRegional(snap.Doses),
		regions:         regionService.BuildSnapshot(snap.Coverage, snap.Regions),
		seriesService:   seriesService,
		scenarioService: scenarioService,
		epidemicService: epidemicService,
	}
}

const queryDateLayout = "2006-01-02"

func parseQueryDate(value string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(queryDateLayout, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q: %w", value, constants.ErrBadRequest)
	}
	return t, true, nil
}

func splitCodes(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := dto.NormalizeRegionCode(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

func parseBoosts(value string) ([]float64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	boosts := make([]float64, 0, len(parts))
	for _, part := range parts {
		b, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid boost %q: %w", part, constants.ErrBadRequest)
		}
		if b < 0 || b > 30 {
			return nil, fmt.Errorf("boost %v out of range [0, 30]: %w", b, constants.ErrBadRequest)
		}
		boosts = append(boosts, b)
	}
	return boosts, nil
}

// windowed applies the optional from/to query filters to the daily series.
func (c *Controller) windowed(fromStr, toStr string) (domain.DailySeries, error) {
	if c.daily.Empty() {
		return c.daily, nil
	}

	from, ok, err := parseQueryDate(fromStr)
	if err != nil {
		return domain.DailySeries{}, err
	}
	if !ok {
		from = c.daily.Start()
	}

	to, ok, err := parseQueryDate(toStr)
	if err != nil {
		return domain.DailySeries{}, err
	}
	if !ok {
		to = c.daily.End()
	}

	return c.daily.Window(from, to), nil
}
