package controller

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/vaxboard/internal/service/epidemic"
)

const (
	defaultR0           = 1.3
	defaultRecoveryDays = 7
)

type epidemicRequest struct {
	BoostPct     float64 `query:"boost_pct" validate:"gte=0,lte=30"`
	R0           float64 `query:"r0" validate:"omitempty,gte=0.5,lte=3"`
	RecoveryDays int     `query:"recovery_days" validate:"omitempty,gte=5,lte=14"`
	Days         int     `query:"days" validate:"omitempty,gt=0,lte=365"`
}

type sensitivityRequest struct {
	epidemicRequest
	Runs int    `query:"runs" validate:"omitempty,gt=0,lte=500"`
	Seed uint64 `query:"seed"`
}

func (r *epidemicRequest) fillDefaults(horizonDays int) {
	if r.R0 == 0 {
		r.R0 = defaultR0
	}
	if r.RecoveryDays == 0 {
		r.RecoveryDays = defaultRecoveryDays
	}
	if r.Days == 0 {
		r.Days = horizonDays
	}
}

// coverages derives the current national coverage fraction from the series
// tail and the boosted fraction from the requested capacity boost, capped at
// full coverage.
func (c *Controller) coverages(boostPct float64) (baseline, boosted float64) {
	if c.daily.Empty() {
		return 0, math.Min(1, boostPct/100)
	}
	last := c.daily.Points[len(c.daily.Points)-1]
	baseline = last.CumDoses / c.cfg.Model.Population
	boosted = math.Min(1, baseline+boostPct/100)
	return baseline, boosted
}

func (c *Controller) GetSensitivity(ctx echo.Context) error {
	var req sensitivityRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	req.fillDefaults(c.cfg.Model.HorizonDays)
	if req.Runs == 0 {
		req.Runs = c.cfg.Model.SensitivityRuns
	}
	if req.Seed == 0 {
		req.Seed = c.cfg.Model.RandomSeed
	}

	baseline, boosted := c.coverages(req.BoostPct)
	band, err := c.epidemicService.Sensitivity(epidemic.SensitivityParams{
		TotalPopulation:  c.cfg.Model.Population,
		BaselineCoverage: baseline,
		BoostedCoverage:  boosted,
		R0Center:         req.R0,
		GammaCenter:      1 / float64(req.RecoveryDays),
		Days:             req.Days,
		Runs:             req.Runs,
		Seed:             req.Seed,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, band)
}

func (c *Controller) GetHospitalizations(ctx echo.Context) error {
	var req epidemicRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	req.fillDefaults(c.cfg.Model.HorizonDays)

	baseline, boosted := c.coverages(req.BoostPct)
	table := c.epidemicService.AvoidedTable(
		c.cfg.Model.Population,
		baseline,
		boosted,
		req.R0,
		1/float64(req.RecoveryDays),
		req.Days,
	)

	return ctx.JSON(http.StatusOK, table)
}
