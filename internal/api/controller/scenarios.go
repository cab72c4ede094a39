package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/vaxboard/internal/service/scenario"
)

// defaultBoosts mirrors the boost presets the dashboard table shows.
var defaultBoosts = []float64{0, 5, 10, 15, 20}

type scenariosRequest struct {
	Boosts     string  `query:"boosts"`
	TargetPct  float64 `query:"target_pct" validate:"omitempty,gt=0,lte=100"`
	Population float64 `query:"population" validate:"omitempty,gt=0"`
}

func (c *Controller) GetScenarios(ctx echo.Context) error {
	var req scenariosRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	boosts, err := parseBoosts(req.Boosts)
	if err != nil {
		return err
	}
	if len(boosts) == 0 {
		boosts = defaultBoosts
	}

	params := scenario.Params{
		Boosts:     boosts,
		TargetPct:  req.TargetPct,
		Population: req.Population,
	}
	if params.TargetPct == 0 {
		params.TargetPct = c.cfg.Model.TargetCoveragePct
	}
	if params.Population == 0 {
		params.Population = c.cfg.Model.Population
	}

	return ctx.JSON(http.StatusOK, c.scenarioService.Evaluate(c.daily, params))
}
