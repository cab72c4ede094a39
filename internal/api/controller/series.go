package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/vaxboard/internal/domain"
	"github.com/ougirez/vaxboard/internal/pkg/constants"
)

type seriesRequest struct {
	From string `query:"from"`
	To   string `query:"to"`
}

func (c *Controller) GetNationalSeries(ctx echo.Context) error {
	var req seriesRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	windowed, err := c.windowed(req.From, req.To)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, windowed)
}

func (c *Controller) GetWeeklyHeatmap(ctx echo.Context) error {
	var req seriesRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	windowed, err := c.windowed(req.From, req.To)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.seriesService.WeeklyPattern(windowed))
}

type regionalSeriesRequest struct {
	Codes string `query:"codes"`
}

func (c *Controller) GetRegionalSeries(ctx echo.Context) error {
	var req regionalSeriesRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	codes := splitCodes(req.Codes)
	if len(codes) == 0 {
		return ctx.JSON(http.StatusOK, c.regional)
	}

	selected := make(map[string]*domain.RegionalSeries, len(codes))
	for _, code := range codes {
		series, ok := c.regional[code]
		if !ok {
			return fmt.Errorf("region %q: %w", code, constants.ErrUnknownRegion)
		}
		selected[code] = series
	}

	return ctx.JSON(http.StatusOK, selected)
}
