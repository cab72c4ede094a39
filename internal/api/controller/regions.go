package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/vaxboard/internal/domain"
)

type snapshotRequest struct {
	Codes string `query:"codes"`
}

func (c *Controller) GetRegionalSnapshot(ctx echo.Context) error {
	var req snapshotRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	codes := splitCodes(req.Codes)
	if len(codes) == 0 {
		return ctx.JSON(http.StatusOK, c.regions)
	}

	wanted := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		wanted[code] = struct{}{}
	}

	filtered := domain.RegionalSnapshot{}
	for _, stat := range c.regions.Regions {
		if _, ok := wanted[stat.RegionCode]; ok {
			filtered.Regions = append(filtered.Regions, stat)
		}
	}

	return ctx.JSON(http.StatusOK, filtered)
}
