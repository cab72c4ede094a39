package api

import (
	"github.com/labstack/echo/v4"
)

// SnapshotHeaderMiddleware stamps every response with the data snapshot the
// process serves, so the dashboard can tell which ingestion run produced the
// numbers it is rendering.
func (svc *APIService) SnapshotHeaderMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ctx.Response().Header().Set("X-Snapshot-ID", svc.snapshotID)
		return next(ctx)
	}
}
