package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/vaxboard/internal/api/controller"
	"github.com/ougirez/vaxboard/internal/pkg/config"
	"github.com/ougirez/vaxboard/internal/pkg/logger"
	"github.com/ougirez/vaxboard/internal/service/epidemic"
	"github.com/ougirez/vaxboard/internal/service/ingest"
	"github.com/ougirez/vaxboard/internal/service/region"
	"github.com/ougirez/vaxboard/internal/service/scenario"
	"github.com/ougirez/vaxboard/internal/service/series"
)

type APIService struct {
	router     *echo.Echo
	snapshotID string
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(cfg *config.Config, snap *ingest.Snapshot) (*APIService, error) {
	svc := &APIService{router: echo.New(), snapshotID: snap.ID.String()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSonicSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(svc.SnapshotHeaderMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Server.AllowedOrigin},
		AllowMethods: []string{echo.GET},
		AllowHeaders: []string{"Content-Type"},
	}))

	cntrl := controller.NewController(
		cfg,
		snap,
		series.NewSeriesService(),
		region.NewRegionService(cfg.Model.RegionPopulation),
		scenario.NewScenarioService(cfg.Model.AvoidedPerDose),
		epidemic.NewEpidemicService(cfg.Model.HospitalizationRatio, cfg.Model.InitialInfected),
	)

	api := svc.router.Group("/api/v1")

	seriesGroup := api.Group("/series")
	seriesGroup.GET("/national", cntrl.GetNationalSeries)
	seriesGroup.GET("/heatmap", cntrl.GetWeeklyHeatmap)
	seriesGroup.GET("/regions", cntrl.GetRegionalSeries)

	regions := api.Group("/regions")
	regions.GET("/snapshot", cntrl.GetRegionalSnapshot)

	api.GET("/scenarios", cntrl.GetScenarios)
	api.GET("/sensitivity", cntrl.GetSensitivity)
	api.GET("/hospitalizations", cntrl.GetHospitalizations)

	return svc, nil
}
