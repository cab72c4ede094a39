package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/vaxboard/internal/pkg/constants"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
	Model  ModelConfig
}

type ServerConfig struct {
	ListenAddr    string `validate:"required"`
	AllowedOrigin string `validate:"required"`
}

type DataConfig struct {
	DosesCSV       string `validate:"required"`
	CoverageCSV    string
	RegionsGeoJSON string
	CatalogURL     string `validate:"omitempty,url"`
}

// ModelConfig carries every tunable the analysis engine accepts. The
// epidemiological constants are placeholders; ranges below only keep them in
// the domain the model was written for.
type ModelConfig struct {
	Population           float64 `validate:"gt=0"`
	RegionPopulation     float64 `validate:"gt=0"`
	TargetCoveragePct    float64 `validate:"gt=0,lte=100"`
	HospitalizationRatio float64 `validate:"gte=0,lte=1"`
	AvoidedPerDose       float64 `validate:"gte=0"`
	InitialInfected      float64 `validate:"gte=0"`
	HorizonDays          int     `validate:"gt=0"`
	SensitivityRuns      int     `validate:"gt=0"`
	RandomSeed           uint64
}

func setDefaults() {
	viper.SetDefault(constants.ViperKeyListenAddr, ":8080")
	viper.SetDefault(constants.ViperKeyAllowedOrigin, "http://localhost:3000")

	viper.SetDefault(constants.ViperKeyDosesPath, "data/doses-actes-2024.csv")
	viper.SetDefault(constants.ViperKeyCoveragePath, "data/couverture-2024.csv")
	viper.SetDefault(constants.ViperKeyRegionsPath, "data/regions.geojson")

	viper.SetDefault(constants.ViperKeyPopulation, constants.DefaultPopulation)
	viper.SetDefault(constants.ViperKeyRegionPopulation, constants.DefaultRegionPopulation)
	viper.SetDefault(constants.ViperKeyTargetPct, constants.DefaultTargetPct)
	viper.SetDefault(constants.ViperKeyHospRatio, constants.DefaultHospRatio)
	viper.SetDefault(constants.ViperKeyAvoidedPerDose, constants.DefaultAvoidedPerDose)
	viper.SetDefault(constants.ViperKeyInitialInfected, constants.DefaultInitialInfected)
	viper.SetDefault(constants.ViperKeyHorizonDays, constants.DefaultHorizonDays)
	viper.SetDefault(constants.ViperKeySensitivityRuns, constants.DefaultSensitivityRuns)
	viper.SetDefault(constants.ViperKeyRandomSeed, constants.DefaultRandomSeed)
}

// Load reads config.yaml (optional) and VAXBOARD_* environment overrides,
// fills defaults and validates the documented ranges.
func Load() (*Config, error) {
	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("vaxboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			ListenAddr:    viper.GetString(constants.ViperKeyListenAddr),
			AllowedOrigin: viper.GetString(constants.ViperKeyAllowedOrigin),
		},
		Data: DataConfig{
			DosesCSV:       viper.GetString(constants.ViperKeyDosesPath),
			CoverageCSV:    viper.GetString(constants.ViperKeyCoveragePath),
			RegionsGeoJSON: viper.GetString(constants.ViperKeyRegionsPath),
			CatalogURL:     viper.GetString(constants.ViperKeyCatalogURL),
		},
		Model: ModelConfig{
			Population:           viper.GetFloat64(constants.ViperKeyPopulation),
			RegionPopulation:     viper.GetFloat64(constants.ViperKeyRegionPopulation),
			TargetCoveragePct:    viper.GetFloat64(constants.ViperKeyTargetPct),
			HospitalizationRatio: viper.GetFloat64(constants.ViperKeyHospRatio),
			AvoidedPerDose:       viper.GetFloat64(constants.ViperKeyAvoidedPerDose),
			InitialInfected:      viper.GetFloat64(constants.ViperKeyInitialInfected),
			HorizonDays:          viper.GetInt(constants.ViperKeyHorizonDays),
			SensitivityRuns:      viper.GetInt(constants.ViperKeySensitivityRuns),
			RandomSeed:           viper.GetUint64(constants.ViperKeyRandomSeed),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}
