package constants

// Viper keys.
const (
	ViperKeyListenAddr    = "server.listen_addr"
	ViperKeyAllowedOrigin = "server.allowed_origin"

	ViperKeyDosesPath    = "data.doses_csv"
	ViperKeyCoveragePath = "data.coverage_csv"
	ViperKeyRegionsPath  = "data.regions_geojson"
	ViperKeyCatalogURL   = "data.catalog_url"

	ViperKeyPopulation       = "model.population"
	ViperKeyRegionPopulation = "model.region_population"
	ViperKeyTargetPct        = "model.target_coverage_pct"
	ViperKeyHospRatio        = "model.hospitalization_ratio"
	ViperKeyAvoidedPerDose   = "model.avoided_per_dose"
	ViperKeyInitialInfected  = "model.initial_infected"
	ViperKeyHorizonDays      = "model.horizon_days"
	ViperKeySensitivityRuns  = "model.sensitivity_runs"
	ViperKeyRandomSeed       = "model.random_seed"
)

// Placeholder epidemiological defaults. They are deliberately injectable
// through config: none of them is clinically calibrated.
const (
	DefaultPopulation       = 67_000_000
	DefaultRegionPopulation = 1_000_000
	DefaultTargetPct        = 75.0
	DefaultHospRatio        = 0.05
	DefaultAvoidedPerDose   = 0.0005
	DefaultInitialInfected  = 5000.0
	DefaultHorizonDays      = 120
	DefaultSensitivityRuns  = 25
	DefaultRandomSeed       = 42
)
