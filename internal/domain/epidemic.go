package domain

import "time"

// SIRState is one recorded day of a compartmental run. S+I+R stays equal to
// the run population up to floating-point error; values are intentionally
// not clamped at the margins.
type SIRState struct {
	Day int     `json:"day"`
	S   float64 `json:"s"`
	I   float64 `json:"i"`
	R   float64 `json:"r"`
}

// AvoidedRow is one day of the baseline-vs-boosted hospitalization table.
type AvoidedRow struct {
	Day          int     `json:"day"`
	HospBaseline float64 `json:"hosp_baseline"`
	HospBoosted  float64 `json:"hosp_boosted"`
	Avoided      float64 `json:"avoided"`
}

// BandPoint is the per-day order statistics of avoided hospitalizations
// across sensitivity samples. P10 <= Median <= P90 holds by construction.
type BandPoint struct {
	Day    int     `json:"day"`
	P10    float64 `json:"p10"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

// SensitivityBand is indexed by day, one point per simulated day.
type SensitivityBand struct {
	Points []BandPoint `json:"points"`
}

// ScenarioResult is the projection for a single capacity-boost percentage.
// Reached=false with a nil date is the "not reached" sentinel: an expected
// business outcome, not an error.
type ScenarioResult struct {
	BoostPct          float64    `json:"boost_pct"`
	Reached           bool       `json:"reached"`
	DateTargetReached *time.Time `json:"date_target_reached,omitempty"`
	ExtraVaccinated   float64    `json:"extra_vaccinated"`
	AvoidedEstimate   float64    `json:"avoided_estimate"`
}
