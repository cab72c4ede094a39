package domain

import "encoding/json"

// CoverageRecord is one normalized regional coverage row.
type CoverageRecord struct {
	RegionCode string  `json:"region_code"`
	Variable   string  `json:"variable"`
	Value      float64 `json:"value"`
}

// RegionGeometry is one region boundary from the geometry collection. The
// geometry itself is carried opaque: the core never interprets polygons, it
// only joins them to aggregates by code.
type RegionGeometry struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Geometry json.RawMessage `json:"geometry,omitempty"`
}

// RegionStat is one region of the RegionalSnapshot.
type RegionStat struct {
	RegionCode  string          `json:"region_code"`
	RegionName  string          `json:"region_name,omitempty"`
	TotalDoses  float64         `json:"total_doses"`
	Population  float64         `json:"population"`
	DosesPer10k float64         `json:"doses_per_10k"`
	Geometry    json.RawMessage `json:"geometry,omitempty"`
}

// RegionalSnapshot maps coverage aggregates onto the geometry collection,
// one entry per region boundary.
type RegionalSnapshot struct {
	Regions []RegionStat `json:"regions"`
}
