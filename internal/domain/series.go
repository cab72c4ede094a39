package domain

import "time"

// DoseRecord is one normalized ingest row: doses reported for a calendar
// date, optionally attributed to a region. Immutable once ingested.
type DoseRecord struct {
	Date       time.Time `json:"date"`
	RegionCode string    `json:"region_code,omitempty"`
	Doses      float64   `json:"doses"`
	DayCount   float64   `json:"day_count"`
}

// SeriesPoint is one day of the national series. Rolling7dDoses and
// CumDoses are derived by the aggregator and never set independently.
type SeriesPoint struct {
	Date           time.Time `json:"date"`
	Doses          float64   `json:"doses"`
	DayCount       float64   `json:"day_count"`
	Rolling7dDoses float64   `json:"rolling_7d_doses"`
	CumDoses       float64   `json:"cum_doses"`
}

// DailySeries is a contiguous daily index over [min, max] observed dates.
type DailySeries struct {
	Points []SeriesPoint `json:"points"`
}

func (s DailySeries) Empty() bool {
	return len(s.Points) == 0
}

func (s DailySeries) Start() time.Time {
	return s.Points[0].Date
}

func (s DailySeries) End() time.Time {
	return s.Points[len(s.Points)-1].Date
}

// Window returns the sub-series with from <= date <= to. Derived fields keep
// their full-series values: a window never recomputes rolling or cumulative
// figures.
func (s DailySeries) Window(from, to time.Time) DailySeries {
	var out DailySeries
	for _, p := range s.Points {
		if p.Date.Before(from) || p.Date.After(to) {
			continue
		}
		out.Points = append(out.Points, p)
	}
	return out
}

// RegionalPoint is one day of a per-region series.
type RegionalPoint struct {
	Date           time.Time `json:"date"`
	Doses          float64   `json:"doses"`
	Rolling7dDoses float64   `json:"rolling_7d_doses"`
	CumDoses       float64   `json:"cum_doses"`
}

// RegionalSeries is the per-region variant of DailySeries. Unlike the
// national series, gaps are zero-filled: a region that reports nothing for a
// day reported zero doses, not "no change".
type RegionalSeries struct {
	RegionCode string          `json:"region_code"`
	Points     []RegionalPoint `json:"points"`
}

// HeatmapCell is one cell of the day-of-week x ISO-week dosing pattern.
type HeatmapCell struct {
	Date           time.Time `json:"date"`
	ISOYear        int       `json:"iso_year"`
	ISOWeek        int       `json:"iso_week"`
	Weekday        int       `json:"weekday"` // 0=Monday .. 6=Sunday
	Rolling7dDoses float64   `json:"rolling_7d_doses"`
}
