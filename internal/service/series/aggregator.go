package series

import (
	"sort"
	"time"

	"github.com/ougirez/vaxboard/internal/domain"
	"gonum.org/v1/gonum/stat"
)

const rollingWindow = 7

// Service builds daily and regional dose series out of normalized records.
// All methods are pure: they read the records and return fresh structures.
type Service struct{}

func NewSeriesService() *Service {
	return &Service{}
}

type daySum struct {
	doses    float64
	dayCount float64
}

// BuildDaily aggregates records into the national series over a contiguous
// daily index spanning [min, max] observed dates.
//
// Fill policy: missing days are forward-filled with the last observed daily
// values. A day with no report means "no change reported", so the last known
// pace carries over into the rolling and cumulative figures.
func (s *Service) BuildDaily(records []*domain.DoseRecord) domain.DailySeries {
	if len(records) == 0 {
		return domain.DailySeries{}
	}

	sums := make(map[time.Time]*daySum)
	var minDate, maxDate time.Time
	for _, rec := range records {
		d := midnight(rec.Date)
		if sum, ok := sums[d]; ok {
			sum.doses += rec.Doses
			sum.dayCount += rec.DayCount
		} else {
			sums[d] = &daySum{doses: rec.Doses, dayCount: rec.DayCount}
		}
		if minDate.IsZero() || d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	var points []domain.SeriesPoint
	last := daySum{}
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		if sum, ok := sums[d]; ok {
			last = *sum
		}
		points = append(points, domain.SeriesPoint{Date: d, Doses: last.doses, DayCount: last.dayCount})
	}

	doses := make([]float64, len(points))
	for i, p := range points {
		doses[i] = p.Doses
	}

	cum := 0.0
	for i := range points {
		points[i].Rolling7dDoses = trailingMean(doses, i)
		cum += points[i].Doses
		points[i].CumDoses = cum
	}

	return domain.DailySeries{Points: points}
}

// BuildRegional aggregates records carrying a region code into one series
// per region, each over its own contiguous [min, max] date range.
//
// Fill policy: missing days are zero-filled. A region that reports nothing
// for a day reported zero doses that day; absence is not "unknown".
func (s *Service) BuildRegional(records []*domain.DoseRecord) map[string]*domain.RegionalSeries {
	grouped := make(map[string]map[time.Time]float64)
	for _, rec := range records {
		if rec.RegionCode == "" {
			continue
		}
		byDate, ok := grouped[rec.RegionCode]
		if !ok {
			byDate = make(map[time.Time]float64)
			grouped[rec.RegionCode] = byDate
		}
		byDate[midnight(rec.Date)] += rec.Doses
	}

	out := make(map[string]*domain.RegionalSeries, len(grouped))
	for code, byDate := range grouped {
		dates := make([]time.Time, 0, len(byDate))
		for d := range byDate {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		minDate, maxDate := dates[0], dates[len(dates)-1]

		var points []domain.RegionalPoint
		for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
			points = append(points, domain.RegionalPoint{Date: d, Doses: byDate[d]})
		}

		doses := make([]float64, len(points))
		for i, p := range points {
			doses[i] = p.Doses
		}

		cum := 0.0
		for i := range points {
			points[i].Rolling7dDoses = trailingMean(doses, i)
			cum += points[i].Doses
			points[i].CumDoses = cum
		}

		out[code] = &domain.RegionalSeries{RegionCode: code, Points: points}
	}

	return out
}

// WeeklyPattern projects the rolling average onto day-of-week x ISO-week
// cells for the weekly pattern heatmap. Weekday follows the 0=Monday
// convention of the dashboard.
func (s *Service) WeeklyPattern(series domain.DailySeries) []domain.HeatmapCell {
	cells := make([]domain.HeatmapCell, 0, len(series.Points))
	for _, p := range series.Points {
		year, week := p.Date.ISOWeek()
		cells = append(cells, domain.HeatmapCell{
			Date:           p.Date,
			ISOYear:        year,
			ISOWeek:        week,
			Weekday:        (int(p.Date.Weekday()) + 6) % 7,
			Rolling7dDoses: p.Rolling7dDoses,
		})
	}
	return cells
}

// trailingMean averages doses over the up-to-7-day window ending at i. At
// the start of the series the window shrinks down to a single day.
func trailingMean(doses []float64, i int) float64 {
	lo := i - rollingWindow + 1
	if lo < 0 {
		lo = 0
	}
	return stat.Mean(doses[lo:i+1], nil)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
