package series

import (
	"math"
	"testing"
	"time"

	"github.com/ougirez/vaxboard/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(date time.Time, doses float64, region string) *domain.DoseRecord {
	return &domain.DoseRecord{Date: date, Doses: doses, RegionCode: region, DayCount: 1}
}

func TestBuildDailyEmptyInput(t *testing.T) {
	s := NewSeriesService().BuildDaily(nil)
	if !s.Empty() {
		t.Fatalf("expected empty series, got %d points", len(s.Points))
	}
}

func TestBuildDailyContiguousIndex(t *testing.T) {
	svc := NewSeriesService()
	s := svc.BuildDaily([]*domain.DoseRecord{
		rec(day(2024, 1, 1), 100, ""),
		rec(day(2024, 1, 5), 500, ""),
		rec(day(2024, 1, 3), 300, ""),
	})

	if got := len(s.Points); got != 5 {
		t.Fatalf("len(points) = %d, want 5", got)
	}
	for i, p := range s.Points {
		want := day(2024, 1, 1).AddDate(0, 0, i)
		if !p.Date.Equal(want) {
			t.Errorf("points[%d].Date = %v, want %v", i, p.Date, want)
		}
	}
}

func TestBuildDailyForwardFill(t *testing.T) {
	svc := NewSeriesService()
	s := svc.BuildDaily([]*domain.DoseRecord{
		rec(day(2024, 1, 1), 100, ""),
		rec(day(2024, 1, 3), 300, ""),
	})

	// Day 2 was not reported: it carries day 1's value forward.
	if got := s.Points[1].Doses; got != 100 {
		t.Errorf("gap day doses = %v, want 100 (forward-filled)", got)
	}

	wantCum := []float64{100, 200, 500}
	for i, want := range wantCum {
		if got := s.Points[i].CumDoses; got != want {
			t.Errorf("cum[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestBuildDailyCumulativeMonotone(t *testing.T) {
	svc := NewSeriesService()
	s := svc.BuildDaily([]*domain.DoseRecord{
		rec(day(2024, 1, 1), 50, ""),
		rec(day(2024, 1, 2), 0, ""),
		rec(day(2024, 1, 4), 75, ""),
		rec(day(2024, 1, 7), 10, ""),
	})

	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].CumDoses < s.Points[i-1].CumDoses {
			t.Fatalf("cum decreased at %d: %v -> %v", i, s.Points[i-1].CumDoses, s.Points[i].CumDoses)
		}
	}
}

func TestBuildDailyRollingWindow(t *testing.T) {
	records := make([]*domain.DoseRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, rec(day(2024, 2, 1).AddDate(0, 0, i), float64((i+1)*10), ""))
	}
	s := NewSeriesService().BuildDaily(records)

	// Window of 1 at the start.
	if got := s.Points[0].Rolling7dDoses; got != s.Points[0].Doses {
		t.Errorf("rolling[0] = %v, want %v", got, s.Points[0].Doses)
	}

	// Day 7 averages exactly the first seven observations: mean(10..70) = 40.
	if got := s.Points[6].Rolling7dDoses; math.Abs(got-40) > 1e-9 {
		t.Errorf("rolling[6] = %v, want 40", got)
	}

	// Past the warmup the window slides: mean(20..80) = 50.
	if got := s.Points[7].Rolling7dDoses; math.Abs(got-50) > 1e-9 {
		t.Errorf("rolling[7] = %v, want 50", got)
	}
}

func TestBuildDailySumsSameDay(t *testing.T) {
	s := NewSeriesService().BuildDaily([]*domain.DoseRecord{
		rec(day(2024, 1, 1), 100, "11"),
		rec(day(2024, 1, 1), 50, "27"),
	})

	if got := len(s.Points); got != 1 {
		t.Fatalf("len(points) = %d, want 1", got)
	}
	if got := s.Points[0].Doses; got != 150 {
		t.Errorf("doses = %v, want 150", got)
	}
}

func TestBuildRegionalZeroFill(t *testing.T) {
	svc := NewSeriesService()
	regional := svc.BuildRegional([]*domain.DoseRecord{
		rec(day(2024, 1, 1), 100, "11"),
		rec(day(2024, 1, 3), 300, "11"),
		rec(day(2024, 1, 2), 40, "27"),
	})

	if got := len(regional); got != 2 {
		t.Fatalf("regions = %d, want 2", got)
	}

	s := regional["11"]
	if got := len(s.Points); got != 3 {
		t.Fatalf("len(points) = %d, want 3", got)
	}

	// Absence of a regional report means zero doses, not "no change".
	if got := s.Points[1].Doses; got != 0 {
		t.Errorf("gap day doses = %v, want 0 (zero-filled)", got)
	}
	wantCum := []float64{100, 100, 400}
	for i, want := range wantCum {
		if got := s.Points[i].CumDoses; got != want {
			t.Errorf("cum[%d] = %v, want %v", i, got, want)
		}
	}

	// The rolling window still averages over the zero-filled day.
	if got := s.Points[2].Rolling7dDoses; math.Abs(got-400.0/3) > 1e-9 {
		t.Errorf("rolling[2] = %v, want %v", got, 400.0/3)
	}
}

func TestBuildRegionalSkipsNationalRecords(t *testing.T) {
	regional := NewSeriesService().BuildRegional([]*domain.DoseRecord{
		rec(day(2024, 1, 1), 100, ""),
	})
	if len(regional) != 0 {
		t.Fatalf("regions = %d, want 0", len(regional))
	}
}

func TestWeeklyPattern(t *testing.T) {
	svc := NewSeriesService()
	// 2024-01-01 is a Monday in ISO week 1.
	s := svc.BuildDaily([]*domain.DoseRecord{
		rec(day(2024, 1, 1), 100, ""),
		rec(day(2024, 1, 2), 200, ""),
	})

	cells := svc.WeeklyPattern(s)
	if got := len(cells); got != 2 {
		t.Fatalf("cells = %d, want 2", got)
	}
	if cells[0].Weekday != 0 || cells[1].Weekday != 1 {
		t.Errorf("weekdays = %d,%d, want 0,1 (Monday-based)", cells[0].Weekday, cells[1].Weekday)
	}
	if cells[0].ISOWeek != 1 || cells[0].ISOYear != 2024 {
		t.Errorf("iso week = %d/%d, want 2024/1", cells[0].ISOYear, cells[0].ISOWeek)
	}
	if cells[1].Rolling7dDoses != s.Points[1].Rolling7dDoses {
		t.Errorf("cell rolling = %v, want %v", cells[1].Rolling7dDoses, s.Points[1].Rolling7dDoses)
	}
}

func TestWindowKeepsDerivedFields(t *testing.T) {
	svc := NewSeriesService()
	records := make([]*domain.DoseRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, rec(day(2024, 3, 1).AddDate(0, 0, i), 100, ""))
	}
	s := svc.BuildDaily(records)

	w := s.Window(day(2024, 3, 5), day(2024, 3, 8))
	if got := len(w.Points); got != 4 {
		t.Fatalf("window len = %d, want 4", got)
	}
	// Cumulative values keep their full-series origin.
	if got := w.Points[0].CumDoses; got != 500 {
		t.Errorf("window cum[0] = %v, want 500", got)
	}
}
