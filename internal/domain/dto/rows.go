package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ougirez/vaxboard/internal/domain"
	"github.com/ougirez/vaxboard/internal/pkg/constants"
)

// Column aliases found across the source exports. Normalization happens here
// once; downstream components never see raw column names again.
var (
	doseColumns = map[string]string{
		"date":        "date",
		"region_code": "region_code",
		"code":        "region_code",
		"doses":       "doses",
		"valeur":      "doses",
		"day_count":   "day_count",
		"jour":        "day_count",
	}
	coverageColumns = map[string]string{
		"code":        "region_code",
		"region_code": "region_code",
		"variable":    "variable",
		"valeur":      "value",
		"value":       "value",
	}
)

var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05Z07:00", "02/01/2006"}

// NormalizeRegionCode makes region codes joinable regardless of source
// typing: codes arrive both as strings and as re-stringified numbers.
func NormalizeRegionCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q: %w", s, constants.ErrMalformedInput)
}

func parseValue(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric value %q: %w", s, constants.ErrMalformedInput)
	}
	return v, nil
}

// columnIndex maps a raw CSV header onto canonical field positions.
func columnIndex(header []string, aliases map[string]string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if canonical, ok := aliases[name]; ok {
			if _, dup := idx[canonical]; !dup {
				idx[canonical] = i
			}
		}
	}
	return idx
}

// NormalizeDoseRows converts a raw dose table (header + records) into typed
// DoseRecords. date and doses are required; region_code and day_count are
// optional. Fails eagerly on the first malformed row.
func NormalizeDoseRows(header []string, rows [][]string) ([]*domain.DoseRecord, error) {
	idx := columnIndex(header, doseColumns)
	for _, required := range []string{"date", "doses"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("dose table is missing column %q: %w", required, constants.ErrMalformedInput)
		}
	}

	records := make([]*domain.DoseRecord, 0, len(rows))
	for i, row := range rows {
		date, err := parseDate(row[idx["date"]])
		if err != nil {
			return nil, fmt.Errorf("dose row %d: %w", i+1, err)
		}

		doses, err := parseValue(row[idx["doses"]])
		if err != nil {
			return nil, fmt.Errorf("dose row %d: %w", i+1, err)
		}

		rec := &domain.DoseRecord{Date: date, Doses: doses}
		if j, ok := idx["region_code"]; ok {
			rec.RegionCode = NormalizeRegionCode(row[j])
		}
		if j, ok := idx["day_count"]; ok && strings.TrimSpace(row[j]) != "" {
			dayCount, err := parseValue(row[j])
			if err != nil {
				return nil, fmt.Errorf("dose row %d: %w", i+1, err)
			}
			rec.DayCount = dayCount
		}

		records = append(records, rec)
	}

	return records, nil
}

// NormalizeCoverageRows converts a raw coverage table into typed
// CoverageRecords. code, variable and value are all required.
func NormalizeCoverageRows(header []string, rows [][]string) ([]*domain.CoverageRecord, error) {
	idx := columnIndex(header, coverageColumns)
	for _, required := range []string{"region_code", "variable", "value"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("coverage table is missing column %q: %w", required, constants.ErrMalformedInput)
		}
	}

	records := make([]*domain.CoverageRecord, 0, len(rows))
	for i, row := range rows {
		value, err := parseValue(row[idx["value"]])
		if err != nil {
			return nil, fmt.Errorf("coverage row %d: %w", i+1, err)
		}

		records = append(records, &domain.CoverageRecord{
			RegionCode: NormalizeRegionCode(row[idx["region_code"]]),
			Variable:   strings.TrimSpace(row[idx["variable"]]),
			Value:      value,
		})
	}

	return records, nil
}
