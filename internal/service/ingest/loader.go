package ingest

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/ougirez/vaxboard/internal/domain"
	"github.com/ougirez/vaxboard/internal/domain/dto"
	"github.com/ougirez/vaxboard/internal/pkg/constants"
	"github.com/ougirez/vaxboard/internal/pkg/logger"
)

// Loader reads the three source datasets and assembles the process Snapshot.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the dose CSV, the coverage CSV and the region geojson, runs the
// schema normalization once, and returns the immutable snapshot. Coverage
// and regions paths may be empty when only the national series is needed.
func (l *Loader) Load(ctx context.Context, dosesPath, coveragePath, regionsPath string) (*Snapshot, error) {
	snap := &Snapshot{ID: uuid.New(), LoadedAt: time.Now().UTC()}

	header, rows, err := readCSV(dosesPath)
	if err != nil {
		return nil, fmt.Errorf("read doses csv: %w", err)
	}
	snap.Doses, err = dto.NormalizeDoseRows(header, rows)
	if err != nil {
		return nil, fmt.Errorf("normalize doses: %w", err)
	}

	if coveragePath != "" {
		header, rows, err = readCSV(coveragePath)
		if err != nil {
			return nil, fmt.Errorf("read coverage csv: %w", err)
		}
		snap.Coverage, err = dto.NormalizeCoverageRows(header, rows)
		if err != nil {
			return nil, fmt.Errorf("normalize coverage: %w", err)
		}
	}

	if regionsPath != "" {
		snap.Regions, err = readRegions(regionsPath)
		if err != nil {
			return nil, fmt.Errorf("read regions geojson: %w", err)
		}
	}

	logger.Infof(ctx, "snapshot %s loaded: %d dose rows, %d coverage rows, %d regions",
		snap.ID, len(snap.Doses), len(snap.Coverage), len(snap.Regions))

	return snap, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("os.Open: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv.ReadAll: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

type geoFeature struct {
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

type featureCollection struct {
	Features []geoFeature `json:"features"`
}

// readRegions decodes the boundary collection. Region codes arrive as
// strings in some exports and as numbers in others; both are normalized to
// the string join key here, never downstream.
func readRegions(path string) ([]*domain.RegionGeometry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var fc featureCollection
	if err := sonic.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("sonic.Unmarshal: %w", err)
	}

	regions := make([]*domain.RegionGeometry, 0, len(fc.Features))
	for i, feature := range fc.Features {
		code := propertyString(feature.Properties, "code", "region_code", "insee")
		if code == "" {
			return nil, fmt.Errorf("feature %d has no region code: %w", i, constants.ErrMalformedInput)
		}

		regions = append(regions, &domain.RegionGeometry{
			Code:     dto.NormalizeRegionCode(code),
			Name:     propertyString(feature.Properties, "nom", "name"),
			Geometry: feature.Geometry,
		})
	}

	return regions, nil
}

func propertyString(props map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := props[key].(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
