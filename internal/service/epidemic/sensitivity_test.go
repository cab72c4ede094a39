package epidemic

import (
	"testing"
)

func testParams() SensitivityParams {
	return SensitivityParams{
		TotalPopulation:  67_000_000,
		BaselineCoverage: 0.12,
		BoostedCoverage:  0.22,
		R0Center:         1.3,
		GammaCenter:      1.0 / 7,
		Days:             120,
		Runs:             25,
		Seed:             42,
	}
}

func TestSensitivityBandOrdering(t *testing.T) {
	svc := NewEpidemicService(0.05, 5000)
	band, err := svc.Sensitivity(testParams())
	if err != nil {
		t.Fatalf("Sensitivity() error: %v", err)
	}
	if got := len(band.Points); got != 120 {
		t.Fatalf("len(points) = %d, want 120", got)
	}
	for _, p := range band.Points {
		if p.P10 > p.Median || p.Median > p.P90 {
			t.Fatalf("day %d: band out of order: p10=%v median=%v p90=%v", p.Day, p.P10, p.Median, p.P90)
		}
	}
}

func TestSensitivityReproducible(t *testing.T) {
	svc := NewEpidemicService(0.05, 5000)

	a, err := svc.Sensitivity(testParams())
	if err != nil {
		t.Fatalf("Sensitivity() error: %v", err)
	}
	b, err := svc.Sensitivity(testParams())
	if err != nil {
		t.Fatalf("Sensitivity() error: %v", err)
	}

	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("same seed diverged at day %d: %+v vs %+v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestSensitivitySeedChangesBand(t *testing.T) {
	svc := NewEpidemicService(0.05, 5000)

	a, _ := svc.Sensitivity(testParams())
	p := testParams()
	p.Seed = 43
	b, _ := svc.Sensitivity(p)

	same := true
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical bands")
	}
}

func TestSensitivitySingleRunCollapsesBand(t *testing.T) {
	svc := NewEpidemicService(0.05, 5000)
	p := testParams()
	p.Runs = 1

	band, err := svc.Sensitivity(p)
	if err != nil {
		t.Fatalf("Sensitivity() error: %v", err)
	}
	for _, pt := range band.Points {
		if pt.P10 != pt.Median || pt.Median != pt.P90 {
			t.Fatalf("day %d: single run should collapse the band: %+v", pt.Day, pt)
		}
	}
}

func TestSensitivityEmptyRequests(t *testing.T) {
	svc := NewEpidemicService(0.05, 5000)

	for _, p := range []SensitivityParams{
		{Days: 0, Runs: 10},
		{Days: 10, Runs: 0},
	} {
		band, err := svc.Sensitivity(p)
		if err != nil {
			t.Fatalf("Sensitivity() error: %v", err)
		}
		if len(band.Points) != 0 {
			t.Fatalf("expected empty band, got %d points", len(band.Points))
		}
	}
}

func TestAvoidedTableHigherCoverageAvoidsHospitalizations(t *testing.T) {
	svc := NewEpidemicService(0.05, 5000)
	table := svc.AvoidedTable(67_000_000, 0.12, 0.22, 1.3, 1.0/7, 120)

	if got := len(table); got != 120 {
		t.Fatalf("table len = %d, want 120", got)
	}

	total := 0.0
	for _, row := range table {
		total += row.Avoided
	}
	if total <= 0 {
		t.Errorf("total avoided = %v, want > 0 when boosted coverage is higher", total)
	}
}
