package selfabs

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-xas/internal/testutil"
	"github.com/cwbudde/algo-xas/xas/core"
)

func TestBooth_ThicknessClassification(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := []float64{7200}

	// At 45° incidence the effective path is thickness/sin(45°); 63 µm
	// stays under the 90 µm limit, 64 µm crosses it.
	thin, err := Booth(tbl, parser, "Fe2O3", "Fe", "K", energies, 63)
	if err != nil {
		t.Fatalf("Booth: %v", err)
	}

	if thin.IsThick {
		t.Fatal("63 µm at 45° classified thick")
	}

	thick, err := Booth(tbl, parser, "Fe2O3", "Fe", "K", energies, 64)
	if err != nil {
		t.Fatalf("Booth: %v", err)
	}

	if !thick.IsThick {
		t.Fatal("64 µm at 45° classified thin")
	}
}

func TestBooth_InvalidThickness(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()

	for _, thickness := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := Booth(tbl, parser, "Fe2O3", "Fe", "K", []float64{7200}, thickness)
		if !errors.Is(err, core.ErrInsufficientData) {
			t.Fatalf("thickness %v: got %v, want ErrInsufficientData", thickness, err)
		}
	}
}

func TestBoothThick_SuppressionMatchesClosedForm(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7100, 8000, 5)

	r, err := Booth(tbl, parser, "Fe2O3", "Fe", "K", energies, 100000)
	if err != nil {
		t.Fatalf("Booth: %v", err)
	}

	if !r.IsThick {
		t.Fatal("100000 µm classified thin")
	}

	const chiTrue = 0.2

	ratio, err := r.SuppressionRatio(chiTrue, 5.24, 100000)
	if err != nil {
		t.Fatalf("SuppressionRatio: %v", err)
	}

	for i, si := range r.S {
		want := (1 - si) / (1 + si*chiTrue)
		testutil.RequireNearlyEqual(t, ratio[i], want, 1e-12)
	}
}

func TestBoothThick_CorrectChiRoundTrip(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7150, 8000, 10)

	r, err := Booth(tbl, parser, "Fe2O3", "Fe", "K", energies, 100000)
	if err != nil {
		t.Fatalf("Booth: %v", err)
	}

	const chiTrue = 0.2

	ratio, err := r.SuppressionRatio(chiTrue, 5.24, 100000)
	if err != nil {
		t.Fatalf("SuppressionRatio: %v", err)
	}

	measured := make([]float64, len(ratio))
	for i, ri := range ratio {
		measured[i] = ri * chiTrue
	}

	corrected := r.CorrectChi(measured, 5.24, 100000)

	for _, c := range corrected {
		testutil.RequireNearlyEqual(t, c, chiTrue, 1e-9)
	}
}

func TestBoothThin_SuppressionRoundTrip(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7100, 7600, 10)

	const (
		chiTrue     = 0.2
		density     = 5.24
		thicknessUM = 10.0
	)

	r, err := Booth(tbl, parser, "Fe2O3", "Fe", "K", energies, thicknessUM)
	if err != nil {
		t.Fatalf("Booth: %v", err)
	}

	if r.IsThick {
		t.Fatal("10 µm classified thick")
	}

	ratio, err := r.SuppressionRatio(chiTrue, density, thicknessUM)
	if err != nil {
		t.Fatalf("SuppressionRatio: %v", err)
	}

	for i, ri := range ratio {
		if ri <= 0 || ri > 1+1e-9 {
			t.Fatalf("index %d: ratio %v outside (0, 1]", i, ri)
		}
	}

	// Applying the forward correction to the suppressed amplitude must
	// recover the assumed true amplitude.
	measured := make([]float64, len(ratio))
	for i, ri := range ratio {
		measured[i] = ri * chiTrue
	}

	corrected := r.CorrectChi(measured, density, thicknessUM)

	for i, c := range corrected {
		if math.Abs(c-chiTrue) > 1e-6 {
			t.Fatalf("index %d: round trip: got %v, want %v", i, c, chiTrue)
		}
	}
}

func TestBoothThin_ThinnerSampleSuppressesLess(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7150, 7600, 10)

	const (
		chiTrue = 0.2
		density = 5.24
	)

	r1, err := Booth(tbl, parser, "Fe2O3", "Fe", "K", energies, 1)
	if err != nil {
		t.Fatalf("Booth 1 µm: %v", err)
	}

	r50, err := Booth(tbl, parser, "Fe2O3", "Fe", "K", energies, 50)
	if err != nil {
		t.Fatalf("Booth 50 µm: %v", err)
	}

	ratio1, err := r1.SuppressionRatio(chiTrue, density, 1)
	if err != nil {
		t.Fatalf("SuppressionRatio 1 µm: %v", err)
	}

	ratio50, err := r50.SuppressionRatio(chiTrue, density, 50)
	if err != nil {
		t.Fatalf("SuppressionRatio 50 µm: %v", err)
	}

	for i := range ratio1 {
		if ratio1[i] <= ratio50[i] {
			t.Fatalf("index %d: 1 µm ratio %v not above 50 µm ratio %v", i, ratio1[i], ratio50[i])
		}
	}
}

func TestBooth_SuppressionRejectsZeroChi(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()

	r, err := Booth(tbl, parser, "Fe2O3", "Fe", "K", []float64{7200}, 10)
	if err != nil {
		t.Fatalf("Booth: %v", err)
	}

	_, err = r.SuppressionRatio(0, 5.24, 10)
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("got %v, want ErrInsufficientData", err)
	}

	if !strings.Contains(err.Error(), "chi") {
		t.Fatalf("error %q does not name chi", err)
	}
}

func TestBoothSuppressionReference_Fe2O3(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7000, 8000, 10)

	r, err := BoothSuppressionReference(tbl, parser, "Fe2O3", "Fe", "K", energies, 5000, 5.24, 0.2)
	if err != nil {
		t.Fatalf("BoothSuppressionReference: %v", err)
	}

	if !r.IsThick {
		t.Fatal("5000 µm classified thin")
	}

	testutil.RequireSameLength(t, len(energies), r.SuppressionRatio)
	testutil.RequireAllPositive(t, r.SuppressionRatio)

	if r.RMin > r.RMean || r.RMean > r.RMax {
		t.Fatalf("summary ordering: min %v mean %v max %v", r.RMin, r.RMean, r.RMax)
	}

	// The intensity-weighted mean lies strictly between the Fe K line
	// energies.
	if r.FluorescenceEnergyWeighted <= 6391 || r.FluorescenceEnergyWeighted >= 7058 {
		t.Fatalf("weighted fluorescence energy: got %v", r.FluorescenceEnergyWeighted)
	}

	// Pre-edge points carry no edge jump: the trendline baseline removes
	// the absorber's smooth part, so suppression is absent there.
	testutil.RequireNearlyEqual(t, r.RMax, 1, 1e-9)

	if r.RMin >= 1 {
		t.Fatalf("post-edge suppression missing: RMin %v", r.RMin)
	}
}
