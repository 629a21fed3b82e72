package selfabs

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-xas/internal/testutil"
	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/sample"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

func TestAmeyanagi_Fe2O3(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7000, 8000, 10)

	r, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", energies, AmeyanagiSettings{
		Density:   5.24,
		Thickness: ThicknessCM(0.01),
		Chi:       0.2,
	})
	if err != nil {
		t.Fatalf("Ameyanagi: %v", err)
	}

	testutil.RequireSameLength(t, len(energies), r.Energies, r.SuppressionRatio)
	testutil.RequireAllPositive(t, r.SuppressionRatio)

	for i, ri := range r.SuppressionRatio {
		if ri > 1+1e-12 {
			t.Fatalf("index %d: ratio %v above 1", i, ri)
		}
	}

	if r.RMin > r.RMean || r.RMean > r.RMax {
		t.Fatalf("summary ordering: min %v mean %v max %v", r.RMin, r.RMean, r.RMax)
	}

	if r.EdgeEnergy != 7112 {
		t.Fatalf("edge energy: got %v, want 7112", r.EdgeEnergy)
	}

	if r.GeometryG != 1 {
		t.Fatalf("geometry g: got %v, want 1", r.GeometryG)
	}

	wantBeta := 0.01 / math.Sin(math.Pi/4)
	testutil.RequireNearlyEqual(t, r.Beta, wantBeta, 1e-15)
}

func TestAmeyanagi_ThickLimitMatchesClosedForm(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7000, 8000, 10)

	const (
		density = 5.24
		chiTrue = 0.2
	)

	r, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", energies, AmeyanagiSettings{
		Density:   density,
		Thickness: ThicknessCM(0.5),
		Chi:       chiTrue,
	})
	if err != nil {
		t.Fatalf("Ameyanagi: %v", err)
	}

	// At 0.5 cm every optical depth on this grid saturates, so the exact
	// expression collapses to the thick closed form over the same raw
	// linear-unit inputs.
	comp := xraydb.Composition{"Fe": 2, "O": 3}

	fractions, err := sample.MassFractions(tbl, comp)
	if err != nil {
		t.Fatalf("MassFractions: %v", err)
	}

	muTotal, err := sample.CompoundLinear(tbl, fractions, density, energies)
	if err != nil {
		t.Fatalf("CompoundLinear: %v", err)
	}

	muFe, err := tbl.MassAttenuation("Fe", energies, xraydb.PhotoelectricAbsorption)
	if err != nil {
		t.Fatalf("MassAttenuation: %v", err)
	}

	wFe := 2 * 55.845 / (2*55.845 + 3*15.999)

	for i := range energies {
		alpha := muTotal[i] + r.GeometryG*r.MuF
		muA := density * wFe * muFe[i]

		s := muA / alpha
		want := (1 - s) / (1 + s*chiTrue)

		if diff := math.Abs(r.SuppressionRatio[i] - want); diff > 1e-6 {
			t.Fatalf("index %d: got %v, want %v (diff %v)", i, r.SuppressionRatio[i], want, diff)
		}
	}
}

func TestAmeyanagi_ThickerSampleSuppressesMore(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7000, 8000, 10)

	settings := func(d float64) AmeyanagiSettings {
		return AmeyanagiSettings{Density: 5.24, Thickness: ThicknessCM(d), Chi: 0.2}
	}

	thin, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", energies, settings(1e-4))
	if err != nil {
		t.Fatalf("Ameyanagi thin: %v", err)
	}

	thick, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", energies, settings(0.2))
	if err != nil {
		t.Fatalf("Ameyanagi thick: %v", err)
	}

	if thin.RMean <= thick.RMean {
		t.Fatalf("mean ratio: thin %v not above thick %v", thin.RMean, thick.RMean)
	}

	for i := range thin.SuppressionRatio {
		if thin.SuppressionRatio[i] < thick.SuppressionRatio[i] {
			t.Fatalf("index %d: thin %v below thick %v", i,
				thin.SuppressionRatio[i], thick.SuppressionRatio[i])
		}
	}
}

func TestAmeyanagi_PelletMatchesDirectThickness(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7000, 8000, 10)

	const density = 5.24

	pellet, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", energies, AmeyanagiSettings{
		Density:   density,
		Thickness: PelletMassDiameter{MassG: 0.05, DiameterCM: 1},
		Chi:       0.2,
	})
	if err != nil {
		t.Fatalf("Ameyanagi pellet: %v", err)
	}

	wantThickness := 0.05 / (density * (math.Pi * 0.25))
	testutil.RequireNearlyEqual(t, pellet.ThicknessCM, wantThickness, 1e-14)

	direct, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", energies, AmeyanagiSettings{
		Density:   density,
		Thickness: ThicknessCM(pellet.ThicknessCM),
		Chi:       0.2,
	})
	if err != nil {
		t.Fatalf("Ameyanagi direct: %v", err)
	}

	testutil.RequireNearlyEqual(t, pellet.RMean, direct.RMean, 1e-10)
	testutil.RequireSliceNearlyEqual(t, pellet.SuppressionRatio, direct.SuppressionRatio, 1e-10)
}

func TestAmeyanagi_RejectsZeroChi(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()

	_, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", []float64{7200}, AmeyanagiSettings{
		Density:   5.24,
		Thickness: ThicknessCM(0.01),
		Chi:       0,
	})
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("got %v, want ErrInsufficientData", err)
	}

	if !strings.Contains(err.Error(), "chi") {
		t.Fatalf("error %q does not name chi", err)
	}
}

func TestAmeyanagi_RejectsBadInputs(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	grid := []float64{7200}

	cases := []struct {
		name     string
		energies []float64
		settings AmeyanagiSettings
	}{
		{"empty grid", nil, AmeyanagiSettings{Density: 5.24, Thickness: ThicknessCM(0.01), Chi: 0.2}},
		{"nil thickness", grid, AmeyanagiSettings{Density: 5.24, Chi: 0.2}},
		{"zero density", grid, AmeyanagiSettings{Density: 0, Thickness: ThicknessCM(0.01), Chi: 0.2}},
		{"negative thickness", grid, AmeyanagiSettings{Density: 5.24, Thickness: ThicknessCM(-1), Chi: 0.2}},
		{"nan chi", grid, AmeyanagiSettings{Density: 5.24, Thickness: ThicknessCM(0.01), Chi: math.NaN()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", tc.energies, tc.settings)
			if !errors.Is(err, core.ErrInsufficientData) {
				t.Fatalf("got %v, want ErrInsufficientData", err)
			}
		})
	}
}

func TestAmeyanagi_Deterministic(t *testing.T) {
	tbl := testutil.NewTable()
	parser := testutil.NewParser()
	energies := testutil.EnergyGrid(7000, 8000, 5)

	settings := AmeyanagiSettings{Density: 5.24, Thickness: ThicknessCM(0.01), Chi: 0.2}

	first, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", energies, settings)
	if err != nil {
		t.Fatalf("Ameyanagi: %v", err)
	}

	second, err := Ameyanagi(tbl, parser, "Fe2O3", "Fe", "K", energies, settings)
	if err != nil {
		t.Fatalf("Ameyanagi: %v", err)
	}

	// Composition aggregation iterates sorted symbols, never map order, so
	// repeat runs are bit-identical.
	if !floats.Equal(first.SuppressionRatio, second.SuppressionRatio) {
		t.Fatal("repeat runs differ")
	}

	if first.RMean != second.RMean || first.MuF != second.MuF {
		t.Fatalf("summaries differ: %v vs %v, %v vs %v",
			first.RMean, second.RMean, first.MuF, second.MuF)
	}
}
