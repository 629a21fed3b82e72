package selfabs

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xas/xas/core"
	"github.com/cwbudde/algo-xas/xas/sample"
	"github.com/cwbudde/algo-xas/xas/xraydb"
)

// ThickLimitUM is the effective-path threshold (µm) separating the thin and
// thick Booth branches: effective path = thickness / sin(incident). The
// cutoff is a hard step, as in the reference algorithm; no blending is
// applied as thickness crosses it.
const ThickLimitUM = 90.0

// BoothResult holds the Booth correction parameters for one sample, energy
// grid, and thickness classification.
type BoothResult struct {
	// Energies is the input energy grid (eV).
	Energies []float64

	// K is the wavenumber grid (Å⁻¹); 0 at and below the edge.
	K []float64

	// IsThick reports whether the thick-sample branch applies.
	IsThick bool

	// S is s(E) = μ̄_absorber(E) / α(E) at each point.
	S []float64

	// Alpha is α(E) = μ_total(E) + g·μ_f at each point, in cm²/g-equivalent
	// units; the thin correction multiplies it by density to recover cm⁻¹.
	Alpha []float64

	// SinIncident is sin(incident angle), the effective-path divisor.
	SinIncident float64

	// EdgeEnergy is the absorption edge threshold (eV).
	EdgeEnergy float64

	// FluorescenceEnergy is the emission line energy used for μ_f (eV).
	FluorescenceEnergy float64
}

// Booth computes the Booth & Bridges correction parameters. The sample is
// classified thick when thickness/sin(incident) reaches ThickLimitUM;
// otherwise the thin-sample formulas apply.
func Booth(tbl xraydb.Table, parser xraydb.FormulaParser, formula, absorber, edge string, energies []float64, thicknessUM float64, opts ...core.GeometryOption) (*BoothResult, error) {
	geo := core.ApplyGeometryOptions(opts...)
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	if !core.IsFinite(thicknessUM) || thicknessUM <= 0 {
		return nil, fmt.Errorf("%w: thickness must be finite and > 0: %g µm", core.ErrInsufficientData, thicknessUM)
	}

	profile, err := sample.NewProfile(tbl, parser, formula, absorber, edge)
	if err != nil {
		return nil, err
	}

	muT, err := sample.WeightedTotal(tbl, profile.Composition, energies)
	if err != nil {
		return nil, err
	}

	muA, err := sample.WeightedAbsorber(tbl, profile, energies, true)
	if err != nil {
		return nil, err
	}

	muF, err := sample.WeightedTotalAt(tbl, profile.Composition, profile.FluorEnergy)
	if err != nil {
		return nil, err
	}

	ratio := geo.Ratio()

	s := make([]float64, len(energies))
	alpha := make([]float64, len(energies))

	for i := range energies {
		alphaI := muT[i] + ratio*muF

		var si float64
		if alphaI > 0 {
			si = muA[i] / alphaI
		}

		alpha[i] = alphaI
		s[i] = si
	}

	sinIncident := geo.SinIncident()

	return &BoothResult{
		Energies:           append([]float64(nil), energies...),
		K:                  core.EnergiesToK(energies, profile.EdgeEnergy),
		IsThick:            thicknessUM/sinIncident >= ThickLimitUM,
		S:                  s,
		Alpha:              alpha,
		SinIncident:        sinIncident,
		EdgeEnergy:         profile.EdgeEnergy,
		FluorescenceEnergy: profile.FluorEnergy,
	}, nil
}

// CorrectChi corrects measured χ(k) with the branch selected at construction.
//
// Thick:
//
//	χ_corrected = χ / (1 − s·(χ + 1))
//
// Thin: the positive root of the quadratic obtained from the finite-thickness
// fluorescence intensity expression. Density is in g/cm³, thickness in µm.
func (r *BoothResult) CorrectChi(chi []float64, density, thicknessUM float64) []float64 {
	out := make([]float64, len(chi))

	for i, c := range chi {
		if r.IsThick {
			out[i] = r.correctThickAt(i, c)
		} else {
			out[i] = r.correctThinAt(i, c, density, thicknessUM)
		}
	}

	return out
}

// SuppressionRatio computes R(E, χ) = χ_measured / χ_true for an assumed
// true amplitude. The thick branch is closed-form,
// R = (1 − s)/(1 + s·χ_true); the thin branch numerically inverts the thin
// correction at each point and fails with core.ErrInsufficientData when the
// inversion cannot bracket a root.
func (r *BoothResult) SuppressionRatio(chiTrue, density, thicknessUM float64) ([]float64, error) {
	if !core.IsFinite(chiTrue) || chiTrue == 0 {
		return nil, fmt.Errorf("%w: chi must be finite and non-zero", core.ErrInsufficientData)
	}

	out := make([]float64, len(r.S))

	if r.IsThick {
		for i, si := range r.S {
			denom := 1 + si*chiTrue
			if math.Abs(denom) < 1e-12 || !core.IsFinite(denom) {
				return nil, fmt.Errorf("%w: unstable thick-limit denominator at index %d", core.ErrInsufficientData, i)
			}

			out[i] = (1 - si) / denom
		}

		return out, nil
	}

	for i := range r.S {
		chiMeasured, err := r.invertThinAt(i, chiTrue, density, thicknessUM)
		if err != nil {
			return nil, err
		}

		out[i] = chiMeasured / chiTrue
	}

	return out, nil
}

func (r *BoothResult) correctThickAt(i int, chi float64) float64 {
	denom := 1 - r.S[i]*(chi+1)
	if math.Abs(denom) > 1e-10 {
		return chi / denom
	}

	return chi
}

// correctThinAt solves the thin-sample quadratic for the corrected amplitude.
// η = α·d/sin(incident) is the dimensionless optical depth.
func (r *BoothResult) correctThinAt(i int, chi, density, thicknessUM float64) float64 {
	thicknessCM := thicknessUM * 1e-4
	alpha := r.Alpha[i] * density
	muA := r.S[i] * alpha

	eta := alpha * thicknessCM / r.SinIncident
	expNegEta := math.Exp(-eta)
	betaCoef := muA * expNegEta * eta
	gamma := 1 - expNegEta

	if math.Abs(betaCoef) < 1e-30 {
		return chi
	}

	term1 := gamma*(alpha-muA*(chi+1)) + betaCoef
	term2 := 4 * alpha * betaCoef * gamma * chi

	discriminant := term1*term1 + term2
	if discriminant < 0 {
		return chi
	}

	return (-term1 + math.Sqrt(discriminant)) / (2 * betaCoef)
}
