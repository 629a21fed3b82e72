package core

import "math"

// ETOK converts a photoelectron energy above the edge (eV) into the squared
// wavenumber k² (Å⁻²): k = sqrt(ETOK × (E − E₀)).
const ETOK = 0.2624682917

// EnergiesToK converts an energy grid (eV) to a wavenumber grid (Å⁻¹)
// relative to the edge energy. Points at or below the edge map to k = 0.
func EnergiesToK(energies []float64, edgeEnergy float64) []float64 {
	k := make([]float64, len(energies))
	for i, e := range energies {
		if e > edgeEnergy {
			k[i] = math.Sqrt(ETOK * (e - edgeEnergy))
		}
	}

	return k
}
