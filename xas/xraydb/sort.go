package xraydb

import "sort"

// SortEdgesByEnergy orders edges by descending energy in place. Exact energy
// ties keep their input order.
func SortEdgesByEnergy(edges []NamedEdge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Energy > edges[j].Energy
	})
}

// SortLinesByIntensity orders lines by descending intensity in place. Exact
// intensity ties keep their input order.
func SortLinesByIntensity(lines []NamedLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Intensity > lines[j].Intensity
	})
}

// MostIntenseLine returns the line with the largest intensity, preferring
// the earliest on exact ties. The second result is false for an empty slice.
func MostIntenseLine(lines []NamedLine) (NamedLine, bool) {
	if len(lines) == 0 {
		return NamedLine{}, false
	}

	best := lines[0]
	for _, l := range lines[1:] {
		if l.Intensity > best.Intensity {
			best = l
		}
	}

	return best, true
}
