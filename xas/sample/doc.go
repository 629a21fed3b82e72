// Package sample builds the per-call sample description shared by every
// self-absorption correction: the resolved composition and absorber identity
// (Profile), stoichiometry-to-mass-fraction conversion, and the attenuation
// aggregator that turns cross-section lookups into weighted attenuation
// curves over an energy grid.
//
// Two unit systems appear side by side. The stoichiometry-weighted sums
// (WeightedTotal, WeightedAbsorber, WeightedBackground) carry cm²/g-equivalent
// units that cancel in the ratios the χ(k) corrections take. The linear
// variants (CompoundLinear, AbsorberEdgeLinearTrendline) convert through mass
// fractions and a supplied density to absolute cm⁻¹ attenuation, needed
// whenever a geometric path length enters the formula.
//
// Every function receives the cross-section Table explicitly and retains no
// state between calls. Compositions are maps; all aggregation iterates
// elements in sorted-symbol order so identical inputs produce bit-identical
// outputs.
package sample
