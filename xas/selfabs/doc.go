// Package selfabs corrects fluorescence X-ray absorption spectra for
// self-absorption: the reabsorption of emitted fluorescence photons inside
// the sample, which suppresses the apparent fine-structure amplitude.
//
// Five independently derived algorithms are provided:
//
//   - Fluo (Haskel, Ravel, Stern): the only μ(E)-space correction, usable in
//     the near-edge region where χ(k) is undefined.
//   - Troger (Tröger et al., PRB 46, 1992): multiplicative χ(k) correction
//     for thick samples.
//   - Booth (Booth & Bridges, Phys. Scr. T115, 2005): general χ(k)
//     correction with an explicit thin/thick branch; its suppression-ratio
//     mode inverts the thin formula per energy point with a Newton iteration
//     backed by a bracketing bisection fallback.
//   - Atoms (Ravel, J. Synch. Rad. 8, 2001): a single amplitude factor plus
//     a net σ² variance correction extracted from log-linear fits.
//   - Ameyanagi: the exact closed-form suppression ratio R(E, χ) from the
//     full exponential expression, with numerically stable 1 − e^(−x)
//     evaluation.
//
// Every entry point takes the cross-section table and formula parser
// explicitly, builds a fresh sample profile, and returns an immutable result
// record. Calls are pure: identical inputs produce bit-identical outputs, and
// concurrent calls share no mutable state.
//
// Geometry is optional on all geometry-dependent entry points and defaults to
// 45° incident / 45° exit:
//
//	res, err := selfabs.Troger(tbl, parser, "Fe2O3", "Fe", "K", energies)
//	res, err = selfabs.Troger(tbl, parser, "Fe2O3", "Fe", "K", energies,
//		core.WithAnglesDeg(30, 60))
package selfabs
