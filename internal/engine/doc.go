// Package engine computes end-to-end signal-to-noise for a digital imaging
// sensor from scene illumination and lens/sensor parameters.
//
// params.go defines the ten-field Params record, the default parameter set,
// and the advisory slider Ranges() catalog for UI-building callers.
//
// validate.go performs fail-fast domain validation and returns a
// *ValidationError naming the offending field before any arithmetic runs.
//
// photometry.go implements the light path: Lambertian scene luminance,
// lens-speed sensor illuminance, photon energy, photon count per pixel and
// electron conversion via quantum efficiency.
//
// noise.go combines shot, dark and read noise by root-sum-of-squares,
// derives SNR (linear and dB, 20·log10 per EMVA1288) and classifies which
// noise source dominates total variance. The dominance boundary is the
// DominantShare policy constant: strictly more than half of total variance.
//
// Compute(Params) is a pure function — no state survives between calls, so
// it is safe for concurrent batch evaluation (see the sweep package).
package engine
