package engine

import "math"

// Regime identifies the noise source dominating total variance.
type Regime string

// Regime labels. Exactly one is assigned to every valid input.
const (
	RegimeShot  Regime = "shot"
	RegimeDark  Regime = "dark"
	RegimeRead  Regime = "read"
	RegimeMixed Regime = "mixed"
)

// DominantShare is the fraction of total noise variance a single source must
// strictly exceed to be declared the regime. At or below this share — and in
// the degenerate all-zero-variance case — the label is RegimeMixed.
const DominantShare = 0.5

// ShotNoise is the Poisson noise of photon arrival: sqrt of the signal
// electron count, floored at zero.
func ShotNoise(signalElectrons float64) float64 {
	return math.Sqrt(math.Max(signalElectrons, 0))
}

// DarkNoise is the Poisson noise of thermal electron generation: sqrt of the
// dark electron count, floored at zero.
func DarkNoise(darkElectrons float64) float64 {
	return math.Sqrt(math.Max(darkElectrons, 0))
}

// TotalNoise combines the three independent sources by root-sum-of-squares.
// Under Poisson statistics the shot and dark variances equal their electron
// counts; the read-noise variance is its square.
func TotalNoise(signalElectrons, darkElectrons, readNoise float64) float64 {
	return math.Sqrt(signalElectrons + darkElectrons + readNoise*readNoise)
}

// ClassifyRegime labels the dominant noise source by comparing the three
// variances. A source dominates only when its variance strictly exceeds
// DominantShare of the total, i.e. it outweighs the other two combined.
func ClassifyRegime(signalElectrons, darkElectrons, readNoise float64) Regime {
	vShot := math.Max(signalElectrons, 0)
	vDark := math.Max(darkElectrons, 0)
	vRead := readNoise * readNoise
	total := vShot + vDark + vRead

	switch {
	case vShot > DominantShare*total:
		return RegimeShot
	case vDark > DominantShare*total:
		return RegimeDark
	case vRead > DominantShare*total:
		return RegimeRead
	default:
		return RegimeMixed
	}
}
