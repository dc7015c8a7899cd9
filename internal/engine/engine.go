package engine

import "math"

// Result is the immutable output record of one Compute call: every derived
// quantity of the calculation chain plus the noise-regime label.
//
// When TotalNoise is zero (degenerate all-dark input with an ideal readout)
// the SNR stages are skipped: SNRDefined is false and SNRLinear holds zero
// rather than NaN or ±Inf. SNRDBDefined is false whenever SNRLinear is not
// strictly positive.
type Result struct {
	SceneLuminance    float64 // cd/m²
	SensorIlluminance float64 // lux at the sensor plane
	SensorIrradiance  float64 // W/m²
	PixelArea         float64 // m²
	PhotonEnergy      float64 // J per photon
	PhotonCount       float64 // photons/pixel over the exposure

	SignalElectrons float64
	DarkElectrons   float64

	ShotNoise  float64 // e⁻ rms
	DarkNoise  float64 // e⁻ rms
	ReadNoise  float64 // e⁻ rms, input passed through
	TotalNoise float64 // e⁻ rms, root-sum-of-squares

	SNRLinear    float64
	SNRDefined   bool
	SNRDB        float64 // 20·log10(SNRLinear), EMVA1288 convention
	SNRDBDefined bool

	Regime Regime
}

// Compute validates p, then runs the calculation chain: scene luminance →
// sensor illuminance → photon count → electrons → noise → SNR → regime.
//
// It is a pure function of its input: no I/O, no retained state, identical
// inputs always produce identical outputs, and concurrent calls need no
// coordination. On a validation failure it returns a *ValidationError and
// no partial result.
func Compute(p Params) (*Result, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	luminance := SceneLuminance(p.SceneIlluminance, p.SceneReflectance)
	illuminance := SensorIlluminance(luminance, p.LensTransmittance, p.FNumber)
	irradiance := illuminance / LuxToWattsPerM2
	area := PixelArea(p.PixelSize)
	energy := PhotonEnergy(p.Wavelength)
	exposureS := p.ExposureTime * secondPerMillisecond

	photons := irradiance * area * exposureS / energy
	signalE := SignalElectrons(photons, p.QuantumEfficiency)
	darkE := DarkElectrons(p.DarkCurrent, p.ExposureTime)

	r := &Result{
		SceneLuminance:    luminance,
		SensorIlluminance: illuminance,
		SensorIrradiance:  irradiance,
		PixelArea:         area,
		PhotonEnergy:      energy,
		PhotonCount:       photons,
		SignalElectrons:   signalE,
		DarkElectrons:     darkE,
		ShotNoise:         ShotNoise(signalE),
		DarkNoise:         DarkNoise(darkE),
		ReadNoise:         p.ReadNoise,
		TotalNoise:        TotalNoise(signalE, darkE, p.ReadNoise),
		Regime:            ClassifyRegime(signalE, darkE, p.ReadNoise),
	}

	if r.TotalNoise > 0 {
		r.SNRLinear = signalE / r.TotalNoise
		r.SNRDefined = true
		if r.SNRLinear > 0 {
			r.SNRDB = 20 * math.Log10(r.SNRLinear)
			r.SNRDBDefined = true
		}
	}

	return r, nil
}
