package engine

import "math"

// Physical constants.
const (
	// PlanckConstant in J·s (2019 SI exact value).
	PlanckConstant = 6.62607015e-34

	// SpeedOfLight in m/s.
	SpeedOfLight = 299792458.0

	// LuxToWattsPerM2 is the luminous efficacy divisor (lm/W at 555 nm)
	// used to convert photometric illuminance to radiometric irradiance.
	LuxToWattsPerM2 = 683.0
)

// Unit conversion factors for the mixed units the parameters arrive in.
const (
	metrePerMicrometre   = 1e-6
	metrePerNanometre    = 1e-9
	secondPerMillisecond = 1e-3
)

// SceneLuminance converts scene illuminance (lux) and reflectance into
// luminance in cd/m², assuming a perfectly diffuse (Lambertian) surface.
func SceneLuminance(illuminanceLux, reflectance float64) float64 {
	return illuminanceLux * reflectance / math.Pi
}

// SensorIlluminance returns the illuminance (lux) at the sensor plane behind
// a lens of the given transmittance and f-number. The f² denominator is the
// standard lens-speed relation: aperture area falls with the square of the
// f-number.
func SensorIlluminance(luminance, transmittance, fNumber float64) float64 {
	return luminance * transmittance * math.Pi / (4 * fNumber * fNumber)
}

// PhotonEnergy returns the energy in joules of a single photon at the given
// wavelength in nanometres.
func PhotonEnergy(wavelengthNM float64) float64 {
	return PlanckConstant * SpeedOfLight / (wavelengthNM * metrePerNanometre)
}

// PixelArea returns the light-collecting area in m² of a square pixel with
// the given pitch in micrometres.
func PixelArea(pixelSizeUM float64) float64 {
	side := pixelSizeUM * metrePerMicrometre
	return side * side
}

// SignalElectrons converts a photon count to generated electrons.
func SignalElectrons(photonCount, quantumEfficiency float64) float64 {
	return photonCount * quantumEfficiency
}

// DarkElectrons returns the thermally generated electrons accumulated over
// an exposure, from a dark-current rate in e⁻/pixel/second and an exposure
// time in milliseconds.
func DarkElectrons(darkCurrentEPerS, exposureMS float64) float64 {
	return darkCurrentEPerS * exposureMS * secondPerMillisecond
}
