package engine

import "fmt"

// Params is the full input record for one Compute call. The caller owns it;
// the engine never retains a reference.
//
// Validation tags describe the physical domain, not the slider ranges in
// Ranges() — presets and catalogs may use any value the physics permits.
type Params struct {
	// SceneIlluminance is the light falling on the scene, in lux.
	// Zero is valid (no light) and yields a degenerate, SNR-undefined result.
	SceneIlluminance float64 `yaml:"scene_illuminance" validate:"finite,gte=0"`

	// SceneReflectance is the fraction of incident light the scene reflects.
	SceneReflectance float64 `yaml:"scene_reflectance" validate:"finite,gt=0,lte=1"`

	// FNumber is the lens f-number (focal length / aperture diameter).
	FNumber float64 `yaml:"f_number" validate:"finite,gt=0"`

	// LensTransmittance is the fraction of light the lens passes through.
	LensTransmittance float64 `yaml:"lens_transmittance" validate:"finite,gt=0,lte=1"`

	// PixelSize is the pixel pitch in micrometres. Pixels are square.
	PixelSize float64 `yaml:"pixel_size" validate:"finite,gt=0"`

	// ExposureTime is the integration time in milliseconds.
	ExposureTime float64 `yaml:"exposure_time" validate:"finite,gt=0"`

	// Wavelength is the mean wavelength in nanometres. The photon-energy
	// formula assumes the visible band.
	Wavelength float64 `yaml:"wavelength" validate:"finite,gte=400,lte=700"`

	// QuantumEfficiency is the fraction of photons converted to electrons.
	QuantumEfficiency float64 `yaml:"quantum_efficiency" validate:"finite,gt=0,lte=1"`

	// ReadNoise is the readout electronics floor, in electrons RMS.
	// Zero is valid and models an ideal readout.
	ReadNoise float64 `yaml:"read_noise" validate:"finite,gte=0"`

	// DarkCurrent is thermal electron generation, in electrons/pixel/second.
	DarkCurrent float64 `yaml:"dark_current" validate:"finite,gte=0"`
}

// Defaults returns the reference parameter set: an 18% grey card at 1000 lux
// through an f/2.8 lens onto a 5 µm, QE 0.6 sensor at 10 ms.
func Defaults() Params {
	return Params{
		SceneIlluminance:  1000,
		SceneReflectance:  0.18,
		FNumber:           2.8,
		LensTransmittance: 0.85,
		PixelSize:         5,
		ExposureTime:      10,
		Wavelength:        550,
		QuantumEfficiency: 0.6,
		ReadNoise:         3,
		DarkCurrent:       0.1,
	}
}

// Range is the advisory slider range and unit for one parameter.
// It is metadata for UI callers; Validate enforces the physical domain only.
type Range struct {
	Min  float64
	Max  float64
	Unit string
}

// fieldOrder lists canonical parameter names in presentation order.
// Names match the yaml tags on Params.
var fieldOrder = []string{
	"scene_illuminance",
	"scene_reflectance",
	"f_number",
	"lens_transmittance",
	"pixel_size",
	"exposure_time",
	"wavelength",
	"quantum_efficiency",
	"read_noise",
	"dark_current",
}

var ranges = map[string]Range{
	"scene_illuminance":  {1, 100000, "lux"},
	"scene_reflectance":  {0.01, 0.9, "fraction"},
	"f_number":           {1.0, 22, ""},
	"lens_transmittance": {0.60, 0.95, "fraction"},
	"pixel_size":         {1, 15, "µm"},
	"exposure_time":      {0.1, 1000, "ms"},
	"wavelength":         {400, 700, "nm"},
	"quantum_efficiency": {0.20, 0.95, "fraction"},
	"read_noise":         {0.1, 20, "e⁻ rms"},
	"dark_current":       {0.001, 10, "e⁻/px/s"},
}

var setters = map[string]func(*Params, float64){
	"scene_illuminance":  func(p *Params, v float64) { p.SceneIlluminance = v },
	"scene_reflectance":  func(p *Params, v float64) { p.SceneReflectance = v },
	"f_number":           func(p *Params, v float64) { p.FNumber = v },
	"lens_transmittance": func(p *Params, v float64) { p.LensTransmittance = v },
	"pixel_size":         func(p *Params, v float64) { p.PixelSize = v },
	"exposure_time":      func(p *Params, v float64) { p.ExposureTime = v },
	"wavelength":         func(p *Params, v float64) { p.Wavelength = v },
	"quantum_efficiency": func(p *Params, v float64) { p.QuantumEfficiency = v },
	"read_noise":         func(p *Params, v float64) { p.ReadNoise = v },
	"dark_current":       func(p *Params, v float64) { p.DarkCurrent = v },
}

// FieldNames returns the canonical parameter names in presentation order.
func FieldNames() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Ranges returns the advisory slider range for every parameter,
// keyed by canonical name.
func Ranges() map[string]Range {
	out := make(map[string]Range, len(ranges))
	for k, v := range ranges {
		out[k] = v
	}
	return out
}

// SetField assigns value to the parameter with the given canonical name.
// Used by sweeps and by CLI --set overrides.
func SetField(p *Params, name string, value float64) error {
	set, ok := setters[name]
	if !ok {
		return fmt.Errorf("engine: unknown parameter %q", name)
	}
	set(p, value)
	return nil
}
