package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lightcalc/lightcalc/internal/engine"
)

// Scenario is one named parameter bundle. It is external data: the engine
// accepts its Params like any other input.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Params      engine.Params `yaml:"params"`
}

// UnmarshalYAML fills absent parameter fields from engine.Defaults() before
// decoding, so catalog entries only need to spell out what differs.
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type plain Scenario
	tmp := plain{Params: engine.Defaults()}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*s = Scenario(tmp)
	return nil
}

// Builtin returns the catalog shipped with the binary. Every entry passes
// engine validation; the returned slice is a fresh copy each call.
func Builtin() []Scenario {
	return []Scenario{
		{
			Name:        "Bright Daylight",
			Description: "18% grey scene in full daylight, small-pixel sensor at base exposure",
			Params: engine.Params{
				SceneIlluminance: 50000, SceneReflectance: 0.18,
				FNumber: 8, LensTransmittance: 0.90,
				PixelSize: 1.8, ExposureTime: 1, Wavelength: 550,
				QuantumEfficiency: 0.80, ReadNoise: 1.5, DarkCurrent: 0.05,
			},
		},
		{
			Name:        "Overcast Outdoor",
			Description: "Heavy overcast, medium aperture",
			Params: engine.Params{
				SceneIlluminance: 5000, SceneReflectance: 0.18,
				FNumber: 5.6, LensTransmittance: 0.90,
				PixelSize: 2.0, ExposureTime: 4, Wavelength: 550,
				QuantumEfficiency: 0.75, ReadNoise: 1.5, DarkCurrent: 0.05,
			},
		},
		{
			Name:        "Indoor Office",
			Description: "Typical office lighting at a fast aperture",
			Params: engine.Params{
				SceneIlluminance: 400, SceneReflectance: 0.18,
				FNumber: 2.8, LensTransmittance: 0.85,
				PixelSize: 2.0, ExposureTime: 10, Wavelength: 550,
				QuantumEfficiency: 0.70, ReadNoise: 2.0, DarkCurrent: 0.1,
			},
		},
		{
			Name:        "Night Street",
			Description: "Street lighting, wide open lens, long handheld exposure",
			Params: engine.Params{
				SceneIlluminance: 10, SceneReflectance: 0.18,
				FNumber: 1.8, LensTransmittance: 0.80,
				PixelSize: 2.4, ExposureTime: 33, Wavelength: 600,
				QuantumEfficiency: 0.80, ReadNoise: 1.0, DarkCurrent: 0.2,
			},
		},
		{
			Name:        "Smartphone Indoor",
			Description: "Dim living-room light on a 1 µm phone sensor",
			Params: engine.Params{
				SceneIlluminance: 200, SceneReflectance: 0.18,
				FNumber: 1.8, LensTransmittance: 0.80,
				PixelSize: 1.0, ExposureTime: 16, Wavelength: 530,
				QuantumEfficiency: 0.75, ReadNoise: 1.2, DarkCurrent: 0.1,
			},
		},
		{
			Name:        "Machine Vision Line",
			Description: "Strobed inspection line: bright target, very short exposure",
			Params: engine.Params{
				SceneIlluminance: 2000, SceneReflectance: 0.60,
				FNumber: 4, LensTransmittance: 0.85,
				PixelSize: 3.45, ExposureTime: 0.5, Wavelength: 520,
				QuantumEfficiency: 0.65, ReadNoise: 2.5, DarkCurrent: 0.3,
			},
		},
		{
			Name:        "Astro Camera",
			Description: "Deep-sky target: big cooled pixels, one-second subexposure",
			Params: engine.Params{
				SceneIlluminance: 0.01, SceneReflectance: 0.30,
				FNumber: 2, LensTransmittance: 0.85,
				PixelSize: 9, ExposureTime: 1000, Wavelength: 500,
				QuantumEfficiency: 0.90, ReadNoise: 1.5, DarkCurrent: 0.5,
			},
		},
	}
}

// Find returns the scenario with the given name from list, matching
// case-insensitively.
func Find(list []Scenario, name string) (Scenario, bool) {
	for _, s := range list {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Scenario{}, false
}

// catalogFile maps the on-disk YAML catalog layout.
type catalogFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadCatalog reads a scenario catalog from a YAML file. Entries inherit
// engine defaults for absent fields; names must be present and unique, and
// every parameter set must pass engine validation.
func LoadCatalog(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scenario: parse catalog: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario: catalog %s has no scenarios", path)
	}

	seen := make(map[string]bool, len(f.Scenarios))
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario: scenarios[%d]: name is required", i)
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return nil, fmt.Errorf("scenario: duplicate scenario name %q", s.Name)
		}
		seen[key] = true

		if err := engine.Validate(s.Params); err != nil {
			return nil, fmt.Errorf("scenario: %q: %w", s.Name, err)
		}
	}
	return f.Scenarios, nil
}

// LoadParams reads a single parameter file. Absent fields keep their
// engine defaults; the result is validated before being returned.
func LoadParams(path string) (engine.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Params{}, fmt.Errorf("scenario: read params: %w", err)
	}

	p := engine.Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return engine.Params{}, fmt.Errorf("scenario: parse params: %w", err)
	}
	if err := engine.Validate(p); err != nil {
		return engine.Params{}, err
	}
	return p, nil
}
