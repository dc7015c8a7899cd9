package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lightcalc/lightcalc/internal/engine"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBuiltin_AllValid(t *testing.T) {
	list := Builtin()
	if len(list) == 0 {
		t.Fatal("builtin catalog is empty")
	}

	seen := make(map[string]bool)
	for _, s := range list {
		if s.Name == "" {
			t.Error("builtin scenario with empty name")
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			t.Errorf("duplicate builtin name %q", s.Name)
		}
		seen[key] = true

		if err := engine.Validate(s.Params); err != nil {
			t.Errorf("builtin %q does not validate: %v", s.Name, err)
		}
		if _, err := engine.Compute(s.Params); err != nil {
			t.Errorf("builtin %q does not compute: %v", s.Name, err)
		}
	}
}

func TestFind_CaseInsensitive(t *testing.T) {
	list := Builtin()
	s, ok := Find(list, "astro camera")
	if !ok {
		t.Fatal("Find(astro camera) failed")
	}
	if s.Name != "Astro Camera" {
		t.Errorf("found %q, want %q", s.Name, "Astro Camera")
	}
	if _, ok := Find(list, "no such preset"); ok {
		t.Error("Find must report missing scenarios")
	}
}

func TestLoadCatalog_DefaultsFill(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
scenarios:
  - name: Dim Lab
    description: bench test
    params:
      scene_illuminance: 50
      exposure_time: 100
`)
	list, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d scenarios, want 1", len(list))
	}
	s := list[0]
	if s.Params.SceneIlluminance != 50 {
		t.Errorf("scene_illuminance = %g, want 50", s.Params.SceneIlluminance)
	}
	if s.Params.ExposureTime != 100 {
		t.Errorf("exposure_time = %g, want 100", s.Params.ExposureTime)
	}
	// Unset fields inherit engine defaults.
	def := engine.Defaults()
	if s.Params.FNumber != def.FNumber {
		t.Errorf("f_number = %g, want default %g", s.Params.FNumber, def.FNumber)
	}
	if s.Params.QuantumEfficiency != def.QuantumEfficiency {
		t.Errorf("quantum_efficiency = %g, want default %g", s.Params.QuantumEfficiency, def.QuantumEfficiency)
	}
}

func TestLoadCatalog_DuplicateNames(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
scenarios:
  - name: Twin
  - name: twin
`)
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("duplicate names (case-insensitive) must be rejected")
	}
}

func TestLoadCatalog_MissingName(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
scenarios:
  - description: nameless
`)
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("nameless scenario must be rejected")
	}
}

func TestLoadCatalog_InvalidParams(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
scenarios:
  - name: Broken
    params:
      f_number: 0
`)
	_, err := LoadCatalog(path)
	var verr *engine.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *engine.ValidationError, got %T: %v", err, err)
	}
	if verr.Field != "f_number" {
		t.Errorf("Field = %q, want f_number", verr.Field)
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "scenarios: []\n")
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("empty catalog must be rejected")
	}
}

func TestLoadParams_PartialFile(t *testing.T) {
	path := writeFile(t, "params.yaml", `
scene_illuminance: 25000
pixel_size: 3.45
`)
	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	if p.SceneIlluminance != 25000 {
		t.Errorf("scene_illuminance = %g, want 25000", p.SceneIlluminance)
	}
	if p.PixelSize != 3.45 {
		t.Errorf("pixel_size = %g, want 3.45", p.PixelSize)
	}
	if p.Wavelength != engine.Defaults().Wavelength {
		t.Errorf("wavelength = %g, want default", p.Wavelength)
	}
}

func TestLoadParams_BadYAML(t *testing.T) {
	path := writeFile(t, "params.yaml", "scene_illuminance: [not a number\n")
	if _, err := LoadParams(path); err == nil {
		t.Fatal("malformed YAML must be rejected")
	}
}

func TestLoadParams_OutOfDomain(t *testing.T) {
	path := writeFile(t, "params.yaml", "wavelength: 1064\n")
	_, err := LoadParams(path)
	var verr *engine.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *engine.ValidationError, got %T: %v", err, err)
	}
	if verr.Field != "wavelength" {
		t.Errorf("Field = %q, want wavelength", verr.Field)
	}
}

func TestLoadParams_MissingFile(t *testing.T) {
	if _, err := LoadParams(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file must be reported")
	}
}
