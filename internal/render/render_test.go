package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lightcalc/lightcalc/internal/engine"
	"github.com/lightcalc/lightcalc/internal/scenario"
	"github.com/lightcalc/lightcalc/internal/sweep"
)

func computeOrFail(t *testing.T, p engine.Params) *engine.Result {
	t.Helper()
	res, err := engine.Compute(p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return res
}

func degenerateResult(t *testing.T) *engine.Result {
	t.Helper()
	p := engine.Defaults()
	p.SceneIlluminance = 0
	p.DarkCurrent = 0
	p.ReadNoise = 0
	return computeOrFail(t, p)
}

func TestResult_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Result(&buf, computeOrFail(t, engine.Defaults()), FormatText); err != nil {
		t.Fatalf("Result: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Signal electrons", "Total noise", "SNR (dB)", "Noise regime", "shot"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestResult_TextUndefinedSNR(t *testing.T) {
	var buf bytes.Buffer
	if err := Result(&buf, degenerateResult(t), FormatText); err != nil {
		t.Fatalf("Result: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "undefined") {
		t.Errorf("degenerate result must print undefined SNR:\n%s", out)
	}
	for _, forbidden := range []string{"NaN", "Inf", "inf"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("output contains %q:\n%s", forbidden, out)
		}
	}
}

func TestResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Result(&buf, computeOrFail(t, engine.Defaults()), FormatJSON); err != nil {
		t.Fatalf("Result: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if _, ok := decoded["signal_electrons"].(float64); !ok {
		t.Errorf("signal_electrons missing or not numeric: %v", decoded["signal_electrons"])
	}
	if _, ok := decoded["snr_linear"].(float64); !ok {
		t.Errorf("snr_linear should be numeric for defined SNR: %v", decoded["snr_linear"])
	}
	if decoded["noise_regime"] != "shot" {
		t.Errorf("noise_regime = %v, want shot", decoded["noise_regime"])
	}
}

func TestResult_JSONUndefinedSNR(t *testing.T) {
	var buf bytes.Buffer
	if err := Result(&buf, degenerateResult(t), FormatJSON); err != nil {
		t.Fatalf("Result: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["snr_linear"] != "undefined" || decoded["snr_db"] != "undefined" {
		t.Errorf("undefined SNR must serialize as the string: linear=%v db=%v",
			decoded["snr_linear"], decoded["snr_db"])
	}
}

func TestResult_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Result(&buf, computeOrFail(t, engine.Defaults()), FormatYAML); err != nil {
		t.Fatalf("Result: %v", err)
	}
	if !strings.Contains(buf.String(), "noise_regime: shot") {
		t.Errorf("yaml output missing regime:\n%s", buf.String())
	}
}

func TestResult_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Result(&buf, computeOrFail(t, engine.Defaults()), "xml"); err == nil {
		t.Error("unknown format must be rejected")
	}
}

func TestSweep_Text(t *testing.T) {
	points, err := sweep.Run(context.Background(), engine.Defaults(),
		sweep.Grid{Param: "scene_illuminance", From: 100, To: 10000, Steps: 4, Log: true}, 2)
	if err != nil {
		t.Fatalf("sweep.Run: %v", err)
	}

	var buf bytes.Buffer
	if err := Sweep(&buf, "scene_illuminance", points, FormatText); err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "scene_illuminance") {
		t.Errorf("sweep header missing parameter name:\n%s", out)
	}
	// Header plus one row per point.
	if got := strings.Count(strings.TrimRight(out, "\n"), "\n") + 1; got != len(points)+1 {
		t.Errorf("got %d output lines, want %d", got, len(points)+1)
	}
}

func TestSweep_JSON(t *testing.T) {
	points, err := sweep.Run(context.Background(), engine.Defaults(),
		sweep.Grid{Param: "exposure_time", From: 1, To: 100, Steps: 3}, 1)
	if err != nil {
		t.Fatalf("sweep.Run: %v", err)
	}

	var buf bytes.Buffer
	if err := Sweep(&buf, "exposure_time", points, FormatJSON); err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("got %d rows, want 3", len(rows))
	}
}

func TestScenarios_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Scenarios(&buf, scenario.Builtin(), FormatText); err != nil {
		t.Fatalf("Scenarios: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Bright Daylight", "Astro Camera"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog listing missing %q:\n%s", want, out)
		}
	}
}
