package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/lightcalc/lightcalc/internal/engine"
	"github.com/lightcalc/lightcalc/internal/scenario"
	"github.com/lightcalc/lightcalc/internal/sweep"
)

// Output format names accepted by every render function.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output format names.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

const undefined = "undefined"

// resultView is the serializable projection of an engine.Result. SNR fields
// are `any` so an undefined value marshals as the string "undefined" rather
// than a numeric sentinel.
type resultView struct {
	SceneLuminance    float64 `json:"scene_luminance_nits" yaml:"scene_luminance_nits"`
	SensorIlluminance float64 `json:"sensor_illuminance_lux" yaml:"sensor_illuminance_lux"`
	SensorIrradiance  float64 `json:"sensor_irradiance_w_per_m2" yaml:"sensor_irradiance_w_per_m2"`
	PixelArea         float64 `json:"pixel_area_m2" yaml:"pixel_area_m2"`
	PhotonEnergy      float64 `json:"photon_energy_j" yaml:"photon_energy_j"`
	PhotonCount       float64 `json:"photon_count" yaml:"photon_count"`
	SignalElectrons   float64 `json:"signal_electrons" yaml:"signal_electrons"`
	DarkElectrons     float64 `json:"dark_electrons" yaml:"dark_electrons"`
	ShotNoise         float64 `json:"shot_noise" yaml:"shot_noise"`
	DarkNoise         float64 `json:"dark_noise" yaml:"dark_noise"`
	ReadNoise         float64 `json:"read_noise" yaml:"read_noise"`
	TotalNoise        float64 `json:"total_noise" yaml:"total_noise"`
	SNRLinear         any     `json:"snr_linear" yaml:"snr_linear"`
	SNRDB             any     `json:"snr_db" yaml:"snr_db"`
	NoiseRegime       string  `json:"noise_regime" yaml:"noise_regime"`
}

func toView(r *engine.Result) resultView {
	v := resultView{
		SceneLuminance:    r.SceneLuminance,
		SensorIlluminance: r.SensorIlluminance,
		SensorIrradiance:  r.SensorIrradiance,
		PixelArea:         r.PixelArea,
		PhotonEnergy:      r.PhotonEnergy,
		PhotonCount:       r.PhotonCount,
		SignalElectrons:   r.SignalElectrons,
		DarkElectrons:     r.DarkElectrons,
		ShotNoise:         r.ShotNoise,
		DarkNoise:         r.DarkNoise,
		ReadNoise:         r.ReadNoise,
		TotalNoise:        r.TotalNoise,
		SNRLinear:         undefined,
		SNRDB:             undefined,
		NoiseRegime:       string(r.Regime),
	}
	if r.SNRDefined {
		v.SNRLinear = r.SNRLinear
	}
	if r.SNRDBDefined {
		v.SNRDB = r.SNRDB
	}
	return v
}

func marshal(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("render: unknown format %q (valid: text, json, yaml)", format)
	}
}

// snrString formats a possibly-undefined SNR view value for text output.
func snrString(v any) string {
	f, ok := v.(float64)
	if !ok {
		return undefined
	}
	return fmt.Sprintf("%.2f", f)
}

// Result writes one engine result in the requested format.
func Result(w io.Writer, r *engine.Result, format string) error {
	v := toView(r)
	if format != FormatText {
		return marshal(w, format, v)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Scene luminance\t%.4g\tcd/m²\n", v.SceneLuminance)
	fmt.Fprintf(tw, "Sensor illuminance\t%.4g\tlux\n", v.SensorIlluminance)
	fmt.Fprintf(tw, "Sensor irradiance\t%.4g\tW/m²\n", v.SensorIrradiance)
	fmt.Fprintf(tw, "Photon count\t%.1f\tphotons/px\n", v.PhotonCount)
	fmt.Fprintf(tw, "Signal electrons\t%.1f\te⁻\n", v.SignalElectrons)
	fmt.Fprintf(tw, "Dark electrons\t%.4g\te⁻\n", v.DarkElectrons)
	fmt.Fprintf(tw, "Shot noise\t%.2f\te⁻ rms\n", v.ShotNoise)
	fmt.Fprintf(tw, "Dark noise\t%.4g\te⁻ rms\n", v.DarkNoise)
	fmt.Fprintf(tw, "Read noise\t%.2f\te⁻ rms\n", v.ReadNoise)
	fmt.Fprintf(tw, "Total noise\t%.2f\te⁻ rms\n", v.TotalNoise)
	fmt.Fprintf(tw, "SNR (linear)\t%s\t\n", snrString(v.SNRLinear))
	fmt.Fprintf(tw, "SNR (dB)\t%s\t\n", snrString(v.SNRDB))
	fmt.Fprintf(tw, "Noise regime\t%s\t\n", v.NoiseRegime)
	return tw.Flush()
}

// sweepRow is one grid point in serialized sweep output.
type sweepRow struct {
	Value  float64    `json:"value" yaml:"value"`
	Result resultView `json:"result" yaml:"result"`
}

// Sweep writes the points of a one-parameter sweep.
func Sweep(w io.Writer, param string, points []sweep.Point, format string) error {
	if format != FormatText {
		rows := make([]sweepRow, len(points))
		for i, pt := range points {
			rows[i] = sweepRow{Value: pt.Value, Result: toView(pt.Result)}
		}
		return marshal(w, format, rows)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tsignal e⁻\ttotal noise\tSNR\tSNR dB\tregime\n", param)
	for _, pt := range points {
		v := toView(pt.Result)
		fmt.Fprintf(tw, "%.6g\t%.1f\t%.2f\t%s\t%s\t%s\n",
			pt.Value, v.SignalElectrons, v.TotalNoise,
			snrString(v.SNRLinear), snrString(v.SNRDB), v.NoiseRegime)
	}
	return tw.Flush()
}

// Scenarios writes a scenario catalog listing.
func Scenarios(w io.Writer, list []scenario.Scenario, format string) error {
	if format != FormatText {
		return marshal(w, format, list)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprint(tw, "name\tilluminance\tf-number\texposure\tdescription\n")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%g lux\tf/%g\t%g ms\t%s\n",
			s.Name, s.Params.SceneIlluminance, s.Params.FNumber,
			s.Params.ExposureTime, s.Description)
	}
	return tw.Flush()
}
