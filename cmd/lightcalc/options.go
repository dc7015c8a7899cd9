package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/lightcalc/lightcalc/internal/engine"
	"github.com/lightcalc/lightcalc/internal/render"
	"github.com/lightcalc/lightcalc/internal/scenario"
)

// paramsOptions are the flags shared by every command that needs a parameter
// set: a preset name, a params file, and field overrides.
type paramsOptions struct {
	ParamsFile string
	Preset     string
	Catalog    string
	Sets       []string
}

func (o *paramsOptions) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ParamsFile, "params", "p", "", "Path to a YAML parameter file.")
	fs.StringVar(&o.Preset, "preset", "", "Name of a preset scenario to start from.")
	fs.StringVar(&o.Catalog, "catalog", "", "Path to an extra scenario catalog (YAML).")
	fs.StringArrayVar(&o.Sets, "set", nil, "Override one parameter, e.g. --set f_number=4.")
}

// catalog returns the builtin scenarios plus any loaded from --catalog.
func (o *paramsOptions) catalog() ([]scenario.Scenario, error) {
	list := scenario.Builtin()
	if o.Catalog == "" {
		return list, nil
	}
	extra, err := scenario.LoadCatalog(o.Catalog)
	if err != nil {
		return nil, err
	}
	return append(list, extra...), nil
}

// resolve builds the parameter set: defaults, then preset, then params file,
// then --set overrides, in that precedence order.
func (o *paramsOptions) resolve() (engine.Params, error) {
	if o.Preset != "" && o.ParamsFile != "" {
		return engine.Params{}, fmt.Errorf("--preset and --params are mutually exclusive")
	}

	p := engine.Defaults()

	if o.Preset != "" {
		list, err := o.catalog()
		if err != nil {
			return engine.Params{}, err
		}
		s, ok := scenario.Find(list, o.Preset)
		if !ok {
			return engine.Params{}, fmt.Errorf("unknown preset %q (try: lightcalc presets)", o.Preset)
		}
		p = s.Params
	}

	if o.ParamsFile != "" {
		loaded, err := scenario.LoadParams(o.ParamsFile)
		if err != nil {
			return engine.Params{}, err
		}
		p = loaded
	}

	for _, kv := range o.Sets {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return engine.Params{}, fmt.Errorf("--set %q: want field=value", kv)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return engine.Params{}, fmt.Errorf("--set %s: %q is not a number", name, raw)
		}
		if err := engine.SetField(&p, strings.TrimSpace(name), v); err != nil {
			return engine.Params{}, err
		}
	}

	return p, nil
}

// outputOptions carry the shared --output flag.
type outputOptions struct {
	Output string
}

func (o *outputOptions) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", render.FormatText,
		fmt.Sprintf("Output format. One of: (%s).", strings.Join(render.Formats, ", ")))
}
