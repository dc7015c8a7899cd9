// Package scenario provides named, immutable parameter bundles for the
// calculation engine.
//
// Builtin() is the static catalog shipped with the binary. LoadCatalog reads
// additional scenarios from a YAML file; LoadParams reads a single parameter
// file, filling absent fields from engine.Defaults(). Both validate every
// parameter set up front so the engine never sees an out-of-domain bundle.
//
// Watch(ctx, path, onChange) re-parses a parameter file whenever it changes
// on disk and hands the new parameters to onChange — the file-driven
// equivalent of a slider interaction. Invalid edits are logged and skipped;
// the previous parameters stay active.
//
// Scenarios are plain data. The engine never special-cases a preset.
package scenario
