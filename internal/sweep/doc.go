// Package sweep evaluates the calculation engine over a one-parameter grid,
// the batch mode used to chart how SNR responds to a single input.
//
// A Grid names the parameter, its endpoints, the number of steps and whether
// spacing is linear or logarithmic. Run evaluates every grid point against a
// base parameter set with bounded concurrency — safe because the engine is a
// pure function — and returns points in grid order.
package sweep
