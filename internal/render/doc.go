// Package render turns engine results into CLI output.
//
// Three formats are supported: "text" (aligned human-readable breakdown),
// "json" and "yaml". Undefined SNR values are rendered as the literal string
// "undefined" in every format — NaN and ±Inf never reach the output.
package render
