// Package rules defines the pluggable strategies that compute new paths
// from originals: explicit positional lists, Go text/templates, and
// caller-supplied callbacks for library embedders. Filters share the
// same shape for pre-filtering pairs.
//
// There is deliberately no dynamic code evaluation here; embedders who
// need richer logic supply a callback.
package rules
