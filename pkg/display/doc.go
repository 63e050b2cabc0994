// Package display renders plan summaries for human and machine
// consumption: styled terminal listings, plain text, and YAML or JSON
// for piping. Format auto-detection follows terminal capabilities and
// NO_COLOR.
package display
