// Package execution renames the active pairs of a validated plan.
//
// Processing is single-threaded and strictly in input order: renames on
// overlapping path spaces are not safely parallelizable, and ordered
// execution is what makes the tracking cursor meaningful on partial
// failure.
package execution
