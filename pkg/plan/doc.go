// Package plan builds and validates renaming plans.
//
// A plan takes an ordered list of original paths and a rule, pairs each
// original with a computed new path, diagnoses at most one problem per
// pair through a fixed-order classifier, and applies the user's
// controls to partition the inventory into filtered, excluded, skipped
// and active sets. The four sets always partition the input exactly, in
// input order, so the fate of every requested renaming is reportable.
//
// The plan validates against filesystem state sampled once at Prepare
// time; execution (pkg/execution) trusts that sample apart from its own
// clobber guards.
package plan
