// Package problems defines the fixed two-tier taxonomy of conditions
// that can be diagnosed on a renaming pair, and the user controls that
// decide how the plan responds to them.
//
// Problems are data, never errors: a diagnosed pair is re-bucketed, the
// plan keeps going. Unresolvable problems (noop, missing, type, code,
// duplicate) always exclude the pair. Resolvable problems (exists,
// collides, parent) can be resolved by the execution engine, but only
// when the user asks for it via Controls.Resolve; otherwise the pair is
// skipped. Controls.Strict elevates categories to plan-fatal.
package problems
