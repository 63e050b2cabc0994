// Package types defines the small set of interfaces shared across
// renamer packages, most importantly the FS abstraction that lets the
// planning and execution layers run against either the real filesystem
// or an in-memory one in tests.
package types
