// Package history records executed renaming runs as JSON logs under
// the XDG state directory, so a partially completed batch can be
// diagnosed from its tracking cursor after the fact.
package history
