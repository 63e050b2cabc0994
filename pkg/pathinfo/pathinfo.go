package pathinfo

import (
	"path/filepath"
	"strings"
)

// PathInfo decomposes a path string into its structural parts. It is
// derived purely from the string; no filesystem access happens here.
//
// Invariants: Directory + "/" + Name reconstructs Full (modulo the "."
// default for bare names), and Stem + Extension == Name.
type PathInfo struct {
	Full      string `yaml:"full" json:"full"`
	Directory string `yaml:"directory" json:"directory"`
	Name      string `yaml:"name" json:"name"`
	Stem      string `yaml:"stem" json:"stem"`
	Extension string `yaml:"extension,omitempty" json:"extension,omitempty"`
}

// Parse decomposes a raw path string. The input is kept as-is apart
// from separator normalization. An empty string is legal and yields
// Directory "." with an empty Name.
func Parse(raw string) PathInfo {
	full := filepath.ToSlash(raw)

	dir, name := ".", full
	if i := strings.LastIndex(full, "/"); i >= 0 {
		dir, name = full[:i], full[i+1:]
		if dir == "" {
			dir = "/"
		}
	}

	stem, ext := name, ""
	// A leading dot is part of the stem (".bashrc" has no extension).
	if j := strings.LastIndex(name, "."); j > 0 {
		stem, ext = name[:j], name[j:]
	}

	return PathInfo{
		Full:      full,
		Directory: dir,
		Name:      name,
		Stem:      stem,
		Extension: ext,
	}
}

// String returns the full path.
func (p PathInfo) String() string {
	return p.Full
}

// IsZero reports whether the PathInfo was parsed from an empty string.
func (p PathInfo) IsZero() bool {
	return p.Full == ""
}
