package pathinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CaseMode describes the path-casing semantics of the target
// filesystem. It is injectable so that tests can exercise all three
// modes deterministically, and so that a plan built on one system can
// be validated against the semantics of another.
type CaseMode int

const (
	// CaseSensitive treats "Foo" and "foo" as distinct paths (ext4).
	CaseSensitive CaseMode = iota
	// CaseInsensitive treats them as the same path (FAT).
	CaseInsensitive
	// CasePreserving treats them as the same path but remembers the
	// casing used at creation time (APFS, NTFS).
	CasePreserving
)

func (m CaseMode) String() string {
	switch m {
	case CaseSensitive:
		return "case-sensitive"
	case CaseInsensitive:
		return "case-insensitive"
	case CasePreserving:
		return "case-preserving"
	default:
		return "unknown"
	}
}

// ParseCaseMode converts a user-supplied mode name. Underscores are
// accepted as a convenience for config files.
func ParseCaseMode(s string) (CaseMode, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "_", "-") {
	case "case-sensitive", "sensitive":
		return CaseSensitive, nil
	case "case-insensitive", "insensitive":
		return CaseInsensitive, nil
	case "case-preserving", "preserving":
		return CasePreserving, nil
	default:
		return CaseSensitive, fmt.Errorf("unknown case mode: %q", s)
	}
}

// Key returns the comparison key for a path under this mode. Two paths
// denote the same directory slot exactly when their keys are equal.
func (m CaseMode) Key(path string) string {
	if m == CaseSensitive {
		return path
	}
	return strings.ToLower(path)
}

// SamePath reports whether a and b denote the same slot under this mode.
func (m CaseMode) SamePath(a, b string) bool {
	return m.Key(a) == m.Key(b)
}

var hostMode struct {
	once sync.Once
	mode CaseMode
}

// DetectCaseMode probes the host filesystem and reports its case
// semantics. The probe creates two differently-cased files in a temp
// directory and inspects what the directory listing reports. The result
// is cached for the lifetime of the process. Per-directory sensitivity
// settings supported by some operating systems are ignored.
func DetectCaseMode() CaseMode {
	hostMode.once.Do(func() {
		hostMode.mode = probeCaseMode()
	})
	return hostMode.mode
}

func probeCaseMode() CaseMode {
	dir, err := os.MkdirTemp("", "renamer-case-probe")
	if err != nil {
		return CaseSensitive
	}
	defer func() { _ = os.RemoveAll(dir) }()

	upper := filepath.Join(dir, "FoO")
	lower := filepath.Join(dir, "foo")
	if err := os.WriteFile(upper, nil, 0644); err != nil {
		return CaseSensitive
	}
	if err := os.WriteFile(lower, nil, 0644); err != nil {
		return CaseSensitive
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return CaseSensitive
	}
	switch {
	case len(entries) == 2:
		return CaseSensitive
	case len(entries) == 1 && entries[0].Name() == "FoO":
		// The second create hit the first entry and kept its casing.
		return CasePreserving
	default:
		return CaseInsensitive
	}
}
