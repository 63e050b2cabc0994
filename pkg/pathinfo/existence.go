package pathinfo

import (
	"path"
	"strings"

	"github.com/arthur-debert/renamer/pkg/types"
)

// Existence is the case-aware answer to "does something occupy this
// directory slot". On case-preserving systems an entry can occupy the
// slot under a different casing than the queried path; that distinction
// drives the noop/recase/clobber decisions in the planner.
type Existence int

const (
	// Missing means no entry occupies the slot.
	Missing Existence = iota
	// ExistsDifferentCase means an entry occupies the slot but its
	// name differs in casing from the query (case-preserving only).
	ExistsDifferentCase
	// ExistsSameCase means an entry occupies the slot with exactly
	// the queried casing.
	ExistsSameCase
)

func (e Existence) String() string {
	switch e {
	case ExistsSameCase:
		return "exists-same-case"
	case ExistsDifferentCase:
		return "exists-different-case"
	default:
		return "missing"
	}
}

// Occupied reports whether any entry occupies the slot.
func (e Existence) Occupied() bool {
	return e != Missing
}

// EntryType classifies what occupies a path.
type EntryType int

const (
	TypeMissing EntryType = iota
	TypeFile
	TypeDirectory
	// TypeOther covers sockets, devices, symlinks and the rest;
	// renaming and clobbering them is unsupported.
	TypeOther
)

func (t EntryType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDirectory:
		return "directory"
	case TypeOther:
		return "other"
	default:
		return "missing"
	}
}

// Checker answers case-aware existence queries against a filesystem.
// Existence is computed by listing the parent directory and comparing
// entry names under the mode's folding rule, so the answers are
// deterministic regardless of the casing semantics of the filesystem
// the process itself happens to run on.
type Checker struct {
	fs   types.FS
	mode CaseMode
}

// NewChecker creates a Checker for the given filesystem and mode.
func NewChecker(fs types.FS, mode CaseMode) *Checker {
	return &Checker{fs: fs, mode: mode}
}

// Mode returns the case mode the checker operates under.
func (c *Checker) Mode() CaseMode {
	return c.mode
}

// Lookup returns the existence state for p and, when the slot is
// occupied, the occupant's actual path (the parent joined with the
// entry name as the filesystem reports it).
func (c *Checker) Lookup(p string) (Existence, string) {
	info := Parse(p)
	if info.Name == "" || info.Name == "." || info.Name == ".." {
		// Root, dot and dot-dot have no parent slot to inspect.
		if _, err := c.fs.Stat(info.Full); err == nil {
			return ExistsSameCase, info.Full
		}
		return Missing, ""
	}

	entries, err := c.fs.ReadDir(info.Directory)
	if err != nil {
		return Missing, ""
	}

	for _, e := range entries {
		if e.Name() == info.Name {
			return ExistsSameCase, info.Full
		}
	}
	if c.mode == CaseSensitive {
		return Missing, ""
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), info.Name) {
			actual := path.Join(info.Directory, e.Name())
			if c.mode == CaseInsensitive {
				// Case-insensitive systems make no distinction.
				return ExistsSameCase, actual
			}
			return ExistsDifferentCase, actual
		}
	}
	return Missing, ""
}

// Existence returns just the existence state for p.
func (c *Checker) Existence(p string) Existence {
	e, _ := c.Lookup(p)
	return e
}

// EntryType returns the type of whatever occupies p, or TypeMissing.
// The occupant is inspected under its actual on-disk name, which may
// differ in casing from p.
func (c *Checker) EntryType(p string) EntryType {
	e, actual := c.Lookup(p)
	if !e.Occupied() {
		return TypeMissing
	}
	fi, err := c.fs.Lstat(actual)
	if err != nil {
		return TypeMissing
	}
	switch {
	case fi.Mode().IsRegular():
		return TypeFile
	case fi.IsDir():
		return TypeDirectory
	default:
		return TypeOther
	}
}

// IsNonEmptyDir reports whether p is a directory with contents.
func (c *Checker) IsNonEmptyDir(p string) bool {
	_, actual := c.Lookup(p)
	if actual == "" {
		return false
	}
	entries, err := c.fs.ReadDir(actual)
	return err == nil && len(entries) > 0
}
