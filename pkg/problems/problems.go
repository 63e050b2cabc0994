package problems

import (
	"fmt"
	"strings"
)

// Category names the condition diagnosed on a renaming pair. The set is
// fixed: unresolvable categories always exclude the pair, resolvable
// ones can be handled by the execution engine on explicit request.
type Category string

const (
	// Unresolvable.
	CategoryNoop      Category = "noop"
	CategoryMissing   Category = "missing"
	CategoryType      Category = "type"
	CategoryCode      Category = "code"
	CategoryDuplicate Category = "duplicate"
	// Resolvable.
	CategoryExists   Category = "exists"
	CategoryCollides Category = "collides"
	CategoryParent   Category = "parent"
)

// Severity refines a category. The empty severity is the category's
// base form.
type Severity string

const (
	SeverityNone Severity = ""
	// noop varieties
	SeverityEqual  Severity = "equal"
	SeveritySame   Severity = "same"
	SeverityRecase Severity = "recase"
	// code varieties
	SeverityFilter Severity = "filter"
	SeverityRename Severity = "rename"
	// exists / collides varieties, most severe first
	SeverityFull Severity = "full"
	SeverityDiff Severity = "diff"
)

// formats maps category/severity to a user-facing message. Messages
// that need context take fmt args.
var formats = map[Category]map[Severity]string{
	CategoryNoop: {
		SeverityEqual:  "Original path and new path are exactly equal",
		SeveritySame:   "Original path and new path are functionally the same",
		SeverityRecase: "Renaming is a pure case change, which requires explicit opt-in",
	},
	CategoryMissing: {
		SeverityNone: "Original path does not exist",
	},
	CategoryType: {
		SeverityNone: "Original path is neither a regular file nor a directory",
	},
	CategoryCode: {
		SeverityFilter: "Error from user-supplied filtering code: %v",
		SeverityRename: "Error from user-supplied renaming code: %v",
	},
	CategoryDuplicate: {
		SeverityNone: "Path is duplicated by another renaming in the plan",
	},
	CategoryExists: {
		SeverityNone: "New path exists",
		SeverityDiff: "New path exists and differs from original in type",
		SeverityFull: "New path exists and cannot be safely removed",
	},
	CategoryCollides: {
		SeverityNone: "Parent of new path is changed by another renaming in the plan",
		SeverityDiff: "Parent of new path is changed by another renaming of a different type",
		SeverityFull: "Parent of new path is changed by another renaming involving a non-empty directory",
	},
	CategoryParent: {
		SeverityNone: "Parent directory of new path does not exist",
	},
}

// resolvable holds the fixed set of problems the execution engine can
// resolve with a side effect (clobber or parent creation).
var resolvable = map[Category][]Severity{
	CategoryExists:   {SeverityNone, SeverityDiff, SeverityFull},
	CategoryCollides: {SeverityNone, SeverityDiff, SeverityFull},
	CategoryParent:   {SeverityNone},
}

// Problem is the diagnosed condition on a single renaming pair. At most
// one Problem is ever assigned to a pair.
type Problem struct {
	Category Category `yaml:"category" json:"category"`
	Severity Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
	Msg      string   `yaml:"msg" json:"msg"`
}

// New builds a Problem, formatting the message for the given
// category/severity with args. Unknown combinations panic: they are
// programming errors, not data-dependent conditions.
func New(cat Category, sev Severity, args ...interface{}) *Problem {
	byCat, ok := formats[cat]
	if !ok {
		panic(fmt.Sprintf("problems: unknown category %q", cat))
	}
	format, ok := byCat[sev]
	if !ok {
		panic(fmt.Sprintf("problems: unknown severity %q for category %q", sev, cat))
	}
	return &Problem{
		Category: cat,
		Severity: sev,
		Msg:      fmt.Sprintf(format, args...),
	}
}

// ID returns the problem's string ID, the form users write in resolve
// and strict settings: "exists", "exists-diff", "parent", ...
func (p *Problem) ID() string {
	if p.Severity == SeverityNone {
		return string(p.Category)
	}
	return string(p.Category) + "-" + string(p.Severity)
}

// Resolvable reports whether the execution engine can resolve this
// problem on explicit request.
func (p *Problem) Resolvable() bool {
	sevs, ok := resolvable[p.Category]
	if !ok {
		return false
	}
	for _, s := range sevs {
		if s == p.Severity {
			return true
		}
	}
	return false
}

// ResolvableIDs returns the IDs of all resolvable problems, in a fixed
// order, for help text and validation.
func ResolvableIDs() []string {
	ids := make([]string, 0, 7)
	for _, cat := range []Category{CategoryExists, CategoryCollides, CategoryParent} {
		for _, sev := range resolvable[cat] {
			ids = append(ids, (&Problem{Category: cat, Severity: sev}).ID())
		}
	}
	return ids
}

// ParseID splits a problem ID into category and severity. Underscores
// are accepted in place of hyphens.
func ParseID(id string) (Category, Severity, error) {
	norm := strings.ReplaceAll(strings.TrimSpace(id), "_", "-")
	parts := strings.SplitN(norm, "-", 2)
	cat := Category(parts[0])
	if _, ok := formats[cat]; !ok {
		return "", "", fmt.Errorf("unknown problem category: %q", id)
	}
	sev := SeverityNone
	if len(parts) == 2 {
		sev = Severity(parts[1])
		if _, ok := formats[cat][sev]; !ok {
			return "", "", fmt.Errorf("unknown severity %q for category %q", parts[1], parts[0])
		}
	}
	return cat, sev, nil
}
