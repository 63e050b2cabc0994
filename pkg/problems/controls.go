package problems

import (
	"fmt"
	"strings"
)

// The special tokens accepted in control settings.
const (
	tokenAll      = "all"
	tokenExcluded = "excluded"
)

// Controls carries the user's problem-handling configuration: which
// resolvable problems the engine should resolve with a side effect, and
// which categories make the whole plan fail if present at all.
type Controls struct {
	Resolve []string `yaml:"resolve" json:"resolve"`
	Strict  []string `yaml:"strict" json:"strict"`
}

// ResolveSet is the expanded form of the user's resolve settings: a set
// of resolvable problem IDs.
type ResolveSet map[string]bool

// NewResolveSet expands user resolve specs into a set of problem IDs.
// A bare category ("exists") covers all of its severities; "all" covers
// every resolvable problem. Unresolvable problems cannot be requested.
func NewResolveSet(specs []string) (ResolveSet, error) {
	set := make(ResolveSet)
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		if spec == tokenAll {
			for _, id := range ResolvableIDs() {
				set[id] = true
			}
			continue
		}
		cat, sev, err := ParseID(spec)
		if err != nil {
			return nil, err
		}
		sevs, ok := resolvable[cat]
		if !ok {
			return nil, fmt.Errorf("problem %q is not resolvable", spec)
		}
		if sev == SeverityNone {
			// Bare category covers all severities.
			for _, s := range sevs {
				set[(&Problem{Category: cat, Severity: s}).ID()] = true
			}
			continue
		}
		found := false
		for _, s := range sevs {
			if s == sev {
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("problem %q is not resolvable", spec)
		}
		set[(&Problem{Category: cat, Severity: sev}).ID()] = true
	}
	return set, nil
}

// Contains reports whether the set covers the given problem.
func (s ResolveSet) Contains(p *Problem) bool {
	return p != nil && s[p.ID()]
}

// StrictMode names the categories whose mere presence, resolved or not,
// must fail the whole plan, plus whether excluded pairs do the same.
type StrictMode struct {
	Excluded   bool
	Categories []Category
}

// strictCategories are the categories accepted in strict settings: the
// resolvable ones. Unresolvable problems already fail the plan.
var strictCategories = []Category{CategoryParent, CategoryExists, CategoryCollides}

// NewStrictMode validates and normalizes user strict specs. Accepted
// values: "all", "excluded", and the resolvable category names.
func NewStrictMode(specs []string) (StrictMode, error) {
	sm := StrictMode{}
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		switch {
		case spec == "":
		case spec == tokenAll:
			sm.Excluded = true
			sm.Categories = append([]Category(nil), strictCategories...)
		case spec == tokenExcluded:
			sm.Excluded = true
		default:
			found := false
			for _, cat := range strictCategories {
				if spec == string(cat) {
					sm.addCategory(cat)
					found = true
					break
				}
			}
			if !found {
				return StrictMode{}, fmt.Errorf("invalid strict setting: %q", spec)
			}
		}
	}
	return sm, nil
}

func (sm *StrictMode) addCategory(cat Category) {
	for _, c := range sm.Categories {
		if c == cat {
			return
		}
	}
	sm.Categories = append(sm.Categories, cat)
}

// Covers reports whether the strict mode names the given category.
func (sm StrictMode) Covers(cat Category) bool {
	for _, c := range sm.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// String renders the strict mode back into its user-facing form.
func (sm StrictMode) String() string {
	var parts []string
	if sm.Excluded {
		parts = append(parts, tokenExcluded)
	}
	for _, c := range sm.Categories {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, " ")
}
