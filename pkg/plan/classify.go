package plan

import (
	"strings"

	"github.com/arthur-debert/renamer/pkg/pathinfo"
	"github.com/arthur-debert/renamer/pkg/problems"
)

// classify runs the fixed, ordered battery of checks over each pair.
// The first check that matches assigns the pair's single problem and
// ends classification for that pair. More fundamental conditions ("is
// this a no-op?") are checked before more permissive ones ("does this
// clobber something?").
func (p *Plan) classify() {
	p.sampleFacts()
	dupes := p.duplicateGroups()

	checks := []func(*Renaming) *problems.Problem{
		p.checkNoop,
		p.checkMissing,
		p.checkType,
		p.checkCode,
		func(rn *Renaming) *problems.Problem { return p.checkDuplicate(rn, dupes) },
		p.checkExists,
		p.checkCollides,
		p.checkParent,
	}

	for _, rn := range p.pairs {
		if rn.Disposition == DispositionFiltered {
			continue
		}
		for _, check := range checks {
			if prob := check(rn); prob != nil {
				rn.Problem = prob
				break
			}
		}
	}
}

// sampleFacts records existence, type and non-empty-dir facts for each
// pair. This is the plan's single sampling of filesystem state.
func (p *Plan) sampleFacts() {
	for _, rn := range p.pairs {
		if rn.Disposition == DispositionFiltered {
			continue
		}
		rn.existOrig = p.checker.Existence(rn.Original.Full)
		rn.typeOrig = p.checker.EntryType(rn.Original.Full)
		rn.fullOrig = rn.typeOrig == pathinfo.TypeDirectory && p.checker.IsNonEmptyDir(rn.Original.Full)

		if rn.New.IsZero() {
			continue
		}
		rn.existNew = p.checker.Existence(rn.New.Full)
		rn.typeNew = p.checker.EntryType(rn.New.Full)
		rn.fullNew = rn.typeNew == pathinfo.TypeDirectory && p.checker.IsNonEmptyDir(rn.New.Full)
		rn.existNewParent = p.checker.Existence(rn.New.Directory)
	}
}

// checkNoop diagnoses the noop family: exact equality, and the
// case-only relationships that mean original and new already denote the
// same filesystem entry.
func (p *Plan) checkNoop(rn *Renaming) *problems.Problem {
	if rn.New.IsZero() {
		return nil
	}
	if rn.New.Full == rn.Original.Full {
		return problems.New(problems.CategoryNoop, problems.SeverityEqual)
	}

	mode := p.checker.Mode()
	if mode == pathinfo.CaseSensitive || !strings.EqualFold(rn.New.Full, rn.Original.Full) {
		return nil
	}
	// The paths differ only in casing, so on this filesystem they
	// denote the same slot. If nothing occupies it, fall through and
	// let the missing check speak.
	if !rn.existNew.Occupied() {
		return nil
	}

	if mode == pathinfo.CaseInsensitive {
		return problems.New(problems.CategoryNoop, problems.SeveritySame)
	}

	// Case-preserving from here on.
	if rn.Original.Name == rn.New.Name {
		// Only the parent's casing differs; renaming parents is not
		// something a plan performs.
		return problems.New(problems.CategoryNoop, problems.SeveritySame)
	}
	if rn.existNew == pathinfo.ExistsSameCase {
		// The filesystem already reports the new casing.
		return problems.New(problems.CategoryNoop, problems.SeverityRecase)
	}
	if p.opts.AllowCaseRename {
		// Opted-in pure case change: the occupant is the original
		// itself, renaming directly is safe.
		rn.ClobberSelf = true
		return nil
	}
	return problems.New(problems.CategoryNoop, problems.SeverityRecase)
}

func (p *Plan) checkMissing(rn *Renaming) *problems.Problem {
	if rn.existOrig.Occupied() {
		return nil
	}
	return problems.New(problems.CategoryMissing, problems.SeverityNone)
}

func (p *Plan) checkType(rn *Renaming) *problems.Problem {
	if rn.typeOrig == pathinfo.TypeFile || rn.typeOrig == pathinfo.TypeDirectory {
		return nil
	}
	return problems.New(problems.CategoryType, problems.SeverityNone)
}

func (p *Plan) checkCode(rn *Renaming) *problems.Problem {
	if rn.filterErr != nil {
		return problems.New(problems.CategoryCode, problems.SeverityFilter, rn.filterErr)
	}
	if rn.ruleErr != nil {
		return problems.New(problems.CategoryCode, problems.SeverityRename, rn.ruleErr)
	}
	return nil
}

// duplicateGroups finds, across the full inventory, the pairs that
// share an original path or a computed new path with another pair.
// Every member of a colliding group is flagged, not merely the second
// onward.
func (p *Plan) duplicateGroups() map[*Renaming]bool {
	mode := p.checker.Mode()
	origs := make(map[string][]*Renaming)
	news := make(map[string][]*Renaming)
	for _, rn := range p.pairs {
		if rn.Disposition == DispositionFiltered {
			continue
		}
		origs[mode.Key(rn.Original.Full)] = append(origs[mode.Key(rn.Original.Full)], rn)
		if !rn.New.IsZero() {
			news[mode.Key(rn.New.Full)] = append(news[mode.Key(rn.New.Full)], rn)
		}
	}

	flagged := make(map[*Renaming]bool)
	for _, group := range origs {
		if len(group) > 1 {
			for _, rn := range group {
				flagged[rn] = true
			}
		}
	}
	for _, group := range news {
		if len(group) > 1 {
			for _, rn := range group {
				flagged[rn] = true
			}
		}
	}
	return flagged
}

func (p *Plan) checkDuplicate(rn *Renaming, dupes map[*Renaming]bool) *problems.Problem {
	if dupes[rn] {
		return problems.New(problems.CategoryDuplicate, problems.SeverityNone)
	}
	return nil
}

// checkExists diagnoses an occupied new slot, returning the most severe
// subtype: full (cannot be safely removed as a single file or empty
// directory) outranks diff (type mismatch) outranks the base form.
func (p *Plan) checkExists(rn *Renaming) *problems.Problem {
	if rn.New.IsZero() || !rn.existNew.Occupied() {
		return nil
	}
	switch {
	case rn.typeNew == pathinfo.TypeOther || rn.fullNew:
		return problems.New(problems.CategoryExists, problems.SeverityFull)
	case rn.typeNew != rn.typeOrig:
		return problems.New(problems.CategoryExists, problems.SeverityDiff)
	default:
		return problems.New(problems.CategoryExists, problems.SeverityNone)
	}
}

// checkCollides diagnoses plan-internal interference: another pair in
// this same plan renames, deletes or clobbers the parent directory this
// pair's new path relies on.
func (p *Plan) checkCollides(rn *Renaming) *problems.Problem {
	if rn.New.IsZero() {
		return nil
	}
	mode := p.checker.Mode()
	parent := rn.New.Directory
	parentKey := mode.Key(parent)

	var worst problems.Severity
	found := false
	for _, other := range p.pairs {
		if other == rn || other.Disposition == DispositionFiltered || other.New.IsZero() {
			continue
		}
		origKey := mode.Key(other.Original.Full)
		hit := origKey == parentKey ||
			strings.HasPrefix(parentKey+"/", origKey+"/") ||
			mode.Key(other.New.Full) == parentKey
		if !hit {
			continue
		}
		found = true
		sev := problems.SeverityNone
		if other.fullOrig || other.fullNew {
			sev = problems.SeverityFull
		} else if other.typeOrig != pathinfo.TypeDirectory {
			sev = problems.SeverityDiff
		}
		worst = worseSeverity(worst, sev)
	}
	if !found {
		return nil
	}
	return problems.New(problems.CategoryCollides, worst)
}

func worseSeverity(a, b problems.Severity) problems.Severity {
	rank := func(s problems.Severity) int {
		switch s {
		case problems.SeverityFull:
			return 2
		case problems.SeverityDiff:
			return 1
		default:
			return 0
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}

func (p *Plan) checkParent(rn *Renaming) *problems.Problem {
	if rn.New.IsZero() || rn.existNewParent.Occupied() {
		return nil
	}
	return problems.New(problems.CategoryParent, problems.SeverityNone)
}
