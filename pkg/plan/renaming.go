package plan

import (
	"github.com/arthur-debert/renamer/pkg/pathinfo"
	"github.com/arthur-debert/renamer/pkg/problems"
)

// Disposition is the bucket a renaming pair ends up in after control
// resolution.
type Disposition string

const (
	DispositionPending  Disposition = "pending"
	DispositionActive   Disposition = "active"
	DispositionSkipped  Disposition = "skipped"
	DispositionExcluded Disposition = "excluded"
	DispositionFiltered Disposition = "filtered"
)

// Outcome is the per-pair execution result.
type Outcome string

const (
	OutcomeNotAttempted Outcome = "not-attempted"
	OutcomeRenamed      Outcome = "renamed"
	OutcomeFailed       Outcome = "failed"
)

// Renaming is the unit of work: an (original, new) path pair plus its
// diagnosed problem, disposition and execution outcome. Pairs are
// created once per plan run, 1:1 with the input paths and in input
// order; they are re-tagged but never dropped, so every requested
// renaming is accounted for in the final report.
type Renaming struct {
	Original pathinfo.PathInfo
	New      pathinfo.PathInfo

	// Problem is the single diagnosed condition, if any.
	Problem *problems.Problem

	Disposition Disposition
	Outcome     Outcome

	// Execution hints set during control resolution.
	CreateParent bool
	Clobber      bool
	// ClobberSelf marks an opted-in pure case-change renaming: the
	// occupant of the new slot is the original itself, so the engine
	// renames directly without deleting anything.
	ClobberSelf bool

	// Filesystem facts sampled at classification time.
	existOrig      pathinfo.Existence
	typeOrig       pathinfo.EntryType
	fullOrig       bool
	existNew       pathinfo.Existence
	typeNew        pathinfo.EntryType
	fullNew        bool
	existNewParent pathinfo.Existence

	// Errors captured from user-supplied rule and filter code. They
	// are converted into code problems by the classifier, never
	// propagated.
	ruleErr   error
	filterErr error
}

// Record is the serializable rendering of a pair, used for listings,
// summaries and history logs.
type Record struct {
	Original    string `yaml:"original" json:"original"`
	New         string `yaml:"new,omitempty" json:"new,omitempty"`
	Problem     string `yaml:"problem,omitempty" json:"problem,omitempty"`
	ProblemMsg  string `yaml:"problem_msg,omitempty" json:"problem_msg,omitempty"`
	Disposition string `yaml:"disposition,omitempty" json:"disposition,omitempty"`
	Outcome     string `yaml:"outcome,omitempty" json:"outcome,omitempty"`
}

// Record renders the pair. Brief records carry only the path pair; full
// records add problem, disposition and outcome.
func (r *Renaming) Record(brief bool) Record {
	rec := Record{
		Original: r.Original.Full,
		New:      r.New.Full,
	}
	if brief {
		return rec
	}
	if r.Problem != nil {
		rec.Problem = r.Problem.ID()
		rec.ProblemMsg = r.Problem.Msg
	}
	rec.Disposition = string(r.Disposition)
	rec.Outcome = string(r.Outcome)
	return rec
}
