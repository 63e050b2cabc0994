package plan

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/filesystem"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/pathinfo"
	"github.com/arthur-debert/renamer/pkg/problems"
	"github.com/arthur-debert/renamer/pkg/rules"
	"github.com/arthur-debert/renamer/pkg/types"
)

// Options configures a renaming plan.
type Options struct {
	// Originals is the ordered list of paths to rename.
	Originals []string

	// Computer produces the new path for each original. Required.
	Computer rules.NewPathComputer

	// Filter, when set, removes pairs before diagnosis.
	Filter rules.Filter

	// Controls holds the user's resolve/strict settings.
	Controls problems.Controls

	// AllowCaseRename opts in to pure case-change renamings on
	// case-preserving filesystems. Off by default: a plan never
	// performs a case-only rename the user did not deliberately
	// enable.
	AllowCaseRename bool

	// CaseMode overrides host detection. Zero value means detect.
	CaseMode pathinfo.CaseMode
	// DetectCase, when true, ignores CaseMode and probes the host.
	DetectCase bool

	// FS defaults to the OS filesystem.
	FS types.FS

	// Sequence numbers passed to rule and filter code. Both default
	// to 1 when zero.
	SeqStart int
	SeqStep  int
}

// Plan orchestrates pair construction, diagnosis and control
// resolution over the full input, and exposes the partitioned
// inventory plus the overall ok/not-ok verdict.
type Plan struct {
	opts    Options
	fs      types.FS
	checker *pathinfo.Checker
	resolve problems.ResolveSet
	strict  problems.StrictMode
	logger  zerolog.Logger

	pairs    []*Renaming
	filtered []*Renaming
	skipped  []*Renaming
	excluded []*Renaming
	active   []*Renaming

	prepared bool
	executed bool
	ok       bool
	failures []string
}

// New validates options and builds a plan. The plan does not touch the
// filesystem until Prepare.
func New(opts Options) (*Plan, error) {
	if opts.Computer == nil {
		return nil, errors.New(errors.ErrInvalidInput, "a new-path computer is required")
	}

	resolve, err := problems.NewResolveSet(opts.Controls.Resolve)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidControl, "invalid resolve setting")
	}
	strict, err := problems.NewStrictMode(opts.Controls.Strict)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidStrict, "invalid strict setting")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	mode := opts.CaseMode
	if opts.DetectCase {
		mode = pathinfo.DetectCaseMode()
	}
	if opts.SeqStart == 0 {
		opts.SeqStart = 1
	}
	if opts.SeqStep == 0 {
		opts.SeqStep = 1
	}

	return &Plan{
		opts:    opts,
		fs:      fs,
		checker: pathinfo.NewChecker(fs, mode),
		resolve: resolve,
		strict:  strict,
		logger:  logging.GetLogger("plan"),
	}, nil
}

// Prepare builds the pairs, runs filtering and new-path computation,
// classifies problems and resolves dispositions. It samples the
// filesystem state once; it is idempotent and never returns an error:
// all data-dependent conditions surface as problems or a not-ok
// verdict.
func (p *Plan) Prepare() {
	if p.prepared {
		return
	}
	p.prepared = true

	p.buildPairs()
	p.classify()
	p.resolveDispositions()
	p.verdict()

	p.logger.Debug().
		Int("pairs", len(p.pairs)).
		Int("active", len(p.active)).
		Int("skipped", len(p.skipped)).
		Int("excluded", len(p.excluded)).
		Int("filtered", len(p.filtered)).
		Bool("ok", p.ok).
		Msg("Plan prepared")
}

// buildPairs constructs one pair per original, applies the filter, and
// computes new paths. Rule and filter failures are captured on the
// pair, never raised.
func (p *Plan) buildPairs() {
	p.pairs = make([]*Renaming, 0, len(p.opts.Originals))
	for i, orig := range p.opts.Originals {
		seq := p.opts.SeqStart + i*p.opts.SeqStep
		rn := &Renaming{
			Original:    pathinfo.Parse(orig),
			Disposition: DispositionPending,
			Outcome:     OutcomeNotAttempted,
		}
		p.pairs = append(p.pairs, rn)

		// Compute unconditionally so positional computers stay in
		// step with the input even when pairs get filtered out.
		newPath, err := safeCompute(p.opts.Computer, rn.Original, seq)
		if err != nil {
			rn.ruleErr = err
		} else {
			rn.New = pathinfo.Parse(newPath)
		}

		if p.opts.Filter != nil {
			keep, err := safeKeep(p.opts.Filter, rn.Original, seq)
			if err != nil {
				rn.filterErr = err
				continue
			}
			if !keep {
				rn.Disposition = DispositionFiltered
			}
		}
	}
}

// safeCompute invokes the rule, converting panics into errors so one
// bad pair cannot take down the plan.
func safeCompute(c rules.NewPathComputer, orig pathinfo.PathInfo, seq int) (newPath string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in rename rule: %v", r)
		}
	}()
	return c.Compute(orig, seq)
}

func safeKeep(f rules.Filter, orig pathinfo.PathInfo, seq int) (keep bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in filter: %v", r)
		}
	}()
	return f.Keep(orig, seq)
}

// resolveDispositions applies the user's controls to each diagnosed
// pair: unresolvable problems exclude, requested resolutions activate
// with the matching execution hint, the rest are skipped.
func (p *Plan) resolveDispositions() {
	for _, rn := range p.pairs {
		if rn.Disposition == DispositionFiltered {
			p.filtered = append(p.filtered, rn)
			continue
		}
		switch {
		case rn.Problem == nil:
			rn.Disposition = DispositionActive
			p.active = append(p.active, rn)
		case !rn.Problem.Resolvable():
			rn.Disposition = DispositionExcluded
			p.excluded = append(p.excluded, rn)
		case p.resolve.Contains(rn.Problem):
			rn.Disposition = DispositionActive
			if rn.Problem.Category == problems.CategoryParent {
				rn.CreateParent = true
			} else {
				rn.Clobber = true
			}
			p.active = append(p.active, rn)
		default:
			rn.Disposition = DispositionSkipped
			p.skipped = append(p.skipped, rn)
		}
	}
}

// verdict computes the plan-level ok flag. A plan with excluded pairs,
// an empty active set, or a strict violation never executes.
func (p *Plan) verdict() {
	p.ok = true

	if n := len(p.excluded); n > 0 {
		p.fail(fmt.Sprintf("%d renaming(s) excluded due to unresolvable problems", n))
	}
	if len(p.active) == 0 {
		// Silently doing nothing on an explicitly requested bulk
		// operation would be a surprising outcome to hide.
		p.fail("all renamings were filtered, excluded, or skipped")
	}

	if p.strict.Excluded && len(p.excluded) > 0 {
		p.fail("strict setting violated: excluded")
	}
	for _, cat := range p.strict.Categories {
		n := 0
		for _, rn := range p.pairs {
			if rn.Problem != nil && rn.Problem.Category == cat {
				n++
			}
		}
		if n > 0 {
			p.fail(fmt.Sprintf("strict setting violated: %d renaming(s) with %s problems", n, cat))
		}
	}
}

func (p *Plan) fail(reason string) {
	p.ok = false
	p.failures = append(p.failures, reason)
}

// BeginExecution gates the execution engine: a plan executes at most
// once, and only when its verdict is ok.
func (p *Plan) BeginExecution() error {
	if !p.prepared {
		p.Prepare()
	}
	if p.executed {
		return errors.New(errors.ErrRenameDone, "renaming has already been executed for this plan")
	}
	if !p.ok {
		return errors.Newf(errors.ErrPlanFailed, "plan is not ok: %s", strings.Join(p.failures, "; "))
	}
	p.executed = true
	return nil
}

// OK reports whether the plan is safe to execute. Valid after Prepare.
func (p *Plan) OK() bool {
	return p.prepared && p.ok
}

// Prepared reports whether Prepare has run.
func (p *Plan) Prepared() bool {
	return p.prepared
}

// Failures returns the reasons the plan is not ok, if any.
func (p *Plan) Failures() []string {
	return p.failures
}

// Pairs returns the full ordered pair inventory.
func (p *Plan) Pairs() []*Renaming {
	return p.pairs
}

// Active returns the pairs that will be executed, in input order.
func (p *Plan) Active() []*Renaming {
	return p.active
}

// Skipped returns pairs with resolvable problems the user did not
// request resolution for.
func (p *Plan) Skipped() []*Renaming {
	return p.skipped
}

// Excluded returns pairs with unresolvable problems.
func (p *Plan) Excluded() []*Renaming {
	return p.excluded
}

// Filtered returns pairs removed by user filter code before diagnosis.
func (p *Plan) Filtered() []*Renaming {
	return p.filtered
}

// Checker exposes the case-aware existence checker so the execution
// engine inspects the filesystem under the same semantics the plan was
// validated with.
func (p *Plan) Checker() *pathinfo.Checker {
	return p.checker
}

// FS returns the filesystem the plan was validated against.
func (p *Plan) FS() types.FS {
	return p.fs
}
