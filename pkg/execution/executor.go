package execution

import (
	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/pathinfo"
	"github.com/arthur-debert/renamer/pkg/plan"
	"github.com/arthur-debert/renamer/pkg/types"
)

// CursorNotStarted is the tracking cursor value before any pair has
// been attempted.
const CursorNotStarted = -1

// Result is the outcome of executing a plan: tallies, the tracking
// cursor, and the full per-pair record inventory for logging and
// "last run failed here" diagnostics.
type Result struct {
	Renamed int `yaml:"n_renamed" json:"n_renamed"`

	// Failed reports whether the batch hit a failure. At most one pair
	// can fail, since the first failure halts the batch.
	Failed bool `yaml:"failed" json:"failed"`

	// Cursor is the index into the active set of the pair being
	// processed when execution stopped. After a completed run it
	// equals the size of the active set; after a failure it names the
	// failing pair, so pairs before it succeeded and pairs after it
	// were not attempted.
	Cursor    int  `yaml:"tracking_cursor" json:"tracking_cursor"`
	Completed bool `yaml:"completed" json:"completed"`

	Records []plan.Record `yaml:"renamings" json:"renamings"`
}

// Execute performs the renames for the plan's active pairs, strictly in
// input order. Pairs with a resolved parent problem get their parent
// directory created first; pairs with a resolved clobber get the
// occupant of their target deleted first. Execution is fail-fast: the
// first failure halts the batch, and the returned Result's cursor tells
// the caller exactly what was and was not done.
func Execute(p *plan.Plan) (*Result, error) {
	logger := logging.GetLogger("execution")

	if err := p.BeginExecution(); err != nil {
		return nil, err
	}

	fs := p.FS()
	checker := p.Checker()
	active := p.Active()
	res := &Result{Cursor: CursorNotStarted}

	for i, rn := range active {
		res.Cursor = i
		if err := renameOne(fs, checker, rn); err != nil {
			rn.Outcome = plan.OutcomeFailed
			res.Failed = true
			res.Records = p.Records()
			logger.Error().
				Err(err).
				Int("cursor", i).
				Str("original", rn.Original.Full).
				Str("new", rn.New.Full).
				Msg("Renaming failed, halting batch")
			return res, errors.Wrapf(err, errors.ErrRenameFailed,
				"renaming failed at tracking cursor %d (%s -> %s)", i, rn.Original.Full, rn.New.Full)
		}
		rn.Outcome = plan.OutcomeRenamed
		res.Renamed++
		logger.Debug().
			Str("original", rn.Original.Full).
			Str("new", rn.New.Full).
			Msg("Renamed")
	}

	res.Cursor = len(active)
	res.Completed = true
	res.Records = p.Records()
	logger.Info().Int("renamed", res.Renamed).Msg("Plan executed")
	return res, nil
}

// renameOne executes a single pair: parent creation, clobber handling,
// then the rename itself.
func renameOne(fs types.FS, checker *pathinfo.Checker, rn *plan.Renaming) error {
	if rn.CreateParent {
		if err := fs.MkdirAll(rn.New.Directory, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrParentCreate,
				"failed to create parent directory %s", rn.New.Directory)
		}
	}

	// Deal with an occupied target before renaming. Deleting first,
	// rather than relying on rename-replace, keeps behavior uniform:
	// replace-on-rename differs by platform for directories, for
	// cross-type replacement, and for case variants. It also stops the
	// renamed path from inheriting the occupant's casing on
	// case-preserving systems, and catches occupants that appeared
	// after the plan was validated.
	exist, actual := checker.Lookup(rn.New.Full)
	if exist.Occupied() {
		switch {
		case rn.ClobberSelf:
			// The occupant is the original itself under its old
			// casing; the rename handles it directly.
		case rn.Clobber:
			if err := deleteOccupant(fs, checker, rn.New.Full, actual); err != nil {
				return err
			}
		default:
			return errors.Newf(errors.ErrUnrequestedClobber,
				"renaming %s -> %s would clobber an existing path", rn.Original.Full, rn.New.Full)
		}
	}

	return fs.Rename(rn.Original.Full, rn.New.Full)
}

// deleteOccupant removes whatever currently occupies the target slot.
// The delete operation is chosen from the occupant's type right now,
// not from the original's type: multiple pairs of different types may
// collide on the same target, and the occupant's real type is the only
// reliable signal.
func deleteOccupant(fs types.FS, checker *pathinfo.Checker, target, actual string) error {
	switch checker.EntryType(target) {
	case pathinfo.TypeFile:
		return fs.Remove(actual)
	case pathinfo.TypeDirectory:
		if checker.IsNonEmptyDir(target) {
			return fs.RemoveAll(actual)
		}
		return fs.Remove(actual)
	default:
		return errors.Newf(errors.ErrUnsupportedClobber,
			"occupant of %s is neither a regular file nor a directory", target)
	}
}
