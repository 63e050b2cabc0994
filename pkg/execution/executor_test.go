package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/plan"
	"github.com/arthur-debert/renamer/pkg/problems"
	"github.com/arthur-debert/renamer/pkg/rules"
	"github.com/arthur-debert/renamer/pkg/testutil"
)

func preparedPlan(t *testing.T, env *testutil.Env, pairs [][2]string, opts plan.Options) *plan.Plan {
	t.Helper()

	var origs, news []string
	for _, pr := range pairs {
		origs = append(origs, env.Path(pr[0]))
		news = append(news, env.Path(pr[1]))
	}
	opts.Originals = origs
	opts.Computer = rules.NewExplicitList(news)
	if opts.FS == nil {
		opts.FS = env.FS
	}

	p, err := plan.New(opts)
	require.NoError(t, err)
	p.Prepare()
	return p
}

func TestExecuteCleanBatch(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)
	env.File("a.txt", "alpha")
	env.File("b.txt", "beta")

	p := preparedPlan(t, env, [][2]string{
		{"a.txt", "c.txt"},
		{"b.txt", "d.txt"},
	}, plan.Options{})

	result, err := Execute(p)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Renamed)
	assert.False(t, result.Failed)
	assert.True(t, result.Completed)
	assert.Equal(t, 2, result.Cursor)

	assert.False(t, env.Exists("a.txt"))
	assert.Equal(t, "alpha", env.Content("c.txt"))
	assert.Equal(t, "beta", env.Content("d.txt"))
}

func TestExecuteStopsAtFirstFailure(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)
	env.File("a.txt", "alpha")
	env.File("b.txt", "beta")
	env.File("c.txt", "gamma")

	failFS := testutil.NewFailFS(env.FS)
	failFS.FailRename = env.Path("b.txt")

	p := preparedPlan(t, env, [][2]string{
		{"a.txt", "x.txt"},
		{"b.txt", "y.txt"},
		{"c.txt", "z.txt"},
	}, plan.Options{FS: failFS})

	result, err := Execute(p)
	require.Error(t, err)
	assert.Equal(t, errors.ErrRenameFailed, errors.GetErrorCode(err))

	// The cursor points at the failed pair; everything after it was
	// never attempted.
	assert.Equal(t, 1, result.Renamed)
	assert.True(t, result.Failed)
	assert.False(t, result.Completed)
	assert.Equal(t, 1, result.Cursor)

	assert.True(t, env.Exists("x.txt"))
	assert.True(t, env.Exists("b.txt"))
	assert.True(t, env.Exists("c.txt"))
	assert.False(t, env.Exists("z.txt"))

	active := p.Active()
	assert.Equal(t, plan.OutcomeRenamed, active[0].Outcome)
	assert.Equal(t, plan.OutcomeFailed, active[1].Outcome)
	assert.Equal(t, plan.OutcomeNotAttempted, active[2].Outcome)
}

func TestExecuteClobberFile(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)
	env.File("a.txt", "fresh")
	env.File("taken.txt", "stale")

	p := preparedPlan(t, env, [][2]string{
		{"a.txt", "taken.txt"},
	}, plan.Options{Controls: problems.Controls{Resolve: []string{"exists"}}})

	result, err := Execute(p)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, "fresh", env.Content("taken.txt"))
	assert.False(t, env.Exists("a.txt"))
}

func TestExecuteClobberNonEmptyDir(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)
	env.Dir("new")
	env.File("new/inner.txt", "x")
	env.Dir("old")
	env.File("old/keep.txt", "k")

	p := preparedPlan(t, env, [][2]string{
		{"old", "new"},
	}, plan.Options{Controls: problems.Controls{Resolve: []string{"exists-full"}}})

	result, err := Execute(p)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, "k", env.Content("new/keep.txt"))
	assert.False(t, env.Exists("new/inner.txt"))
	assert.False(t, env.Exists("old"))
}

func TestExecuteCreatesParent(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)
	env.File("a.txt", "alpha")

	p := preparedPlan(t, env, [][2]string{
		{"a.txt", "nested/deep/a.txt"},
	}, plan.Options{Controls: problems.Controls{Resolve: []string{"parent"}}})

	result, err := Execute(p)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, "alpha", env.Content("nested/deep/a.txt"))
}

func TestExecuteUnrequestedClobberGuard(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)
	env.File("a.txt", "alpha")

	p := preparedPlan(t, env, [][2]string{
		{"a.txt", "b.txt"},
	}, plan.Options{})
	require.True(t, p.OK())

	// The destination gets occupied between validation and execution.
	env.File("b.txt", "sniped")

	result, err := Execute(p)
	require.Error(t, err)
	assert.Equal(t, errors.ErrRenameFailed, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "would clobber")
	assert.Equal(t, 0, result.Renamed)
	assert.Equal(t, "sniped", env.Content("b.txt"))
	assert.True(t, env.Exists("a.txt"))
}

func TestExecuteThenReplanIsNoop(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)
	env.File("a.txt", "alpha")
	env.File("b.txt", "beta")

	pairs := [][2]string{
		{"a.txt", "c.txt"},
		{"b.txt", "d.txt"},
	}
	p := preparedPlan(t, env, pairs, plan.Options{})

	result, err := Execute(p)
	require.NoError(t, err)
	require.True(t, result.Completed)

	// Replaying the batch against its own output must produce nothing
	// to do: every pair is now original == new.
	replay := preparedPlan(t, env, [][2]string{
		{"c.txt", "c.txt"},
		{"d.txt", "d.txt"},
	}, plan.Options{})

	assert.Empty(t, replay.Active())
	assert.False(t, replay.OK())
	excluded := replay.Excluded()
	require.Len(t, excluded, 2)
	for _, rn := range excluded {
		assert.Equal(t, "noop-equal", rn.Problem.ID())
	}
}

func TestExecuteTwiceFails(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)
	env.File("a.txt", "alpha")

	p := preparedPlan(t, env, [][2]string{
		{"a.txt", "b.txt"},
	}, plan.Options{})

	_, err := Execute(p)
	require.NoError(t, err)

	_, err = Execute(p)
	require.Error(t, err)
	assert.Equal(t, errors.ErrRenameDone, errors.GetErrorCode(err))
}

func TestExecuteNotOKPlan(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)

	p := preparedPlan(t, env, [][2]string{
		{"ghost.txt", "g.txt"},
	}, plan.Options{})

	result, err := Execute(p)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, errors.ErrPlanFailed, errors.GetErrorCode(err))
}

func TestExecuteSummaryAfterRun(t *testing.T) {
	env := testutil.NewEnv(t, testutil.EnvMemoryOnly)
	env.File("a.txt", "alpha")
	env.File("taken.txt", "x")
	env.File("b.txt", "beta")

	p := preparedPlan(t, env, [][2]string{
		{"a.txt", "fresh.txt"},
		{"b.txt", "taken.txt"}, // skipped: exists
	}, plan.Options{})

	_, err := Execute(p)
	require.NoError(t, err)

	s := p.Summary()
	assert.Equal(t, 1, s.NRenamed)
	assert.Equal(t, 0, s.NFailed)
	assert.Equal(t, 1, s.NNotAttempted)
}
