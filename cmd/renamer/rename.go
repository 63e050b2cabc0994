package renamer

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/renamer/pkg/display"
	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/execution"
	"github.com/arthur-debert/renamer/pkg/history"
	"github.com/arthur-debert/renamer/pkg/inputs"
	"github.com/arthur-debert/renamer/pkg/pathinfo"
	"github.com/arthur-debert/renamer/pkg/plan"
	"github.com/arthur-debert/renamer/pkg/problems"
	"github.com/arthur-debert/renamer/pkg/rules"
)

// runRename drives the full pipeline: gather inputs, build and prepare
// the plan, show it, and unless this is a diagnosis-only run, confirm
// and execute.
func runRename(cmd *cobra.Command, args []string, opts *renameOpts, planOnly bool) error {
	if _, err := applySettings(cmd, opts); err != nil {
		return err
	}

	format, err := display.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	format = format.Resolve(os.Stdout)

	p, err := buildPlan(args, opts)
	if err != nil {
		return err
	}
	p.Prepare()

	summary := p.Summary()
	out, err := display.Render(summary, format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	if failures := display.RenderFailures(summary, format); failures != "" {
		fmt.Fprint(cmd.ErrOrStderr(), failures)
	}

	if planOnly || opts.dryRun {
		if opts.dryRun {
			fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
		}
		if !summary.OK {
			return errors.New(errors.ErrPlanFailed, "the renaming plan is not executable")
		}
		return nil
	}

	if !summary.OK {
		return errors.New(errors.ErrPlanFailed, "the renaming plan is not executable")
	}
	if summary.NActive == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), MsgNothingToDo)
		return nil
	}

	if !opts.yes {
		question := fmt.Sprintf("Rename %d file(s)?", summary.NActive)
		ok, err := display.Confirm(question, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), MsgAborted)
			return nil
		}
	}

	result, execErr := execution.Execute(p)
	if result == nil {
		return execErr
	}
	run := history.Run{
		Timestamp: time.Now(),
		Summary:   p.Summary(),
		Cursor:    result.Cursor,
		Completed: result.Completed,
	}
	if execErr != nil {
		run.Error = execErr.Error()
	}
	if _, err := history.NewStore("").Save(run); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	if execErr != nil {
		active := p.Active()
		stopped := ""
		if result.Cursor >= 0 && result.Cursor < len(active) {
			stopped = active[result.Cursor].Original.Full
		}
		fmt.Fprintf(cmd.OutOrStdout(), MsgPartialFormat, result.Renamed, stopped)
		return execErr
	}
	fmt.Fprintf(cmd.OutOrStdout(), MsgRenamedFormat, result.Renamed)
	return nil
}

// buildPlan assembles plan options from the CLI surface.
func buildPlan(args []string, opts *renameOpts) (*plan.Plan, error) {
	structure, err := inputs.ParseStructure(opts.structure)
	if err != nil {
		return nil, err
	}

	var lines []string
	switch {
	case len(args) > 0:
		lines = args
	case opts.clipboard:
		lines, err = inputs.FromClipboard()
	case opts.file != "":
		lines, err = inputs.FromFile(opts.file)
	default:
		lines, err = inputs.FromReader(os.Stdin)
	}
	if err != nil {
		return nil, err
	}

	haveRule := opts.template != ""
	origs, news, err := inputs.Parse(lines, structure, haveRule)
	if err != nil {
		return nil, err
	}

	var computer rules.NewPathComputer
	if haveRule {
		computer, err = rules.NewTemplate(opts.template)
		if err != nil {
			return nil, err
		}
	} else {
		computer = rules.NewExplicitList(news)
	}

	filter, err := buildFilter(opts)
	if err != nil {
		return nil, err
	}

	planOpts := plan.Options{
		Originals: origs,
		Computer:  computer,
		Filter:    filter,
		Controls: problems.Controls{
			Resolve: opts.resolve,
			Strict:  opts.strict,
		},
		AllowCaseRename: opts.allowCaseRename,
		SeqStart:        opts.seqStart,
		SeqStep:         opts.seqStep,
	}

	switch opts.caseMode {
	case "", "detect":
		planOpts.DetectCase = true
	default:
		mode, err := pathinfo.ParseCaseMode(opts.caseMode)
		if err != nil {
			return nil, err
		}
		planOpts.CaseMode = mode
	}

	return plan.New(planOpts)
}

// buildFilter combines the include and exclude patterns.
func buildFilter(opts *renameOpts) (rules.Filter, error) {
	var include, exclude rules.Filter
	var err error

	if opts.filter != "" {
		include, err = rules.NewPatternFilter(opts.filter, true)
		if err != nil {
			return nil, err
		}
	}
	if opts.exclude != "" {
		exclude, err = rules.NewPatternFilter(opts.exclude, false)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case include == nil:
		return exclude, nil
	case exclude == nil:
		return include, nil
	default:
		return rules.FilterFunc(func(orig pathinfo.PathInfo, seq int) (bool, error) {
			keep, err := include.Keep(orig, seq)
			if err != nil || !keep {
				return keep, err
			}
			return exclude.Keep(orig, seq)
		}), nil
	}
}
