package renamer

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Bulk file renaming with upfront validation"
	MsgPlanShort      = "Diagnose a renaming batch without executing it"
	MsgRunsShort      = "List recorded renaming runs"
	MsgRunsLong       = "Runs lists previously executed renaming batches, newest last, with their tracking cursor so a partial batch can be diagnosed."
	MsgVersionShort   = "Print version information"
	MsgGenConfigShort = "Print a starter configuration file"
	MsgGenConfigLong  = "Gen-config prints a renamer.toml with every setting present but commented out, documenting the built-in defaults."
	MsgProblemsShort  = "Explain the problem taxonomy"

	// Status messages
	MsgDryRunNotice  = "\nDRY RUN - no files were renamed"
	MsgNothingToDo   = "Nothing to rename."
	MsgAborted       = "Aborted."
	MsgRenamedFormat = "\nRenamed %d file(s).\n"
	MsgPartialFormat = "\nRenamed %d file(s); stopped at %s.\n"
	MsgNoRuns        = "No runs recorded."
	MsgRunItem       = "  %s  cursor=%d  completed=%v\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrReadInput  = "failed to read input paths: %w"
	MsgErrBadPlan    = "the renaming plan is not executable: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Show the plan without renaming anything"
	MsgFlagYes        = "Skip the confirmation prompt"
	MsgFlagFile       = "Read input paths from a file"
	MsgFlagClipboard  = "Read input paths from the clipboard"
	MsgFlagStructure  = "Input structure: flat, pairs, rows, or paragraphs"
	MsgFlagTemplate   = "Compute new paths with a template instead of reading them"
	MsgFlagFilter     = "Only rename paths matching this regular expression"
	MsgFlagExclude    = "Do not rename paths matching this regular expression"
	MsgFlagResolve    = "Resolve these problems instead of skipping (IDs or 'all')"
	MsgFlagStrict     = "Fail the whole plan on these conditions ('excluded', categories, 'all')"
	MsgFlagCaseRename = "Allow pure case renames on case-insensitive filesystems"
	MsgFlagCaseMode   = "Case handling: detect, sensitive, insensitive, preserving"
	MsgFlagSeqStart   = "First value of the {{.Seq}} template variable"
	MsgFlagSeqStep    = "Step between {{.Seq}} values"
	MsgFlagFormat     = "Output format: auto, term, text, yaml, json"
	MsgFlagConfig     = "Path to the configuration file"
	MsgFlagWrite      = "Write the config to its default location instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/problems.md
	msgProblemsDoc string
)
