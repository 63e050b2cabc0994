package renamer

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/renamer/internal/version"
	"github.com/arthur-debert/renamer/pkg/config"
	"github.com/arthur-debert/renamer/pkg/logging"
)

// renameOpts holds the flag surface shared by the root rename flow and
// the plan subcommand.
type renameOpts struct {
	file      string
	clipboard bool
	structure string

	template string
	filter   string
	exclude  string

	resolve         []string
	strict          []string
	allowCaseRename bool
	caseMode        string

	seqStart int
	seqStep  int

	format     string
	dryRun     bool
	yes        bool
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		opts      renameOpts
	)

	rootCmd := &cobra.Command{
		Use:     "renamer [paths...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		// The root command takes paths directly and has subcommands,
		// so cobra's default unknown-subcommand check must be off.
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, &opts, false)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "o", "", MsgFlagFormat)

	addRenameFlags(rootCmd, &opts)
	rootCmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, MsgFlagYes)

	planCmd := &cobra.Command{
		Use:   "plan [paths...]",
		Short: MsgPlanShort,
		Long:  MsgPlanLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, &opts, true)
		},
	}
	addRenameFlags(planCmd, &opts)

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newProblemsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func addRenameFlags(cmd *cobra.Command, opts *renameOpts) {
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", MsgFlagFile)
	cmd.Flags().BoolVarP(&opts.clipboard, "clipboard", "c", false, MsgFlagClipboard)
	cmd.Flags().StringVarP(&opts.structure, "structure", "s", "", MsgFlagStructure)
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringVar(&opts.filter, "filter", "", MsgFlagFilter)
	cmd.Flags().StringVar(&opts.exclude, "exclude", "", MsgFlagExclude)
	cmd.Flags().StringSliceVarP(&opts.resolve, "resolve", "r", nil, MsgFlagResolve)
	cmd.Flags().StringSliceVar(&opts.strict, "strict", nil, MsgFlagStrict)
	cmd.Flags().BoolVar(&opts.allowCaseRename, "allow-case-rename", false, MsgFlagCaseRename)
	cmd.Flags().StringVar(&opts.caseMode, "case-mode", "", MsgFlagCaseMode)
	cmd.Flags().IntVar(&opts.seqStart, "seq-start", 0, MsgFlagSeqStart)
	cmd.Flags().IntVar(&opts.seqStep, "seq-step", 0, MsgFlagSeqStep)
}

// applySettings fills unset flags from the layered configuration.
func applySettings(cmd *cobra.Command, opts *renameOpts) (*config.Settings, error) {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	if !cmd.Flags().Changed("structure") {
		opts.structure = settings.Input.Structure
	}
	if !cmd.Flags().Changed("resolve") {
		opts.resolve = settings.Plan.Resolve
	}
	if !cmd.Flags().Changed("strict") {
		opts.strict = settings.Plan.Strict
	}
	if !cmd.Flags().Changed("allow-case-rename") {
		opts.allowCaseRename = settings.Plan.AllowCaseRename
	}
	if !cmd.Flags().Changed("case-mode") {
		opts.caseMode = settings.Plan.CaseMode
	}
	if !cmd.Flags().Changed("seq-start") {
		opts.seqStart = settings.Sequence.Start
	}
	if !cmd.Flags().Changed("seq-step") {
		opts.seqStep = settings.Sequence.Step
	}
	if opts.format == "" {
		opts.format = settings.Output.Format
	}
	return settings, nil
}
