package renamer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/renamer/internal/version"
	"github.com/arthur-debert/renamer/pkg/config"
	"github.com/arthur-debert/renamer/pkg/history"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "renamer version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: MsgRunsShort,
		Long:  MsgRunsLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := history.NewStore("").List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoRuns)
				return nil
			}
			for _, run := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), MsgRunItem,
					run.Timestamp.Format("2006-01-02 15:04:05"), run.Cursor, run.Completed)
			}
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateContent()
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			path := config.DefaultPath()
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newProblemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: MsgProblemsShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				fmt.Fprint(cmd.OutOrStdout(), msgProblemsDoc)
				return nil
			}
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), msgProblemsDoc)
				return nil
			}
			out, err := renderer.Render(msgProblemsDoc)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), msgProblemsDoc)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
