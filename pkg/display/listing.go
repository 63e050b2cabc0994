package display

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/plan"
	"github.com/arthur-debert/renamer/pkg/style"
)

// Render renders a plan summary in the given (already resolved) format.
func Render(s plan.Summary, format Format) (string, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode summary as YAML")
		}
		return string(data), nil
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to encode summary as JSON")
		}
		return string(data) + "\n", nil
	case FormatTerminal:
		return renderTerminal(s), nil
	default:
		return renderText(s), nil
	}
}

func renderTerminal(s plan.Summary) string {
	var b strings.Builder

	b.WriteString(style.TitleStyle.Render("Renaming plan") + "\n")
	writeSections(&b, s, true)
	b.WriteString(style.BoxStyle.Render(tally(s, true)) + "\n")
	return b.String()
}

func renderText(s plan.Summary) string {
	var b strings.Builder

	b.WriteString("Renaming plan\n\n")
	writeSections(&b, s, false)
	b.WriteString(tally(s, false) + "\n")
	return b.String()
}

func writeSections(b *strings.Builder, s plan.Summary, styled bool) {
	sections := []struct {
		title   string
		records []plan.Record
	}{
		{"Will rename", s.Active},
		{"Skipped", s.Skipped},
		{"Excluded", s.Excluded},
		{"Filtered out", s.Filtered},
	}
	for _, sec := range sections {
		if len(sec.records) == 0 {
			continue
		}
		if styled {
			b.WriteString(style.SubtitleStyle.Render(sec.title) + "\n")
		} else {
			b.WriteString(sec.title + ":\n")
		}
		for _, rec := range sec.records {
			if styled {
				b.WriteString("  " + style.RenderRecord(rec) + "\n")
			} else {
				b.WriteString("  " + plainRecord(rec) + "\n")
			}
		}
		b.WriteString("\n")
	}
}

func plainRecord(rec plan.Record) string {
	line := fmt.Sprintf("%s -> %s", rec.Original, rec.New)
	if rec.Problem != "" {
		line += fmt.Sprintf("  [%s] %s", rec.Problem, rec.ProblemMsg)
	}
	if rec.Outcome == string(plan.OutcomeFailed) {
		line += "  FAILED"
	}
	return line
}

func tally(s plan.Summary, styled bool) string {
	verdict := "not ok"
	if s.OK {
		verdict = "ok"
	}
	line := fmt.Sprintf(
		"%d path(s): %d to rename, %d filtered, %d skipped, %d excluded (%s, case %s)",
		s.NPaths, s.NActive, s.NFiltered, s.NSkipped, s.NExcluded, verdict, s.CaseMode)
	if s.NCreateParent > 0 {
		line += fmt.Sprintf("\n%d parent dir(s) to create", s.NCreateParent)
	}
	if s.NClobber > 0 {
		line += fmt.Sprintf("\n%d occupant(s) to clobber", s.NClobber)
	}
	if s.NRenamed+s.NFailed > 0 {
		line += fmt.Sprintf("\nexecuted: %d renamed, %d failed, %d not attempted",
			s.NRenamed, s.NFailed, s.NNotAttempted)
	}
	if !styled {
		return line
	}
	if s.OK {
		return style.SuccessStyle.Render(line)
	}
	return style.ErrorStyle.Render(line)
}

// RenderFailures renders the plan's failure reasons, one per line.
func RenderFailures(s plan.Summary, format Format) string {
	if len(s.Failures) == 0 {
		return ""
	}
	var b strings.Builder
	for _, f := range s.Failures {
		if format == FormatTerminal {
			b.WriteString(style.ErrorIndicator + " " + f + "\n")
		} else {
			b.WriteString("error: " + f + "\n")
		}
	}
	return b.String()
}
