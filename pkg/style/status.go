package style

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/renamer/pkg/plan"
)

// DispositionStyle returns the pterm style for a pair's disposition.
func DispositionStyle(d plan.Disposition) *pterm.Style {
	switch d {
	case plan.DispositionActive:
		return pterm.NewStyle(pterm.FgGreen)
	case plan.DispositionSkipped:
		return pterm.NewStyle(pterm.FgYellow)
	case plan.DispositionExcluded:
		return pterm.NewStyle(pterm.FgRed)
	case plan.DispositionFiltered:
		return pterm.NewStyle(pterm.FgGray)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}

// OutcomeStyle returns the pterm style for an executed pair's outcome.
func OutcomeStyle(o plan.Outcome) *pterm.Style {
	switch o {
	case plan.OutcomeRenamed:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case plan.OutcomeFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// DispositionIndicator returns the listing marker for a disposition.
func DispositionIndicator(d plan.Disposition) string {
	switch d {
	case plan.DispositionActive:
		return SuccessIndicator
	case plan.DispositionSkipped:
		return WarningIndicator
	case plan.DispositionExcluded:
		return ErrorIndicator
	case plan.DispositionFiltered:
		return PendingIndicator
	default:
		return InfoIndicator
	}
}

// RenderRecord renders one pair as a listing line.
func RenderRecord(rec plan.Record) string {
	marker := DispositionIndicator(plan.Disposition(rec.Disposition))

	line := fmt.Sprintf("%s %s -> %s", marker, rec.Original, rec.New)
	if rec.Problem != "" {
		line += "  " + MutedStyle.Render("["+rec.Problem+"]")
	}
	if rec.Outcome == string(plan.OutcomeFailed) {
		line += "  " + ErrorStyle.Render("FAILED")
	}
	return line
}
