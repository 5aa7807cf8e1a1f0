package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"dailyq/internal/pipeline"
	"dailyq/internal/question"
)

// summaryStyles colors the report lines; every style is a no-op in plain mode.
type summaryStyles struct {
	plain     lipgloss.Style
	title     lipgloss.Style
	label     lipgloss.Style
	ok        lipgloss.Style
	warning   lipgloss.Style
	rejection lipgloss.Style
}

func newSummaryStyles(w io.Writer, color bool) summaryStyles {
	renderer := lipgloss.NewRenderer(w)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return summaryStyles{
		plain:     renderer.NewStyle(),
		title:     renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		label:     renderer.NewStyle().Foreground(lipgloss.Color("242")),
		ok:        renderer.NewStyle().Foreground(lipgloss.Color("35")),
		warning:   renderer.NewStyle().Foreground(lipgloss.Color("214")),
		rejection: renderer.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// writeSummary prints the run report followed by every diagnostic.
func writeSummary(w io.Writer, report pipeline.Report, color bool) {
	styles := newSummaryStyles(w, color)
	fmt.Fprintln(w, styles.title.Render("dailyq run "+report.RunID))
	fmt.Fprintf(w, "%s %s (%d elements)\n", styles.label.Render("Input:"), report.InputPath, report.Input)
	fmt.Fprintf(w, "%s %s  %s  %s  %s\n",
		styles.label.Render("Questions:"),
		styles.ok.Render(fmt.Sprintf("%d valid", report.Valid)),
		styles.count(styles.rejection, report.Rejected).Render(fmt.Sprintf("%d rejected", report.Rejected)),
		styles.count(styles.warning, report.Warnings).Render(fmt.Sprintf("%d warnings", report.Warnings)),
		styles.count(styles.warning, report.Clamped).Render(fmt.Sprintf("%d clamped", report.Clamped)),
	)
	fmt.Fprintf(w, "%s %d of %d used, %d-%d per bucket\n",
		styles.label.Render("Buckets:"), report.Buckets, report.BucketCount, report.MinPerBucket, report.MaxPerBucket)
	if report.DryRun {
		fmt.Fprintf(w, "%s %s not written (%d bytes)\n", styles.label.Render("Dry run:"), report.OutputPath, report.Bytes)
	} else {
		fmt.Fprintf(w, "%s %s (%d bytes)\n", styles.label.Render("Wrote:"), report.OutputPath, report.Bytes)
	}
	if len(report.Diagnostics) == 0 {
		return
	}
	fmt.Fprintln(w, styles.label.Render("Diagnostics:"))
	for _, diag := range report.Diagnostics {
		style := styles.warning
		if diag.Severity == question.SeverityRejection {
			style = styles.rejection
		}
		fmt.Fprintf(w, "  %s\n", style.Render(diag.String()))
	}
}

// count keeps zero counts unstyled.
func (s summaryStyles) count(style lipgloss.Style, n int) lipgloss.Style {
	if n == 0 {
		return s.plain
	}
	return style
}
