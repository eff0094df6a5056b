// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talenthub/internal/analytics"
	"github.com/jonathan/talenthub/internal/screening"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScreeningSummary outputs a human-readable summary of a screening pass:
// the effective criteria, the tier counts and a sample of each bucket.
func (p *Printer) PrintScreeningSummary(result *screening.FilterResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	req := result.Requirements
	if req.Qualification != "" {
		sb.WriteString(fmt.Sprintf("Qualification:  %s\n", req.Qualification))
	}
	sb.WriteString(fmt.Sprintf("Experience:     %d-%d years\n", req.Experience.Min, req.Experience.Max))
	if req.Gender != "" {
		sb.WriteString(fmt.Sprintf("Gender:         %s\n", req.Gender))
	}
	if len(req.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages:      %s\n", joinTruncated(req.Languages, 40)))
	}
	if len(req.TechnicalSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Tech skills:    %s\n", joinTruncated(req.TechnicalSkills, 40)))
	}
	if len(req.SoftSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Soft skills:    %s\n", joinTruncated(req.SoftSkills, 40)))
	}
	sb.WriteString("\n")

	total := len(result.Qualified) + len(result.Overqualified) + len(result.Underqualified) + len(result.Rejected)
	sb.WriteString(fmt.Sprintf("Screened %d applications:\n", total))
	sb.WriteString(fmt.Sprintf("  Qualified:      %d\n", len(result.Qualified)))
	sb.WriteString(fmt.Sprintf("  Overqualified:  %d\n", len(result.Overqualified)))
	sb.WriteString(fmt.Sprintf("  Underqualified: %d\n", len(result.Underqualified)))
	sb.WriteString(fmt.Sprintf("  Rejected:       %d\n", len(result.Rejected)))
	if len(result.Probable) > 0 {
		sb.WriteString(fmt.Sprintf("  Probable:       %d\n", len(result.Probable)))
	}

	if len(result.Qualified) > 0 {
		sb.WriteString("\nQualified:\n")
		count := min(len(result.Qualified), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := result.Qualified[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.ApplicationID))
			if entry.Applicant.Resume.HighestQualification != "" {
				sb.WriteString(fmt.Sprintf(" (%s, %dy)",
					entry.Applicant.Resume.HighestQualification,
					entry.Applicant.Resume.TotalExperience))
			}
			sb.WriteString("\n")
		}
		if len(result.Qualified) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Qualified)-maxItemsToShow))
		}
	}

	p.printBox("SCREENING RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTurnover outputs a turnover report.
func (p *Printer) PrintTurnover(report *analytics.TurnoverReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Window:           %s to %s\n",
		report.From.Format("2006-01-02"), report.To.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Start headcount:  %d\n", report.StartHeadcount))
	sb.WriteString(fmt.Sprintf("End headcount:    %d\n", report.EndHeadcount))
	sb.WriteString(fmt.Sprintf("Left:             %d\n", report.Left))
	if report.RateDefined {
		sb.WriteString(fmt.Sprintf("Turnover rate:    %.2f%%", report.Rate))
	} else {
		sb.WriteString("Turnover rate:    n/a (no headcount)")
	}

	p.printBox("TURNOVER REPORT", sb.String())
}

// joinTruncated joins names with a length cap for box lines.
func joinTruncated(names []string, limit int) string {
	joined := strings.Join(names, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}
