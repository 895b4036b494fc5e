// Package tui renders scan reports for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eventlint/eventlint/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Bold(true).Foreground(success)
	failStyle     = lipgloss.NewStyle().Bold(true).Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fieldStyle    = lipgloss.NewStyle().Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderReport renders a full scan report. Issues keep engine order: rule
// family first, then configured/document order within a family.
func RenderReport(report *domain.ScanReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("eventlint")
	subtitle := dimStyle.Render("Event Quality Scan")
	verdict := passStyle.Render("PASS")
	if !report.Result.Passed {
		verdict = failStyle.Render("FAIL")
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	// ── Metadata ──
	if report.Event != "" {
		b.WriteString("  " + dimStyle.Render("event: ") + fieldStyle.Render(report.Event) + "\n")
	}
	if report.CommitHash != "" {
		b.WriteString("  " + dimStyle.Render("commit: ") + faintStyle.Render(shortHash(report.CommitHash)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Issues ──
	issues := report.Result.Issues
	if len(issues) == 0 {
		// The zero-findings state is rendered explicitly, not as empty output.
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	if report.Errors > 0 {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", report.Errors)))
		b.WriteString("  ")
	}
	if report.Warnings > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", report.Warnings)))
	}
	b.WriteString("\n\n")

	lastCategory := ""
	for _, issue := range issues {
		if issue.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			b.WriteString("  " + titleStyle.Render(issue.Category) + "\n")
			lastCategory = issue.Category
		}
		renderIssue(&b, issue)
	}

	return b.String()
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := severityTag(issue.Severity)
	fmt.Fprintf(b, "    %s %s\n", tag, dimStyle.Render(issue.Message))
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	default:
		return warnTagStyle.Render("warn ")
	}
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
