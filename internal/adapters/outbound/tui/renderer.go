package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/artcheck/artcheck/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
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
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	articleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a validation report for terminal output.
func RenderReport(report *domain.ValidationReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("artcheck")
	subtitle := dimStyle.Render("Artifact Compliance Report")
	scoreLine := fmt.Sprintf("%.2f / 1.00", report.Summary.OverallScore)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(verdictColor(report.Verdict)).
		Render(scoreLine)
	verdictStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(verdictColor(report.Verdict)).
		Render(string(report.Verdict))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + verdictStyled))
	b.WriteString("\n\n")

	target := shortenPath(report.Target.Path)
	if report.Target.Commit != "" {
		target += "  " + faintStyle.Render("@"+shortHash(report.Target.Commit))
	}
	b.WriteString("  " + dimStyle.Render(target) + "\n\n")

	// ── Articles ──
	for _, a := range report.Assessments {
		renderAssessment(&b, a)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Remediation ──
	if len(report.Remediation) > 0 {
		b.WriteString("  " + titleStyle.Render("Remediation") + "\n\n")
		for _, item := range report.Remediation {
			renderRemediation(&b, item)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No remediation required.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + summaryLine(report.Summary) + "\n")
	return b.String()
}

func renderAssessment(b *strings.Builder, a domain.RuleAssessment) {
	scoreText := lipgloss.NewStyle().
		Bold(true).
		Foreground(statusColor(a.Status)).
		Render(fmt.Sprintf("%.2f", a.Score))
	bar := coloredBar(a.Score, 20)
	id := dimStyle.Render(a.ArticleID)

	name := articleStyle.Render(padRight(a.Title, 24))
	fmt.Fprintf(b, "  %s %s  %s %s\n", name, bar, scoreText, id)

	for _, c := range a.Checks {
		renderCheck(b, c)
	}
}

func renderCheck(b *strings.Builder, c domain.CheckResult) {
	name := padRight(c.Check, 30)

	var icon string
	switch c.Status {
	case domain.StatusPass:
		icon = passStyle.Render("●")
	case domain.StatusWarning:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	if c.Status == domain.StatusPass {
		fmt.Fprintf(b, "    %s %s\n", icon, dimStyle.Render(name))
		return
	}
	fmt.Fprintf(b, "    %s %s %s\n", icon, name, faintStyle.Render(c.Detail))
}

func renderRemediation(b *strings.Builder, item domain.RemediationItem) {
	tag := priorityTag(item.Priority)
	effort := infoTagStyle.Render(string(item.Effort))

	fmt.Fprintf(b, "    %s %s %s\n", tag, dimStyle.Render(item.ArticleID), effort)
	fmt.Fprintf(b, "         %s\n", dimStyle.Render(item.Violation))
	fmt.Fprintf(b, "         %s\n", faintStyle.Render(item.Recommendation))
}

func priorityTag(p domain.Priority) string {
	if p == domain.PriorityHigh {
		return errorTagStyle.Render("high")
	}
	return warnStyle.Render("med ")
}

func summaryLine(s domain.ValidationSummary) string {
	parts := []string{
		passStyle.Render(fmt.Sprintf("%d passed", s.PassedArticles)),
	}
	if s.FailedArticles > 0 {
		parts = append(parts, failStyle.Render(fmt.Sprintf("%d failed", s.FailedArticles)))
	}
	if s.WarningArticles > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%d warnings", s.WarningArticles)))
	}
	if len(s.ToolsUsed) > 0 {
		parts = append(parts, faintStyle.Render("tools: "+strings.Join(s.ToolsUsed, ", ")))
	}
	return strings.Join(parts, "  ")
}

func coloredBar(score float64, width int) string {
	filled := max(0, min(int(score*float64(width)), width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func statusColor(status domain.Status) lipgloss.Color {
	switch status {
	case domain.StatusPass:
		return success
	case domain.StatusWarning:
		return warning
	default:
		return danger
	}
}

func verdictColor(v domain.Verdict) lipgloss.Color {
	if v == domain.VerdictPass {
		return success
	}
	return danger
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 0.8:
		return success
	case score >= 0.6:
		return lipgloss.Color("#A3E635") // lime
	case score >= 0.4:
		return warning
	default:
		return danger
	}
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
