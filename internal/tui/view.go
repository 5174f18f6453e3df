package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/contribgo/internal/output"
	"github.com/rgehrsitz/contribgo/internal/tui/components"
)

// View implements tea.Model
func (m Model) View() string {
	var content string
	switch {
	case m.err != nil:
		content = ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress q to quit.", m.err))
	case m.loading || m.report == nil:
		content = BorderStyle.Render("⠋ Calculating plan...")
	default:
		content = m.renderPlan()
	}

	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		"",
		content,
		"",
		m.help.View(m.keys),
	))
}

// renderTitleBar renders the application title and the profile in use
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("contrib - paycheck contribution planner")
	sub := "profile"
	if m.report != nil {
		if m.report.ProfileName != "" {
			sub = m.report.ProfileName
		}
		sub = fmt.Sprintf("%s • goal %s (%s)", sub, FormatCurrency(m.report.Goal), output.GoalLabel(m.report))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(sub))
}

// renderPlan renders the cards, progress bar and slider
func (m Model) renderPlan() string {
	r := m.report
	plan := r.Plan

	periods := fmt.Sprintf("%d of %d", r.RemainingPeriods, r.TotalPeriods)
	if r.PeriodsEstimated {
		periods += " (est.)"
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Required rate", output.DisplayPercent(plan.RequiredPercent)),
		components.NewMetricCard("Per paycheck", FormatCurrency(plan.PerCheck)),
		components.NewMetricCard("Remaining to goal", FormatCurrency(plan.RemainingAmount)),
		components.NewMetricCard("Paychecks left", periods).
			WithDescription(FormatCurrency(plan.RemainingGrossPay) + " gross"),
	}

	columns := 4
	if m.width < 110 {
		columns = 2
	}

	var sb strings.Builder
	sb.WriteString(components.MetricGrid(cards, columns))
	sb.WriteString("\n\n")
	sb.WriteString(components.NewGoalProgress(r.YTD, r.Goal).WithLabel("Year to date").Render())
	sb.WriteString("\n\n")

	if plan.GoalMet() {
		sb.WriteString(InfoStyle.Render("Goal already met for this year."))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.slider.Render())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderScenario())
	return sb.String()
}

// renderScenario renders the projection for the slider's rate
func (m Model) renderScenario() string {
	s := m.scenario
	var diffText string
	switch output.Outcome(s.Diff) {
	case "short":
		diffText = FormatCurrency(s.Diff.Abs()) + " short of goal"
	case "on target":
		diffText = "exactly on target"
	default:
		diffText = FormatCurrency(s.Diff) + " over goal"
	}

	return components.MetricGrid([]*components.MetricCard{
		components.NewMetricCard("Contributed from now", FormatCurrency(s.ContributionFromNow)),
		components.NewMetricCard("Year-end total", FormatCurrency(s.TotalYearEnd)).
			WithOutcome(s.Diff, diffText),
	}, 2)
}
