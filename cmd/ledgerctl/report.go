package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-ledger/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

const barWidth = 20

var (
	primary = lipgloss.Color("#8B5CF6")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#F43F5E")
	dim     = lipgloss.Color("#94A3B8")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary)
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	gradeStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(primary)
	barStyle     = lipgloss.NewStyle().Foreground(success)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim).Padding(1, 2)

	trendStyles = map[analytics.Trend]lipgloss.Style{
		analytics.TrendImproving: lipgloss.NewStyle().Foreground(success),
		analytics.TrendDeclining: lipgloss.NewStyle().Foreground(danger),
		analytics.TrendStable:    dimStyle,
	}
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the feedback report of a ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, _ := cmd.Flags().GetString("identity")

			db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			ledger, err := repository.NewSQLLedgerRepository(db).Load(cmd.Context(), identity)
			if err != nil && !errors.Is(err, domain.ErrLedgerNotFound) {
				return err
			}

			report := analytics.GenerateFeedback(ledger)
			streak := analytics.Streaks(ledger, domain.Today(time.Now(), time.UTC))

			_, err = lipgloss.Fprintln(cmd.OutOrStdout(), renderReport(identity, report, streak))
			return err
		},
	}

	identityFlag(cmd)
	return cmd
}

func renderReport(identity string, r analytics.Report, streak analytics.StreakSummary) string {
	var sections []string

	sections = append(sections,
		lipgloss.JoinHorizontal(lipgloss.Center,
			gradeStyle.Render(r.Overall.Grade), "  ",
			lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Render(identity),
				dimStyle.Render(r.Overall.Message),
			),
		),
		dimStyle.Render(fmt.Sprintf("study time %d min · consistency %d%% · streak %d (best %d)",
			r.Overall.StudyTime, r.Overall.Consistency, streak.Current, streak.Longest)),
	)

	sections = append(sections, headingStyle.Render("Skills"))
	for _, t := range r.Trends {
		sections = append(sections, skillLine(t))
	}

	sections = append(sections, list("Strengths", r.Strengths)...)
	sections = append(sections, list("Needs work", r.Improvements)...)
	sections = append(sections, list("Recommendations", r.Recommendations)...)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func skillLine(t analytics.SkillTrend) string {
	filled := t.Current * barWidth / analytics.RadarFullMark
	bar := barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barWidth-filled))

	trend := trendStyles[t.Trend].Render(fmt.Sprintf("%s %+.1f", t.Trend, t.Improvement))
	return fmt.Sprintf("%-14s %s %3d  %s", t.Module, bar, t.Current, trend)
}

func list(title string, items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := []string{headingStyle.Render(title)}
	for _, item := range items {
		out = append(out, "• "+item)
	}
	return out
}
