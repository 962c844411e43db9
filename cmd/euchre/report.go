package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/euchre/internal/statistics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

func printResults(w io.Writer, stats *statistics.Statistics, matchup string, duration time.Duration) {
	mean := stats.Mean()
	stdErr := stats.StdError()
	low, high := stats.ConfidenceInterval95()

	section(w, "FINAL RESULTS: "+matchup)
	fmt.Fprintf(w, "Matches played: %d\n", stats.Matches)
	fmt.Fprintf(w, "Hands dealt: %d (%.1f per match, %d-%d)\n",
		stats.Hands, stats.AverageHands(), stats.ShortestMatch, stats.LongestMatch)
	fmt.Fprintf(w, "Total time: %v\n", duration.Round(time.Millisecond))
	if secs := duration.Seconds(); secs > 0 {
		fmt.Fprintf(w, "Performance: %.1f matches/sec\n", float64(stats.Matches)/secs)
	}

	section(w, "WIN RATE")
	for team := range 2 {
		fmt.Fprintf(w, "Team %d: %d wins (%.1f%%)\n", team+1, stats.Teams[team].Wins, stats.WinRate(team)*100)
	}

	section(w, "POINT DIFFERENTIAL (team 1)")
	fmt.Fprintf(w, "Mean: %.3f points/match\n", mean)
	fmt.Fprintf(w, "Median: %.3f points/match\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.3f\n", stats.StdDev())
	fmt.Fprintf(w, "Std Error: %.3f\n", stdErr)
	fmt.Fprintf(w, "95%% CI: [%.3f, %.3f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	section(w, "HOW POINTS WERE SCORED")
	fmt.Fprintf(w, "%-8s %6s %6s %6s %6s %6s %6s %7s\n", "", "calls", "made", "march", "lone", "euchre", "lone-e", "points")
	for team := range 2 {
		t := stats.Teams[team]
		fmt.Fprintf(w, "%-8s %6d %6d %6d %6d %6d %6d %7d\n", fmt.Sprintf("Team %d", team+1),
			t.Calls, t.Made, t.Marches, t.LoneMarches, t.Euchres, t.LoneEuchres, t.Points)
	}

	section(w, "SIGNIFICANCE")
	edge := mean - 1.96*stdErr
	fmt.Fprintf(w, "Team 1 stronger: (mean - 1.96*se) > 0: %.3f %s\n", edge, passFailString(edge > 0))
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", sectionStyle.Render("=== "+title+" ==="))
}

func passFailString(passed bool) string {
	if passed {
		return passStyle.Render("✓ YES")
	}
	return failStyle.Render("✗ NO")
}
