package commands

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#00ff9f")
	colorDim     = lipgloss.Color("#6e7681")
	colorWarning = lipgloss.Color("#F4D03F")
)

var reportStyles = struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Good    lipgloss.Style
	Bad     lipgloss.Style
	Muted   lipgloss.Style
	Summary lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
	Header: lipgloss.NewStyle().Bold(true).Width(16),
	Cell:   lipgloss.NewStyle().Width(16),
	Good:   lipgloss.NewStyle().Width(16).Foreground(colorPrimary),
	Bad:    lipgloss.NewStyle().Width(16).Foreground(colorWarning),
	Muted:  lipgloss.NewStyle().Foreground(colorDim),

	Summary: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 1),
}

func renderReport(w io.Writer, r benchReport) error {
	var b strings.Builder

	b.WriteString(reportStyles.Title.Render("cgraph bench"))
	b.WriteString(" ")
	b.WriteString(reportStyles.Muted.Render(r.Graph))
	b.WriteString("\n\n")

	b.WriteString(row(reportStyles.Header, "query", "runs", "compiled", "baseline", "speedup", "settled"))
	b.WriteString("\n")

	for _, res := range r.Results {
		speed := reportStyles.Good
		if res.Speedup() < 1 {
			speed = reportStyles.Bad
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			reportStyles.Cell.Render(res.Query.String()),
			reportStyles.Cell.Render(fmt.Sprint(res.Runs)),
			reportStyles.Cell.Render(res.Compiled.String()),
			reportStyles.Cell.Render(res.Baseline.String()),
			speed.Render(formatSpeedup(res.Speedup())),
			reportStyles.Cell.Render(fmt.Sprint(res.Settled)),
		))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	breakEven := "never"
	if r.BreakEven >= 0 {
		breakEven = fmt.Sprintf("%d queries", r.BreakEven)
	}
	b.WriteString(reportStyles.Summary.Render(fmt.Sprintf("compile:    %s\nbreak-even: %s", r.Compile, breakEven)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func row(style lipgloss.Style, cells ...string) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		rendered[i] = style.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func formatSpeedup(s float64) string {
	if math.IsInf(s, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.1fx", s)
}
