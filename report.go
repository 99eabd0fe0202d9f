package main

import (
	"fmt"
	"strings"

	"slidedeck/export"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(10)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func field(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// renderReport formats a successful run for the terminal.
func renderReport(res *Result) string {
	var b strings.Builder
	b.WriteString(successStyle.Render("Presentation saved"))
	b.WriteString("\n")
	b.WriteString(field("File", res.OutputPath))
	b.WriteString("\n")
	b.WriteString(field("Slides", fmt.Sprintf("%d", res.SlideCount)))
	if res.Verified {
		b.WriteString("\n")
		b.WriteString(field("Verified", "yes"))
	}
	for _, w := range res.Warnings {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(fmt.Sprintf("slide %d: %s extends past the page", w.Slide+1, w.Shape)))
	}
	return b.String()
}

// renderFailure formats a persistence failure for the terminal.
func renderFailure(err *export.ServiceError) string {
	var b strings.Builder
	b.WriteString(failureStyle.Render("Presentation not saved"))
	b.WriteString("\n")
	b.WriteString(field("File", err.Path))
	b.WriteString("\n")
	b.WriteString(field("Error", err.Err.Error()))
	return b.String()
}
