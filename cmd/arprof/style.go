package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arprax/algos/profiler"
)

// Arprax terminal palette - amber instrumentation on a dark bench.
var (
	colorAmber  = lipgloss.Color("#FFB454") // headings, brand
	colorGreen  = lipgloss.Color("#7FD962") // healthy growth classes
	colorYellow = lipgloss.Color("#E6B450") // polynomial warnings
	colorRed    = lipgloss.Color("#F07178") // exponential blowups
	colorSlate  = lipgloss.Color("#565B66") // muted, inconclusive
)

// styles holds the pre-built lipgloss styles shared by all commands.
var styles = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAmber),
	Muted:   lipgloss.NewStyle().Foreground(colorSlate),
	Success: lipgloss.NewStyle().Foreground(colorGreen),
	Warning: lipgloss.NewStyle().Foreground(colorYellow),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(colorRed),
}

// classStyle picks a severity color for a complexity class: green up
// to O(N log N), yellow for the polynomial classes, red for
// exponential, slate for inconclusive.
func classStyle(c profiler.Class) lipgloss.Style {
	switch {
	case c == profiler.ClassInconclusive:
		return styles.Muted
	case c <= profiler.ClassLinearithmic:
		return styles.Success
	case c <= profiler.ClassCubic:
		return styles.Warning
	default:
		return styles.Error
	}
}
