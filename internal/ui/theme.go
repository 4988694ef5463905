package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Hint      lipgloss.Style
	Cursor    lipgloss.Style
	Empty     lipgloss.Style
	Overlay   lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	StatusBar lipgloss.Style
}

var DefaultTheme = Theme{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:     lipgloss.NewStyle().Bold(true),
	Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Cursor:    lipgloss.NewStyle().Reverse(true),
	Empty:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#45475A")),
	Overlay:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#11111B")),
	Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	StatusBar: lipgloss.NewStyle().Faint(true),
}
