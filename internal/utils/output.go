package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatQuiet   OutputFormat = "quiet"
)

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	return &RenderConfig{Format: FormatDefault, Width: width, Color: true}
}

// ActivityLine is one activity row for output formatting.
type ActivityLine struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	ColorHex string `json:"color"`
	Active   bool   `json:"active"`
	Current  int    `json:"current_streak,omitempty"`
	Longest  int    `json:"longest_streak,omitempty"`
}

// DayReport is a day's worth of activity lines.
type DayReport struct {
	Day   string         `json:"day"`
	Lines []ActivityLine `json:"activities"`
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Name      lipgloss.Style
	Checked   lipgloss.Style
	Unchecked lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func initStyles(color bool) *Styles {
	styles := &Styles{}

	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.Name = lipgloss.NewStyle().Bold(true)
		styles.Checked = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Unchecked = lipgloss.NewStyle().Faint(true)
		styles.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	} else {
		// Monochrome styles
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Meta = lipgloss.NewStyle()
		styles.Name = lipgloss.NewStyle().Bold(true)
		styles.Checked = lipgloss.NewStyle()
		styles.Unchecked = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Error = lipgloss.NewStyle()
	}

	return styles
}

// RenderDayReport renders a day's activity status in the configured format.
func (r *Renderer) RenderDayReport(report *DayReport) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(report)
	case FormatTable:
		return r.renderTable(report)
	case FormatQuiet:
		return r.renderQuiet(report)
	default:
		return r.renderDefault(report)
	}
}

func (r *Renderer) renderDefault(report *DayReport) (string, error) {
	var builder strings.Builder

	builder.WriteString(r.styles.Title.Render(report.Day))
	builder.WriteString("\n")
	builder.WriteString(r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 60))))
	builder.WriteString("\n")

	for _, line := range report.Lines {
		mark := r.styles.Unchecked.Render("[ ]")
		if line.Active {
			mark = r.styles.Checked.Render("[✓]")
		}
		nameStyle := r.styles.Name
		if r.config.Color && line.ColorHex != "" {
			nameStyle = nameStyle.Copy().Foreground(lipgloss.Color(line.ColorHex))
		}
		builder.WriteString(fmt.Sprintf("%s %s", mark, nameStyle.Render(line.Name)))
		if line.Current > 1 {
			builder.WriteString("  ")
			builder.WriteString(r.styles.Meta.Render(fmt.Sprintf("streak %d", line.Current)))
		}
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func (r *Renderer) renderJSON(report *DayReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func (r *Renderer) renderTable(report *DayReport) (string, error) {
	var builder strings.Builder

	builder.WriteString("Pos\tName\tColor\tDone\tStreak\tLongest\n")
	builder.WriteString(strings.Repeat("-", min(r.config.Width, 60)))
	builder.WriteString("\n")

	for _, line := range report.Lines {
		done := ""
		if line.Active {
			done = "✓"
		}
		builder.WriteString(fmt.Sprintf("%d\t%s\t%s\t%s\t%d\t%d\n",
			line.Position, line.Name, line.ColorHex, done, line.Current, line.Longest))
	}

	return builder.String(), nil
}

// renderQuiet prints only the names of marked activities (for scripting)
func (r *Renderer) renderQuiet(report *DayReport) (string, error) {
	var builder strings.Builder
	for _, line := range report.Lines {
		if line.Active {
			builder.WriteString(line.Name)
			builder.WriteString("\n")
		}
	}
	return builder.String(), nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
