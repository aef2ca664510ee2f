// Package ui renders the resolved database configuration for the terminal.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/dbconf/internal/logger"
	"github.com/DaanHessen/dbconf/internal/util"
)

// Summary returns a bordered key/value block describing cfg. The auth token
// is reported as present or absent, never printed.
func Summary(cfg util.Config, theme string) string {
	p := paletteFor(theme)
	key := lipgloss.NewStyle().Foreground(p.Muted).Width(10)
	val := lipgloss.NewStyle().Foreground(p.Text)
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)

	mode := "embedded"
	if cfg.IsHosted() {
		mode = "hosted"
	}

	rows := [][2]string{
		{"dialect", string(cfg.Dialect) + " (" + mode + ")"},
		{"out", cfg.Out},
		{"schema", cfg.Schema},
		{"url", logger.RedactURL(cfg.DBCredentials.URL)},
	}
	lines := []string{title.Render("database config")}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, key.Render(r[0]), val.Render(r[1])))
	}
	if cfg.IsHosted() {
		token := lipgloss.NewStyle().Foreground(p.Good).Render("set")
		if cfg.DBCredentials.AuthToken == "" {
			token = lipgloss.NewStyle().Foreground(p.Warn).Render("missing")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, key.Render("token"), token))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}
