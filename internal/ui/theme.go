package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
	Good   lipgloss.Color
	Warn   lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:   lipgloss.Color("#cdd6f4"),
		Muted:  lipgloss.Color("#a6adc8"),
		Accent: lipgloss.Color("#cba6f7"),
		Border: lipgloss.Color("#585b70"),
		Good:   lipgloss.Color("#94e2d5"),
		Warn:   lipgloss.Color("#f9e2af"),
	},
	"dracula": {
		Text:   lipgloss.Color("#f8f8f2"),
		Muted:  lipgloss.Color("#6272a4"),
		Accent: lipgloss.Color("#ff79c6"),
		Border: lipgloss.Color("#44475a"),
		Good:   lipgloss.Color("#50fa7b"),
		Warn:   lipgloss.Color("#f1fa8c"),
	},
	"gruvbox": {
		Text:   lipgloss.Color("#ebdbb2"),
		Muted:  lipgloss.Color("#a89984"),
		Accent: lipgloss.Color("#fabd2f"),
		Border: lipgloss.Color("#665c54"),
		Good:   lipgloss.Color("#b8bb26"),
		Warn:   lipgloss.Color("#fe8019"),
	},
	"solarized_dark": {
		Text:   lipgloss.Color("#fdf6e3"),
		Muted:  lipgloss.Color("#93a1a1"),
		Accent: lipgloss.Color("#b58900"),
		Border: lipgloss.Color("#586e75"),
		Good:   lipgloss.Color("#859900"),
		Warn:   lipgloss.Color("#cb4b16"),
	},
}

// DefaultTheme is used when the requested theme is unknown.
const DefaultTheme = "catppuccin"

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[DefaultTheme]
}

// ThemeNames lists the available themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
