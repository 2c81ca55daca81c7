package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette of the banking TUI, in ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	Brand         lipgloss.Color
	BrandContrast lipgloss.Color

	Positive lipgloss.Color
	Negative lipgloss.Color
	Warning  lipgloss.Color

	BorderColor lipgloss.Color
	HelpText    lipgloss.Color
	ModalBorder lipgloss.Color
}

// DefaultTheme mirrors the app's navy brand palette.
var DefaultTheme = Theme{
	NormalText:    lipgloss.Color("255"),
	FaintText:     lipgloss.Color("245"),
	Brand:         lipgloss.Color("33"),
	BrandContrast: lipgloss.Color("231"),
	Positive:      lipgloss.Color("35"),
	Negative:      lipgloss.Color("203"),
	Warning:       lipgloss.Color("214"),
	BorderColor:   lipgloss.Color("238"),
	HelpText:      lipgloss.Color("241"),
	ModalBorder:   lipgloss.Color("33"),
}

// styles are the lipgloss styles derived from a Theme.
type styles struct {
	appLabel  lipgloss.Style
	title     lipgloss.Style
	caption   lipgloss.Style
	section   lipgloss.Style
	card      lipgloss.Style
	hero      lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	positive  lipgloss.Style
	negative  lipgloss.Style
	warning   lipgloss.Style
	selected  lipgloss.Style
	help      lipgloss.Style
	modal     lipgloss.Style
	button    lipgloss.Style
	bar       lipgloss.Style
}

func newStyles(theme Theme) styles {
	return styles{
		appLabel:  lipgloss.NewStyle().Foreground(theme.Brand).Bold(true),
		title:     lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true),
		caption:   lipgloss.NewStyle().Foreground(theme.FaintText),
		section:   lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true).Underline(true),
		card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.BorderColor).Padding(0, 1),
		hero:      lipgloss.NewStyle().Background(theme.Brand).Foreground(theme.BrandContrast).Padding(1, 2),
		tab:       lipgloss.NewStyle().Foreground(theme.FaintText).Padding(0, 1),
		activeTab: lipgloss.NewStyle().Foreground(theme.Brand).Bold(true).Underline(true).Padding(0, 1),
		positive:  lipgloss.NewStyle().Foreground(theme.Positive),
		negative:  lipgloss.NewStyle().Foreground(theme.Negative),
		warning:   lipgloss.NewStyle().Foreground(theme.Warning),
		selected:  lipgloss.NewStyle().Foreground(theme.BrandContrast).Background(theme.Brand).Padding(0, 1),
		help:      lipgloss.NewStyle().Foreground(theme.HelpText),
		modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.ModalBorder).Padding(1, 2).Width(48),
		button:    lipgloss.NewStyle().Foreground(theme.BrandContrast).Background(theme.Brand).Padding(0, 2),
		bar:       lipgloss.NewStyle().Foreground(theme.Brand),
	}
}
