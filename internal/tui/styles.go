package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

type AppTheme struct {
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	Subtle     string
	Error      string
	Success    string
	Background string
	Surface    string
}

// LambdaTheme is the wizard's single colour scheme.
func LambdaTheme() AppTheme {
	return AppTheme{
		Primary:    "#7aa2f7",
		Secondary:  "#2e3c64",
		Accent:     "#bb9af7",
		Text:       "#c0caf5",
		Subtle:     "#737aa2",
		Error:      "#f7768e",
		Success:    "#9ece6a",
		Background: "#000000",
		Surface:    "#1a1b26",
	}
}

func NewStyles(theme AppTheme) Styles {
	return Styles{
		TitleBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Background(lipgloss.Color(theme.Background)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			MarginLeft(1).
			MarginBottom(1),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Bold: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true),

		SpinnerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)),

		RaisedButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Surface)).
			Background(lipgloss.Color(theme.Primary)).
			Padding(0, 2).
			Bold(true),

		FlatButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Padding(0, 2),

		SelectedOption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),

		LogPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Secondary)).
			Foreground(lipgloss.Color(theme.Subtle)).
			Padding(0, 1),
	}
}

type Styles struct {
	TitleBar       lipgloss.Style
	Title          lipgloss.Style
	Normal         lipgloss.Style
	Bold           lipgloss.Style
	Subtle         lipgloss.Style
	Error          lipgloss.Style
	Success        lipgloss.Style
	SpinnerStyle   lipgloss.Style
	RaisedButton   lipgloss.Style
	FlatButton     lipgloss.Style
	SelectedOption lipgloss.Style
	LogPanel       lipgloss.Style
}

func (s Styles) NewThemedProgress(width int) progress.Model {
	theme := LambdaTheme()
	prog := progress.New(
		progress.WithGradient(theme.Secondary, theme.Primary),
	)

	prog.Width = width
	prog.ShowPercentage = true
	prog.PercentFormat = "%.0f%%"
	prog.PercentageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Text)).
		Bold(true)

	return prog
}

// checkbox renders a two-state box the way the toolkit checkboxes looked.
func (s Styles) checkbox(checked, focused bool, label string) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	if focused {
		return s.SelectedOption.Render("▶ " + box + " " + label)
	}
	return s.Normal.Render("  " + box + " " + label)
}

// buttons renders the bottom-right button row: a flat secondary button
// followed by the raised primary one.
func (s Styles) buttons(flat, raised string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.FlatButton.Render(flat),
		" ",
		s.RaisedButton.Render(raised),
	)
}
