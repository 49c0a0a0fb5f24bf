package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used across the wizard screens.
type Theme struct {
	Accent  string
	Good    string
	Error   string
	Divider string
}

// DefaultTheme is the orange-on-dark palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:  "208",
		Good:    "34",
		Error:   "196",
		Divider: "240",
	}
}

func (t Theme) AccentText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Render(s)
}

func (t Theme) GoodText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Good)).Render(s)
}

func (t Theme) ErrorText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Divider)).Render(s)
}

func (t Theme) FaintText(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}

func (t Theme) BoldText(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
