package ui

import "github.com/charmbracelet/lipgloss"

// ANSI palette colors only, so output follows the user's terminal theme.
var (
	// TitleStyle ANSI 6 (Cyan) for section headers
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// UsageStyle ANSI 2 (Green) for arguments and values
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black) for descriptions
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// PromptStyle ANSI 5 (Magenta) for the interactive prompt
	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
)

// Prompt renders the interactive prompt, keeping trailing spaces unstyled.
func Prompt(p string) string {
	trimmed := len(p)
	for trimmed > 0 && p[trimmed-1] == ' ' {
		trimmed--
	}
	return PromptStyle.Render(p[:trimmed]) + p[trimmed:]
}
