package cli

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the tools.
var (
	Success  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Warning  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	Failure  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Alert    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	Progress = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	Abort    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	Detail   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	Border   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)
