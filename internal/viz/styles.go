package viz

import "github.com/charmbracelet/lipgloss"

var (
	heading = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	keyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)
