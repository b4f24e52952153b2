package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for console output
type Styles struct {
	Banner    lipgloss.Style
	Prompt    lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Money     lipgloss.Style
	Dealer    lipgloss.Style
}

// DefaultStyles returns the standard table styling
func DefaultStyles() *Styles {
	return &Styles{
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#006400")).
			Padding(0, 1).
			Bold(true),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		CardRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		CardBlack: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		Money:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Dealer:    lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
	}
}
