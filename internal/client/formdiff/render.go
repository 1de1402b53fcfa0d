package formdiff

import "github.com/charmbracelet/lipgloss"

var (
	wasStyle     = lipgloss.NewStyle().Faint(true).Italic(true)
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// ChangedMark is the indicator printed next to an edited field.
func ChangedMark() string {
	return changedStyle.Render("changed")
}

// FormatWas renders the prior value shown under an edited field.
// Empty prior values render as nothing.
func FormatWas(v any) string {
	s := asTrimmed(v)
	if s == "" {
		return ""
	}
	return wasStyle.Render("was: " + s)
}
