package tui

import (
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tabStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeTab  = tabStyle.Bold(true).Underline(true)
)

// statusColors maps sync states to terminal colors.
var statusColors = map[models.SyncStatus]lipgloss.Color{
	models.StatusIdle:    lipgloss.Color("8"),
	models.StatusLoading: lipgloss.Color("12"),
	models.StatusSyncing: lipgloss.Color("12"),
	models.StatusSynced:  lipgloss.Color("10"),
	models.StatusPending: lipgloss.Color("11"),
	models.StatusError:   lipgloss.Color("9"),
}

// renderStatus draws the sync status indicator, e.g. "● pending".
func renderStatus(status models.SyncStatus) string {
	color, ok := statusColors[status]
	if !ok {
		color = lipgloss.Color("8")
	}
	return lipgloss.NewStyle().Foreground(color).Render("● " + status.String())
}
