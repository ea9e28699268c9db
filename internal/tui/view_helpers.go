package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	pageStyle = lipgloss.NewStyle().Padding(0, 2)
	bodyStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false).
			Padding(1, 0)
)

// renderPage lays out a screen: title, bordered body, then the hot key hints.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	parts := []string{titleStyle.Render(title), bodyStyle.Render(body)}
	if strings.TrimSpace(hotKeys) != "" {
		parts = append(parts, helpStyle.Render(hotKeys))
	}
	parts = append(parts, helpStyle.Render("ctrl+c: quit"))

	return pageStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// helpLine joins the help texts of bindings, e.g. "enter: select │ v: version".
func helpLine(bindings ...key.Binding) string {
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return strings.Join(hints, " │ ")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
