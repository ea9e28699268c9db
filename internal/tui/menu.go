package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	page  string
}

// MenuModel is the first screen of a signed-out client.
type MenuModel struct {
	items  []menuItem
	cursor int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{items: []menuItem{
		{label: "Sign in", page: pageLogin},
		{label: "Create account", page: pageRegister},
	}}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.cursor = clampIndex(m.cursor-1, len(m.items))
	case key.Matches(keyMsg, keys.down):
		m.cursor = clampIndex(m.cursor+1, len(m.items))
	case key.Matches(keyMsg, keys.enter):
		page := m.items[m.cursor].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%d. %s\n", marker, i+1, item.label)
	}

	hints := helpLine(keys.enter, keys.up, keys.down, keys.version)
	return renderPage("HI-TIME", strings.TrimRight(b.String(), "\n"), hints)
}
