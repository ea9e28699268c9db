package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// signInModel routes between the menu and the auth forms until a form
// reports a successful [AuthResult].
type signInModel struct {
	pages map[string]tea.Model
	page  tea.Model

	buildInfo models.AppBuildInfo
	infoOpen  bool

	quitByUser bool
}

func newSignInModel(pages map[string]tea.Model, start string, buildInfo models.AppBuildInfo) signInModel {
	return signInModel{pages: pages, page: pages[start], buildInfo: buildInfo}
}

func (m signInModel) Init() tea.Cmd {
	if m.page == nil {
		return nil
	}
	return m.page.Init()
}

func (m signInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	case NavigateTo:
		return m.navigate(msg)
	case AuthResult:
		if msg.Err == nil {
			return m, tea.Quit
		}
	}

	if m.page == nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

// handleKey processes the keys that work on every page. While the build info
// window is open it swallows all other keys.
func (m *signInModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	_, onMenu := m.page.(*MenuModel)

	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitByUser = true
		return true, tea.Quit
	case key.Matches(msg, keys.version) && onMenu:
		m.infoOpen = !m.infoOpen
		return true, nil
	case key.Matches(msg, keys.esc) && m.infoOpen:
		m.infoOpen = false
		return true, nil
	}
	return m.infoOpen, nil
}

func (m signInModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := m.pages[nav.Page]
	if !ok {
		return m, nil
	}

	m.infoOpen = false
	m.page = next

	if nav.Payload != nil {
		return m, func() tea.Msg { return nav.Payload }
	}
	return m, next.Init()
}

func (m signInModel) View() string {
	switch {
	case m.infoOpen:
		return renderBuildInfoWindow(m.buildInfo)
	case m.page == nil:
		return renderPage("hi-time", "", "")
	default:
		return m.page.View()
	}
}
