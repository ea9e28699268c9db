// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type authMode int

const (
	authLogin authMode = iota
	authRegister
)

func (m authMode) title() string {
	if m == authRegister {
		return "CREATE ACCOUNT"
	}
	return "SIGN IN"
}

func (m authMode) action() string {
	if m == authRegister {
		return "Create account"
	}
	return "Sign in"
}

const (
	fieldLogin = iota
	fieldPassword
	fieldCount
)

var authFormHints = helpLine(
	keys.esc,
	key.NewBinding(key.WithHelp("tab", "next field")),
	key.NewBinding(key.WithHelp("enter", "submit")),
)

// AuthFormModel asks for a login and password and submits them to the auth
// service in the background. The outcome arrives as an [AuthResult].
type AuthFormModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	mode authMode

	fields  [fieldCount]textinput.Model
	focused int

	pending bool
	errMsg  string
}

func newField(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func NewAuthFormModel(ctx context.Context, auth service.ClientAuthService, mode authMode) *AuthFormModel {
	m := &AuthFormModel{ctx: ctx, auth: auth, mode: mode}

	m.fields[fieldLogin] = newField("login", 64)
	m.fields[fieldPassword] = newField("password", 256)
	m.fields[fieldPassword].EchoMode = textinput.EchoPassword
	m.fields[fieldPassword].EchoCharacter = '*'
	m.fields[fieldLogin].Focus()

	return m
}

func (m *AuthFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AuthFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AuthResult:
		m.pending = false
		m.errMsg = humanizeError(msg.Err)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.pending, m.errMsg = false, ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
			m.focus(m.focused + 1)
			return m, nil
		case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
			m.focus(m.focused - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.fields[m.focused], cmd = m.fields[m.focused].Update(msg)
	return m, cmd
}

// submit validates the inputs locally and starts the auth call.
func (m *AuthFormModel) submit() tea.Cmd {
	if m.pending {
		return nil
	}

	user := models.User{
		Login:    strings.TrimSpace(m.fields[fieldLogin].Value()),
		Password: m.fields[fieldPassword].Value(),
	}
	if user.Login == "" || user.Password == "" {
		m.errMsg = humanizeError(service.ErrInvalidDataProvided)
		return nil
	}

	m.errMsg, m.pending = "", true
	ctx, auth, register := m.ctx, m.auth, m.mode == authRegister

	return func() tea.Msg {
		call := auth.Login
		if register {
			call = auth.Register
		}
		return AuthResult{Login: user.Login, Register: register, Err: call(ctx, user)}
	}
}

func (m *AuthFormModel) focus(idx int) {
	m.fields[m.focused].Blur()
	m.focused = (idx + fieldCount) % fieldCount
	m.fields[m.focused].Focus()
}

func (m *AuthFormModel) View() string {
	var b strings.Builder
	b.WriteString("Login     " + m.fields[fieldLogin].View() + "\n")
	b.WriteString("Password  " + m.fields[fieldPassword].View() + "\n\n")

	button := m.mode.action()
	if m.pending {
		button += "..."
	}
	b.WriteString("[" + button + "]")

	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.errMsg))
	}

	return renderPage(m.mode.title(), b.String(), authFormHints)
}
