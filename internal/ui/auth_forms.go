package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aryamadhavi03/githubs-pages/internal/api"
	"github.com/aryamadhavi03/githubs-pages/internal/model"
	"github.com/aryamadhavi03/githubs-pages/internal/session"
)

// LoginFormModel represents the login screen.
type LoginFormModel struct {
	client       *api.Client
	store        *session.Store
	focusedField int
	inputs       []textinput.Model
	submitting   bool
}

// NewLoginFormModel creates the login form.
func NewLoginFormModel(client *api.Client, store *session.Store) *LoginFormModel {
	inputs := make([]textinput.Model, 2)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "Email"
	inputs[0].Focus()
	inputs[0].CharLimit = 200

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "Password"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].CharLimit = 100

	return &LoginFormModel{
		client: client,
		store:  store,
		inputs: inputs,
	}
}

// Update handles input.
func (m *LoginFormModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return func() tea.Msg {
			return model.FormCancelledMsg{}
		}
	case "ctrl+s", "enter":
		return m.submit()
	case "tab":
		m.focusedField = cycleFocus(m.inputs, m.focusedField, 1)
		return nil
	case "shift+tab":
		m.focusedField = cycleFocus(m.inputs, m.focusedField, -1)
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return cmd
}

func (m *LoginFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if email == "" || password == "" {
		return func() tea.Msg {
			return model.ErrorMsg{Err: fmt.Errorf("email and password are required")}
		}
	}
	m.submitting = true
	client := m.client
	store := m.store

	return func() tea.Msg {
		auth, err := client.Login(context.Background(), email, password)
		if err != nil {
			return model.AuthFailedMsg{Err: err}
		}
		var user model.UserRef
		if auth.User != nil {
			user = *auth.User
		}
		if err := store.SetSession(user, auth.Token); err != nil {
			return model.AuthFailedMsg{Err: fmt.Errorf("save session: %w", err)}
		}
		return model.LoggedInMsg{User: user, Message: auth.Message}
	}
}

// Reset clears the form after a failed attempt.
func (m *LoginFormModel) Reset() {
	m.submitting = false
	m.inputs[1].SetValue("")
}

// View renders the login form.
func (m *LoginFormModel) View(width, height int) string {
	fields := []string{
		TitleStyle.Render("Log in to CampQuest"),
		renderFormField("Email", m.inputs[0], m.focusedField == 0),
		renderFormField("Password", m.inputs[1], m.focusedField == 1),
		HelpDescStyle.Render("enter submit  esc cancel"),
	}
	if m.submitting {
		fields = append(fields, HelpDescStyle.Render("Signing in..."))
	}
	return PanelStyle.Width(width - 4).Render(strings.Join(fields, "\n\n"))
}

// RegisterFormModel represents the account creation screen.
type RegisterFormModel struct {
	client       *api.Client
	store        *session.Store
	focusedField int
	inputs       []textinput.Model
	submitting   bool
}

// NewRegisterFormModel creates the register form.
func NewRegisterFormModel(client *api.Client, store *session.Store) *RegisterFormModel {
	inputs := make([]textinput.Model, 3)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "Username"
	inputs[0].Focus()
	inputs[0].CharLimit = 100

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "Email"
	inputs[1].CharLimit = 200

	inputs[2] = textinput.New()
	inputs[2].Placeholder = "Password"
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].CharLimit = 100

	return &RegisterFormModel{
		client: client,
		store:  store,
		inputs: inputs,
	}
}

// Update handles input.
func (m *RegisterFormModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return func() tea.Msg {
			return model.FormCancelledMsg{}
		}
	case "ctrl+s", "enter":
		return m.submit()
	case "tab":
		m.focusedField = cycleFocus(m.inputs, m.focusedField, 1)
		return nil
	case "shift+tab":
		m.focusedField = cycleFocus(m.inputs, m.focusedField, -1)
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return cmd
}

func (m *RegisterFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	username := strings.TrimSpace(m.inputs[0].Value())
	email := strings.TrimSpace(m.inputs[1].Value())
	password := m.inputs[2].Value()
	if username == "" || email == "" || password == "" {
		return func() tea.Msg {
			return model.ErrorMsg{Err: fmt.Errorf("username, email, and password are required")}
		}
	}
	m.submitting = true
	client := m.client
	store := m.store

	return func() tea.Msg {
		auth, err := client.Register(context.Background(), username, email, password)
		if err != nil {
			return model.AuthFailedMsg{Err: err}
		}
		var user model.UserRef
		if auth.User != nil {
			user = *auth.User
		}
		if err := store.SetSession(user, auth.Token); err != nil {
			return model.AuthFailedMsg{Err: fmt.Errorf("save session: %w", err)}
		}
		return model.RegisteredMsg{User: user, Message: auth.Message}
	}
}

// Reset clears the form after a failed attempt.
func (m *RegisterFormModel) Reset() {
	m.submitting = false
	m.inputs[2].SetValue("")
}

// View renders the register form.
func (m *RegisterFormModel) View(width, height int) string {
	fields := []string{
		TitleStyle.Render("Join CampQuest"),
		renderFormField("Username", m.inputs[0], m.focusedField == 0),
		renderFormField("Email", m.inputs[1], m.focusedField == 1),
		renderFormField("Password", m.inputs[2], m.focusedField == 2),
		HelpDescStyle.Render("enter submit  esc cancel"),
	}
	if m.submitting {
		fields = append(fields, HelpDescStyle.Render("Creating account..."))
	}
	return PanelStyle.Width(width - 4).Render(strings.Join(fields, "\n\n"))
}

func cycleFocus(inputs []textinput.Model, current, dir int) int {
	inputs[current].Blur()
	next := (current + dir + len(inputs)) % len(inputs)
	inputs[next].Focus()
	return next
}
