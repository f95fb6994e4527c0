package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoapps/taskboard/internal/domain"
)

func newLoginModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m.screen = screenLogin
	m.login = newLoginState()
	return m
}

func runLogin(t *testing.T, m Model, email, password string, remember bool) Model {
	t.Helper()
	m.login.email.SetValue(email)
	m.login.password.SetValue(password)
	m.login.remember = remember

	model, cmd := m.submitLogin()
	m = model.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.login.submitting)

	// Execute the batched commands and feed the login result back in
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if result, ok := c().(loginResultMsg); ok {
			model, _ = m.updateLogin(result)
			m = model.(Model)
		}
	}
	return m
}

func TestLogin_Success(t *testing.T) {
	m := newLoginModel(t)

	m = runLogin(t, m, "intern@demo.com", "intern123", false)

	assert.Equal(t, screenBoard, m.screen)
	assert.True(t, m.sessionSvc.Authenticated())
	assert.False(t, m.login.submitting)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "intern@demo.com", "nope"},
		{"wrong email", "someone@else.com", "intern123"},
		{"both wrong", "a@b.c", "zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLoginModel(t)

			m = runLogin(t, m, tt.email, tt.password, false)

			assert.Equal(t, screenLogin, m.screen)
			assert.Equal(t, "Invalid email or password", m.login.errMsg,
				"the error never reveals which field was wrong")
			assert.False(t, m.sessionSvc.Authenticated())
		})
	}
}

func TestLogin_EmptyFieldsRejectedLocally(t *testing.T) {
	m := newLoginModel(t)

	model, cmd := m.submitLogin()
	m = model.(Model)

	assert.Nil(t, cmd)
	assert.False(t, m.login.submitting)
	assert.NotEmpty(t, m.login.errMsg)
}

func TestLogin_RememberTogglesWithSpace(t *testing.T) {
	m := newLoginModel(t)
	m.login.focus = loginFocusRemember

	model, _ := m.handleLoginKey(tea.KeyMsg{Type: tea.KeySpace})
	m = model.(Model)
	assert.True(t, m.login.remember)

	model, _ = m.handleLoginKey(tea.KeyMsg{Type: tea.KeySpace})
	m = model.(Model)
	assert.False(t, m.login.remember)
}

func TestLogin_ResultClearsOnRetry(t *testing.T) {
	m := newLoginModel(t)
	m = runLogin(t, m, "intern@demo.com", "wrong", false)
	require.NotEmpty(t, m.login.errMsg)

	m = runLogin(t, m, "intern@demo.com", "intern123", false)
	assert.Equal(t, screenBoard, m.screen)
}

func TestLogin_ErrorMapping(t *testing.T) {
	m := newLoginModel(t)

	model, _ := m.updateLogin(loginResultMsg{err: domain.ErrInvalidCredentials})
	m = model.(Model)

	assert.Equal(t, "Invalid email or password", m.login.errMsg)
}
