package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/ui/board"
	"github.com/demoapps/taskboard/internal/ui/statusbar"
	"github.com/demoapps/taskboard/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.screen == screenLogin {
		return m.renderLogin()
	}

	header := m.renderHeader()
	boardView := m.renderBoardView()

	sb := statusbar.New(m.mode, m.width, m.styles)
	if info := m.statusInfo(); info != "" {
		sb = sb.WithInfo(info)
	}
	statusBarView := sb.Render()

	view := lipgloss.JoinVertical(lipgloss.Left, header, boardView, statusBarView)

	// If an overlay is open, render it on top
	if !m.overlayStack.IsEmpty() {
		current := m.overlayStack.Current()
		overlayView := current.View()
		overlayWidth, overlayHeight := current.Size()

		if overlayWidth == 0 {
			// Full-width overlay (search bar at the bottom)
			view = lipgloss.JoinVertical(lipgloss.Left, view, overlayView)
		} else {
			title := current.Title()
			if title != "" {
				titleView := m.styles.OverlayTitle.Render(title)
				overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
			}
			overlayView = m.styles.Overlay.
				Width(overlayWidth).
				Height(overlayHeight).
				Render(overlayView)

			view = lipgloss.Place(
				m.width,
				m.height,
				lipgloss.Center,
				lipgloss.Center,
				overlayView,
			)
		}
	}

	// Render toasts in the bottom-right corner
	if len(m.toasts) > 0 {
		toastRenderer := toast.New(m.styles)
		if toastView := toastRenderer.Render(m.toasts, m.width); toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

// renderHeader renders the top bar with board title and signed-in user
func (m Model) renderHeader() string {
	title := m.styles.HeaderTitle.Render(m.config.BoardTitle)
	user := m.styles.HeaderInfo.Render(m.sessionSvc.Email())

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(user) - 2
	if gap < 1 {
		gap = 1
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, title, strings.Repeat(" ", gap), user)
	return m.styles.Header.Width(m.width).Render(content)
}

// renderBoardView renders the three kanban columns
func (m Model) renderBoardView() string {
	columns := m.buildColumns()
	pos := m.nav.GetPosition(columns)
	cursor := board.Cursor{
		Column: pos.Column,
		Task:   pos.Task,
	}

	// Full height minus header and status bar
	return board.Render(columns, cursor, m.styles, m.width, m.height-2)
}

// statusInfo summarizes the active search, filter, and sort state
func (m Model) statusInfo() string {
	var parts []string
	if m.filter.Search != "" {
		parts = append(parts, "search: "+m.filter.Search)
	}
	if m.filter.Priority != "" {
		parts = append(parts, "filter: "+m.filter.Priority.String())
	}
	switch m.sortBy {
	case domain.SortByDueDate:
		parts = append(parts, "sort: due date")
	case domain.SortByName:
		parts = append(parts, "sort: name")
	}
	return strings.Join(parts, "  ")
}

// renderLogin renders the centered login box
func (m Model) renderLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.HeaderTitle.Render(m.config.BoardTitle))
	b.WriteString("\n\n")

	b.WriteString(m.styles.LoginLabel.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.login.email.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.LoginLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.login.password.View())
	b.WriteString("\n\n")

	check := "[ ]"
	if m.login.remember {
		check = "[x]"
	}
	rememberStyle := m.styles.LoginLabel
	if m.login.focus == loginFocusRemember {
		rememberStyle = m.styles.MenuItemActive
	}
	b.WriteString(rememberStyle.Render(check + " Remember me"))
	b.WriteString("\n\n")

	submitStyle := m.styles.MenuItem
	if m.login.focus == loginFocusSubmit {
		submitStyle = m.styles.MenuItemActive
	}
	if m.login.submitting {
		b.WriteString(m.login.spinner.View())
		b.WriteString(" Signing in...")
	} else {
		b.WriteString(submitStyle.Render("[ Sign In ]"))
	}
	b.WriteString("\n")

	if m.login.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.LoginError.Render(m.login.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.LoginHint.Render("Demo: intern@demo.com / intern123"))

	box := m.styles.LoginBox.Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}
