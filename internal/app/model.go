// Package app contains the main application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/demoapps/taskboard/internal/config"
	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/services/navigation"
	"github.com/demoapps/taskboard/internal/services/session"
	"github.com/demoapps/taskboard/internal/services/tasks"
	"github.com/demoapps/taskboard/internal/types"
	"github.com/demoapps/taskboard/internal/ui/board"
	"github.com/demoapps/taskboard/internal/ui/overlay"
	"github.com/demoapps/taskboard/internal/ui/styles"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeGoto   = types.ModeGoto
	ModeSearch = types.ModeSearch
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// screen identifies which top-level view is active
type screen int

const (
	screenLogin screen = iota
	screenBoard
)

// Model is the main application state
type Model struct {
	screen screen

	// Services
	tasksSvc   *tasks.Service
	sessionSvc *session.Service
	nav        *navigation.Service

	// Board state
	mode   Mode
	filter domain.Filter
	sortBy domain.SortField

	// Pending confirmation target
	pendingDeleteID string

	// UI state
	overlayStack *overlay.Stack
	toasts       []Toast
	width        int
	height       int
	styles       *styles.Styles

	// Login screen state
	login loginState

	config *config.Config
	logger *slog.Logger
}

// New creates a new application model wired to the given services
func New(cfg *config.Config, tasksSvc *tasks.Service, sessionSvc *session.Service, logger *slog.Logger) Model {
	initial := screenLogin
	if sessionSvc.Authenticated() {
		initial = screenBoard
	}

	return Model{
		screen:       initial,
		tasksSvc:     tasksSvc,
		sessionSvc:   sessionSvc,
		nav:          navigation.NewService(),
		mode:         ModeNormal,
		overlayStack: overlay.NewStack(),
		toasts:       []Toast{},
		styles:       styles.New(),
		login:        newLoginState(),
		config:       cfg,
		logger:       logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.login.Init(),
		tickEvery(time.Second),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(time.Second)
	}

	if m.screen == screenLogin {
		return m.updateLogin(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		if m.overlayStack.IsEmpty() && m.mode == ModeSearch {
			m.mode = ModeNormal
		}
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.SearchMsg:
		m.filter.Search = msg.Query
		if search, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
			search.SetMatchCount(len(m.tasksSvc.Query(m.filter, m.sortBy)))
		}
		return m, nil

	case overlay.TaskSubmittedMsg:
		return m.handleTaskSubmitted(msg)
	}

	return m, nil
}

// buildColumns converts tasks into board columns, applying filter and sort
func (m Model) buildColumns() []board.Column {
	visible := m.tasksSvc.Query(m.filter, m.sortBy)

	columns := make([]board.Column, 0, len(domain.Statuses))
	for _, status := range domain.Statuses {
		var inColumn []domain.Task
		for _, task := range visible {
			if task.Status == status {
				inColumn = append(inColumn, task)
			}
		}
		columns = append(columns, board.Column{
			Title:  status.Label(),
			Status: status,
			Tasks:  inColumn,
		})
	}
	return columns
}

// handleKey processes keyboard input on the board
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen
	}

	if msg.String() == "esc" && m.mode != ModeNormal {
		m.mode = ModeNormal
		return m, nil
	}

	switch m.mode {
	case ModeGoto:
		return m.handleGotoMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode processes keyboard input in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.buildColumns()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Vertical navigation
	case "j", "down":
		m.nav.MoveDown(columns)
		return m, nil

	case "k", "up":
		m.nav.MoveUp(columns)
		return m, nil

	// Horizontal navigation
	case "h", "left":
		m.nav.MoveLeft(columns)
		return m, nil

	case "l", "right":
		m.nav.MoveRight(columns)
		return m, nil

	case "g":
		m.mode = ModeGoto
		return m, nil

	case "n": // New task
		return m, m.overlayStack.Push(overlay.NewCreateTaskOverlay())

	case "e": // Edit task
		if task := m.nav.GetCurrentTask(columns); task != nil {
			return m, m.overlayStack.Push(overlay.NewEditTaskOverlay(*task))
		}
		return m, nil

	case "enter": // Task details
		if task := m.nav.GetCurrentTask(columns); task != nil {
			return m, m.overlayStack.Push(overlay.NewDetailPanel(*task))
		}
		return m, nil

	case "d": // Delete task (confirmed)
		if task := m.nav.GetCurrentTask(columns); task != nil {
			m.pendingDeleteID = task.ID
			dialog := overlay.NewConfirmDialog("delete", "Delete Task",
				fmt.Sprintf("Delete %q? This cannot be undone.", task.Title))
			return m, m.overlayStack.Push(dialog)
		}
		return m, nil

	case " ", "m": // Move task to the next column
		if task := m.nav.GetCurrentTask(columns); task != nil {
			next := task.Status.Next()
			m.tasksSvc.Move(task.ID, next)
			m.addToast(Toast{
				Level:   ToastSuccess,
				Message: fmt.Sprintf("Moved to %s", next.Label()),
				Expires: time.Now().Add(2 * time.Second),
			})
		}
		return m, nil

	case "/": // Search
		m.mode = ModeSearch
		return m, m.overlayStack.Push(overlay.NewSearchOverlay(m.filter.Search))

	case "f": // Cycle priority filter
		m.filter.Priority = nextPriorityFilter(m.filter.Priority)
		return m, nil

	case ",": // Cycle sort order
		m.sortBy = nextSortField(m.sortBy)
		return m, nil

	case "a": // Activity log
		return m, m.overlayStack.Push(overlay.NewActivityOverlay(m.tasksSvc.Activity()))

	case "R": // Reset board (confirmed)
		dialog := overlay.NewConfirmDialog("reset", "Reset Board",
			"Restore the demo board? All tasks and activity will be replaced.")
		return m, m.overlayStack.Push(dialog)

	case "?": // Help
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())

	case "ctrl+o": // Log out
		m.sessionSvc.Logout()
		m.screen = screenLogin
		m.login = newLoginState()
		return m, m.login.Init()
	}

	return m, nil
}

// handleGotoMode processes keyboard input in goto mode
func (m Model) handleGotoMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.buildColumns()
	m.mode = ModeNormal

	switch msg.String() {
	case "g":
		m.nav.GotoTop(columns)
	case "e":
		m.nav.GotoBottom(columns)
	case "h":
		m.nav.GotoFirstColumn(columns)
	case "l":
		m.nav.GotoLastColumn(columns)
	}

	return m, nil
}

// handleSelection handles confirmation dialog results
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok {
		return m, nil
	}

	switch msg.Key {
	case "delete":
		id := m.pendingDeleteID
		m.pendingDeleteID = ""
		if result.Confirmed && id != "" {
			m.tasksSvc.Delete(id)
			m.addToast(Toast{
				Level:   ToastSuccess,
				Message: "Task deleted",
				Expires: time.Now().Add(2 * time.Second),
			})
		}

	case "reset":
		if result.Confirmed {
			m.tasksSvc.ResetBoard()
			m.filter = domain.Filter{}
			m.sortBy = ""
			m.addToast(Toast{
				Level:   ToastSuccess,
				Message: "Board reset to demo data",
				Expires: time.Now().Add(3 * time.Second),
			})
		}
	}

	return m, nil
}

// handleTaskSubmitted applies a create or edit form submission
func (m Model) handleTaskSubmitted(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.TaskID == "" {
		created := m.tasksSvc.Add(domain.Task{
			Title:       msg.Title,
			Description: msg.Description,
			Status:      msg.Status,
			Priority:    msg.Priority,
			DueDate:     msg.DueDate,
			Tags:        msg.Tags,
		})
		m.nav.SelectTask(created.ID, columnIndex(created.Status))
		m.addToast(Toast{
			Level:   ToastSuccess,
			Message: fmt.Sprintf("Task created: %s", created.Title),
			Expires: time.Now().Add(3 * time.Second),
		})
		return m, nil
	}

	m.tasksSvc.Update(msg.TaskID, tasks.TaskPatch{
		Title:       &msg.Title,
		Description: &msg.Description,
		Status:      &msg.Status,
		Priority:    &msg.Priority,
		DueDate:     &msg.DueDate,
		Tags:        &msg.Tags,
	})
	m.addToast(Toast{
		Level:   ToastSuccess,
		Message: "Task updated",
		Expires: time.Now().Add(2 * time.Second),
	})
	return m, nil
}

// Message types

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Helpers

// addToast adds a toast notification to the list
func (m *Model) addToast(toast Toast) {
	m.toasts = append(m.toasts, toast)
}

// expireToasts removes expired toasts from the list
func (m *Model) expireToasts() {
	now := time.Now()
	filtered := make([]Toast, 0, len(m.toasts))
	for _, toast := range m.toasts {
		if toast.Expires.After(now) {
			filtered = append(filtered, toast)
		}
	}
	m.toasts = filtered
}

// nextPriorityFilter cycles off -> low -> medium -> high -> off
func nextPriorityFilter(current domain.Priority) domain.Priority {
	switch current {
	case "":
		return domain.PriorityLow
	case domain.PriorityLow:
		return domain.PriorityMedium
	case domain.PriorityMedium:
		return domain.PriorityHigh
	default:
		return ""
	}
}

// nextSortField cycles none -> due date -> name -> none
func nextSortField(current domain.SortField) domain.SortField {
	switch current {
	case "":
		return domain.SortByDueDate
	case domain.SortByDueDate:
		return domain.SortByName
	default:
		return ""
	}
}

// columnIndex returns the board column index for a status
func columnIndex(status domain.Status) int {
	for i, s := range domain.Statuses {
		if s == status {
			return i
		}
	}
	return 0
}
