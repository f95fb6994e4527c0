package app

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoapps/taskboard/internal/config"
	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/services/session"
	"github.com/demoapps/taskboard/internal/services/tasks"
	"github.com/demoapps/taskboard/internal/storage"
	"github.com/demoapps/taskboard/internal/ui/overlay"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemStore()

	tasksSvc := tasks.NewService(store, logger)
	tasksSvc.Load()

	sessionSvc := session.NewService(store, logger, 0)

	m := New(config.DefaultConfig(), tasksSvc, sessionSvc, logger)
	m.screen = screenBoard
	m.width = 120
	m.height = 40
	return m
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBuildColumns_SplitsByStatus(t *testing.T) {
	m := newTestModel(t)

	columns := m.buildColumns()

	require.Len(t, columns, 3)
	assert.Equal(t, domain.StatusTodo, columns[0].Status)
	assert.Equal(t, domain.StatusDoing, columns[1].Status)
	assert.Equal(t, domain.StatusDone, columns[2].Status)

	total := 0
	for _, col := range columns {
		for _, task := range col.Tasks {
			assert.Equal(t, col.Status, task.Status)
		}
		total += len(col.Tasks)
	}
	assert.Equal(t, 5, total, "seed board has five tasks")
}

func TestBuildColumns_AppliesFilter(t *testing.T) {
	m := newTestModel(t)
	m.filter.Priority = domain.PriorityHigh

	total := 0
	for _, col := range m.buildColumns() {
		total += len(col.Tasks)
	}
	assert.Equal(t, 2, total, "seed board has two high-priority tasks")
}

func TestNextPriorityFilter_Cycles(t *testing.T) {
	var p domain.Priority
	p = nextPriorityFilter(p)
	assert.Equal(t, domain.PriorityLow, p)
	p = nextPriorityFilter(p)
	assert.Equal(t, domain.PriorityMedium, p)
	p = nextPriorityFilter(p)
	assert.Equal(t, domain.PriorityHigh, p)
	p = nextPriorityFilter(p)
	assert.Equal(t, domain.Priority(""), p)
}

func TestColumnIndex(t *testing.T) {
	assert.Equal(t, 0, columnIndex(domain.StatusTodo))
	assert.Equal(t, 1, columnIndex(domain.StatusDoing))
	assert.Equal(t, 2, columnIndex(domain.StatusDone))
}

func TestHandleTaskSubmitted_CreatesTask(t *testing.T) {
	m := newTestModel(t)
	before := len(m.tasksSvc.Tasks())

	model, _ := m.handleTaskSubmitted(overlay.TaskSubmittedMsg{
		Title:    "Brand new task",
		Status:   domain.StatusTodo,
		Priority: domain.PriorityMedium,
	})
	m = model.(Model)

	all := m.tasksSvc.Tasks()
	require.Len(t, all, before+1)
	assert.Equal(t, "Brand new task", all[len(all)-1].Title)
	assert.NotEmpty(t, m.toasts, "creating a task should show a toast")
}

func TestHandleTaskSubmitted_EditsTask(t *testing.T) {
	m := newTestModel(t)
	target := m.tasksSvc.Tasks()[0]

	model, _ := m.handleTaskSubmitted(overlay.TaskSubmittedMsg{
		TaskID:   target.ID,
		Title:    "Renamed task",
		Status:   domain.StatusDone,
		Priority: domain.PriorityLow,
	})
	m = model.(Model)

	updated, err := m.tasksSvc.Find(target.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed task", updated.Title)
	assert.Equal(t, domain.StatusDone, updated.Status)
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := newTestModel(t)
	columns := m.buildColumns()
	m.nav.SelectTask(columns[0].Tasks[0].ID, 0)
	target := columns[0].Tasks[0].ID

	// "d" opens the confirmation dialog and records the target
	model, _ := m.handleNormalMode(keyRunes('d'))
	m = model.(Model)
	require.False(t, m.overlayStack.IsEmpty())
	assert.Equal(t, target, m.pendingDeleteID)

	// Confirming deletes the task
	model, _ = m.handleSelection(overlay.SelectionMsg{
		Key:   "delete",
		Value: overlay.ConfirmResult{Confirmed: true},
	})
	m = model.(Model)

	_, err := m.tasksSvc.Find(target)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, m.pendingDeleteID)
}

func TestDeleteDeclinedKeepsTask(t *testing.T) {
	m := newTestModel(t)
	columns := m.buildColumns()
	target := columns[0].Tasks[0].ID
	m.nav.SelectTask(target, 0)

	model, _ := m.handleNormalMode(keyRunes('d'))
	m = model.(Model)

	model, _ = m.handleSelection(overlay.SelectionMsg{
		Key:   "delete",
		Value: overlay.ConfirmResult{Confirmed: false},
	})
	m = model.(Model)

	_, err := m.tasksSvc.Find(target)
	assert.NoError(t, err, "declining the dialog should keep the task")
}

func TestResetConfirmFlow(t *testing.T) {
	m := newTestModel(t)
	m.tasksSvc.Add(domain.Task{Title: "Extra task", Status: domain.StatusTodo, Priority: domain.PriorityLow})
	m.filter.Priority = domain.PriorityHigh
	m.sortBy = domain.SortByDueDate

	model, _ := m.handleSelection(overlay.SelectionMsg{
		Key:   "reset",
		Value: overlay.ConfirmResult{Confirmed: true},
	})
	m = model.(Model)

	assert.Len(t, m.tasksSvc.Tasks(), 5, "reset restores the demo board")
	assert.False(t, m.filter.IsActive(), "reset clears filters")
	assert.Empty(t, string(m.sortBy), "reset clears the sort")
}

func TestMoveKeyAdvancesStatus(t *testing.T) {
	m := newTestModel(t)
	columns := m.buildColumns()
	target := columns[0].Tasks[0]
	m.nav.SelectTask(target.ID, 0)

	model, _ := m.handleNormalMode(keyRunes('m'))
	m = model.(Model)

	moved, err := m.tasksSvc.Find(target.ID)
	require.NoError(t, err)
	assert.Equal(t, target.Status.Next(), moved.Status)
}

func TestSortToggle(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.handleNormalMode(keyRunes(','))
	m = model.(Model)
	assert.Equal(t, domain.SortByDueDate, m.sortBy)

	model, _ = m.handleNormalMode(keyRunes(','))
	m = model.(Model)
	assert.Equal(t, domain.SortByName, m.sortBy)

	model, _ = m.handleNormalMode(keyRunes(','))
	m = model.(Model)
	assert.Empty(t, string(m.sortBy))
}

func TestSearchMsgUpdatesFilter(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.Update(overlay.SearchMsg{Query: "design"})
	m = model.(Model)

	assert.Equal(t, "design", m.filter.Search)

	total := 0
	for _, col := range m.buildColumns() {
		total += len(col.Tasks)
	}
	assert.Equal(t, 1, total, "only the design task matches")
}

func TestExpireToasts(t *testing.T) {
	m := newTestModel(t)
	m.addToast(Toast{Message: "old", Expires: time.Now().Add(-time.Second)})
	m.addToast(Toast{Message: "fresh", Expires: time.Now().Add(time.Minute)})

	m.expireToasts()

	require.Len(t, m.toasts, 1)
	assert.Equal(t, "fresh", m.toasts[0].Message)
}

func TestGotoModeRoundTrip(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.handleNormalMode(keyRunes('g'))
	m = model.(Model)
	assert.Equal(t, ModeGoto, m.mode)

	model, _ = m.handleKey(keyRunes('g'))
	m = model.(Model)
	assert.Equal(t, ModeNormal, m.mode, "goto mode exits after one key")
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.handleNormalMode(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = model.(Model)

	assert.Equal(t, screenLogin, m.screen)
	assert.False(t, m.sessionSvc.Authenticated())
}
