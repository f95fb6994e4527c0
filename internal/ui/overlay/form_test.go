package overlay

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/demoapps/taskboard/internal/domain"
)

func TestTaskForm_ValidTitleBounds(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"too short", "ab", true},
		{"minimum length", "abc", false},
		{"normal title", "Ship the release", false},
		{"too long", strings.Repeat("x", 101), true},
		{"maximum length", strings.Repeat("x", 100), false},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewCreateTaskOverlay()
			form.title.SetValue(tt.title)

			err := form.validate()
			if tt.wantErr && err == "" {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != "" {
				t.Errorf("unexpected validation error: %s", err)
			}
		})
	}
}

func TestTaskForm_DescriptionLimit(t *testing.T) {
	form := NewCreateTaskOverlay()
	form.title.SetValue("Valid title")
	form.description.SetValue(strings.Repeat("d", 501))

	if form.validate() == "" {
		t.Error("expected validation error for oversized description")
	}
}

func TestTaskForm_DueDateValidation(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	past := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	tests := []struct {
		name    string
		due     string
		editing bool
		wantErr bool
	}{
		{"empty allowed", "", false, false},
		{"future allowed", future, false, false},
		{"today allowed", today, false, false},
		{"past rejected on create", past, false, true},
		{"past allowed on edit", past, true, false},
		{"garbage rejected", "not-a-date", false, true},
		{"wrong layout rejected", "20/02/2026", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form *TaskFormOverlay
			if tt.editing {
				form = NewEditTaskOverlay(domain.Task{ID: "t1", Title: "Existing task"})
			} else {
				form = NewCreateTaskOverlay()
				form.title.SetValue("Valid title")
			}
			form.dueDate.SetValue(tt.due)

			err := form.validate()
			if tt.wantErr && err == "" {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != "" {
				t.Errorf("unexpected validation error: %s", err)
			}
		})
	}
}

func TestTaskForm_TagLimit(t *testing.T) {
	form := NewCreateTaskOverlay()
	form.title.SetValue("Valid title")
	form.tags.SetValue("a, b, c, d, e, f")

	if form.validate() == "" {
		t.Error("expected validation error for more than five tags")
	}

	form.tags.SetValue("a, b, c, d, e")
	if err := form.validate(); err != "" {
		t.Errorf("five tags should validate, got: %s", err)
	}
}

func TestTaskForm_ParseTagsTrimsAndSkipsEmpty(t *testing.T) {
	form := NewCreateTaskOverlay()
	form.tags.SetValue(" ui ,  backend ,, ")

	tags := form.parseTags()
	if len(tags) != 2 || tags[0] != "ui" || tags[1] != "backend" {
		t.Errorf("expected [ui backend], got %v", tags)
	}
}

func TestTaskForm_SubmitEmitsTask(t *testing.T) {
	form := NewCreateTaskOverlay()
	form.title.SetValue("  Deploy staging  ")
	form.description.SetValue("Roll out the new build")
	form.dueDate.SetValue(time.Now().AddDate(0, 1, 0).Format("2006-01-02"))
	form.tags.SetValue("infra, release")
	form.priority = domain.PriorityHigh

	cmd := form.submit()
	if cmd == nil {
		t.Fatal("expected submit command")
	}

	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected batch message, got %T", cmd())
	}

	var submitted *TaskSubmittedMsg
	var closed bool
	for _, c := range batch {
		switch msg := c().(type) {
		case TaskSubmittedMsg:
			submitted = &msg
		case CloseOverlayMsg:
			closed = true
		}
	}

	if submitted == nil {
		t.Fatal("expected a TaskSubmittedMsg")
	}
	if !closed {
		t.Error("submit should also close the overlay")
	}
	if submitted.TaskID != "" {
		t.Error("create form should emit an empty task id")
	}
	if submitted.Title != "Deploy staging" {
		t.Errorf("title should be trimmed, got %q", submitted.Title)
	}
	if submitted.Status != domain.StatusTodo {
		t.Errorf("new tasks should default to todo, got %v", submitted.Status)
	}
	if submitted.Priority != domain.PriorityHigh {
		t.Errorf("expected high priority, got %v", submitted.Priority)
	}
	if len(submitted.Tags) != 2 {
		t.Errorf("expected two tags, got %v", submitted.Tags)
	}
}

func TestTaskForm_SubmitInvalidShowsError(t *testing.T) {
	form := NewCreateTaskOverlay()
	form.title.SetValue("no")

	if cmd := form.submit(); cmd != nil {
		t.Error("invalid form should not emit a command")
	}
	if form.errMsg == "" {
		t.Error("invalid submit should set the inline error message")
	}
}

func TestTaskForm_EditPrefillsFields(t *testing.T) {
	task := domain.Task{
		ID:          "t9",
		Title:       "Existing",
		Description: "Body",
		Status:      domain.StatusDoing,
		Priority:    domain.PriorityLow,
		DueDate:     "2026-09-01",
		Tags:        []string{"a", "b"},
	}

	form := NewEditTaskOverlay(task)

	if form.title.Value() != "Existing" {
		t.Errorf("expected prefilled title, got %q", form.title.Value())
	}
	if form.status != domain.StatusDoing {
		t.Errorf("expected prefilled status, got %v", form.status)
	}
	if form.tags.Value() != "a, b" {
		t.Errorf("expected joined tags, got %q", form.tags.Value())
	}
	if form.Title() != "Edit Task" {
		t.Errorf("expected edit overlay title, got %q", form.Title())
	}
}

func TestTaskForm_EscapeCloses(t *testing.T) {
	form := NewCreateTaskOverlay()

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(CloseOverlayMsg); !ok {
		t.Error("escape should close the overlay")
	}
}
