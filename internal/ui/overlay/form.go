package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/demoapps/taskboard/internal/domain"
)

// TaskSubmittedMsg is emitted when the task form is submitted
type TaskSubmittedMsg struct {
	TaskID      string // empty when creating a new task
	Title       string
	Description string
	Status      domain.Status
	Priority    domain.Priority
	DueDate     string
	Tags        []string
}

// Validation limits for the task form
const (
	minTitleLen   = 3
	maxTitleLen   = 100
	maxDescLen    = 500
	maxTags       = 5
	dueDateLayout = "2006-01-02"
)

const (
	focusTitle = iota
	focusDescription
	focusDueDate
	focusTags
	focusPriority
	focusStatus
	focusSubmit
)

// TaskFormOverlay provides a form to create or edit a task
type TaskFormOverlay struct {
	taskID      string
	title       textinput.Model
	description textarea.Model
	dueDate     textinput.Model
	tags        textinput.Model
	priority    domain.Priority
	status      domain.Status
	focusIndex  int
	errMsg      string
	today       string
	styles      *Styles
}

// NewCreateTaskOverlay creates a form overlay for a new task
func NewCreateTaskOverlay() *TaskFormOverlay {
	f := newTaskForm()
	f.status = domain.StatusTodo
	f.title.Focus()
	return f
}

// NewEditTaskOverlay creates a form overlay pre-filled from an existing task
func NewEditTaskOverlay(task domain.Task) *TaskFormOverlay {
	f := newTaskForm()
	f.taskID = task.ID
	f.title.SetValue(task.Title)
	f.description.SetValue(task.Description)
	f.dueDate.SetValue(task.DueDate)
	f.tags.SetValue(strings.Join(task.Tags, ", "))
	f.priority = task.Priority
	f.status = task.Status
	f.title.Focus()
	return f
}

func newTaskForm() *TaskFormOverlay {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = maxTitleLen + 1
	ti.Width = 56

	ta := textarea.New()
	ta.Placeholder = "Task description (optional)..."
	ta.CharLimit = maxDescLen + 1
	ta.SetWidth(56)
	ta.SetHeight(4)

	dd := textinput.New()
	dd.Placeholder = "YYYY-MM-DD"
	dd.CharLimit = 10
	dd.Width = 12

	tg := textinput.New()
	tg.Placeholder = "comma, separated, tags"
	tg.CharLimit = 120
	tg.Width = 40

	return &TaskFormOverlay{
		title:       ti,
		description: ta,
		dueDate:     dd,
		tags:        tg,
		priority:    domain.PriorityMedium,
		focusIndex:  focusTitle,
		today:       time.Now().Format(dueDateLayout),
		styles:      New(),
	}
}

func (f *TaskFormOverlay) editing() bool {
	return f.taskID != ""
}

// fieldCount is the number of focusable fields; the status selector only
// exists when editing.
func (f *TaskFormOverlay) fieldCount() int {
	if f.editing() {
		return 7
	}
	return 6
}

// focusAt maps a raw focus index to a field, skipping status in create mode
func (f *TaskFormOverlay) focusAt(i int) int {
	if !f.editing() && i >= focusStatus {
		return i + 1
	}
	return i
}

// Init initializes the overlay
func (f *TaskFormOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskFormOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "shift+tab":
			n := f.fieldCount()
			if msg.String() == "tab" {
				f.focusIndex = (f.focusIndex + 1) % n
			} else {
				f.focusIndex = (f.focusIndex - 1 + n) % n
			}
			f.syncFocus()
			return f, nil

		case "enter":
			if f.focusAt(f.focusIndex) == focusSubmit {
				return f, f.submit()
			}
			// Let the active field handle enter
		}

		switch f.focusAt(f.focusIndex) {
		case focusPriority:
			switch msg.String() {
			case "1", "L":
				f.priority = domain.PriorityLow
				return f, nil
			case "2", "M":
				f.priority = domain.PriorityMedium
				return f, nil
			case "3", "H":
				f.priority = domain.PriorityHigh
				return f, nil
			}
		case focusStatus:
			switch msg.String() {
			case "T":
				f.status = domain.StatusTodo
				return f, nil
			case "P":
				f.status = domain.StatusDoing
				return f, nil
			case "D":
				f.status = domain.StatusDone
				return f, nil
			}
		}
	}

	// Update active field
	var cmd tea.Cmd
	switch f.focusAt(f.focusIndex) {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
		cmds = append(cmds, cmd)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
		cmds = append(cmds, cmd)
	case focusDueDate:
		f.dueDate, cmd = f.dueDate.Update(msg)
		cmds = append(cmds, cmd)
	case focusTags:
		f.tags, cmd = f.tags.Update(msg)
		cmds = append(cmds, cmd)
	}

	return f, tea.Batch(cmds...)
}

func (f *TaskFormOverlay) syncFocus() {
	f.title.Blur()
	f.description.Blur()
	f.dueDate.Blur()
	f.tags.Blur()

	switch f.focusAt(f.focusIndex) {
	case focusTitle:
		f.title.Focus()
	case focusDescription:
		f.description.Focus()
	case focusDueDate:
		f.dueDate.Focus()
	case focusTags:
		f.tags.Focus()
	}
}

// View renders the form
func (f *TaskFormOverlay) View() string {
	var b strings.Builder

	field := func(index int, label string) string {
		if f.focusAt(f.focusIndex) == index {
			return f.styles.LabelFocused.Render(label)
		}
		return f.styles.Label.Render(label)
	}

	b.WriteString(field(focusTitle, "Title:"))
	b.WriteString("  ")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")

	b.WriteString(field(focusDescription, "Description:"))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")

	b.WriteString(field(focusDueDate, "Due:"))
	b.WriteString("  ")
	b.WriteString(f.dueDate.View())
	b.WriteString("\n\n")

	b.WriteString(field(focusTags, "Tags:"))
	b.WriteString("  ")
	b.WriteString(f.tags.View())
	b.WriteString("\n\n")

	b.WriteString(field(focusPriority, "Priority:"))
	b.WriteString("  ")
	b.WriteString(f.renderPrioritySelector())
	b.WriteString("\n\n")

	if f.editing() {
		b.WriteString(field(focusStatus, "Status:"))
		b.WriteString("  ")
		b.WriteString(f.renderStatusSelector())
		b.WriteString("\n\n")
	}

	b.WriteString(f.styles.Separator.Render(strings.Repeat("─", 60)))
	b.WriteString("\n\n")

	submitStyle := f.styles.MenuItem
	if f.focusAt(f.focusIndex) == focusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	if f.editing() {
		b.WriteString(submitStyle.Render("[ Save Changes ]"))
	} else {
		b.WriteString(submitStyle.Render("[ Create Task ]"))
	}
	b.WriteString("\n")

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.Error.Render(f.errMsg))
		b.WriteString("\n")
	}

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " " + f.styles.Footer.Render("Switch fields"),
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.styles.Footer.Render("Submit"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.Footer.Render("Cancel"),
	}
	b.WriteString("\n")
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (f *TaskFormOverlay) renderPrioritySelector() string {
	var parts []string
	for _, p := range domain.Priorities {
		style := f.styles.MenuItem
		indicator := " "
		if p == f.priority {
			style = f.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%d] %s", indicator, p.Rank()+1, p)))
	}
	return strings.Join(parts, " ")
}

func (f *TaskFormOverlay) renderStatusSelector() string {
	keys := map[domain.Status]string{
		domain.StatusTodo:  "T",
		domain.StatusDoing: "P",
		domain.StatusDone:  "D",
	}

	var parts []string
	for _, st := range domain.Statuses {
		style := f.styles.MenuItem
		indicator := " "
		if st == f.status {
			style = f.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%s] %s", indicator, keys[st], st.Label())))
	}
	return strings.Join(parts, " ")
}

// validate checks the form and returns a user-facing error message, or ""
func (f *TaskFormOverlay) validate() string {
	title := strings.TrimSpace(f.title.Value())
	if len(title) < minTitleLen {
		return fmt.Sprintf("Title must be at least %d characters", minTitleLen)
	}
	if len(title) > maxTitleLen {
		return fmt.Sprintf("Title must be at most %d characters", maxTitleLen)
	}

	if len(strings.TrimSpace(f.description.Value())) > maxDescLen {
		return fmt.Sprintf("Description must be at most %d characters", maxDescLen)
	}

	if due := strings.TrimSpace(f.dueDate.Value()); due != "" {
		if _, err := time.Parse(dueDateLayout, due); err != nil {
			return "Due date must be YYYY-MM-DD"
		}
		// Past dates only rejected on create; existing tasks may be overdue.
		if !f.editing() && due < f.today {
			return "Due date cannot be in the past"
		}
	}

	if len(f.parseTags()) > maxTags {
		return fmt.Sprintf("At most %d tags allowed", maxTags)
	}

	return ""
}

func (f *TaskFormOverlay) parseTags() []string {
	var tags []string
	for _, raw := range strings.Split(f.tags.Value(), ",") {
		if tag := strings.TrimSpace(raw); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// submit validates the form and emits TaskSubmittedMsg, or shows the error inline
func (f *TaskFormOverlay) submit() tea.Cmd {
	if msg := f.validate(); msg != "" {
		f.errMsg = msg
		return nil
	}

	submitted := TaskSubmittedMsg{
		TaskID:      f.taskID,
		Title:       strings.TrimSpace(f.title.Value()),
		Description: strings.TrimSpace(f.description.Value()),
		Status:      f.status,
		Priority:    f.priority,
		DueDate:     strings.TrimSpace(f.dueDate.Value()),
		Tags:        f.parseTags(),
	}

	return tea.Batch(
		func() tea.Msg { return submitted },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// Title returns the overlay title
func (f *TaskFormOverlay) Title() string {
	if f.editing() {
		return "Edit Task"
	}
	return "Create New Task"
}

// Size returns the overlay dimensions
func (f *TaskFormOverlay) Size() (width, height int) {
	if f.editing() {
		return 70, 28
	}
	return 70, 26
}
