package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/ui/styles"
)

// DetailPanel displays full task details with scrollable description
type DetailPanel struct {
	task          domain.Task
	scrollY       int
	contentHeight int
	viewHeight    int
	styles        *Styles
	boardStyles   *styles.Styles
}

// NewDetailPanel creates a new detail panel for the given task
func NewDetailPanel(task domain.Task) *DetailPanel {
	contentHeight := 0
	if task.Description != "" {
		contentHeight = len(strings.Split(task.Description, "\n"))
	}

	return &DetailPanel{
		task:          task,
		scrollY:       0,
		contentHeight: contentHeight,
		viewHeight:    12,
		styles:        New(),
		boardStyles:   styles.New(),
	}
}

// Init initializes the detail panel
func (d *DetailPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *DetailPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return d, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if d.scrollY < d.maxScroll() {
				d.scrollY++
			}
			return d, nil

		case "k", "up":
			if d.scrollY > 0 {
				d.scrollY--
			}
			return d, nil

		case "g":
			d.scrollY = 0
			return d, nil

		case "G":
			d.scrollY = d.maxScroll()
			return d, nil
		}
	}

	return d, nil
}

// View renders the detail panel
func (d *DetailPanel) View() string {
	var b strings.Builder

	label := d.styles.Label
	value := d.styles.MenuItem

	b.WriteString(d.styles.SectionHeader.Render(d.task.Title))
	b.WriteString("\n\n")

	b.WriteString(label.Render("Status:"))
	b.WriteString("  ")
	b.WriteString(d.boardStyles.StatusStyle(d.task.Status).Render(d.task.Status.Label()))
	b.WriteString("\n")

	b.WriteString(label.Render("Priority:"))
	b.WriteString("  ")
	b.WriteString(value.Render(d.task.Priority.String()))
	b.WriteString("\n")

	if d.task.DueDate != "" {
		b.WriteString(label.Render("Due:"))
		b.WriteString("  ")
		b.WriteString(value.Render(d.task.DueDate))
		b.WriteString("\n")
	}

	if len(d.task.Tags) > 0 {
		b.WriteString(label.Render("Tags:"))
		b.WriteString("  ")
		b.WriteString(value.Render(strings.Join(d.task.Tags, ", ")))
		b.WriteString("\n")
	}

	if d.task.CreatedAt != "" {
		b.WriteString(label.Render("Created:"))
		b.WriteString("  ")
		b.WriteString(value.Render(d.task.CreatedAt))
		b.WriteString("\n")
	}

	if d.task.Description != "" {
		b.WriteString("\n")
		b.WriteString(d.styles.SectionHeader.Render("Description"))
		b.WriteString("\n")

		descLines := strings.Split(d.task.Description, "\n")
		d.contentHeight = len(descLines)

		start := d.scrollY
		end := min(d.scrollY+d.viewHeight, len(descLines))
		for i := start; i < end; i++ {
			b.WriteString(value.Render(descLines[i]))
			b.WriteString("\n")
		}

		if d.maxScroll() > 0 {
			b.WriteString("\n")
			b.WriteString(d.styles.Footer.Render(
				fmt.Sprintf("[j/k to scroll, g/G to jump] (line %d/%d)", d.scrollY+1, d.contentHeight),
			))
		}
	}

	return b.String()
}

// Title returns the overlay title
func (d *DetailPanel) Title() string {
	return "Task Details"
}

// Size returns the overlay dimensions
func (d *DetailPanel) Size() (width, height int) {
	return 70, 24
}

// maxScroll returns the maximum scroll position
func (d *DetailPanel) maxScroll() int {
	return max(0, d.contentHeight-d.viewHeight)
}
