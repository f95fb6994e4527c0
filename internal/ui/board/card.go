package board

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	}
	cardStyle = cardStyle.Width(width)

	priorityBadge := s.PriorityBadge(task.Priority).Render(task.Priority.String())

	// Title - truncate if needed
	maxTitleLen := width - 4
	title := task.Title
	if maxTitleLen > 1 && len(title) > maxTitleLen {
		title = title[:maxTitleLen-1] + "…"
	}

	cursor := ""
	if isCursor {
		cursor = "▶"
	}
	titleLine := cursor + s.TaskTitle.Render(title)

	badgeLine := priorityBadge
	if task.DueDate != "" {
		dueStyle := s.TaskDue
		if task.DueDate < time.Now().Format("2006-01-02") {
			dueStyle = s.TaskDueLate
		}
		badgeLine = lipgloss.JoinHorizontal(lipgloss.Left, priorityBadge, " ", dueStyle.Render("due "+task.DueDate))
	}

	lines := []string{titleLine, badgeLine}
	if len(task.Tags) > 0 {
		var tags []string
		for _, tag := range task.Tags {
			tags = append(tags, s.TagBadge.Render(tag))
		}
		lines = append(lines, strings.Join(tags, " "))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(content)
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, width, s)
}
