package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/demoapps/taskboard/internal/ui/styles"
)

// Render renders the entire kanban board
func Render(columns []Column, cursor Cursor, s *styles.Styles, width, height int) string {
	if len(columns) == 0 {
		return ""
	}

	columnWidth := width / len(columns)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := -1
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(col, cursorTask, isActive, columnWidth, height, s)

		// Force consistent width so short columns don't collapse
		sized := lipgloss.NewStyle().Width(columnWidth).Height(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
