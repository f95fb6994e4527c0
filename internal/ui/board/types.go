// Package board renders the three-column kanban board.
package board

import "github.com/demoapps/taskboard/internal/domain"

// Column represents a kanban column with its tasks
type Column struct {
	Title  string
	Status domain.Status
	Tasks  []domain.Task
}

// Cursor represents the selected position in the board
type Cursor struct {
	Column int
	Task   int
}
