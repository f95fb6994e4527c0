// Package domain contains the core task board types and query logic.
package domain

// Task represents a single unit of work on the board
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

// Status represents task status and determines column placement
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Statuses lists all statuses in column order
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

// Column returns the kanban column index for this status
func (s Status) Column() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusDoing:
		return 1
	case StatusDone:
		return 2
	default:
		return 0
	}
}

// Next returns the next status in the cycle todo -> doing -> done -> todo
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusDoing
	case StatusDoing:
		return StatusDone
	case StatusDone:
		return StatusTodo
	default:
		return StatusTodo
	}
}

// Label returns the display string for column headers
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusDoing:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// String returns the wire string
func (s Status) String() string {
	return string(s)
}

// Priority represents task priority
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists all priorities from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Rank returns a numeric rank (0 = low) for badge coloring
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	default:
		return 0
	}
}

// String returns the wire string
func (p Priority) String() string {
	return string(p)
}
