package domain

import (
	"sort"
	"strings"
)

// SortField names a board sort order
type SortField string

const (
	SortByName    SortField = "name"
	SortByDueDate SortField = "duedate"
)

// Filter represents board filtering state
type Filter struct {
	// Search matches as a case-insensitive substring of title or
	// description; empty matches everything.
	Search string
	// Priority restricts to a single priority; empty matches everything.
	Priority Priority
}

// IsActive returns true if any filter is active
func (f Filter) IsActive() bool {
	return f.Search != "" || f.Priority != ""
}

// Matches returns true if the task passes all active filters
func (f Filter) Matches(t Task) bool {
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}
	return true
}

// Apply filters a list of tasks, preserving order
func (f Filter) Apply(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			result = append(result, t)
		}
	}
	return result
}

// ApplyQuery filters tasks and then applies the named sort. Only
// SortByDueDate imposes an order: ascending by due date, tasks without a
// due date last, ties keeping original list order. SortByName (and any
// other value) leaves the filtered order unchanged; the product never
// defined an alphabetical order for it, so it is intentionally a no-op
// pending clarification.
func ApplyQuery(tasks []Task, f Filter, sortBy SortField) []Task {
	result := f.Apply(tasks)

	if sortBy == SortByDueDate {
		// ISO dates compare correctly as strings
		sort.SliceStable(result, func(i, j int) bool {
			a, b := result[i].DueDate, result[j].DueDate
			if a == "" {
				return false
			}
			if b == "" {
				return true
			}
			return a < b
		})
	}

	return result
}
