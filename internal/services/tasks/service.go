// Package tasks provides the task board service: the single owner of the
// in-memory task list and activity log, kept synchronized with the
// key-value store after every mutation.
package tasks

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/storage"
)

// Service owns the canonical task list and activity log. All mutations go
// through it; readers receive copies. Persistence is best effort: each
// mutation performs exactly one write attempt, and failures are logged but
// never surface to the caller.
type Service struct {
	store  storage.Store
	logger *slog.Logger

	now   func() time.Time
	newID func() string

	tasks    []domain.Task
	activity []domain.ActivityEntry
}

// NewService creates a task service with dependency injection
func NewService(store storage.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Load reads both persisted collections. Missing or corrupt task data
// falls back to the seed set; a missing or corrupt activity log falls
// back to empty. Load never fails.
func (s *Service) Load() {
	data, err := s.store.Get(storage.KeyTasks)
	switch {
	case errors.Is(err, storage.ErrNoValue):
		s.tasks = domain.SeedTasks()
	case err != nil:
		s.logger.Error("failed to read tasks", "error", &domain.StorageError{Op: "load", Key: storage.KeyTasks, Err: err})
		s.tasks = domain.SeedTasks()
	default:
		var tasks []domain.Task
		if err := json.Unmarshal(data, &tasks); err != nil {
			s.logger.Error("failed to decode tasks", "error", &domain.StorageError{Op: "load", Key: storage.KeyTasks, Err: err})
			s.tasks = domain.SeedTasks()
		} else {
			s.tasks = tasks
		}
	}

	s.activity = nil
	if data, err := s.store.Get(storage.KeyActivity); err == nil {
		var log []domain.ActivityEntry
		if err := json.Unmarshal(data, &log); err != nil {
			s.logger.Error("failed to decode activity log", "error", &domain.StorageError{Op: "load", Key: storage.KeyActivity, Err: err})
		} else {
			s.activity = log
		}
	} else if !errors.Is(err, storage.ErrNoValue) {
		s.logger.Error("failed to read activity log", "error", &domain.StorageError{Op: "load", Key: storage.KeyActivity, Err: err})
	}

	s.logger.Debug("board loaded", "tasks", len(s.tasks), "activity", len(s.activity))
}

// Add inserts a task at the end of the list. A missing ID or CreatedAt is
// filled in; duplicate IDs supplied by the caller are not checked.
// Appends a "created" activity entry and persists.
func (s *Service) Add(t domain.Task) domain.Task {
	if t.ID == "" {
		t.ID = s.newID()
	}
	if t.CreatedAt == "" {
		t.CreatedAt = s.now().Format(time.RFC3339)
	}

	s.tasks = append(s.tasks, t)
	s.appendActivity(domain.ActionCreated, t.Title, "")
	s.save()

	s.logger.Debug("task added", "id", t.ID, "title", t.Title)
	return t
}

// TaskPatch carries the fields to merge in an Update. Nil fields are left
// untouched. Values are not revalidated here; callers validate before
// mutating.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.Status
	Priority    *domain.Priority
	DueDate     *string
	Tags        *[]string
}

// Update merges the patch into the task matching id. Unknown ids are a
// silent no-op: no change, no activity entry. Appends an "edited" entry
// carrying the pre-update title and a serialized diff, then persists.
func (s *Service) Update(id string, patch TaskPatch) {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("update ignored", "id", id, "reason", domain.ErrNotFound)
		return
	}

	prevTitle := s.tasks[idx].Title
	changed := make(map[string]any)

	t := &s.tasks[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
		changed["title"] = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
		changed["description"] = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
		changed["status"] = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
		changed["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
		changed["dueDate"] = *patch.DueDate
	}
	if patch.Tags != nil {
		tags := make([]string, len(*patch.Tags))
		copy(tags, *patch.Tags)
		t.Tags = tags
		changed["tags"] = tags
	}

	details := ""
	if data, err := json.Marshal(changed); err == nil {
		details = string(data)
	}

	s.appendActivity(domain.ActionEdited, prevTitle, details)
	s.save()

	s.logger.Debug("task updated", "id", id)
}

// Delete removes the task matching id. Unknown ids are a silent no-op.
// Appends a "deleted" entry with the removed task's title and persists.
func (s *Service) Delete(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("delete ignored", "id", id, "reason", domain.ErrNotFound)
		return
	}

	title := s.tasks[idx].Title
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.appendActivity(domain.ActionDeleted, title, "")
	s.save()

	s.logger.Debug("task deleted", "id", id, "title", title)
}

// Move sets the status of the task matching id. Unknown ids are a silent
// no-op. Appends a "moved" entry noting the destination and persists.
func (s *Service) Move(id string, newStatus domain.Status) {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("move ignored", "id", id, "reason", domain.ErrNotFound)
		return
	}

	s.tasks[idx].Status = newStatus
	s.appendActivity(domain.ActionMoved, s.tasks[idx].Title, "Moved to "+newStatus.String())
	s.save()

	s.logger.Debug("task moved", "id", id, "status", newStatus)
}

// ResetBoard replaces the task list with the seed set and clears the
// activity log. The tasks key is rewritten; the activity key is removed.
func (s *Service) ResetBoard() {
	s.tasks = domain.SeedTasks()
	s.activity = nil

	if data, err := json.Marshal(s.tasks); err == nil {
		if err := s.store.Set(storage.KeyTasks, data); err != nil {
			s.logger.Error("failed to persist reset", "error", &domain.StorageError{Op: "save", Key: storage.KeyTasks, Err: err})
		}
	}
	if err := s.store.Delete(storage.KeyActivity); err != nil {
		s.logger.Error("failed to clear activity log", "error", &domain.StorageError{Op: "delete", Key: storage.KeyActivity, Err: err})
	}

	s.logger.Debug("board reset")
}

// Query returns the tasks matching the filter, in the given sort order.
// It is read-only: neither state nor storage is touched.
func (s *Service) Query(filter domain.Filter, sortBy domain.SortField) []domain.Task {
	return domain.ApplyQuery(s.Tasks(), filter, sortBy)
}

// Tasks returns a copy of the task list in insertion order
func (s *Service) Tasks() []domain.Task {
	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Find returns the task matching id, or ErrNotFound
func (s *Service) Find(id string) (domain.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Task{}, domain.ErrNotFound
	}
	return s.tasks[idx], nil
}

// Activity returns a copy of the activity log, newest first
func (s *Service) Activity() []domain.ActivityEntry {
	log := make([]domain.ActivityEntry, len(s.activity))
	copy(log, s.activity)
	return log
}

// indexOf returns the index of the first task matching id, or -1
func (s *Service) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// appendActivity prepends an entry, evicting the oldest beyond the cap
func (s *Service) appendActivity(action domain.Action, taskTitle, details string) {
	entry := domain.ActivityEntry{
		ID:        s.newID(),
		Action:    action,
		TaskTitle: taskTitle,
		Timestamp: s.now().Format(time.RFC3339),
		Details:   details,
	}

	keep := s.activity
	if len(keep) > domain.MaxActivityEntries-1 {
		keep = keep[:domain.MaxActivityEntries-1]
	}
	s.activity = append([]domain.ActivityEntry{entry}, keep...)
}

// save writes both collections to their storage keys. Failures are logged
// and swallowed; in-memory state remains the source of truth until the
// next successful write.
func (s *Service) save() {
	if data, err := json.Marshal(s.tasks); err != nil {
		s.logger.Error("failed to encode tasks", "error", &domain.StorageError{Op: "save", Key: storage.KeyTasks, Err: err})
	} else if err := s.store.Set(storage.KeyTasks, data); err != nil {
		s.logger.Error("failed to persist tasks", "error", &domain.StorageError{Op: "save", Key: storage.KeyTasks, Err: err})
	}

	if data, err := json.Marshal(s.activity); err != nil {
		s.logger.Error("failed to encode activity log", "error", &domain.StorageError{Op: "save", Key: storage.KeyActivity, Err: err})
	} else if err := s.store.Set(storage.KeyActivity, data); err != nil {
		s.logger.Error("failed to persist activity log", "error", &domain.StorageError{Op: "save", Key: storage.KeyActivity, Err: err})
	}
}
