package domain

// Action represents the kind of task mutation an activity entry records
type Action string

const (
	ActionCreated Action = "created"
	ActionEdited  Action = "edited"
	ActionMoved   Action = "moved"
	ActionDeleted Action = "deleted"
)

// String returns the wire string
func (a Action) String() string {
	return string(a)
}

// ActivityEntry is an append-only audit record of a single task mutation.
// TaskTitle is a snapshot taken at the time of the action, not a live
// reference; renaming or deleting the task later leaves the entry intact.
type ActivityEntry struct {
	ID        string `json:"id"`
	Action    Action `json:"action"`
	TaskTitle string `json:"taskTitle"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details,omitempty"`
}

// MaxActivityEntries caps the activity log; inserting beyond the cap
// evicts the oldest entry. The log is kept newest first.
const MaxActivityEntries = 20
