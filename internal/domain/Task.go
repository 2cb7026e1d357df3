package domain

// Status is the closed set of task states.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// DefaultStatus is assigned when a create request carries no status.
const DefaultStatus = StatusPending

// Statuses returns every valid status in wire order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// ParseStatus converts raw input into a Status. Matching is exact and
// case-sensitive.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), true
	}
	return "", false
}

type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD
	Status      Status
}

// TaskPatch carries a partial update. Nil fields were not supplied and leave
// the task untouched; a non-nil pointer to an empty string is a real write.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Status      *Status
}
