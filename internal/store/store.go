package store

import (
	"errors"

	"task-manager-api/internal/domain"
)

var ErrNotFound = errors.New("task not found")

type TaskStore interface {
	Create(title, description, dueDate string, status domain.Status) domain.Task
	Get(id int64) (domain.Task, bool)
	List() []domain.Task
	Update(id int64, patch domain.TaskPatch) (domain.Task, bool)
	Delete(id int64) bool
}
