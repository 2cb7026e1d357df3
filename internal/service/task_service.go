package service

import (
	"task-manager-api/internal/domain"
	"task-manager-api/internal/validate"
)

type TaskStore interface {
	Create(title, description, dueDate string, status domain.Status) domain.Task
	Get(id int64) (domain.Task, bool)
	List() []domain.Task
	Update(id int64, patch domain.TaskPatch) (domain.Task, bool)
	Delete(id int64) bool
}

// TaskService validates decoded request fields and drives the store. It works
// on raw field maps so validation can distinguish an absent key from an empty
// value.
type TaskService struct {
	store TaskStore
}

func New(store TaskStore) (*TaskService, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	return &TaskService{store: store}, nil
}

func (s *TaskService) CreateTask(fields map[string]any) (domain.Task, error) {
	if verr := validate.Create(fields); verr != nil {
		return domain.Task{}, verr
	}

	title, _ := fields["title"].(string)
	description, _ := fields["description"].(string)
	dueDate, _ := fields["due_date"].(string)

	status := domain.DefaultStatus
	if raw, ok := fields["status"]; ok {
		// validate.Create already guaranteed this parses
		if value, ok := raw.(string); ok {
			if parsed, ok := domain.ParseStatus(value); ok {
				status = parsed
			}
		}
	}

	return s.store.Create(title, description, dueDate, status), nil
}

func (s *TaskService) GetTask(id int64) (domain.Task, error) {
	if id <= 0 {
		return domain.Task{}, ErrInvalidID
	}

	task, ok := s.store.Get(id)
	if !ok {
		return domain.Task{}, ErrNotFound
	}
	return task, nil
}

func (s *TaskService) ListTasks() []domain.Task {
	return s.store.List()
}

// UpdateTask checks existence before validating: an unknown id is not-found
// no matter what the payload looks like.
func (s *TaskService) UpdateTask(id int64, fields map[string]any) (domain.Task, error) {
	if id <= 0 {
		return domain.Task{}, ErrInvalidID
	}

	if _, ok := s.store.Get(id); !ok {
		return domain.Task{}, ErrNotFound
	}

	if verr := validate.Update(fields); verr != nil {
		return domain.Task{}, verr
	}

	task, ok := s.store.Update(id, buildPatch(fields))
	if !ok {
		return domain.Task{}, ErrNotFound
	}
	return task, nil
}

func (s *TaskService) DeleteTask(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	if !s.store.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// buildPatch lifts the recognized fields out of the map; anything else is
// silently ignored.
func buildPatch(fields map[string]any) domain.TaskPatch {
	var patch domain.TaskPatch

	if raw, ok := fields["title"]; ok {
		if value, ok := raw.(string); ok {
			patch.Title = &value
		}
	}
	if raw, ok := fields["description"]; ok {
		if value, ok := raw.(string); ok {
			patch.Description = &value
		}
	}
	if raw, ok := fields["due_date"]; ok {
		if value, ok := raw.(string); ok {
			patch.DueDate = &value
		}
	}
	if raw, ok := fields["status"]; ok {
		if value, ok := raw.(string); ok {
			if parsed, ok := domain.ParseStatus(value); ok {
				patch.Status = &parsed
			}
		}
	}

	return patch
}
