package memory

import (
	"sort"
	"sync"
	"sync/atomic"

	"task-manager-api/internal/domain"
	"task-manager-api/internal/store"
)

// TaskStore holds every task in process memory. Ids start at 1, only grow,
// and are never handed out twice, even after a delete.
type TaskStore struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]domain.Task
}

var _ store.TaskStore = (*TaskStore)(nil)

func New() *TaskStore {
	return &TaskStore{
		tasks: make(map[int64]domain.Task),
	}
}

func (ts *TaskStore) Create(title, description, dueDate string, status domain.Status) domain.Task {
	id := atomic.AddInt64(&ts.nextID, 1)

	task := domain.Task{
		ID:          id,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      status,
	}

	ts.mu.Lock()
	ts.tasks[id] = task
	ts.mu.Unlock()

	return task
}

func (ts *TaskStore) Get(id int64) (domain.Task, bool) {
	ts.mu.RLock()
	task, ok := ts.tasks[id]
	ts.mu.RUnlock()

	// task is non-pointer value
	return task, ok
}

// List returns all tasks in ascending id order.
func (ts *TaskStore) List() []domain.Task {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(ts.tasks))
	for _, t := range ts.tasks {
		tasks = append(tasks, t)
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks
}

// Update overwrites only the fields the patch carries. The id never changes.
func (ts *TaskStore) Update(id int64, patch domain.TaskPatch) (domain.Task, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	task, ok := ts.tasks[id]
	if !ok {
		return domain.Task{}, false
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	ts.tasks[id] = task

	return task, true
}

// Delete reports whether a task was removed. The freed id is not recycled.
func (ts *TaskStore) Delete(id int64) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.tasks[id]; !ok {
		return false
	}
	delete(ts.tasks, id)

	return true
}

// Reset clears all tasks and rewinds the id counter to its initial state.
// Intended for test harnesses.
func (ts *TaskStore) Reset() {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.tasks = make(map[int64]domain.Task)
	atomic.StoreInt64(&ts.nextID, 0)
}
