package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"task-manager-api/internal/domain"
	"task-manager-api/internal/http/dto"
	"task-manager-api/internal/service"
	"task-manager-api/internal/validate"
)

type TaskService interface {
	CreateTask(fields map[string]any) (domain.Task, error)
	GetTask(id int64) (domain.Task, error)
	ListTasks() []domain.Task
	UpdateTask(id int64, fields map[string]any) (domain.Task, error)
	DeleteTask(id int64) error
}

type TaskHandler struct {
	taskService TaskService
}

func New(taskService TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// GET /
func (h *TaskHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.IndexResponse{
		Message: "Personal Task Manager API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"POST /tasks":        "Create a new task",
			"GET /tasks":         "Get all tasks",
			"GET /tasks/{id}":    "Get task by ID",
			"PUT /tasks/{id}":    "Update task by ID",
			"DELETE /tasks/{id}": "Delete task by ID",
		},
	})
}

// POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	task, err := h.taskService.CreateTask(fields)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, taskResponse(task))
}

// GET /tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, taskResponse(task))
}

// GET /tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks := h.taskService.ListTasks()

	response := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, taskResponse(task))
	}

	writeJSON(w, http.StatusOK, response)
}

// PUT /tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	task, err := h.taskService.UpdateTask(id, fields)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, taskResponse(task))
}

// DELETE /tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Task deleted successfully"})
}

// decodeFields reads the body as a JSON object, keeping the raw key set so
// the validator can tell an absent field from an empty one. An absent or
// null body is an error; an empty object is not.
func decodeFields(r *http.Request) (map[string]any, error) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("No data provided")
		}
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("No data provided")
	}
	return fields, nil
}

func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := r.PathValue("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, service.ErrInvalidID.Error())

		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, service.ErrInvalidID.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func taskResponse(task domain.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      string(task.Status),
	}
}
