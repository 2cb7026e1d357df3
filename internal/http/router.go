package router

import (
	"net/http"

	"github.com/charmbracelet/log"

	"task-manager-api/internal/http/handlers"
)

func New(handler *handlers.TaskHandler, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("POST /tasks", handler.Create)
	mux.HandleFunc("GET /tasks", handler.List)
	mux.HandleFunc("GET /tasks/{id}", handler.Get)
	mux.HandleFunc("PUT /tasks/{id}", handler.Update)
	mux.HandleFunc("DELETE /tasks/{id}", handler.Delete)

	return withRequestLog(logger, mux)
}
