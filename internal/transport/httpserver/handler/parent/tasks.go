package parent

import (
	"net/http"

	"volunteer-tracker-go/internal/domain/task"
	commonhandler "volunteer-tracker-go/internal/transport/httpserver/handler/common"
	"volunteer-tracker-go/internal/transport/httpserver/middleware"
)

type taskRequest struct {
	Hours       *float64 `json:"hours" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	CategoryID  string   `json:"categoryId" validate:"required"`
	Description *string  `json:"description"`
}

func (req taskRequest) input(w http.ResponseWriter) (task.Input, bool) {
	date, ok := commonhandler.ParseDate(w, "date", req.Date)
	if !ok {
		return task.Input{}, false
	}
	return task.Input{
		Hours:       *req.Hours,
		Date:        date,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	}, true
}

func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.Unauthorized(w)
		return
	}

	tasks, err := h.Tasks.List(r.Context(), actor)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "tasks.list", err)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, commonhandler.NewTaskResponses(tasks))
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.Unauthorized(w)
		return
	}

	var req taskRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}
	input, ok := req.input(w)
	if !ok {
		return
	}

	created, err := h.Tasks.Create(r.Context(), actor, input)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "tasks.create", err)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusCreated, commonhandler.NewTaskResponse(*created))
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.Unauthorized(w)
		return
	}

	id := commonhandler.URLID(r)
	var req taskRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}
	input, ok := req.input(w)
	if !ok {
		return
	}

	updated, err := h.Tasks.Update(r.Context(), actor, id, input)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "tasks.update", err, "task_id", id)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, commonhandler.NewTaskResponse(*updated))
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.Unauthorized(w)
		return
	}

	id := commonhandler.URLID(r)
	if err := h.Tasks.Delete(r.Context(), actor, id); err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "tasks.delete", err, "task_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
