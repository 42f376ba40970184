package common

import (
	"context"
	"net/http"
	"time"

	"volunteer-tracker-go/internal/transport/httpserver/middleware"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		h.log.InternalError("health: db ping failed", err)
		WriteJSON(w, h.log, http.StatusServiceUnavailable, healthResponse{Status: "error", Database: "unreachable"})
		return
	}
	WriteJSON(w, h.log, http.StatusOK, healthResponse{Status: "ok", Database: "ok"})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.UserFromContext(r.Context())
	if !ok {
		Unauthorized(w)
		return
	}
	WriteJSON(w, h.log, http.StatusOK, NewUserResponse(*account))
}

func (h *Handlers) CurrentSchoolYear(w http.ResponseWriter, r *http.Request) {
	year, err := h.Years.Current(r.Context())
	if err != nil {
		WriteServiceError(w, r, h.log, "school_years.current", err)
		return
	}
	WriteJSON(w, h.log, http.StatusOK, NewSchoolYearResponse(*year))
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.ListActive(r.Context())
	if err != nil {
		WriteServiceError(w, r, h.log, "categories.list", err)
		return
	}
	WriteJSON(w, h.log, http.StatusOK, NewCategoryResponses(categories))
}
