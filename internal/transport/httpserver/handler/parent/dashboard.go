package parent

import (
	"net/http"

	"volunteer-tracker-go/internal/domain/accounting"
	commonhandler "volunteer-tracker-go/internal/transport/httpserver/handler/common"
	"volunteer-tracker-go/internal/transport/httpserver/middleware"
)

type dashboardFamily struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type dashboardResponse struct {
	Family      dashboardFamily                  `json:"family"`
	SchoolYear  commonhandler.SchoolYearResponse `json:"schoolYear"`
	Progress    accounting.Progress              `json:"progress"`
	RecentTasks []commonhandler.TaskResponse     `json:"recentTasks"`
}

func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.Unauthorized(w)
		return
	}

	summary, err := h.Dashboard.Summary(r.Context(), actor)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "dashboard.get", err)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, dashboardResponse{
		Family:      dashboardFamily{ID: summary.Family.ID, Name: summary.Family.Name},
		SchoolYear:  commonhandler.NewSchoolYearResponse(summary.SchoolYear),
		Progress:    summary.Progress,
		RecentTasks: commonhandler.NewTaskResponses(summary.RecentTasks),
	})
}
