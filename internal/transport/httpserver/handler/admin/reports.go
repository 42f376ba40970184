package admin

import (
	"net/http"

	"volunteer-tracker-go/internal/domain/accounting"
	commonhandler "volunteer-tracker-go/internal/transport/httpserver/handler/common"
)

type familyProgressResponse struct {
	FamilyID   string              `json:"familyId"`
	FamilyName string              `json:"familyName"`
	TaskCount  int64               `json:"taskCount"`
	Progress   accounting.Progress `json:"progress"`
}

type progressReportResponse struct {
	SchoolYear   commonhandler.SchoolYearResponse `json:"schoolYear"`
	Families     []familyProgressResponse         `json:"families"`
	Completed    int                              `json:"completed"`
	TotalHours   float64                          `json:"totalHours"`
	TotalPenalty accounting.Cents                 `json:"totalPenalty"`
}

type categoryHoursResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	TotalHours float64 `json:"totalHours"`
	TaskCount  int64   `json:"taskCount"`
}

type categoryReportResponse struct {
	SchoolYear commonhandler.SchoolYearResponse `json:"schoolYear"`
	Categories []categoryHoursResponse          `json:"categories"`
	TotalHours float64                          `json:"totalHours"`
}

// FamilyProgressReport serves /admin/reports/families?schoolYearId=.
// Without schoolYearId the active year is used.
func (h *Handlers) FamilyProgressReport(w http.ResponseWriter, r *http.Request) {
	yearID := r.URL.Query().Get("schoolYearId")
	result, err := h.Reports.Progress(r.Context(), yearID)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.reports.families", err, "school_year_id", yearID)
		return
	}

	families := make([]familyProgressResponse, 0, len(result.Families))
	for _, item := range result.Families {
		families = append(families, familyProgressResponse{
			FamilyID:   item.FamilyID,
			FamilyName: item.FamilyName,
			TaskCount:  item.TaskCount,
			Progress:   item.Progress,
		})
	}
	commonhandler.WriteJSON(w, h.log, http.StatusOK, progressReportResponse{
		SchoolYear:   commonhandler.NewSchoolYearResponse(result.SchoolYear),
		Families:     families,
		Completed:    result.Completed,
		TotalHours:   result.TotalHours,
		TotalPenalty: result.TotalPenalty,
	})
}

func (h *Handlers) CategoryHoursReport(w http.ResponseWriter, r *http.Request) {
	yearID := r.URL.Query().Get("schoolYearId")
	result, err := h.Reports.Categories(r.Context(), yearID)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.reports.categories", err, "school_year_id", yearID)
		return
	}

	categories := make([]categoryHoursResponse, 0, len(result.Categories))
	for _, item := range result.Categories {
		categories = append(categories, categoryHoursResponse{
			ID:         item.CategoryID,
			Name:       item.CategoryName,
			TotalHours: item.TotalHours,
			TaskCount:  item.TaskCount,
		})
	}
	commonhandler.WriteJSON(w, h.log, http.StatusOK, categoryReportResponse{
		SchoolYear: commonhandler.NewSchoolYearResponse(result.SchoolYear),
		Categories: categories,
		TotalHours: result.TotalHours,
	})
}
