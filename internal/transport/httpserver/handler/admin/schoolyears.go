package admin

import (
	"net/http"

	"volunteer-tracker-go/internal/domain/accounting"
	"volunteer-tracker-go/internal/domain/schoolyear"
	commonhandler "volunteer-tracker-go/internal/transport/httpserver/handler/common"
)

type createSchoolYearRequest struct {
	Name          string            `json:"name" validate:"notblank"`
	StartDate     string            `json:"startDate" validate:"required"`
	EndDate       string            `json:"endDate" validate:"required"`
	RequiredHours *int              `json:"requiredHours"`
	HourlyRate    *accounting.Cents `json:"hourlyRate"`
}

type updateSchoolYearRequest struct {
	Name          *string           `json:"name"`
	StartDate     *string           `json:"startDate"`
	EndDate       *string           `json:"endDate"`
	RequiredHours *int              `json:"requiredHours"`
	HourlyRate    *accounting.Cents `json:"hourlyRate"`
}

type activateResponse struct {
	SchoolYear       commonhandler.SchoolYearResponse `json:"schoolYear"`
	FamiliesAttached int64                            `json:"familiesAttached"`
}

func (h *Handlers) ListSchoolYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.Years.List(r.Context())
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.school_years.list", err)
		return
	}

	response := make([]commonhandler.SchoolYearResponse, 0, len(years))
	for _, year := range years {
		response = append(response, commonhandler.NewSchoolYearResponse(year))
	}
	commonhandler.WriteJSON(w, h.log, http.StatusOK, response)
}

func (h *Handlers) CreateSchoolYear(w http.ResponseWriter, r *http.Request) {
	var req createSchoolYearRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}
	startDate, ok := commonhandler.ParseDate(w, "startDate", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := commonhandler.ParseDate(w, "endDate", req.EndDate)
	if !ok {
		return
	}

	created, err := h.Years.Create(r.Context(), schoolyear.CreateInput{
		Name:          req.Name,
		StartDate:     startDate,
		EndDate:       endDate,
		RequiredHours: req.RequiredHours,
		HourlyRate:    req.HourlyRate,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.school_years.create", err)
		return
	}
	commonhandler.WriteJSON(w, h.log, http.StatusCreated, commonhandler.NewSchoolYearResponse(*created))
}

func (h *Handlers) UpdateSchoolYear(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	var req updateSchoolYearRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}
	startDate, ok := commonhandler.ParseOptionalDate(w, "startDate", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := commonhandler.ParseOptionalDate(w, "endDate", req.EndDate)
	if !ok {
		return
	}

	updated, err := h.Years.Update(r.Context(), id, schoolyear.UpdateInput{
		Name:          req.Name,
		StartDate:     startDate,
		EndDate:       endDate,
		RequiredHours: req.RequiredHours,
		HourlyRate:    req.HourlyRate,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.school_years.update", err, "school_year_id", id)
		return
	}
	commonhandler.WriteJSON(w, h.log, http.StatusOK, commonhandler.NewSchoolYearResponse(*updated))
}

func (h *Handlers) ActivateSchoolYear(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	activated, attached, err := h.Years.Activate(r.Context(), id)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.school_years.activate", err, "school_year_id", id)
		return
	}

	h.log.Info("admin.school_years.activate: activated", "school_year_id", id, "families", attached)
	commonhandler.WriteJSON(w, h.log, http.StatusOK, activateResponse{
		SchoolYear:       commonhandler.NewSchoolYearResponse(*activated),
		FamiliesAttached: attached,
	})
}
