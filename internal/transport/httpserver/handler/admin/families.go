package admin

import (
	"net/http"
	"time"

	"volunteer-tracker-go/internal/domain/family"
	commonhandler "volunteer-tracker-go/internal/transport/httpserver/handler/common"
)

type familyRequest struct {
	Name string `json:"name" validate:"notblank"`
}

type memberResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	ArchivedAt *time.Time `json:"archivedAt"`
}

type familyResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	ArchivedAt *time.Time       `json:"archivedAt"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	Users      []memberResponse `json:"users,omitempty"`
}

type archiveFamilyResponse struct {
	familyResponse
	ArchivedUsers int64 `json:"archivedUsers"`
}

func newFamilyResponse(item family.Family) familyResponse {
	return familyResponse{
		ID:         item.ID,
		Name:       item.Name,
		ArchivedAt: item.ArchivedAt,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

func (h *Handlers) ListFamilies(w http.ResponseWriter, r *http.Request) {
	families, err := h.Families.List(r.Context())
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.families.list", err)
		return
	}

	response := make([]familyResponse, 0, len(families))
	for _, item := range families {
		entry := newFamilyResponse(item.Family)
		entry.Users = make([]memberResponse, 0, len(item.Members))
		for _, member := range item.Members {
			entry.Users = append(entry.Users, memberResponse{
				ID:         member.ID,
				Email:      member.Email,
				Role:       member.Role,
				ArchivedAt: member.ArchivedAt,
			})
		}
		response = append(response, entry)
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, response)
}

func (h *Handlers) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var req familyRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}

	created, err := h.Families.Create(r.Context(), req.Name)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.families.create", err)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusCreated, newFamilyResponse(*created))
}

func (h *Handlers) UpdateFamily(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	var req familyRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}

	updated, err := h.Families.Rename(r.Context(), id, req.Name)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.families.update", err, "family_id", id)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, newFamilyResponse(*updated))
}

func (h *Handlers) ArchiveFamily(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	archived, count, err := h.Families.Archive(r.Context(), id)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.families.archive", err, "family_id", id)
		return
	}

	h.log.Info("admin.families.archive: archived", "family_id", id, "users", count)
	commonhandler.WriteJSON(w, h.log, http.StatusOK, archiveFamilyResponse{
		familyResponse: newFamilyResponse(*archived),
		ArchivedUsers:  count,
	})
}

func (h *Handlers) RestoreFamily(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	restored, err := h.Families.Restore(r.Context(), id)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.families.restore", err, "family_id", id)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, newFamilyResponse(*restored))
}
