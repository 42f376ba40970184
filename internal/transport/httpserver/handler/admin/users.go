package admin

import (
	"net/http"
	"time"

	"volunteer-tracker-go/internal/domain/invitation"
	"volunteer-tracker-go/internal/domain/user"
	commonhandler "volunteer-tracker-go/internal/transport/httpserver/handler/common"
	"volunteer-tracker-go/internal/transport/httpserver/middleware"
)

type listedUserResponse struct {
	commonhandler.UserResponse
	FamilyName       *string    `json:"familyName"`
	FamilyArchivedAt *time.Time `json:"familyArchivedAt"`
}

type updateUserRequest struct {
	FamilyID commonhandler.OptionalString `json:"familyId"`
	Role     *string                      `json:"role" validate:"omitempty,oneof=parent admin"`
}

type inviteUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Role     string  `json:"role" validate:"omitempty,oneof=parent admin"`
	FamilyID *string `json:"familyId"`
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.users.list", err)
		return
	}

	response := make([]listedUserResponse, 0, len(users))
	for _, item := range users {
		response = append(response, listedUserResponse{
			UserResponse:     commonhandler.NewUserResponse(item.User),
			FamilyName:       item.FamilyName,
			FamilyArchivedAt: item.FamilyArchivedAt,
		})
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, response)
}

// CreateUser pre-registers a person. The account itself is created on their
// first sign-in.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.Unauthorized(w)
		return
	}

	var req inviteUserRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}

	created, err := h.Invitations.Create(r.Context(), actor.ID, invitation.CreateInput{
		Email:    req.Email,
		Role:     user.Role(req.Role),
		FamilyID: req.FamilyID,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.users.create", err)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusCreated, newInvitationResponse(invitation.Details{Invitation: *created}))
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.Unauthorized(w)
		return
	}

	id := commonhandler.URLID(r)
	var req updateUserRequest
	if !commonhandler.Bind(w, r, &req) {
		return
	}

	input := user.UpdateInput{
		SetFamily: req.FamilyID.Set,
		FamilyID:  req.FamilyID.Value,
	}
	if req.Role != nil {
		role := user.Role(*req.Role)
		input.Role = &role
	}

	updated, err := h.Users.Update(r.Context(), actor.ID, id, input)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.users.update", err, "target_id", id)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, commonhandler.NewUserResponse(*updated))
}

func (h *Handlers) ArchiveUser(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	archived, err := h.Users.Archive(r.Context(), id)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.users.archive", err, "target_id", id)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, commonhandler.NewUserResponse(*archived))
}

func (h *Handlers) RestoreUser(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	restored, err := h.Users.Restore(r.Context(), id)
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.users.restore", err, "target_id", id)
		return
	}

	commonhandler.WriteJSON(w, h.log, http.StatusOK, commonhandler.NewUserResponse(*restored))
}
