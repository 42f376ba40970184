package admin

import (
	"net/http"
	"time"

	"volunteer-tracker-go/internal/domain/invitation"
	"volunteer-tracker-go/internal/domain/user"
	commonhandler "volunteer-tracker-go/internal/transport/httpserver/handler/common"
)

type invitationResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Role       user.Role  `json:"role"`
	FamilyID   *string    `json:"familyId"`
	FamilyName *string    `json:"familyName,omitempty"`
	Token      string     `json:"token"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	UsedAt     *time.Time `json:"usedAt"`
	InvitedBy  string     `json:"invitedBy"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func newInvitationResponse(item invitation.Details) invitationResponse {
	return invitationResponse{
		ID:         item.ID,
		Email:      item.Email,
		Role:       item.Role,
		FamilyID:   item.FamilyID,
		FamilyName: item.FamilyName,
		Token:      item.Token,
		ExpiresAt:  item.ExpiresAt,
		UsedAt:     item.UsedAt,
		InvitedBy:  item.InvitedBy,
		CreatedAt:  item.CreatedAt,
	}
}

func (h *Handlers) ListInvitations(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.Invitations.List(r.Context())
	if err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.invitations.list", err)
		return
	}

	response := make([]invitationResponse, 0, len(invitations))
	for _, item := range invitations {
		response = append(response, newInvitationResponse(item))
	}
	commonhandler.WriteJSON(w, h.log, http.StatusOK, response)
}

func (h *Handlers) RevokeInvitation(w http.ResponseWriter, r *http.Request) {
	id := commonhandler.URLID(r)
	if err := h.Invitations.Revoke(r.Context(), id); err != nil {
		commonhandler.WriteServiceError(w, r, h.log, "admin.invitations.revoke", err, "invitation_id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
