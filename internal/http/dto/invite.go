package dto

import (
	"time"

	"crewbase.app/org-server/internal/model"
)

type CreateInviteRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Role             string `json:"role" binding:"required,oneof=admin staff"`
	RequiresApproval bool   `json:"requires_approval"`
}

type InviteResponse struct {
	CreatedAt        time.Time `json:"created_at"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	ID               int64     `json:"id,string"`
	OrgID            int64     `json:"org_id,string"`
	InvitedBy        int64     `json:"invited_by,string"`
	RequiresApproval bool      `json:"requires_approval"`
}

func ToInviteResponse(invite *model.Invite) *InviteResponse {
	return &InviteResponse{
		ID:               invite.ID,
		OrgID:            invite.OrgID,
		Email:            invite.Email,
		Role:             string(invite.Role),
		Status:           string(invite.Status),
		RequiresApproval: invite.RequiresApproval,
		InvitedBy:        invite.InvitedBy,
		CreatedAt:        invite.CreatedAt,
	}
}

func ToInviteListResponse(invites []model.Invite) []*InviteResponse {
	out := make([]*InviteResponse, 0, len(invites))
	for i := range invites {
		out = append(out, ToInviteResponse(&invites[i]))
	}
	return out
}
