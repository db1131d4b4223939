package dto

import (
	"time"

	"crewbase.app/org-server/internal/model"
)

type SubmitOnboardingRequest struct {
	FullName string `json:"full_name" binding:"required,min=1,max=255"`
	Phone    string `json:"phone" binding:"max=32"`
}

type MembershipResponse struct {
	JoinedAt    time.Time  `json:"joined_at"`
	OnboardedAt *time.Time `json:"onboarded_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	FullName    *string    `json:"full_name,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	OrgID       int64      `json:"org_id,string"`
	UserID      int64      `json:"user_id,string"`
}

func ToMembershipResponse(m *model.Membership) *MembershipResponse {
	return &MembershipResponse{
		OrgID:       m.OrgID,
		UserID:      m.UserID,
		Email:       m.Email,
		Role:        string(m.Role),
		Status:      string(m.Status),
		FullName:    m.FullName,
		Phone:       m.Phone,
		JoinedAt:    m.JoinedAt,
		OnboardedAt: m.OnboardedAt,
		ApprovedAt:  m.ApprovedAt,
	}
}

func ToMembershipListResponse(members []model.Membership) []*MembershipResponse {
	out := make([]*MembershipResponse, 0, len(members))
	for i := range members {
		out = append(out, ToMembershipResponse(&members[i]))
	}
	return out
}
