package model

import "time"

type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// CanManageMembers reports whether the role may invite or approve members.
func (r Role) CanManageMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}

type MemberStatus string

const (
	MemberStatusActive            MemberStatus = "active"
	MemberStatusPendingOnboarding MemberStatus = "pending_onboarding"
	MemberStatusPendingApproval   MemberStatus = "pending_approval"
)

// Membership records one user's role and status within one organization.
// At most one membership exists per (OrgID, UserID) pair.
type Membership struct {
	JoinedAt          time.Time    `json:"joined_at"`
	OnboardedAt       *time.Time   `json:"onboarded_at,omitempty"`
	ApprovedAt        *time.Time   `json:"approved_at,omitempty"`
	ApprovedBy        *int64       `json:"approved_by,string,omitempty"`
	FullName          *string      `json:"full_name,omitempty"`
	Phone             *string      `json:"phone,omitempty"`
	Email             string       `json:"email"`
	Role              Role         `json:"role"`
	Status            MemberStatus `json:"status"`
	ID                int64        `json:"id,string"`
	OrgID             int64        `json:"org_id,string"`
	UserID            int64        `json:"user_id,string"`
	RequiresApproval  bool         `json:"requires_approval"`
}
