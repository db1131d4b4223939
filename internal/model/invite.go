package model

import "time"

type InviteStatus string

const (
	InviteStatusPending InviteStatus = "pending"
)

// Invite is a pending offer for a specific email to join an organization
// with a specific role. It is consumed exactly once on acceptance.
type Invite struct {
	CreatedAt        time.Time    `json:"created_at"`
	Email            string       `json:"email"`
	Role             Role         `json:"role"`
	Status           InviteStatus `json:"status"`
	ID               int64        `json:"id,string"`
	OrgID            int64        `json:"org_id,string"`
	InvitedBy        int64        `json:"invited_by,string"`
	RequiresApproval bool         `json:"requires_approval"`
}
