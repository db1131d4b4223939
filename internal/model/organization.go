package model

import "time"

type OrgStatus string

const (
	OrgStatusActive OrgStatus = "active"
)

// Organization is a tenant workspace owned by one founding user.
type Organization struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Status      OrgStatus `json:"status"`
	ID          int64     `json:"id,string"`
	OwnerUserID int64     `json:"owner_user_id,string"`
}
