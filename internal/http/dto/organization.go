package dto

import (
	"time"

	"crewbase.app/org-server/internal/model"
)

type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Slug string `json:"slug" binding:"required,min=1,max=255"`
}

type OrganizationResponse struct {
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	ID          int64     `json:"id,string"`
	OwnerUserID int64     `json:"owner_user_id,string"`
}

func ToOrganizationResponse(org *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		Status:      string(org.Status),
		OwnerUserID: org.OwnerUserID,
		CreatedAt:   org.CreatedAt,
	}
}
