package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewbase.app/org-server/internal/http/dto"
	"crewbase.app/org-server/internal/http/middleware"
	"crewbase.app/org-server/internal/model"
	"crewbase.app/org-server/internal/service"
)

type InviteHandler struct {
	inviteService service.InviteService
}

func NewInviteHandler(inviteService service.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

func (h *InviteHandler) Create(c *gin.Context) {
	caller, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orgID, ok := pathID(c, "orgID")
	if !ok {
		return
	}

	var req dto.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and a role of admin or staff are required"})
		return
	}

	invite, err := h.inviteService.Create(c.Request.Context(), caller, service.CreateInviteParams{
		OrgID:            orgID,
		Email:            req.Email,
		Role:             model.Role(req.Role),
		RequiresApproval: req.RequiresApproval,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInviteResponse(invite))
}

func (h *InviteHandler) List(c *gin.Context) {
	caller, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orgID, ok := pathID(c, "orgID")
	if !ok {
		return
	}

	invites, err := h.inviteService.List(c.Request.Context(), caller, orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInviteListResponse(invites))
}

func (h *InviteHandler) Accept(c *gin.Context) {
	caller, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	inviteID, ok := pathID(c, "inviteID")
	if !ok {
		return
	}

	m, err := h.inviteService.Accept(c.Request.Context(), caller, inviteID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMembershipResponse(m))
}
