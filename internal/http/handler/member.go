package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewbase.app/org-server/internal/http/dto"
	"crewbase.app/org-server/internal/http/middleware"
	"crewbase.app/org-server/internal/service"
)

type MemberHandler struct {
	membershipService service.MembershipService
}

func NewMemberHandler(membershipService service.MembershipService) *MemberHandler {
	return &MemberHandler{membershipService: membershipService}
}

func (h *MemberHandler) SubmitOnboarding(c *gin.Context) {
	caller, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orgID, ok := pathID(c, "orgID")
	if !ok {
		return
	}

	var req dto.SubmitOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full_name is required"})
		return
	}

	m, err := h.membershipService.SubmitOnboarding(c.Request.Context(), caller, orgID, req.FullName, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMembershipResponse(m))
}

func (h *MemberHandler) List(c *gin.Context) {
	caller, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orgID, ok := pathID(c, "orgID")
	if !ok {
		return
	}

	members, err := h.membershipService.List(c.Request.Context(), caller, orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMembershipListResponse(members))
}

func (h *MemberHandler) Approve(c *gin.Context) {
	caller, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orgID, ok := pathID(c, "orgID")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberID")
	if !ok {
		return
	}

	m, err := h.membershipService.Approve(c.Request.Context(), caller, orgID, memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMembershipResponse(m))
}
