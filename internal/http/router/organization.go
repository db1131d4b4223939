package router

import (
	"github.com/gin-gonic/gin"

	"crewbase.app/org-server/internal/http/handler"
)

func OrganizationRouter(rg *gin.RouterGroup, orgs *handler.OrganizationHandler, invites *handler.InviteHandler, members *handler.MemberHandler) {
	rg.POST("", orgs.Create)
	rg.GET("/:orgID", orgs.Get)
	rg.GET("/:orgID/invites", invites.List)
	rg.POST("/:orgID/invites", invites.Create)
	rg.GET("/:orgID/members", members.List)
	rg.POST("/:orgID/onboarding", members.SubmitOnboarding)
	rg.POST("/:orgID/members/:memberID/approve", members.Approve)
}
