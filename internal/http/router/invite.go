package router

import (
	"github.com/gin-gonic/gin"

	"crewbase.app/org-server/internal/http/handler"
)

func InviteRouter(rg *gin.RouterGroup, h *handler.InviteHandler) {
	rg.POST("/:inviteID/accept", h.Accept)
}
