package router

import (
	"github.com/gin-gonic/gin"

	"crewbase.app/org-server/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/exchange", h.Exchange)
	rg.GET("/me", h.Me)
	rg.POST("/logout", h.Logout)
}
