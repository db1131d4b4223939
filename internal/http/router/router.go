// Package router wires gin routes to handlers.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"crewbase.app/org-server/internal/http/handler"
	"crewbase.app/org-server/internal/http/middleware"
	"crewbase.app/org-server/internal/service"
)

// New builds the API router. Everything under /organizations and /invites
// requires an authenticated caller.
func New(
	serviceName string,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	orgHandler *handler.OrganizationHandler,
	inviteHandler *handler.InviteHandler,
	memberHandler *handler.MemberHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	AuthRouter(r.Group("/auth"), authHandler)

	requireIdentity := middleware.RequireIdentity(authService)

	orgs := r.Group("/organizations", requireIdentity)
	OrganizationRouter(orgs, orgHandler, inviteHandler, memberHandler)

	invites := r.Group("/invites", requireIdentity)
	InviteRouter(invites, inviteHandler)

	return r
}
