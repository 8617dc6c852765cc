package routes

import (
	"github.com/gin-gonic/gin"
)

func SessionRoutes(r *gin.Engine, deps Deps) {
	sessions := r.Group("/api/sessions")
	sessions.Use(deps.Tokens.RequireAuth())
	{
		sessions.GET("", deps.Sessions.ListSessions)
		sessions.DELETE("/:id", deps.Sessions.DeleteSession)
	}
}
