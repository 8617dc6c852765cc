package routes

import (
	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine, deps Deps) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", deps.Auth.Register)
		auth.POST("/login", deps.Auth.Login)
		auth.GET("/refresh", deps.Auth.Refresh)
		auth.GET("/logout", deps.Tokens.RequireAuth(), deps.Auth.Logout)
	}
}
