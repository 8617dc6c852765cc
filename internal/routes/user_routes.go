package routes

import (
	"github.com/gin-gonic/gin"
)

func UserRoutes(r *gin.Engine, deps Deps) {
	user := r.Group("/api/user")
	user.Use(deps.Tokens.RequireAuth())
	{
		user.GET("", deps.Users.GetCurrentUser)
	}
}
