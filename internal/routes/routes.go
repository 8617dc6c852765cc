package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"labrecords/internal/controllers"
	"labrecords/internal/middleware"
)

// Deps bundles everything the router needs; built once in main.
type Deps struct {
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Sessions *controllers.SessionController
	Lab      *controllers.LabController
	Tokens   *middleware.TokenManager
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())

	// health check
	r.GET("/api", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	AuthRoutes(r, deps)
	UserRoutes(r, deps)
	SessionRoutes(r, deps)
	LabRoutes(r, deps)

	return r
}
