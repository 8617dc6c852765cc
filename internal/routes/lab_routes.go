package routes

import (
	"github.com/gin-gonic/gin"
)

func LabRoutes(r *gin.Engine, deps Deps) {
	lab := r.Group("/api/lab")
	lab.Use(deps.Tokens.RequireAuth())
	{
		lab.GET("", deps.Lab.ListReports)
		lab.GET("/:id", deps.Lab.GetReport)
		lab.POST("/create-report", deps.Lab.CreateReport)
	}
}
