package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labrecords/internal/middleware"
	"labrecords/internal/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetCurrentUser returns the authenticated user's sensitive-omitted
// projection plus the navigation links for their role.
func (ctl *UserController) GetCurrentUser(c *gin.Context) {
	user, links, err := ctl.users.CurrentUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":      user,
		"menuLinks": links,
	})
}
