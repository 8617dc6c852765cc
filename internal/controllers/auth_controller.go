package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labrecords/internal/middleware"
	"labrecords/internal/services"
	"labrecords/internal/validation"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register creates a new account from the role-discriminated payload.
func (ctl *AuthController) Register(c *gin.Context) {
	var input validation.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.auth.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login authenticates credentials and returns the token pair with the
// sensitive-omitted user.
func (ctl *AuthController) Login(c *gin.Context) {
	var input validation.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.UserAgent == "" {
		input.UserAgent = c.Request.UserAgent()
	}

	result, err := ctl.auth.Login(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Refresh reissues an access token from the refresh token in the
// X-Refresh-Token header.
func (ctl *AuthController) Refresh(c *gin.Context) {
	refreshToken := c.GetHeader("X-Refresh-Token")
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing refresh token"})
		return
	}

	result, err := ctl.auth.Refresh(refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Logout removes the session behind the current access token.
func (ctl *AuthController) Logout(c *gin.Context) {
	if err := ctl.auth.Logout(middleware.UserID(c), middleware.SessionID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
