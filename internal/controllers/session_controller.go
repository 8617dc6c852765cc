package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"labrecords/internal/middleware"
	"labrecords/internal/services"
)

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// ListSessions returns the caller's active sessions with the current one
// flagged.
func (ctl *SessionController) ListSessions(c *gin.Context) {
	views, err := ctl.sessions.List(middleware.UserID(c), middleware.SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// DeleteSession removes one of the caller's sessions by id.
func (ctl *SessionController) DeleteSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID format"})
		return
	}

	if err := ctl.sessions.Delete(middleware.UserID(c), uint(sessionID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session removed"})
}
