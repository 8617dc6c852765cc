package services

import (
	"labrecords/internal/apperrors"
	"labrecords/internal/models"
	"labrecords/internal/repository"
)

type SessionService struct {
	sessions repository.SessionRepository
}

func NewSessionService(sessions repository.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// List returns the user's active sessions, newest first, flagging the one
// backing the current request.
func (s *SessionService) List(userID, currentSessionID uint) ([]models.SessionView, error) {
	sessions, err := s.sessions.FindActiveByUser(userID)
	if err != nil {
		return nil, apperrors.Persistence("could not list sessions", err)
	}
	views := make([]models.SessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, session.View(currentSessionID))
	}
	return views, nil
}

// Delete removes one of the user's sessions. Deleting a session that does
// not exist, or that belongs to someone else, is NotFound.
func (s *SessionService) Delete(userID, sessionID uint) error {
	deleted, err := s.sessions.DeleteForUser(sessionID, userID)
	if err != nil {
		return apperrors.Persistence("could not delete session", err)
	}
	if !deleted {
		return apperrors.NotFound("Session not found")
	}
	return nil
}
