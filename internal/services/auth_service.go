// Package services holds the request-scoped operations behind the HTTP
// handlers. Every service is built once in main with its repositories and
// collaborators injected.
package services

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"labrecords/internal/apperrors"
	"labrecords/internal/middleware"
	"labrecords/internal/models"
	"labrecords/internal/repository"
	"labrecords/internal/validation"
)

// One generic denial for both unknown email and wrong password so responses
// cannot be used to enumerate accounts.
const invalidCredentials = "Invalid email or password"

type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	tokens   *middleware.TokenManager
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, tokens *middleware.TokenManager) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokens: tokens}
}

// LoginResult is what a successful login or refresh hands back to the caller.
type LoginResult struct {
	User         models.UserView `json:"user"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}

// Register validates the payload, hashes the password and persists the new
// account. Returns the sensitive-omitted projection.
func (s *AuthService) Register(input validation.RegisterInput) (models.UserView, error) {
	if fields := validation.ValidateRegistration(input); len(fields) > 0 {
		return models.UserView{}, apperrors.Validation(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserView{}, apperrors.Persistence("could not hash password", err)
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hash),
		Role:     input.Role,
		Profile:  validation.BuildProfile(input.Role, input.Profile),
		// Admin accounts start verified; everyone else must be verified later.
		Verified: input.Role == models.RoleAdmin,
		IsActive: true,
	}

	if err := s.users.Create(&user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return models.UserView{}, apperrors.Conflict("email already in use")
		case errors.Is(err, repository.ErrDuplicateLicense):
			return models.UserView{}, apperrors.Conflict("license number already in use")
		default:
			logrus.WithError(err).Error("could not create user")
			return models.UserView{}, apperrors.Persistence("could not create user", err)
		}
	}

	return user.OmitSensitive(), nil
}

// Login checks credentials, opens a session and issues the token pair.
func (s *AuthService) Login(input validation.LoginInput) (*LoginResult, error) {
	if fields := validation.ValidateLogin(input); len(fields) > 0 {
		return nil, apperrors.Validation(fields)
	}

	user, err := s.users.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Auth(invalidCredentials)
		}
		return nil, apperrors.Persistence("could not look up user", err)
	}

	if !user.ComparePassword(input.Password) {
		return nil, apperrors.Auth(invalidCredentials)
	}

	session := models.Session{
		UserID:    user.ID,
		UserAgent: input.UserAgent,
		ExpiresAt: time.Now().Add(middleware.RefreshTokenTTL),
	}
	if err := s.sessions.Create(&session); err != nil {
		return nil, apperrors.Persistence("could not create session", err)
	}

	now := time.Now()
	if err := s.users.SetLastLogin(user.ID, now); err != nil {
		// Login audit only; the login itself stands.
		logrus.WithError(err).Warn("could not record last login")
	}
	user.LastLogin = &now

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, session.ID)
	if err != nil {
		return nil, apperrors.Persistence("could not generate token", err)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(session.ID)
	if err != nil {
		return nil, apperrors.Persistence("could not generate token", err)
	}

	return &LoginResult{
		User:         user.OmitSensitive(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshResult carries the reissued tokens; RefreshToken is empty when the
// session did not need extending.
type RefreshResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Refresh verifies a refresh token, extends the backing session when it is
// close to expiry and issues a fresh access token.
func (s *AuthService) Refresh(refreshToken string) (*RefreshResult, error) {
	sessionID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.Auth("Invalid refresh token")
	}

	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Auth("Session expired")
		}
		return nil, apperrors.Persistence("could not look up session", err)
	}
	if session.Expired() {
		return nil, apperrors.Auth("Session expired")
	}

	result := &RefreshResult{}

	// Roll the session forward when less than a day remains.
	if time.Until(session.ExpiresAt) < 24*time.Hour {
		newExpiry := time.Now().Add(middleware.RefreshTokenTTL)
		if err := s.sessions.UpdateExpiry(session.ID, newExpiry); err != nil {
			return nil, apperrors.Persistence("could not extend session", err)
		}
		rotated, err := s.tokens.GenerateRefreshToken(session.ID)
		if err != nil {
			return nil, apperrors.Persistence("could not generate token", err)
		}
		result.RefreshToken = rotated
	}

	accessToken, err := s.tokens.GenerateAccessToken(session.UserID, session.ID)
	if err != nil {
		return nil, apperrors.Persistence("could not generate token", err)
	}
	result.AccessToken = accessToken
	return result, nil
}

// Logout removes the session backing the current request.
func (s *AuthService) Logout(userID, sessionID uint) error {
	if _, err := s.sessions.DeleteForUser(sessionID, userID); err != nil {
		return apperrors.Persistence("could not delete session", err)
	}
	return nil
}
