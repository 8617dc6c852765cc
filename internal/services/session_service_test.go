package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"labrecords/internal/apperrors"
	"labrecords/internal/menu"
	"labrecords/internal/models"
)

func TestListSessionsMarksCurrent(t *testing.T) {
	sessions := new(MockSessionRepository)
	svc := NewSessionService(sessions)

	sessions.On("FindActiveByUser", uint(7)).Return([]models.Session{
		{Model: gorm.Model{ID: 21, CreatedAt: time.Now()}, UserID: 7, UserAgent: "laptop"},
		{Model: gorm.Model{ID: 12, CreatedAt: time.Now().Add(-time.Hour)}, UserID: 7, UserAgent: "phone"},
	}, nil)

	views, err := svc.List(7, 12)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.False(t, views[0].IsCurrent)
	assert.Equal(t, "laptop", views[0].UserAgent)
	assert.True(t, views[1].IsCurrent)
}

func TestListSessionsEmpty(t *testing.T) {
	sessions := new(MockSessionRepository)
	svc := NewSessionService(sessions)

	sessions.On("FindActiveByUser", uint(7)).Return([]models.Session{}, nil)

	views, err := svc.List(7, 12)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestDeleteSessionNotOwnedIsNotFound(t *testing.T) {
	sessions := new(MockSessionRepository)
	svc := NewSessionService(sessions)

	sessions.On("DeleteForUser", uint(33), uint(7)).Return(false, nil)

	err := svc.Delete(7, 33)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, kindOf(t, err))
}

func TestDeleteSessionRepositoryFailure(t *testing.T) {
	sessions := new(MockSessionRepository)
	svc := NewSessionService(sessions)

	sessions.On("DeleteForUser", uint(12), uint(7)).Return(false, errors.New("connection reset"))

	err := svc.Delete(7, 12)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindPersistence, kindOf(t, err))
}

func TestCurrentUserReturnsRoleMenu(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("FindByID", uint(7)).Return(&models.User{
		Model: gorm.Model{ID: 7},
		Email: "nurse@clinic.example",
		Role:  models.RoleNurse,
	}, nil)

	view, links, err := svc.CurrentUser(7)
	require.NoError(t, err)

	assert.Equal(t, models.RoleNurse, view.Role)
	assert.Equal(t, menu.LinksForRole(models.RoleNurse), links)
	require.NotEmpty(t, links)
	assert.Equal(t, "Dashboard", links[0].Name)
}

func TestCurrentUserMissingIsNotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("FindByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.CurrentUser(99)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, kindOf(t, err))
}
