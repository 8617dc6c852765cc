package services

import (
	"errors"

	"gorm.io/gorm"

	"labrecords/internal/apperrors"
	"labrecords/internal/menu"
	"labrecords/internal/models"
	"labrecords/internal/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// CurrentUser resolves an authenticated user id to the sensitive-omitted
// projection plus the navigation links for their role.
func (s *UserService) CurrentUser(userID uint) (models.UserView, []menu.Link, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserView{}, nil, apperrors.NotFound("User not found")
		}
		return models.UserView{}, nil, apperrors.Persistence("could not look up user", err)
	}
	return user.OmitSensitive(), menu.LinksForRole(user.Role), nil
}
