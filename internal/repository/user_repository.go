// Package repository wraps all database access behind interfaces constructed
// once at startup and handed to the services. No package-level DB handle.
package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"labrecords/internal/models"
)

// ErrDuplicateEmail and ErrDuplicateLicense are returned when the store's
// unique indexes reject a write.
var (
	ErrDuplicateEmail   = errors.New("email already in use")
	ErrDuplicateLicense = errors.New("license number already in use")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	// FindByIDs batches a lookup of several users in one query.
	FindByIDs(ids []uint) ([]models.User, error)
	SetLastLogin(id uint, at time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

// translateUniqueViolation maps a unique-index failure onto the duplicate
// sentinel for the column that collided.
func translateUniqueViolation(err error) error {
	unique := errors.Is(err, gorm.ErrDuplicatedKey)
	constraint := ""
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		unique = true
		constraint = string(pqErr.Constraint)
	}
	if !unique && strings.Contains(err.Error(), "23505") {
		unique = true
	}
	if !unique {
		return err
	}
	if strings.Contains(constraint, "license") || strings.Contains(err.Error(), "license") {
		return ErrDuplicateLicense
	}
	return ErrDuplicateEmail
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", at).Error
}
