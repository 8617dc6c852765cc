package repository

import (
	"time"

	"gorm.io/gorm"

	"labrecords/internal/models"
)

type SessionRepository interface {
	Create(session *models.Session) error
	FindByID(id uint) (*models.Session, error)
	// FindActiveByUser returns the user's non-expired sessions, newest first.
	FindActiveByUser(userID uint) ([]models.Session, error)
	// DeleteForUser removes a session only when it belongs to the user;
	// reports whether a row was removed.
	DeleteForUser(id, userID uint) (bool, error)
	UpdateExpiry(id uint, expiresAt time.Time) error
	DeleteExpired() error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id uint) (*models.Session, error) {
	var session models.Session
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindActiveByUser(userID uint) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) DeleteForUser(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Session{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *sessionRepository) UpdateExpiry(id uint, expiresAt time.Time) error {
	return r.db.Model(&models.Session{}).Where("id = ?", id).Update("expires_at", expiresAt).Error
}

func (r *sessionRepository) DeleteExpired() error {
	return r.db.Where("expires_at <= ?", time.Now()).Delete(&models.Session{}).Error
}
