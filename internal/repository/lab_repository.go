package repository

import (
	"errors"

	"gorm.io/gorm"

	"labrecords/internal/models"
)

type LabReportRepository interface {
	Create(report *models.LabReport) error
	// FindAll returns every report, newest first, with the referenced users
	// preloaded as restricted projections.
	FindAll() ([]models.LabReport, error)
	// FindByID returns (nil, nil) when the id does not exist.
	FindByID(id uint) (*models.LabReport, error)
}

type labReportRepository struct {
	db *gorm.DB
}

func NewLabReportRepository(db *gorm.DB) LabReportRepository {
	return &labReportRepository{db: db}
}

// userRefColumns limits preloaded references to what UserRef exposes. One IN
// query per association regardless of result size.
func userRefColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "email", "role", "profile")
}

func (r *labReportRepository) Create(report *models.LabReport) error {
	return r.db.Create(report).Error
}

func (r *labReportRepository) FindAll() ([]models.LabReport, error) {
	var reports []models.LabReport
	err := r.db.
		Preload("Patient", userRefColumns).
		Preload("RequestedBy", userRefColumns).
		Preload("PerformedBy", userRefColumns).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *labReportRepository) FindByID(id uint) (*models.LabReport, error) {
	var report models.LabReport
	err := r.db.
		Preload("Patient", userRefColumns).
		Preload("RequestedBy", userRefColumns).
		Preload("PerformedBy", userRefColumns).
		First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}
