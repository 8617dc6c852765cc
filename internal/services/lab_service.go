package services

import (
	"errors"

	"github.com/sirupsen/logrus"

	"labrecords/internal/apperrors"
	"labrecords/internal/models"
	"labrecords/internal/repository"
	"labrecords/internal/validation"
)

type LabReportService struct {
	reports repository.LabReportRepository
	users   repository.UserRepository
}

func NewLabReportService(reports repository.LabReportRepository, users repository.UserRepository) *LabReportService {
	return &LabReportService{reports: reports, users: users}
}

// CreateReport validates the payload, resolves the referenced users and
// persists the report. The stored record comes back with generated id,
// lab number, timestamps and enriched references.
func (s *LabReportService) CreateReport(input validation.LabReportInput) (models.LabReportView, error) {
	if fields := validation.ValidateLabReport(input); len(fields) > 0 {
		return models.LabReportView{}, apperrors.Validation(fields)
	}

	if err := s.checkReferences(input); err != nil {
		return models.LabReportView{}, err
	}

	report := validation.BuildLabReport(input)
	if err := s.reports.Create(&report); err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			// Rejected by the model's own structural checks.
			return models.LabReportView{}, appErr
		}
		logrus.WithError(err).Error("could not create lab report")
		return models.LabReportView{}, apperrors.Persistence("could not create lab report", err)
	}

	stored, err := s.reports.FindByID(report.ID)
	if err != nil {
		return models.LabReportView{}, apperrors.Persistence("could not load created report", err)
	}
	if stored == nil {
		return models.LabReportView{}, apperrors.Persistence("created report missing on re-read", nil)
	}
	return stored.View(), nil
}

// checkReferences resolves patient, performer and the optional requester in a
// single batched lookup, then checks role appropriateness.
func (s *LabReportService) checkReferences(input validation.LabReportInput) error {
	ids := []uint{input.Patient, input.PerformedBy}
	if input.RequestedBy != nil {
		ids = append(ids, *input.RequestedBy)
	}

	users, err := s.users.FindByIDs(ids)
	if err != nil {
		return apperrors.Persistence("could not resolve report references", err)
	}
	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	patient, ok := byID[input.Patient]
	if !ok {
		return apperrors.NotFound("patient does not reference an existing user")
	}
	performer, ok := byID[input.PerformedBy]
	if !ok {
		return apperrors.NotFound("performedBy does not reference an existing user")
	}
	if input.RequestedBy != nil {
		if _, ok := byID[*input.RequestedBy]; !ok {
			return apperrors.NotFound("requestedBy does not reference an existing user")
		}
	}

	var fields []apperrors.FieldError
	if patient.Role != models.RolePatient {
		fields = append(fields, apperrors.FieldError{
			Field: "patient", Message: "must reference a patient account",
		})
	}
	if performer.Role != models.RoleLabScientist {
		fields = append(fields, apperrors.FieldError{
			Field: "performedBy", Message: "must reference a lab scientist account",
		})
	}
	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}

// ListReports returns every report, newest first, with patient and performer
// expanded to their restricted projections.
func (s *LabReportService) ListReports() ([]models.LabReportView, error) {
	reports, err := s.reports.FindAll()
	if err != nil {
		return nil, apperrors.Persistence("could not list lab reports", err)
	}
	views := make([]models.LabReportView, 0, len(reports))
	for i := range reports {
		views = append(views, reports[i].View())
	}
	return views, nil
}

// GetReportByID returns the enriched report, or nil when the id does not
// exist. Absence is not an error; the boundary decides what empty means.
func (s *LabReportService) GetReportByID(id uint) (*models.LabReportView, error) {
	report, err := s.reports.FindByID(id)
	if err != nil {
		return nil, apperrors.Persistence("could not fetch lab report", err)
	}
	if report == nil {
		return nil, nil
	}
	view := report.View()
	return &view, nil
}
