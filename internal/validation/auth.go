package validation

import (
	"regexp"
	"time"

	"labrecords/internal/apperrors"
	"labrecords/internal/models"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// RegisterInput is the registration payload. The profile is the union of all
// role variants; which fields are required is decided by the role validator.
type RegisterInput struct {
	Email           string       `json:"email" validate:"required,email,max=255"`
	Password        string       `json:"password" validate:"required"`
	ConfirmPassword string       `json:"confirmPassword" validate:"required"`
	Role            string       `json:"role" validate:"required"`
	Profile         ProfileInput `json:"profile"`
}

// ProfileInput carries the raw profile fields. DateOfBirth stays a string so
// an unparseable date is a field error, not a bind failure.
type ProfileInput struct {
	FirstName   string `json:"firstName" validate:"omitempty,min=2"`
	LastName    string `json:"lastName" validate:"omitempty,min=2"`
	DateOfBirth string `json:"dateOfBirth"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address" validate:"omitempty,min=5"`

	Specialization string `json:"specialization,omitempty"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
	Department     string `json:"department,omitempty"`

	PatientID        string   `json:"patientId,omitempty"`
	BloodType        string   `json:"bloodType,omitempty"`
	Allergies        []string `json:"allergies,omitempty"`
	GuardianFullName string   `json:"guardianFullName,omitempty"`
	RelationShip     string   `json:"relationShip,omitempty"`
	GuardianPhone    string   `json:"guardianPhone,omitempty"`

	CaseLoad *int `json:"caseLoad,omitempty" validate:"omitempty,gt=0"`

	Certification string `json:"certification,omitempty"`
	LabDepartment string `json:"labDepartment,omitempty"`
}

// LoginInput is the credential payload for authentication.
type LoginInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	UserAgent string `json:"userAgent,omitempty"`
}

// ValidateLogin checks the login payload shape. Credential verification is
// the auth service's job.
func ValidateLogin(input LoginInput) []apperrors.FieldError {
	return collectTagErrors(input)
}

// ValidateRegistration checks the full registration payload: account fields,
// password rules, and the profile variant selected by the role.
func ValidateRegistration(input RegisterInput) []apperrors.FieldError {
	fields := collectTagErrors(input)
	add := func(field, message string) {
		fields = append(fields, apperrors.FieldError{Field: field, Message: message})
	}

	if input.Password != "" {
		for _, msg := range passwordProblems(input.Password) {
			add("password", msg)
		}
	}
	if input.ConfirmPassword != "" && input.Password != input.ConfirmPassword {
		add("confirmPassword", "Passwords do not match")
	}

	if input.Role != "" && !models.IsValidRole(input.Role) {
		add("role", "Invalid role")
		return fields
	}

	if input.Role != "" {
		validateBaseProfile(input.Profile, add)
		if roleValidator, ok := profileValidators[input.Role]; ok {
			roleValidator(input.Profile, add)
		}
	}
	return fields
}

func passwordProblems(password string) []string {
	var problems []string
	if len(password) < 8 {
		problems = append(problems, "Password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	if !hasUpper {
		problems = append(problems, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		problems = append(problems, "Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		problems = append(problems, "Password must contain at least one number")
	}
	return problems
}

func validateBaseProfile(p ProfileInput, add func(field, message string)) {
	if p.FirstName == "" {
		add("profile.firstName", "First name must be at least 2 characters")
	}
	if p.LastName == "" {
		add("profile.lastName", "Last name must be at least 2 characters")
	}
	if _, problem := parseDateOfBirth(p.DateOfBirth); problem != "" {
		add("profile.dateOfBirth", problem)
	}
	if !phonePattern.MatchString(p.PhoneNumber) {
		add("profile.phoneNumber", "Invalid phone number")
	}
}

// parseDateOfBirth accepts RFC 3339 or plain dates and rejects anything
// unparseable or in the future.
func parseDateOfBirth(raw string) (time.Time, string) {
	if raw == "" {
		return time.Time{}, "is required"
	}
	dob, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		dob, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		return time.Time{}, "Invalid date format"
	}
	if !dob.Before(time.Now()) {
		return time.Time{}, "Date of birth must be in the past"
	}
	return dob, ""
}

// profileValidators is the tagged union over role: each variant statically
// enumerates the profile fields it requires beyond the base set.
var profileValidators = map[string]func(ProfileInput, func(field, message string)){
	models.RoleDoctor: func(p ProfileInput, add func(string, string)) {
		if len(p.Specialization) < 3 {
			add("profile.specialization", "Specialization must be at least 3 characters")
		}
		if len(p.LicenseNumber) < 6 {
			add("profile.licenseNumber", "License number must be at least 6 characters")
		}
	},
	models.RoleNurse: func(p ProfileInput, add func(string, string)) {
		if len(p.LicenseNumber) < 6 {
			add("profile.licenseNumber", "License number must be at least 6 characters")
		}
	},
	models.RolePatient: func(p ProfileInput, add func(string, string)) {
		if p.PatientID != "" && len(p.PatientID) < 4 {
			add("profile.patientId", "Patient ID must be at least 4 characters")
		}
		if p.BloodType != "" && !models.IsValidBloodType(p.BloodType) {
			add("profile.bloodType", "Invalid blood type")
		}
		if len(p.GuardianFullName) < 2 {
			add("profile.guardianFullName", "Guardian full name must be at least 2 characters")
		}
		if len(p.RelationShip) < 2 {
			add("profile.relationShip", "Relationship must be at least 2 characters")
		}
		if len(p.GuardianPhone) < 7 {
			add("profile.guardianPhone", "Guardian phone must be at least 7 characters")
		}
	},
	models.RoleSocialWorker: func(p ProfileInput, add func(string, string)) {
		// caseLoad positivity rides on the struct tag; nothing else required.
	},
	models.RoleLabScientist: func(p ProfileInput, add func(string, string)) {
		// certification and labDepartment are both optional.
	},
	models.RoleAdmin: func(p ProfileInput, add func(string, string)) {
		// admins carry only the base profile.
	},
}

// BuildProfile converts a validated profile payload into the stored document,
// keeping only the fields belonging to the role's variant.
func BuildProfile(role string, p ProfileInput) models.Profile {
	dob, _ := parseDateOfBirth(p.DateOfBirth)
	profile := models.Profile{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: dob,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
	}
	switch role {
	case models.RoleDoctor:
		profile.Specialization = p.Specialization
		profile.LicenseNumber = p.LicenseNumber
		profile.Department = p.Department
	case models.RoleNurse:
		profile.LicenseNumber = p.LicenseNumber
		profile.Department = p.Department
	case models.RolePatient:
		profile.PatientID = p.PatientID
		profile.BloodType = p.BloodType
		profile.Allergies = p.Allergies
		profile.GuardianFullName = p.GuardianFullName
		profile.RelationShip = p.RelationShip
		profile.GuardianPhone = p.GuardianPhone
	case models.RoleSocialWorker:
		profile.CaseLoad = p.CaseLoad
	case models.RoleLabScientist:
		profile.Certification = p.Certification
		profile.LabDepartment = p.LabDepartment
	}
	return profile
}
