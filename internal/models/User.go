package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleDoctor       = "doctor"
	RoleNurse        = "nurse"
	RoleSocialWorker = "social_worker"
	RoleLabScientist = "lab_scientist"
	RolePatient      = "patient"
	RoleAdmin        = "admin"
)

// Roles lists every account role the system accepts.
var Roles = []string{RoleDoctor, RoleNurse, RoleSocialWorker, RoleLabScientist, RolePatient, RoleAdmin}

// BloodTypes is the closed set shared by the patient profile and the
// rapid-diagnostic blood group result.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

func IsValidBloodType(bt string) bool {
	for _, b := range BloodTypes {
		if b == bt {
			return true
		}
	}
	return false
}

// Profile holds the per-role account details. Which fields are required is
// decided by the role-discriminated validators in internal/validation; the
// struct itself is the union of every variant and is stored as a JSON document.
type Profile struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address,omitempty"`

	// doctor / nurse
	Specialization string `json:"specialization,omitempty"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
	Department     string `json:"department,omitempty"`

	// patient
	PatientID        string   `json:"patientId,omitempty"`
	BloodType        string   `json:"bloodType,omitempty"`
	Allergies        []string `json:"allergies,omitempty"`
	GuardianFullName string   `json:"guardianFullName,omitempty"`
	RelationShip     string   `json:"relationShip,omitempty"`
	GuardianPhone    string   `json:"guardianPhone,omitempty"`

	// social worker
	CaseLoad *int `json:"caseLoad,omitempty"`

	// lab scientist
	Certification string `json:"certification,omitempty"`
	LabDepartment string `json:"labDepartment,omitempty"`
}

type User struct {
	gorm.Model
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`
	Password string  `json:"-" gorm:"not null"`
	Role     string  `json:"role" gorm:"not null;index"`
	Profile  Profile `json:"profile" gorm:"serializer:json"`

	// Mirror of Profile.LicenseNumber so the store can enforce uniqueness.
	// NULL when the role carries no license.
	LicenseNumber *string `json:"-" gorm:"uniqueIndex"`

	Verified  bool       `json:"verified"`
	IsActive  bool       `json:"isActive" gorm:"default:true"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// BeforeSave keeps the unique license column in sync with the profile document.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Profile.LicenseNumber != "" {
		license := u.Profile.LicenseNumber
		u.LicenseNumber = &license
	} else {
		u.LicenseNumber = nil
	}
	return nil
}

// ComparePassword checks a plaintext candidate against the stored bcrypt hash.
// The candidate is never logged or returned.
func (u *User) ComparePassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) == nil
}

// UserView is the sensitive-omitted projection: everything except the password
// hash and the soft-delete marker. Used for general API responses.
type UserView struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Profile   Profile    `json:"profile"`
	Verified  bool       `json:"verified"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// PublicUser additionally drops the activity/audit fields.
type PublicUser struct {
	ID       uint    `json:"id"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Profile  Profile `json:"profile"`
	Verified bool    `json:"verified"`
}

// UserRef is the restricted projection attached to lab-report reads in place
// of the full referenced user record.
type UserRef struct {
	ID      uint    `json:"id"`
	Profile Profile `json:"profile"`
	Email   string  `json:"email"`
	Role    string  `json:"role"`
}

func (u *User) OmitSensitive() UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Profile:   u.Profile,
		Verified:  u.Verified,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u *User) PublicProfile() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		Profile:  u.Profile,
		Verified: u.Verified,
	}
}

func (u *User) Ref() UserRef {
	return UserRef{
		ID:      u.ID,
		Profile: u.Profile,
		Email:   u.Email,
		Role:    u.Role,
	}
}
