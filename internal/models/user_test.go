package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func sampleUser(t *testing.T) *User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Sunrise99"), bcrypt.MinCost)
	require.NoError(t, err)
	lastLogin := time.Now().Add(-time.Hour)
	return &User{
		Model:    gorm.Model{ID: 12, CreatedAt: time.Now().Add(-48 * time.Hour), UpdatedAt: time.Now()},
		Email:    "amina.yusuf@clinic.example",
		Password: string(hash),
		Role:     RoleDoctor,
		Profile: Profile{
			FirstName:      "Amina",
			LastName:       "Yusuf",
			PhoneNumber:    "+2519115550123",
			Specialization: "Cardiology",
			LicenseNumber:  "MD-4417-X",
		},
		Verified:  false,
		IsActive:  true,
		LastLogin: &lastLogin,
	}
}

func TestComparePassword(t *testing.T) {
	user := sampleUser(t)
	assert.True(t, user.ComparePassword("Sunrise99"))
	assert.False(t, user.ComparePassword("Sunrise98"))
	assert.False(t, user.ComparePassword(""))
}

func TestOmitSensitiveNeverExposesPassword(t *testing.T) {
	user := sampleUser(t)
	raw, err := json.Marshal(user.OmitSensitive())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "password")
	assert.Equal(t, user.Email, decoded["email"])
	assert.Contains(t, decoded, "isActive")
	assert.Contains(t, decoded, "lastLogin")
}

func TestPublicProfileDropsAuditFields(t *testing.T) {
	user := sampleUser(t)
	raw, err := json.Marshal(user.PublicProfile())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "password")
	assert.NotContains(t, decoded, "isActive")
	assert.NotContains(t, decoded, "lastLogin")
	assert.NotContains(t, decoded, "createdAt")
	assert.Equal(t, user.Email, decoded["email"])
}

func TestRefProjection(t *testing.T) {
	user := sampleUser(t)
	ref := user.Ref()
	assert.Equal(t, user.ID, ref.ID)
	assert.Equal(t, user.Email, ref.Email)
	assert.Equal(t, user.Role, ref.Role)
	assert.Equal(t, user.Profile, ref.Profile)

	raw, err := json.Marshal(ref)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "password")
	assert.NotContains(t, decoded, "verified")
}

func TestLicenseMirrorSync(t *testing.T) {
	user := sampleUser(t)
	require.NoError(t, user.BeforeSave(nil))
	require.NotNil(t, user.LicenseNumber)
	assert.Equal(t, "MD-4417-X", *user.LicenseNumber)

	user.Profile.LicenseNumber = ""
	require.NoError(t, user.BeforeSave(nil))
	assert.Nil(t, user.LicenseNumber)
}

func TestRoleAndBloodTypeSets(t *testing.T) {
	for _, role := range Roles {
		assert.True(t, IsValidRole(role))
	}
	assert.False(t, IsValidRole("surgeon"))
	assert.False(t, IsValidRole(""))

	for _, bt := range BloodTypes {
		assert.True(t, IsValidBloodType(bt))
	}
	assert.False(t, IsValidBloodType("C+"))
}
