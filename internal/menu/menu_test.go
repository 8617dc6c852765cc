package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryStaffRoleStartsAtDashboard(t *testing.T) {
	for _, role := range []string{"doctor", "nurse", "social_worker", "lab_scientist", "patient"} {
		links := LinksForRole(role)
		require.NotEmpty(t, links, role)
		assert.Equal(t, "Dashboard", links[0].Name, role)
		assert.Equal(t, "/dashboard", links[0].Path, role)
	}
}

func TestAdminLinksAreTheUnionOfAllRoles(t *testing.T) {
	admin := LinksForRole("admin")
	adminPaths := make(map[string]bool, len(admin))
	for _, link := range admin {
		adminPaths[link.Path] = true
	}

	// Superset of every other role's entries, minus the shared dashboard.
	for _, role := range []string{"doctor", "nurse", "social_worker", "lab_scientist", "patient"} {
		for _, link := range LinksForRole(role) {
			if link.Path == "/dashboard" {
				continue
			}
			assert.True(t, adminPaths[link.Path], "admin menu missing %s from %s", link.Path, role)
		}
	}

	// No duplicated shared dashboard; admin has its own.
	assert.False(t, adminPaths["/dashboard"])
	assert.Equal(t, "Admin Dashboard", admin[0].Name)

	// Exactly two admin-only management entries beyond the dashboard.
	adminOnly := []Link{admin[1], admin[2]}
	assert.Equal(t, "User Management", adminOnly[0].Name)
	assert.Equal(t, "System Settings", adminOnly[1].Name)
	for _, role := range []string{"doctor", "nurse", "social_worker", "lab_scientist", "patient"} {
		for _, link := range LinksForRole(role) {
			assert.NotEqual(t, adminOnly[0].Path, link.Path)
			assert.NotEqual(t, adminOnly[1].Path, link.Path)
		}
	}
}

func TestAdminListHasNoDuplicatePaths(t *testing.T) {
	seen := map[string]bool{}
	for _, link := range LinksForRole("admin") {
		assert.False(t, seen[link.Path], "duplicate path %s", link.Path)
		seen[link.Path] = true
	}
}

func TestUnknownRoleFallsBackToPatient(t *testing.T) {
	assert.Equal(t, LinksForRole("patient"), LinksForRole("intern"))
}
