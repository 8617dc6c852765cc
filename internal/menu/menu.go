// Package menu maps an account role to its ordered navigation entries. Pure
// lookup, no persistence.
package menu

import "labrecords/internal/models"

// Link is one navigation entry shown to a logged-in user.
type Link struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Icon string `json:"icon"`
}

const dashboardPath = "/dashboard"

var doctorLinks = []Link{
	{Name: "Dashboard", Path: dashboardPath, Icon: "dashboard"},
	{Name: "My Patients", Path: "/patients", Icon: "patients"},
	{Name: "Appointments", Path: "/appointments", Icon: "calendar"},
	{Name: "Medical Records", Path: "/medical-records", Icon: "folder"},
	{Name: "Prescriptions", Path: "/prescriptions", Icon: "prescription"},
	{Name: "Lab Results", Path: "/lab-results", Icon: "lab"},
	{Name: "Referrals", Path: "/referrals", Icon: "referral"},
}

var nurseLinks = []Link{
	{Name: "Dashboard", Path: dashboardPath, Icon: "dashboard"},
	{Name: "Patient Vitals", Path: "/vitals", Icon: "vitals"},
	{Name: "Medications", Path: "/medications", Icon: "medication"},
	{Name: "Care Plans", Path: "/care-plans", Icon: "plan"},
	{Name: "Patient Notes", Path: "/notes", Icon: "notes"},
	{Name: "Schedule", Path: "/nurse-schedule", Icon: "calendar"},
}

var socialWorkerLinks = []Link{
	{Name: "Dashboard", Path: dashboardPath, Icon: "dashboard"},
	{Name: "Case Management", Path: "/cases", Icon: "cases"},
	{Name: "Patient Resources", Path: "/resources", Icon: "resources"},
	{Name: "Support Programs", Path: "/programs", Icon: "programs"},
	{Name: "Discharge Planning", Path: "/discharge", Icon: "discharge"},
	{Name: "Community Referrals", Path: "/community", Icon: "community"},
}

var labScientistLinks = []Link{
	{Name: "Dashboard", Path: dashboardPath, Icon: "dashboard"},
	{Name: "Test Orders", Path: "/test-orders", Icon: "orders"},
	{Name: "Sample Management", Path: "/samples", Icon: "sample"},
	{Name: "Test Results", Path: "/results", Icon: "results"},
	{Name: "Equipment", Path: "/equipment", Icon: "equipment"},
	{Name: "Inventory", Path: "/inventory", Icon: "inventory"},
}

var patientLinks = []Link{
	{Name: "Dashboard", Path: dashboardPath, Icon: "dashboard"},
	{Name: "My Appointments", Path: "/my-appointments", Icon: "calendar"},
	{Name: "My Prescriptions", Path: "/my-prescriptions", Icon: "prescription"},
	{Name: "My Test Results", Path: "/my-results", Icon: "lab"},
	{Name: "Medical History", Path: "/my-history", Icon: "folder"},
	{Name: "Messages", Path: "/messages", Icon: "message"},
	{Name: "Billing", Path: "/my-billing", Icon: "billing"},
}

// adminLinks returns the admin-only entries followed by every other role's
// entries with the shared dashboard filtered out.
func adminLinks() []Link {
	links := []Link{
		{Name: "Admin Dashboard", Path: "/admin-dashboard", Icon: "dashboard"},
		{Name: "User Management", Path: "/user-management", Icon: "users"},
		{Name: "System Settings", Path: "/settings", Icon: "settings"},
	}
	for _, roleLinks := range [][]Link{doctorLinks, nurseLinks, socialWorkerLinks, labScientistLinks, patientLinks} {
		for _, link := range roleLinks {
			if link.Path != dashboardPath {
				links = append(links, link)
			}
		}
	}
	return links
}

// LinksForRole returns the navigation list for a role. Unknown roles fall
// back to the patient list.
func LinksForRole(role string) []Link {
	switch role {
	case models.RoleDoctor:
		return doctorLinks
	case models.RoleNurse:
		return nurseLinks
	case models.RoleSocialWorker:
		return socialWorkerLinks
	case models.RoleLabScientist:
		return labScientistLinks
	case models.RoleAdmin:
		return adminLinks()
	default:
		return patientLinks
	}
}
