package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleCreator = "creator"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "❌ Only admins may access %s."
	ErrOnlyCreatorsCanAccess = "❌ Only creators may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorCreator(feature string) string {
	return fmt.Sprintf(ErrOnlyCreatorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCreator,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	CreatorOnly = []string{
		RoleCreator,
	}
)
