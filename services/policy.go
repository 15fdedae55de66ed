package services

import "github.com/infantleo38/brainx/models"

// Operations gated by member role. Handlers and services consult this table
// once per request instead of comparing role strings inline.
const (
	OpViewStudentMembers = "chat.members.view_students"
	OpUploadResource     = "chat.resources.upload"
)

var policy = map[string]map[string]bool{
	// Students only see staff and themselves in member lists; every other
	// role sees the full roster.
	OpViewStudentMembers: {
		models.RoleAdmin:       true,
		models.RoleTeacher:     true,
		models.RoleCoordinator: true,
		models.RoleCounselor:   true,
		models.RoleSupport:     true,
		models.RoleParent:      true,
	},
	OpUploadResource: {
		models.RoleAdmin:       true,
		models.RoleStudent:     true,
		models.RoleTeacher:     true,
		models.RoleCoordinator: true,
		models.RoleCounselor:   true,
		models.RoleSupport:     true,
		models.RoleParent:      true,
	},
}

// Allowed reports whether the role may perform the operation. Unknown
// operations are denied.
func Allowed(role, op string) bool {
	roles, ok := policy[op]
	if !ok {
		return false
	}
	return roles[role]
}
