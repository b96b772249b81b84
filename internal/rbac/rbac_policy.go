package rbac

import (
	"strconv"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
)

const (
	ResourceJob         = "job"
	ResourceApplication = "application"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Subject is the casbin subject for a role id.
func Subject(roleID uint) string {
	return "role:" + strconv.FormatUint(uint64(roleID), 10)
}

// DefaultPolicies returns the static permission table.
func DefaultPolicies() [][]string {
	employer := Subject(schema.RoleEmployer)
	applicant := Subject(schema.RoleApplicant)

	return [][]string{
		{employer, ResourceJob, ActionCreate},
		{employer, ResourceJob, ActionUpdate},
		{employer, ResourceJob, ActionDelete},
		{employer, ResourceApplication, ActionRead},

		{applicant, ResourceApplication, ActionCreate},
		{applicant, ResourceApplication, ActionDelete},
		{applicant, ResourceApplication, ActionRead},
	}
}
