package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMailExists           = errors.New("organization with this email already exists")
	ErrDepartmentNotFound   = errors.New("department not found in this organization")
	ErrTooManyDepartments   = errors.New("an organization may have at most 5 departments")
	ErrAdminDeptNotListed   = errors.New("admin department must be one of the listed departments")
)
