package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrMailExists         = errors.New("employee with this email already exists in the organization")
	ErrInvalidAge         = errors.New("age must be between 18 and 100")
	ErrInvalidRole        = errors.New("unknown employee role")
	ErrManagerOnly        = errors.New("requester must be a Manager")
	ErrDepartmentMismatch = errors.New("department does not belong to this organization")
)
