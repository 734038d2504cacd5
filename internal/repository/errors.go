package repository

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded indicates the per-(employee, work date) stamp cap
	// was already reached, so the insert was refused.
	ErrCapacityExceeded = errors.New("daily stamp limit reached")

	// ErrDuplicateCode indicates an employee with the same code already
	// exists.
	ErrDuplicateCode = errors.New("employee code already exists")
)
