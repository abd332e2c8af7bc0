package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift definition not found")
	ErrNoAssignment  = errors.New("no shift assignment covers the date")
)
