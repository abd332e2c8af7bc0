package attendance

import "errors"

var (
	// ErrDataUnavailable marks a dependency failure while deriving a
	// fact. It is deliberately distinct from an ABSENT result so callers
	// can tell "employee absent" from "we don't know".
	ErrDataUnavailable = errors.New("attendance data source unavailable")
)
