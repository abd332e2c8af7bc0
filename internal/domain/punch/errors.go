package punch

import "errors"

var (
	ErrInvalidDirection = errors.New("punch direction must be IN or OUT")
)
