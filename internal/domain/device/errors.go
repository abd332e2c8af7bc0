package device

import "errors"

var (
	ErrDeviceNotFound   = errors.New("device not found")
	ErrDeviceInactive   = errors.New("device is not active")
	ErrInvalidDeviceKey = errors.New("invalid device key")
)
