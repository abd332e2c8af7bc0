package device

import (
	"context"
	"time"
)

type DeviceRepository interface {
	// GetByID retrieves a device by id
	GetByID(ctx context.Context, id string) (Device, error)

	// UpdateLastSync records the time of the latest successful push
	UpdateLastSync(ctx context.Context, id string, at time.Time) error
}
