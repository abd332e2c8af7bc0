package device

import "context"

// DeviceService authenticates devices and ingests the punch batches
// they push.
type DeviceService interface {
	// Authenticate verifies a device's API key and that it is ACTIVE
	Authenticate(ctx context.Context, deviceID, apiKey string) (Device, error)

	// IngestPunches appends a batch of punch events atomically. Events
	// whose fingerprint id has no enrolled employee are counted as
	// skipped, not rejected.
	IngestPunches(ctx context.Context, req IngestPunchesRequest) (IngestPunchesResponse, error)
}
