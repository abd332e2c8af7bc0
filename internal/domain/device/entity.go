package device

import "time"

type DeviceStatus string

const (
	DeviceStatusActive      DeviceStatus = "ACTIVE"
	DeviceStatusInactive    DeviceStatus = "INACTIVE"
	DeviceStatusMaintenance DeviceStatus = "MAINTENANCE"
)

// Device is a registered punch source (fingerprint reader, face
// terminal, card reader). The wire protocol to the hardware is handled
// by the integration layer; this service only records punches the
// device pushes and authenticates it by API key.
type Device struct {
	ID         string
	Name       string
	Type       string // "FINGERPRINT", "FACE", "CARD"
	IPAddress  *string
	Port       *int
	Protocol   *string
	Status     DeviceStatus
	APIKeyHash string // bcrypt hash of the device key
	LastSync   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
