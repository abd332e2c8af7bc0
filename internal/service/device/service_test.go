package device_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/biotrack/attendance-backend-go/internal/domain/device"
	"github.com/biotrack/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack/attendance-backend-go/internal/domain/punch"
	deviceservice "github.com/biotrack/attendance-backend-go/internal/service/device"
)

type fakeDeviceRepo struct {
	devices  map[string]device.Device
	syncedAt map[string]time.Time
}

func (f *fakeDeviceRepo) GetByID(_ context.Context, id string) (device.Device, error) {
	dev, ok := f.devices[id]
	if !ok {
		return device.Device{}, device.ErrDeviceNotFound
	}
	return dev, nil
}

func (f *fakeDeviceRepo) UpdateLastSync(_ context.Context, id string, at time.Time) error {
	if f.syncedAt == nil {
		f.syncedAt = make(map[string]time.Time)
	}
	f.syncedAt[id] = at
	return nil
}

type fakeEmployeeRepo struct {
	byFingerprint map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByFingerprintID(_ context.Context, fingerprintID string) (employee.Employee, error) {
	emp, ok := f.byFingerprint[fingerprintID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByDepartment(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByIDs(context.Context, []string) ([]employee.Employee, error) {
	return nil, nil
}

type fakePunchRepo struct {
	punches []punch.Punch
	err     error
}

func (f *fakePunchRepo) PunchesFor(context.Context, string, time.Time, time.Time) ([]punch.Punch, error) {
	return f.punches, nil
}

func (f *fakePunchRepo) Append(_ context.Context, p punch.Punch) (punch.Punch, error) {
	if f.err != nil {
		return punch.Punch{}, f.err
	}
	f.punches = append(f.punches, p)
	return p, nil
}

// passthroughTransactor runs the function without a real transaction.
type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func mustHash(t *testing.T, key string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeDevice(t *testing.T, id, key string) device.Device {
	t.Helper()
	return device.Device{
		ID:         id,
		Name:       "Lobby Reader",
		Type:       "FINGERPRINT",
		Status:     device.DeviceStatusActive,
		APIKeyHash: mustHash(t, key),
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	dev := activeDevice(t, "dev-1", "secret-key")
	inactive := activeDevice(t, "dev-2", "secret-key")
	inactive.Status = device.DeviceStatusMaintenance

	repo := &fakeDeviceRepo{devices: map[string]device.Device{
		"dev-1": dev,
		"dev-2": inactive,
	}}
	svc := deviceservice.NewDeviceService(repo, &fakeEmployeeRepo{}, &fakePunchRepo{}, passthroughTransactor{})

	t.Run("valid key", func(t *testing.T) {
		got, err := svc.Authenticate(context.Background(), "dev-1", "secret-key")
		require.NoError(t, err)
		assert.Equal(t, "dev-1", got.ID)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "dev-1", "wrong")
		assert.ErrorIs(t, err, device.ErrInvalidDeviceKey)
	})

	t.Run("inactive device", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "dev-2", "secret-key")
		assert.ErrorIs(t, err, device.ErrDeviceInactive)
	})

	t.Run("unknown device", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "dev-404", "secret-key")
		assert.ErrorIs(t, err, device.ErrDeviceNotFound)
	})
}

func TestIngestPunches(t *testing.T) {
	t.Parallel()

	deviceRepo := &fakeDeviceRepo{devices: map[string]device.Device{
		"dev-1": activeDevice(t, "dev-1", "secret-key"),
	}}
	employeeRepo := &fakeEmployeeRepo{byFingerprint: map[string]employee.Employee{
		"101": {ID: "emp-1", Name: "Ana Putri"},
	}}
	punchRepo := &fakePunchRepo{}
	svc := deviceservice.NewDeviceService(deviceRepo, employeeRepo, punchRepo, passthroughTransactor{})

	resp, err := svc.IngestPunches(context.Background(), device.IngestPunchesRequest{
		DeviceID: "dev-1",
		Punches: []device.PunchEvent{
			{FingerprintID: "101", Timestamp: "2024-01-15T09:00:00Z", Direction: "IN"},
			{FingerprintID: "101", Timestamp: "2024-01-15T17:00:00Z", Direction: "OUT"},
			{FingerprintID: "999", Timestamp: "2024-01-15T09:05:00Z", Direction: "IN"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Accepted)
	assert.Equal(t, 1, resp.Skipped)
	require.Len(t, punchRepo.punches, 2)
	assert.Equal(t, "emp-1", punchRepo.punches[0].EmployeeID)
	assert.Equal(t, punch.DirectionIn, punchRepo.punches[0].Direction)
	assert.Equal(t, "dev-1", punchRepo.punches[0].DeviceID)
	assert.True(t, punchRepo.punches[0].Verified)
	assert.NotEmpty(t, punchRepo.punches[0].ID)
	assert.Contains(t, deviceRepo.syncedAt, "dev-1")
}

func TestIngestPunches_ValidatesEvents(t *testing.T) {
	t.Parallel()

	svc := deviceservice.NewDeviceService(&fakeDeviceRepo{}, &fakeEmployeeRepo{}, &fakePunchRepo{}, passthroughTransactor{})

	_, err := svc.IngestPunches(context.Background(), device.IngestPunchesRequest{
		DeviceID: "dev-1",
		Punches: []device.PunchEvent{
			{FingerprintID: "", Timestamp: "not-a-time", Direction: "SIDEWAYS"},
		},
	})
	assert.Error(t, err)

	_, err = svc.IngestPunches(context.Background(), device.IngestPunchesRequest{DeviceID: "dev-1"})
	assert.Error(t, err)
}

func TestIngestPunches_AppendFailureAborts(t *testing.T) {
	t.Parallel()

	employeeRepo := &fakeEmployeeRepo{byFingerprint: map[string]employee.Employee{
		"101": {ID: "emp-1"},
	}}
	punchRepo := &fakePunchRepo{err: errors.New("disk full")}
	deviceRepo := &fakeDeviceRepo{devices: map[string]device.Device{
		"dev-1": activeDevice(t, "dev-1", "secret-key"),
	}}
	svc := deviceservice.NewDeviceService(deviceRepo, employeeRepo, punchRepo, passthroughTransactor{})

	_, err := svc.IngestPunches(context.Background(), device.IngestPunchesRequest{
		DeviceID: "dev-1",
		Punches: []device.PunchEvent{
			{FingerprintID: "101", Timestamp: "2024-01-15T09:00:00Z", Direction: "IN"},
		},
	})
	require.Error(t, err)
	assert.NotContains(t, deviceRepo.syncedAt, "dev-1")
}

func TestIngestPunches_UnverifiedFlagCarries(t *testing.T) {
	t.Parallel()

	employeeRepo := &fakeEmployeeRepo{byFingerprint: map[string]employee.Employee{
		"101": {ID: "emp-1"},
	}}
	punchRepo := &fakePunchRepo{}
	svc := deviceservice.NewDeviceService(
		&fakeDeviceRepo{devices: map[string]device.Device{"dev-1": activeDevice(t, "dev-1", "k")}},
		employeeRepo, punchRepo, passthroughTransactor{},
	)

	notVerified := false
	_, err := svc.IngestPunches(context.Background(), device.IngestPunchesRequest{
		DeviceID: "dev-1",
		Punches: []device.PunchEvent{
			{FingerprintID: "101", Timestamp: "2024-01-15T09:00:00Z", Direction: "IN", Verified: &notVerified},
		},
	})
	require.NoError(t, err)
	require.Len(t, punchRepo.punches, 1)
	assert.False(t, punchRepo.punches[0].Verified)
}
