package device

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/biotrack/attendance-backend-go/internal/domain/device"
	"github.com/biotrack/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack/attendance-backend-go/internal/pkg/database"
	"github.com/biotrack/attendance-backend-go/internal/pkg/validator"
)

type DeviceServiceImpl struct {
	deviceRepo   device.DeviceRepository
	employeeRepo employee.EmployeeRepository
	punchRepo    punch.PunchRepository
	transactor   database.Transactor
}

func NewDeviceService(
	deviceRepo device.DeviceRepository,
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
	transactor database.Transactor,
) device.DeviceService {
	return &DeviceServiceImpl{
		deviceRepo:   deviceRepo,
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		transactor:   transactor,
	}
}

// Authenticate implements device.DeviceService.
func (s *DeviceServiceImpl) Authenticate(ctx context.Context, deviceID, apiKey string) (device.Device, error) {
	dev, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return device.Device{}, fmt.Errorf("failed to get device: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dev.APIKeyHash), []byte(apiKey)); err != nil {
		return device.Device{}, device.ErrInvalidDeviceKey
	}

	if dev.Status != device.DeviceStatusActive {
		return device.Device{}, device.ErrDeviceInactive
	}

	return dev, nil
}

// IngestPunches implements device.DeviceService. The whole batch commits
// or none of it does, so a device can safely retry a failed push.
func (s *DeviceServiceImpl) IngestPunches(ctx context.Context, req device.IngestPunchesRequest) (device.IngestPunchesResponse, error) {
	if err := req.Validate(); err != nil {
		return device.IngestPunchesResponse{}, err
	}

	accepted, skipped := 0, 0
	now := time.Now()

	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, ev := range req.Punches {
			emp, err := s.employeeRepo.GetByFingerprintID(txCtx, ev.FingerprintID)
			if err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					skipped++
					continue
				}
				return fmt.Errorf("failed to resolve fingerprint %s: %w", ev.FingerprintID, err)
			}

			ts, _ := validator.IsValidDateTime(ev.Timestamp)
			direction, err := punch.ParseDirection(ev.Direction)
			if err != nil {
				return err
			}
			verified := true
			if ev.Verified != nil {
				verified = *ev.Verified
			}

			if _, err := s.punchRepo.Append(txCtx, punch.Punch{
				ID:         uuid.NewString(),
				EmployeeID: emp.ID,
				Timestamp:  ts,
				Direction:  direction,
				DeviceID:   req.DeviceID,
				Verified:   verified,
			}); err != nil {
				return fmt.Errorf("failed to append punch: %w", err)
			}
			accepted++
		}

		return s.deviceRepo.UpdateLastSync(txCtx, req.DeviceID, now)
	})
	if err != nil {
		return device.IngestPunchesResponse{}, err
	}

	return device.IngestPunchesResponse{
		DeviceID: req.DeviceID,
		Accepted: accepted,
		Skipped:  skipped,
		SyncedAt: now.Format(time.RFC3339),
	}, nil
}
