package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biotrack/attendance-backend-go/internal/domain/device"
	"github.com/biotrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deviceRepositoryImpl struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepositoryImpl{db: db}
}

// GetByID implements device.DeviceRepository.
func (r *deviceRepositoryImpl) GetByID(ctx context.Context, id string) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, type, ip_address, port, protocol, status, api_key_hash,
			   last_sync, created_at, updated_at
		FROM devices
		WHERE id = $1
	`

	var dev device.Device
	err := q.QueryRow(ctx, query, id).Scan(
		&dev.ID, &dev.Name, &dev.Type, &dev.IPAddress, &dev.Port, &dev.Protocol,
		&dev.Status, &dev.APIKeyHash, &dev.LastSync, &dev.CreatedAt, &dev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, fmt.Errorf("failed to get device: %w", err)
	}

	return dev, nil
}

// UpdateLastSync implements device.DeviceRepository.
func (r *deviceRepositoryImpl) UpdateLastSync(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE devices SET last_sync = $1, updated_at = NOW() WHERE id = $2`

	tag, err := q.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to update device last sync: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}
