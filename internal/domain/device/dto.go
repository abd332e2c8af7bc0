package device

import (
	"strconv"

	"github.com/biotrack/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack/attendance-backend-go/internal/pkg/validator"
)

// IngestPunchesRequest is the payload a device (or its integration
// layer) pushes after reading its attendance log.
type IngestPunchesRequest struct {
	DeviceID string       `json:"-"`
	Punches  []PunchEvent `json:"punches"`
}

type PunchEvent struct {
	FingerprintID string `json:"fingerprint_id"`
	Timestamp     string `json:"timestamp"` // RFC3339
	Direction     string `json:"direction"` // IN | OUT
	Verified      *bool  `json:"verified,omitempty"`
}

func (r *IngestPunchesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Punches) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "punches",
			Message: "at least one punch is required",
		})
	}

	for i, ev := range r.Punches {
		prefix := "punches[" + strconv.Itoa(i) + "]"

		if validator.IsEmpty(ev.FingerprintID) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".fingerprint_id",
				Message: "fingerprint_id is required",
			})
		}

		if _, ok := validator.IsValidDateTime(ev.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".timestamp",
				Message: "timestamp must be an ISO8601 timestamp",
			})
		}

		if !validator.IsInSlice(ev.Direction, punch.DirectionValues) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ".direction",
				Message: "direction must be IN or OUT",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IngestPunchesResponse struct {
	DeviceID string `json:"device_id"`
	Accepted int    `json:"accepted"`
	Skipped  int    `json:"skipped"` // events with no matching enrolled employee
	SyncedAt string `json:"synced_at"`
}
