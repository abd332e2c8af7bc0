package punch

import "time"

// Direction of a punch event.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

var DirectionValues = []string{
	string(DirectionIn),
	string(DirectionOut),
}

// ParseDirection converts a wire value into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionIn:
		return DirectionIn, nil
	case DirectionOut:
		return DirectionOut, nil
	default:
		return "", ErrInvalidDirection
	}
}

// Punch is a single timestamped check-in or check-out event from a
// device. Punches are append-only: a bad punch is superseded by a new
// one, never edited.
type Punch struct {
	ID         string
	EmployeeID string
	Timestamp  time.Time
	Direction  Direction
	DeviceID   string
	Verified   bool
	CreatedAt  time.Time
}
