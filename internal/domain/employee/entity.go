package employee

import "time"

type Employee struct {
	ID            string
	Name          string
	Department    string
	Position      string
	HireDate      time.Time
	FingerprintID *string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
