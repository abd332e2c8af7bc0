package employee

import "context"

// EmployeeRepository defines read access to the employee registry.
// Employee administration (create/update/terminate) is owned by the HR
// dashboard and is not part of this service.
type EmployeeRepository interface {
	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByFingerprintID resolves the employee enrolled under a device
	// fingerprint id. Used by punch ingestion.
	GetByFingerprintID(ctx context.Context, fingerprintID string) (Employee, error)

	// ListActive retrieves all active employees ordered by name
	ListActive(ctx context.Context) ([]Employee, error)

	// ListByDepartment retrieves active employees of one department ordered by name
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)

	// ListByIDs retrieves active employees by id, ordered by name
	ListByIDs(ctx context.Context, ids []string) ([]Employee, error)
}
