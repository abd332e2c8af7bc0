package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/biotrack/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, name, department, position, hire_date, fingerprint_id, active,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Department, &emp.Position, &emp.HireDate,
		&emp.FingerprintID, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByFingerprintID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByFingerprintID(ctx context.Context, fingerprintID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE fingerprint_id = $1 AND active = true`

	emp, err := scanEmployee(q.QueryRow(ctx, query, fingerprintID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by fingerprint: %w", err)
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE active = true ORDER BY name, id`
	return r.list(ctx, query)
}

// ListByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE active = true AND department = $1 ORDER BY name, id`
	return r.list(ctx, query, department)
}

// ListByIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE active = true AND id = ANY($1) ORDER BY name, id`
	return r.list(ctx, query, ids)
}

func (r *employeeRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
