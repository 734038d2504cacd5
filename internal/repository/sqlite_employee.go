package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kintai-dev/kintai/internal/db"
	"github.com/kintai-dev/kintai/internal/domain"
)

// employeeColumns is the canonical SELECT column list for employees.
const employeeColumns = `id, code, name, gender, address, nfc_id, photo, face_feature, created_at, updated_at`

// SQLiteEmployeeRepo implements EmployeeRepo over a SQLite connection or
// transaction.
type SQLiteEmployeeRepo struct {
	conn db.DBTX
}

// NewSQLiteEmployeeRepo creates a new SQLiteEmployeeRepo.
func NewSQLiteEmployeeRepo(conn db.DBTX) *SQLiteEmployeeRepo {
	return &SQLiteEmployeeRepo{conn: conn}
}

func (r *SQLiteEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (id, code, name, gender, address, nfc_id, photo, face_feature, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.conn.ExecContext(ctx, query,
		e.ID,
		e.Code,
		e.Name,
		e.Gender,
		e.Address,
		e.NfcID,
		nullableBytes(e.Photo),
		nullableBytes(e.FaceFeature),
		utcString(e.CreatedAt),
		utcString(e.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("employee %s: %w", e.Code, ErrDuplicateCode)
		}
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

func (r *SQLiteEmployeeRepo) GetByCode(ctx context.Context, code string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE code = ?`
	row := r.conn.QueryRowContext(ctx, query, code)
	return r.scanEmployee(row)
}

func (r *SQLiteEmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY code`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()
	return r.scanEmployees(rows)
}

// ListEnrolled returns the identification gallery in code order. Gallery
// order matters: the matcher's tie-break is first entry seen.
func (r *SQLiteEmployeeRepo) ListEnrolled(ctx context.Context) ([]*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE face_feature IS NOT NULL ORDER BY code`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing enrolled employees: %w", err)
	}
	defer rows.Close()
	return r.scanEmployees(rows)
}

func (r *SQLiteEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET name = ?, gender = ?, address = ?, nfc_id = ?, photo = ?, face_feature = ?, updated_at = ?
		WHERE code = ?`
	res, err := r.conn.ExecContext(ctx, query,
		e.Name,
		e.Gender,
		e.Address,
		e.NfcID,
		nullableBytes(e.Photo),
		nullableBytes(e.FaceFeature),
		utcString(e.UpdatedAt),
		e.Code,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking employee update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("employee %s: %w", e.Code, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEmployeeRepo) Delete(ctx context.Context, code string) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM employees WHERE code = ?`, code)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking employee delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("employee %s: %w", code, ErrNotFound)
	}
	return nil
}

// scanEmployee scans a single employee from a *sql.Row.
func (r *SQLiteEmployeeRepo) scanEmployee(row *sql.Row) (*domain.Employee, error) {
	var e domain.Employee
	var createdStr, updatedStr string

	err := row.Scan(&e.ID, &e.Code, &e.Name, &e.Gender, &e.Address, &e.NfcID,
		&e.Photo, &e.FaceFeature, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("employee: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}

	return r.populateEmployee(&e, createdStr, updatedStr)
}

// scanEmployees scans multiple employees from *sql.Rows.
func (r *SQLiteEmployeeRepo) scanEmployees(rows *sql.Rows) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	for rows.Next() {
		var e domain.Employee
		var createdStr, updatedStr string

		err := rows.Scan(&e.ID, &e.Code, &e.Name, &e.Gender, &e.Address, &e.NfcID,
			&e.Photo, &e.FaceFeature, &createdStr, &updatedStr)
		if err != nil {
			return nil, fmt.Errorf("scanning employee row: %w", err)
		}

		emp, parseErr := r.populateEmployee(&e, createdStr, updatedStr)
		if parseErr != nil {
			return nil, parseErr
		}

		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee rows: %w", err)
	}
	return employees, nil
}

func (r *SQLiteEmployeeRepo) populateEmployee(e *domain.Employee, createdStr, updatedStr string) (*domain.Employee, error) {
	var parseErr error
	e.CreatedAt, parseErr = parseTime(createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = parseTime(updatedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return e, nil
}
