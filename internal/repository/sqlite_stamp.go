package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kintai-dev/kintai/internal/db"
	"github.com/kintai-dev/kintai/internal/domain"
)

// stampColumns is the canonical SELECT column list for attendance_logs.
const stampColumns = `id, employee_code, kind, actual_time, rounded_time, work_date, created_at`

// SQLiteStampRepo implements StampRepo over a SQLite connection or
// transaction.
type SQLiteStampRepo struct {
	conn db.DBTX
}

// NewSQLiteStampRepo creates a new SQLiteStampRepo.
func NewSQLiteStampRepo(conn db.DBTX) *SQLiteStampRepo {
	return &SQLiteStampRepo{conn: conn}
}

// Insert appends a stamp event, refusing with ErrCapacityExceeded once the
// (employee, work date) pair already holds MaxStampsPerDay events. The count
// check and the insert run as a single statement so two concurrent stamps
// cannot both pass the check and together exceed the cap.
func (r *SQLiteStampRepo) Insert(ctx context.Context, e *domain.StampEvent) error {
	query := `INSERT INTO attendance_logs (id, employee_code, kind, actual_time, rounded_time, work_date, created_at)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE (SELECT COUNT(*) FROM attendance_logs WHERE employee_code = ? AND work_date = ?) < ?`
	res, err := r.conn.ExecContext(ctx, query,
		e.ID,
		e.EmployeeCode,
		string(e.Kind),
		utcString(e.ActualTime),
		utcString(e.RoundedTime),
		e.WorkDate,
		utcString(e.CreatedAt),
		e.EmployeeCode,
		e.WorkDate,
		domain.MaxStampsPerDay,
	)
	if err != nil {
		return fmt.Errorf("inserting stamp event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking stamp insert result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("stamp for %s on %s: %w", e.EmployeeCode, e.WorkDate, ErrCapacityExceeded)
	}
	return nil
}

func (r *SQLiteStampRepo) CountByWorkDate(ctx context.Context, employeeCode, workDate string) (int, error) {
	query := `SELECT COUNT(*) FROM attendance_logs WHERE employee_code = ? AND work_date = ?`
	var count int
	if err := r.conn.QueryRowContext(ctx, query, employeeCode, workDate).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting stamps: %w", err)
	}
	return count, nil
}

// Latest returns the employee's most recent event by actual time across all
// work dates, or ErrNotFound.
func (r *SQLiteStampRepo) Latest(ctx context.Context, employeeCode string) (*domain.StampEvent, error) {
	query := `SELECT ` + stampColumns + ` FROM attendance_logs
		WHERE employee_code = ? ORDER BY actual_time DESC LIMIT 1`
	row := r.conn.QueryRowContext(ctx, query, employeeCode)
	return r.scanStamp(row)
}

func (r *SQLiteStampRepo) ListByWorkDate(ctx context.Context, employeeCode, workDate string) ([]*domain.StampEvent, error) {
	query := `SELECT ` + stampColumns + ` FROM attendance_logs
		WHERE employee_code = ? AND work_date = ? ORDER BY actual_time`
	rows, err := r.conn.QueryContext(ctx, query, employeeCode, workDate)
	if err != nil {
		return nil, fmt.Errorf("listing stamps by work date: %w", err)
	}
	defer rows.Close()
	return r.scanStamps(rows)
}

// ListMonth returns every event whose work date falls in the given month,
// ordered by actual time.
func (r *SQLiteStampRepo) ListMonth(ctx context.Context, employeeCode string, year int, month time.Month) ([]*domain.StampEvent, error) {
	query := `SELECT ` + stampColumns + ` FROM attendance_logs
		WHERE employee_code = ? AND work_date LIKE ? ORDER BY actual_time`
	filter := fmt.Sprintf("%04d-%02d-%%", year, month)
	rows, err := r.conn.QueryContext(ctx, query, employeeCode, filter)
	if err != nil {
		return nil, fmt.Errorf("listing stamps for month: %w", err)
	}
	defer rows.Close()
	return r.scanStamps(rows)
}

func (r *SQLiteStampRepo) DeleteByWorkDate(ctx context.Context, employeeCode, workDate string) error {
	query := `DELETE FROM attendance_logs WHERE employee_code = ? AND work_date = ?`
	if _, err := r.conn.ExecContext(ctx, query, employeeCode, workDate); err != nil {
		return fmt.Errorf("deleting stamps for work date: %w", err)
	}
	return nil
}

// scanStamp scans a single event from a *sql.Row.
func (r *SQLiteStampRepo) scanStamp(row *sql.Row) (*domain.StampEvent, error) {
	var e domain.StampEvent
	var kind, actualStr, roundedStr, createdStr string

	err := row.Scan(&e.ID, &e.EmployeeCode, &kind, &actualStr, &roundedStr, &e.WorkDate, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("stamp event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning stamp event: %w", err)
	}

	return r.populateStamp(&e, kind, actualStr, roundedStr, createdStr)
}

// scanStamps scans multiple events from *sql.Rows.
func (r *SQLiteStampRepo) scanStamps(rows *sql.Rows) ([]*domain.StampEvent, error) {
	var events []*domain.StampEvent
	for rows.Next() {
		var e domain.StampEvent
		var kind, actualStr, roundedStr, createdStr string

		err := rows.Scan(&e.ID, &e.EmployeeCode, &kind, &actualStr, &roundedStr, &e.WorkDate, &createdStr)
		if err != nil {
			return nil, fmt.Errorf("scanning stamp row: %w", err)
		}

		event, parseErr := r.populateStamp(&e, kind, actualStr, roundedStr, createdStr)
		if parseErr != nil {
			return nil, parseErr
		}

		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stamp rows: %w", err)
	}
	return events, nil
}

// populateStamp fills in parsed fields on a StampEvent after scanning raw
// strings.
func (r *SQLiteStampRepo) populateStamp(e *domain.StampEvent, kind, actualStr, roundedStr, createdStr string) (*domain.StampEvent, error) {
	e.Kind = domain.StampKind(kind)

	var parseErr error
	e.ActualTime, parseErr = parseTime(actualStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing actual_time: %w", parseErr)
	}
	e.RoundedTime, parseErr = parseTime(roundedStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing rounded_time: %w", parseErr)
	}
	e.CreatedAt, parseErr = parseTime(createdStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return e, nil
}
