package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type attendanceRow struct {
	ID        string    `db:"id"`
	Date      string    `db:"date"`
	Employee  string    `db:"employee"`
	Status    string    `db:"status"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r attendanceRow) toAttendance() attendance.Attendance {
	return attendance.Attendance{
		ID: r.ID,
		Entry: attendance.Entry{
			Date:     r.Date,
			Employee: r.Employee,
			Status:   attendance.Status(r.Status),
			Reason:   r.Reason,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type attendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, entry attendance.Entry) (attendance.Attendance, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	now := time.Now().UTC()
	row := attendanceRow{
		ID:        id.String(),
		Date:      entry.Date,
		Employee:  entry.Employee,
		Status:    string(entry.Status),
		Reason:    entry.Reason,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = a.db.NamedExecContext(ctx, `
		INSERT INTO attendances (id, date, employee, status, reason, created_at, updated_at)
		VALUES (:id, :date, :employee, :status, :reason, :created_at, :updated_at)
		ON CONFLICT (date, employee) DO UPDATE
		SET status = excluded.status,
			reason = excluded.reason,
			updated_at = excluded.updated_at
	`, row)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	var stored attendanceRow
	err = a.db.GetContext(ctx, &stored, `
		SELECT id, date, employee, status, reason, created_at, updated_at
		FROM attendances
		WHERE date = ? AND employee = ?
	`, entry.Date, entry.Employee)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to read saved attendance: %w", err)
	}

	return stored.toAttendance(), nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	query := `
		SELECT id, date, employee, status, reason, created_at, updated_at
		FROM attendances
		WHERE 1=1`
	args := []interface{}{}

	if filter.StartDate != "" {
		query += " AND date >= ?"
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		query += " AND date <= ?"
		args = append(args, filter.EndDate)
	}
	query += " ORDER BY date ASC, created_at ASC, id ASC"

	var rows []attendanceRow
	if err := a.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	records := make([]attendance.Attendance, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toAttendance())
	}
	return records, nil
}
