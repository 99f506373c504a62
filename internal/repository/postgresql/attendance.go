package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
	"github.com/google/uuid"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, entry attendance.Entry) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	date, err := time.Parse(validator.DateLayout, entry.Date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("%w: %q", attendance.ErrInvalidDate, entry.Date)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances (id, date, employee, status, reason)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date, employee) DO UPDATE
		SET status = EXCLUDED.status,
			reason = EXCLUDED.reason,
			updated_at = NOW()
		RETURNING id, date, employee, status, reason, created_at, updated_at
	`

	var (
		att    attendance.Attendance
		stored time.Time
		status string
	)
	err = q.QueryRow(ctx, query,
		id.String(),
		date,
		entry.Employee,
		string(entry.Status),
		entry.Reason,
	).Scan(&att.ID, &stored, &att.Employee, &status, &att.Reason, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	att.Date = stored.Format(validator.DateLayout)
	att.Status = attendance.Status(status)
	return att, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.StartDate != "" {
		start, err := time.Parse(validator.DateLayout, filter.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", attendance.ErrInvalidDate, filter.StartDate)
		}
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, start)
		argIdx++
	}
	if filter.EndDate != "" {
		end, err := time.Parse(validator.DateLayout, filter.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", attendance.ErrInvalidDate, filter.EndDate)
		}
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, end)
	}

	query := fmt.Sprintf(`
		SELECT id, date, employee, status, reason, created_at, updated_at
		FROM attendances
		WHERE %s
		ORDER BY date ASC, created_at ASC, id ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var (
			att    attendance.Attendance
			date   time.Time
			status string
		)
		if err := rows.Scan(&att.ID, &date, &att.Employee, &status, &att.Reason, &att.CreatedAt, &att.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		att.Date = date.Format(validator.DateLayout)
		att.Status = attendance.Status(status)
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
