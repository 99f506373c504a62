package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to generate staff id: %w", err)
	}

	query := `
		INSERT INTO staffs (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at
	`

	var result staff.Staff
	err = q.QueryRow(ctx, query, id.String(), s.Name).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return staff.Staff{}, staff.ErrDuplicateName
		}
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return result, nil
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at
		FROM staffs
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	staffs := []staff.Staff{}
	for rows.Next() {
		var s staff.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staffs = append(staffs, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return staffs, nil
}

// GetByName implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByName(ctx context.Context, name string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at
		FROM staffs
		WHERE name = $1
	`

	var result staff.Staff
	err := q.QueryRow(ctx, query, name).Scan(&result.ID, &result.Name, &result.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return result, nil
}

// Rename implements staff.StaffRepository.
func (r *staffRepositoryImpl) Rename(ctx context.Context, oldName, newName string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		ctx := ContextWithTx(ctx, tx)
		q := GetQuerier(ctx, r.db)

		tag, err := q.Exec(ctx, `UPDATE staffs SET name = $2 WHERE name = $1`, oldName, newName)
		if err != nil {
			if isUniqueViolation(err) {
				return staff.ErrNameConflict
			}
			return fmt.Errorf("failed to rename staff: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return staff.ErrStaffNotFound
		}

		// Moved rows win over rows already stored under the new name.
		_, err = q.Exec(ctx, `
			DELETE FROM attendances
			WHERE employee = $2
			  AND date IN (SELECT date FROM attendances WHERE employee = $1)
		`, oldName, newName)
		if err != nil {
			return fmt.Errorf("failed to clear attendance for new name: %w", err)
		}

		_, err = q.Exec(ctx, `
			UPDATE attendances
			SET employee = $2, updated_at = NOW()
			WHERE employee = $1
		`, oldName, newName)
		if err != nil {
			return fmt.Errorf("failed to move attendance: %w", err)
		}

		return nil
	})
}

// Delete implements staff.StaffRepository.
func (r *staffRepositoryImpl) Delete(ctx context.Context, name string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		ctx := ContextWithTx(ctx, tx)
		q := GetQuerier(ctx, r.db)

		tag, err := q.Exec(ctx, `DELETE FROM staffs WHERE name = $1`, name)
		if err != nil {
			return fmt.Errorf("failed to delete staff: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return staff.ErrStaffNotFound
		}

		if _, err := q.Exec(ctx, `DELETE FROM attendances WHERE employee = $1`, name); err != nil {
			return fmt.Errorf("failed to delete attendance: %w", err)
		}

		return nil
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
