// Package sqlite is the embedded Record Store backend, used for single-host
// installs and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

type staffRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r staffRow) toStaff() staff.Staff {
	return staff.Staff{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

type staffRepository struct {
	db *sqlx.DB
}

func NewStaffRepository(db *sqlx.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

// Create implements staff.StaffRepository.
func (r *staffRepository) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to generate staff id: %w", err)
	}

	row := staffRow{ID: id.String(), Name: s.Name, CreatedAt: time.Now().UTC()}
	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO staffs (id, name, created_at)
		VALUES (:id, :name, :created_at)
	`, row)
	if err != nil {
		if isUniqueViolation(err) {
			return staff.Staff{}, staff.ErrDuplicateName
		}
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}

	return row.toStaff(), nil
}

// List implements staff.StaffRepository.
func (r *staffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	var rows []staffRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, name, created_at
		FROM staffs
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	staffs := make([]staff.Staff, 0, len(rows))
	for _, row := range rows {
		staffs = append(staffs, row.toStaff())
	}
	return staffs, nil
}

// GetByName implements staff.StaffRepository.
func (r *staffRepository) GetByName(ctx context.Context, name string) (staff.Staff, error) {
	var row staffRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, created_at FROM staffs WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}
	return row.toStaff(), nil
}

// Rename implements staff.StaffRepository.
func (r *staffRepository) Rename(ctx context.Context, oldName, newName string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE staffs SET name = ? WHERE name = ?`, newName, oldName)
		if err != nil {
			if isUniqueViolation(err) {
				return staff.ErrNameConflict
			}
			return fmt.Errorf("failed to rename staff: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return staff.ErrStaffNotFound
		}

		// Moved rows win over rows already stored under the new name.
		_, err = tx.ExecContext(ctx, `
			DELETE FROM attendances
			WHERE employee = ?
			  AND date IN (SELECT date FROM attendances WHERE employee = ?)
		`, newName, oldName)
		if err != nil {
			return fmt.Errorf("failed to clear attendance for new name: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE attendances
			SET employee = ?, updated_at = ?
			WHERE employee = ?
		`, newName, time.Now().UTC(), oldName)
		if err != nil {
			return fmt.Errorf("failed to move attendance: %w", err)
		}
		return nil
	})
}

// Delete implements staff.StaffRepository.
func (r *staffRepository) Delete(ctx context.Context, name string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM staffs WHERE name = ?`, name)
		if err != nil {
			return fmt.Errorf("failed to delete staff: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return staff.ErrStaffNotFound
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM attendances WHERE employee = ?`, name); err != nil {
			return fmt.Errorf("failed to delete attendance: %w", err)
		}
		return nil
	})
}

func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
