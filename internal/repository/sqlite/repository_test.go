package sqlite

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStaffRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepository(newTestDB(t))

	alice, err := repo.Create(ctx, staff.Staff{Name: "Alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, alice.ID)
	assert.Equal(t, "Alice", alice.Name)

	_, err = repo.Create(ctx, staff.Staff{Name: "Bob"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alice", list[0].Name)
	assert.Equal(t, "Bob", list[1].Name)

	got, err := repo.GetByName(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
}

func TestStaffRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepository(newTestDB(t))

	_, err := repo.Create(ctx, staff.Staff{Name: "Alice"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, staff.Staff{Name: "Alice"})
	assert.ErrorIs(t, err, staff.ErrDuplicateName)
}

func TestStaffRepository_GetByNameNotFound(t *testing.T) {
	_, err := NewStaffRepository(newTestDB(t)).GetByName(context.Background(), "Nobody")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestStaffRepository_RenameMovesAttendance(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	staffRepo := NewStaffRepository(db)
	attRepo := NewAttendanceRepository(db)

	_, err := staffRepo.Create(ctx, staff.Staff{Name: "Alice"})
	require.NoError(t, err)
	_, err = attRepo.Upsert(ctx, attendance.Entry{Date: "2024-05-01", Employee: "Alice", Status: attendance.StatusAbsent, Reason: "sick"})
	require.NoError(t, err)
	_, err = attRepo.Upsert(ctx, attendance.Entry{Date: "2024-05-02", Employee: "Alice", Status: attendance.StatusPresent})
	require.NoError(t, err)
	// Orphan row under the new name on an overlapping date.
	_, err = attRepo.Upsert(ctx, attendance.Entry{Date: "2024-05-01", Employee: "Alicia", Status: attendance.StatusHoliday})
	require.NoError(t, err)

	require.NoError(t, staffRepo.Rename(ctx, "Alice", "Alicia"))

	_, err = staffRepo.GetByName(ctx, "Alice")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)

	rows, err := attRepo.List(ctx, attendance.ListAttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "Alicia", row.Employee)
	}
	assert.Equal(t, attendance.StatusAbsent, rows[0].Status)
	assert.Equal(t, "sick", rows[0].Reason)
}

func TestStaffRepository_RenameErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepository(newTestDB(t))
	_, err := repo.Create(ctx, staff.Staff{Name: "Alice"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, staff.Staff{Name: "Bob"})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Rename(ctx, "Carol", "Caroline"), staff.ErrStaffNotFound)
	assert.ErrorIs(t, repo.Rename(ctx, "Alice", "Bob"), staff.ErrNameConflict)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", list[0].Name)
}

func TestStaffRepository_DeletePurgesAttendance(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	staffRepo := NewStaffRepository(db)
	attRepo := NewAttendanceRepository(db)

	for _, name := range []string{"Alice", "Bob"} {
		_, err := staffRepo.Create(ctx, staff.Staff{Name: name})
		require.NoError(t, err)
		_, err = attRepo.Upsert(ctx, attendance.Entry{Date: "2024-05-01", Employee: name, Status: attendance.StatusPresent})
		require.NoError(t, err)
	}

	require.NoError(t, staffRepo.Delete(ctx, "Alice"))
	assert.ErrorIs(t, staffRepo.Delete(ctx, "Alice"), staff.ErrStaffNotFound)

	rows, err := attRepo.List(ctx, attendance.ListAttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bob", rows[0].Employee)
}

func TestAttendanceRepository_UpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestDB(t))

	first, err := repo.Upsert(ctx, attendance.Entry{Date: "2024-05-01", Employee: "Alice", Status: attendance.StatusAbsent, Reason: "sick"})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, attendance.Entry{Date: "2024-05-01", Employee: "Alice", Status: attendance.StatusHalfDay, Reason: "doctor"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same (date, employee) keeps its row")
	assert.Equal(t, attendance.StatusHalfDay, second.Status)
	assert.Equal(t, "doctor", second.Reason)

	rows, err := repo.List(ctx, attendance.ListAttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAttendanceRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestDB(t))

	for _, date := range []string{"2024-04-30", "2024-05-01", "2024-05-31", "2024-06-01"} {
		_, err := repo.Upsert(ctx, attendance.Entry{Date: date, Employee: "Alice", Status: attendance.StatusPresent})
		require.NoError(t, err)
	}

	rows, err := repo.List(ctx, attendance.ListAttendanceFilter{StartDate: "2024-05-01", EndDate: "2024-05-31"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05-01", rows[0].Date)
	assert.Equal(t, "2024-05-31", rows[1].Date)
}
