package postgresql

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL and empties the attendance tables.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx))
	_, err = db.Exec(ctx, "TRUNCATE TABLE attendances, staffs")
	require.NoError(t, err)
	return db
}

func TestStaffRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	staffRepo := NewStaffRepository(db)
	attRepo := NewAttendanceRepository(db)

	created, err := staffRepo.Create(ctx, staff.Staff{Name: "Alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = staffRepo.Create(ctx, staff.Staff{Name: "Alice"})
	assert.ErrorIs(t, err, staff.ErrDuplicateName)

	_, err = staffRepo.Create(ctx, staff.Staff{Name: "Bob"})
	require.NoError(t, err)

	_, err = attRepo.Upsert(ctx, attendance.Entry{Date: "2024-05-01", Employee: "Alice", Status: attendance.StatusAbsent, Reason: "sick"})
	require.NoError(t, err)

	assert.ErrorIs(t, staffRepo.Rename(ctx, "Alice", "Bob"), staff.ErrNameConflict)
	assert.ErrorIs(t, staffRepo.Rename(ctx, "Nobody", "Somebody"), staff.ErrStaffNotFound)
	require.NoError(t, staffRepo.Rename(ctx, "Alice", "Alicia"))

	rows, err := attRepo.List(ctx, attendance.ListAttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alicia", rows[0].Employee)
	assert.Equal(t, "2024-05-01", rows[0].Date)

	require.NoError(t, staffRepo.Delete(ctx, "Alicia"))
	rows, err = attRepo.List(ctx, attendance.ListAttendanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	list, err := staffRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bob", list[0].Name)
}

func TestAttendanceRepository_UpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(newTestDB(t))

	first, err := repo.Upsert(ctx, attendance.Entry{Date: "2024-05-01", Employee: "Alice", Status: attendance.StatusAbsent, Reason: "sick"})
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, attendance.Entry{Date: "2024-05-01", Employee: "Alice", Status: attendance.StatusTraining, Reason: "course"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusTraining, second.Status)

	rows, err := repo.List(ctx, attendance.ListAttendanceFilter{StartDate: "2024-05-01", EndDate: "2024-05-31"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
