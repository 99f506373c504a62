package cron

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-tracker/internal/repository/sqlite"
	reportService "github.com/cmlabs-hris/attendance-tracker/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler()
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(1), calls.Load())
}

func TestScheduler_RunOnceReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	var ran []string

	s := NewScheduler()
	s.AddJob("a", time.Hour, func(ctx context.Context) error { ran = append(ran, "a"); return boom })
	s.AddJob("b", time.Hour, func(ctx context.Context) error { ran = append(ran, "b"); return nil })

	assert.ErrorIs(t, s.RunOnce(context.Background()), boom)
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestArchivePreviousMonth(t *testing.T) {
	ctx := context.Background()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	staffRepo := sqlite.NewStaffRepository(db)
	attendanceRepo := sqlite.NewAttendanceRepository(db)
	_, err = staffRepo.Create(ctx, staff.Staff{Name: "Alice"})
	require.NoError(t, err)

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	jobs := NewArchiveJobs(reportService.NewReportService(staffRepo, attendanceRepo), store)
	jobs.now = func() time.Time { return time.Date(2024, 6, 3, 1, 0, 0, 0, time.UTC) }

	// Nothing recorded in May yet
	require.NoError(t, jobs.ArchivePreviousMonth(ctx))
	_, err = os.Stat(filepath.Join(dir, "2024", "Attendance_2024-05.xlsx"))
	assert.True(t, os.IsNotExist(err))

	_, err = attendanceRepo.Upsert(ctx, attendance.Entry{Date: "2024-05-20", Employee: "Alice", Status: attendance.StatusPresent})
	require.NoError(t, err)

	require.NoError(t, jobs.ArchivePreviousMonth(ctx))
	info, err := os.Stat(filepath.Join(dir, "2024", "Attendance_2024-05.xlsx"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// A second run leaves the archived file alone
	require.NoError(t, jobs.ArchivePreviousMonth(ctx))
}
