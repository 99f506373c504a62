// Package session keeps one client's roster and Ledger consistent with each
// other and with the Record Store.
//
// Mutations are applied locally first and then persisted. A failed write is
// returned as *PersistenceError and the local change stays in place; Load is
// the only way back to the durable state. A Session is not safe for
// concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-tracker/internal/ledger"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type Session struct {
	store    RecordStore
	roster   *Roster
	ledger   *ledger.Ledger
	selected string
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Session)

// WithClock overrides the clock used for the future-date check.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

func New(store RecordStore, opts ...Option) *Session {
	s := &Session{
		store:  store,
		roster: NewRoster(nil),
		ledger: ledger.New(),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the local roster and Ledger with the Record Store contents.
// On failure the previous state is kept.
func (s *Session) Load(ctx context.Context) error {
	var (
		names   []string
		entries []attendance.Entry
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		names, err = s.store.ListStaff(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.store.ListAttendance(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.persistFailed("load", err)
	}

	roster := NewRoster(names)
	l := ledger.FromEntries(entries)
	for _, name := range l.Employees() {
		if !roster.Contains(name) {
			s.logger.Debug("Dropping attendance for unknown staff", "employee", name)
			l.RemoveEmployee(name)
		}
	}

	s.roster = roster
	s.ledger = l
	return nil
}

// Roster returns the current employee names in order.
func (s *Session) Roster() []string {
	return s.roster.Names()
}

func (s *Session) SelectedDate() string {
	return s.selected
}

// SelectDate changes the working date. Malformed or future dates are
// rejected and the previous selection is retained.
func (s *Session) SelectDate(date string) error {
	if _, ok := validator.IsValidDate(date); !ok {
		return fmt.Errorf("%w: %q", attendance.ErrInvalidDate, date)
	}
	if validator.IsFutureDate(date, s.now()) {
		return fmt.Errorf("%w: %s", attendance.ErrFutureDate, date)
	}
	s.selected = date
	return nil
}

// AddStaff appends name to the roster and persists it.
func (s *Session) AddStaff(ctx context.Context, name string) error {
	name, err := staff.ValidateName(name)
	if err != nil {
		return err
	}
	if s.roster.Contains(name) {
		return fmt.Errorf("%w: %s", staff.ErrDuplicateName, name)
	}

	s.roster.add(name)

	if err := s.store.AddStaff(ctx, name); err != nil {
		return s.persistFailed("add staff", err)
	}
	return nil
}

// RenameStaff renames oldName in the roster and moves its Ledger entries.
// Renaming to the same or an empty name does nothing.
func (s *Session) RenameStaff(ctx context.Context, oldName, newName string) error {
	newName, err := staff.ValidateName(newName)
	if errors.Is(err, staff.ErrEmptyName) || newName == oldName {
		return nil
	}
	if err != nil {
		return err
	}
	if !s.roster.Contains(oldName) {
		return fmt.Errorf("%w: %s", staff.ErrStaffNotFound, oldName)
	}
	if s.roster.Contains(newName) {
		return fmt.Errorf("%w: %s", staff.ErrNameConflict, newName)
	}

	s.roster.rename(oldName, newName)
	s.ledger.RenameEmployee(oldName, newName)

	if err := s.store.RenameStaff(ctx, oldName, newName); err != nil {
		return s.persistFailed("rename staff", err)
	}
	return nil
}

// RemoveStaff drops name from the roster and purges its entries. The caller
// is expected to have confirmed the removal.
func (s *Session) RemoveStaff(ctx context.Context, name string) error {
	if !s.roster.Contains(name) {
		return fmt.Errorf("%w: %s", staff.ErrStaffNotFound, name)
	}

	s.roster.remove(name)
	s.ledger.RemoveEmployee(name)

	if err := s.store.RemoveStaff(ctx, name); err != nil {
		return s.persistFailed("remove staff", err)
	}
	return nil
}

// SetStatus records status for employee on the selected date. Switching to
// Present clears the reason; other switches keep it.
func (s *Session) SetStatus(ctx context.Context, employee string, status attendance.Status) (ledger.Record, error) {
	if _, err := attendance.ParseStatus(string(status)); err != nil {
		return ledger.Record{}, err
	}
	return s.save(ctx, employee, ledger.Patch{Status: &status})
}

// SetReason records the reason for employee on the selected date.
func (s *Session) SetReason(ctx context.Context, employee, reason string) (ledger.Record, error) {
	return s.save(ctx, employee, ledger.Patch{Reason: &reason})
}

// Mark records status and reason for employee on the selected date in a
// single write. Present still clears the reason.
func (s *Session) Mark(ctx context.Context, employee string, status attendance.Status, reason string) (ledger.Record, error) {
	if _, err := attendance.ParseStatus(string(status)); err != nil {
		return ledger.Record{}, err
	}
	return s.save(ctx, employee, ledger.Patch{Status: &status, Reason: &reason})
}

func (s *Session) save(ctx context.Context, employee string, p ledger.Patch) (ledger.Record, error) {
	if s.selected == "" {
		return ledger.Record{}, attendance.ErrNoDateSelected
	}
	if !s.roster.Contains(employee) {
		return ledger.Record{}, fmt.Errorf("%w: %s", staff.ErrStaffNotFound, employee)
	}

	rec := s.ledger.Set(s.selected, employee, p)

	entry := attendance.Entry{
		Date:     s.selected,
		Employee: employee,
		Status:   rec.Status,
		Reason:   rec.Reason,
	}
	if err := s.store.SaveAttendance(ctx, entry); err != nil {
		return rec, s.persistFailed("save attendance", err)
	}
	return rec, nil
}

// Record returns employee's entry on the selected date.
func (s *Session) Record(employee string) (ledger.Record, bool) {
	if s.selected == "" {
		return ledger.Record{}, false
	}
	return s.ledger.Get(s.selected, employee)
}

// Summary returns the status counts for the selected date.
func (s *Session) Summary() (report.DaySummary, error) {
	if s.selected == "" {
		return report.DaySummary{}, attendance.ErrNoDateSelected
	}
	return s.ledger.SummarizeDate(s.selected), nil
}

// Report generates the day, month or year report around the selected date.
func (s *Session) Report(mode report.Mode) (report.Report, error) {
	if s.selected == "" {
		return report.Report{}, attendance.ErrNoDateSelected
	}
	return ledger.Generate(s.ledger, s.roster.Names(), mode, s.selected)
}

// Entries returns a snapshot of every local entry.
func (s *Session) Entries() []attendance.Entry {
	return s.ledger.Entries()
}

func (s *Session) persistFailed(op string, err error) error {
	s.logger.Warn("Record store call failed", "op", op, "error", err)
	return &PersistenceError{Op: op, Err: err}
}
