package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for the attendance ledger.
// The (labour_id, date) pair is unique at the storage level; UpsertCheckIn
// relies on that constraint to stay atomic under concurrent check-ins.
type AttendanceRepository interface {
	// UpsertCheckIn inserts the day's record or, when one already exists for
	// (labourID, date), overwrites its check-in evidence. Last write wins.
	UpsertCheckIn(ctx context.Context, att Attendance) (Attendance, error)

	// GetByLabourAndDate returns the record for the labourer on the given day,
	// or nil when no record exists.
	GetByLabourAndDate(ctx context.Context, labourID int64, date time.Time) (*Attendance, error)

	// UpdateCheckOut writes the check-out evidence onto an existing record.
	UpdateCheckOut(ctx context.Context, att Attendance) error

	// ListByDate returns every record for the given calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListByDateAndLabourIDs restricts ListByDate to a roster of labourers.
	ListByDateAndLabourIDs(ctx context.Context, date time.Time, labourIDs []int64) ([]Attendance, error)

	// CountDaysWorked counts records with a check-in for one labourer.
	CountDaysWorked(ctx context.Context, labourID int64) (int64, error)
}
