package attendance

import (
	"context"
	"time"
)

// AttendanceService defines the daily attendance ledger operations.
//
// The reference day is an explicit parameter so the core stays deterministic;
// the HTTP layer passes the server's wall-clock date. Callers cannot back-date
// attendance through this interface.
type AttendanceService interface {
	// CheckIn records check-in evidence for the given day, creating the day's
	// record if needed. Repeated check-ins on the same day silently overwrite
	// the prior evidence and timestamp.
	CheckIn(ctx context.Context, day time.Time, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut records check-out evidence on the day's existing record.
	// Fails with ErrNoCheckInToday when the labourer has not checked in.
	CheckOut(ctx context.Context, day time.Time, req CheckOutRequest) (AttendanceResponse, error)

	// TodayStatus summarizes the given day's record for one labourer. A day
	// without a record reports not checked in, not checked out, zero hours.
	TodayStatus(ctx context.Context, day time.Time, labourID int64) (TodayStatusResponse, error)
}
