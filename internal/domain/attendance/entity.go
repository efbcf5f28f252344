package attendance

import "time"

// Status values stored or derived for a day's record.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
)

// Attendance is the single authoritative record for one labourer on one
// calendar day. At most one row exists per (labour_id, date); the table
// carries a unique constraint on that pair.
type Attendance struct {
	ID       int64
	LabourID int64
	Date     time.Time // day precision, no time component

	TimeIn  *time.Time
	TimeOut *time.Time

	InPhotoPath  *string
	OutPhotoPath *string

	InLatitude   *float64
	InLongitude  *float64
	OutLatitude  *float64
	OutLongitude *float64

	// Stored status; empty means derive from the timestamps
	Status string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DerivedStatus computes the presence status when none is stored.
// A record with a check-in counts as PRESENT whether or not the labourer
// has checked out yet.
func (a Attendance) DerivedStatus() string {
	if a.Status != "" {
		return a.Status
	}
	if a.TimeIn == nil && a.TimeOut == nil {
		return StatusAbsent
	}
	return StatusPresent
}
