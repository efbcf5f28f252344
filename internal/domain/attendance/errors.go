package attendance

import "errors"

// Attendance domain errors
var (
	ErrNoCheckInToday     = errors.New("no check-in found for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
