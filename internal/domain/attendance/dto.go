package attendance

import (
	"github.com/hazari-app/hazari-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckInRequest carries the evidence captured by the mobile app:
// a stored photo reference and the device GPS fix.
type CheckInRequest struct {
	LabourID  int64   `json:"labourId"`
	PhotoPath string  `json:"photoPath"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LabourID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "labourId",
			Message: "labourId is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CheckOutRequest mirrors CheckInRequest; the labour id comes from the
// route path on check-out.
type CheckOutRequest struct {
	LabourID  int64   `json:"-"`
	PhotoPath string  `json:"photoPath"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LabourID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "labourId",
			Message: "labourId is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TodayStatusResponse tells the labour home screen what to render:
// the check-in button, the check-out button, or the day's total.
type TodayStatusResponse struct {
	LabourID        int64   `json:"labourId"`
	TodayCheckedIn  bool    `json:"todayCheckedIn"`
	TodayCheckedOut bool    `json:"todayCheckedOut"`
	HoursWorked     float64 `json:"hoursWorked"`
}

type AttendanceResponse struct {
	ID       int64    `json:"id"`
	LabourID int64    `json:"labourId"`
	Date     string   `json:"date"`
	TimeIn   *string  `json:"timeIn"`
	TimeOut  *string  `json:"timeOut"`
	InPhoto  *string  `json:"inPhotoPath,omitempty"`
	OutPhoto *string  `json:"outPhotoPath,omitempty"`
	InLat    *float64 `json:"inLatitude,omitempty"`
	InLon    *float64 `json:"inLongitude,omitempty"`
	OutLat   *float64 `json:"outLatitude,omitempty"`
	OutLon   *float64 `json:"outLongitude,omitempty"`
	Status   string   `json:"status"`
}
