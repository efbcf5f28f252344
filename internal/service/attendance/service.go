package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/hazari-app/hazari-backend-go/internal/domain/attendance"
)

// PhotoCleaner removes stored evidence photos that no record references
// anymore.
type PhotoCleaner interface {
	RemoveImage(ctx context.Context, path string) error
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	photos PhotoCleaner
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, photos PhotoCleaner) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		photos:               photos,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// truncateToDay strips the time component; the ledger keys on calendar days.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, day time.Time, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := day
	date := truncateToDay(day)

	prev, err := s.AttendanceRepository.GetByLabourAndDate(ctx, req.LabourID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	data := attendance.Attendance{
		LabourID:    req.LabourID,
		Date:        date,
		TimeIn:      &now,
		InPhotoPath: &req.PhotoPath,
		InLatitude:  &req.Latitude,
		InLongitude: &req.Longitude,
	}

	result, err := s.AttendanceRepository.UpsertCheckIn(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// A repeated check-in replaced the earlier photo; drop the orphan.
	// Cleanup is best effort, the ledger row is already committed.
	if prev != nil && prev.InPhotoPath != nil && *prev.InPhotoPath != req.PhotoPath {
		if err := s.photos.RemoveImage(ctx, *prev.InPhotoPath); err != nil {
			slog.Warn("failed to remove replaced check-in photo", "error", err, "path", *prev.InPhotoPath)
		}
	}

	return mapAttendanceToResponse(result), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, day time.Time, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := day
	date := truncateToDay(day)

	record, err := s.AttendanceRepository.GetByLabourAndDate(ctx, req.LabourID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil {
		// Check-out never creates the day's record
		return attendance.AttendanceResponse{}, attendance.ErrNoCheckInToday
	}

	record.TimeOut = &now
	record.OutPhotoPath = &req.PhotoPath
	record.OutLatitude = &req.Latitude
	record.OutLongitude = &req.Longitude

	if err := s.AttendanceRepository.UpdateCheckOut(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(*record), nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, day time.Time, labourID int64) (attendance.TodayStatusResponse, error) {
	record, err := s.AttendanceRepository.GetByLabourAndDate(ctx, labourID, truncateToDay(day))
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	status := attendance.TodayStatusResponse{LabourID: labourID}
	if record == nil {
		return status, nil
	}

	status.TodayCheckedIn = record.TimeIn != nil
	status.TodayCheckedOut = record.TimeOut != nil
	if record.TimeIn != nil && record.TimeOut != nil {
		if worked := record.TimeOut.Sub(*record.TimeIn); worked > 0 {
			status.HoursWorked = worked.Hours()
		}
	}

	return status, nil
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:       att.ID,
		LabourID: att.LabourID,
		Date:     att.Date.Format("2006-01-02"),
		TimeIn:   timePtrToString(att.TimeIn),
		TimeOut:  timePtrToString(att.TimeOut),
		InPhoto:  att.InPhotoPath,
		OutPhoto: att.OutPhotoPath,
		InLat:    att.InLatitude,
		InLon:    att.InLongitude,
		OutLat:   att.OutLatitude,
		OutLon:   att.OutLongitude,
		Status:   att.DerivedStatus(),
	}
}
