package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hazari-app/hazari-backend-go/internal/domain/attendance"
	"github.com/hazari-app/hazari-backend-go/internal/domain/labour"
)

// TodayAttendanceRow is one line of the contractor's daily attendance view.
type TodayAttendanceRow struct {
	LabourID   int64   `json:"labourId"`
	LabourName string  `json:"labourName"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"checkIn"`
	CheckOut   *string `json:"checkOut"`
}

// ReportService produces the read-only daily attendance view. It holds no
// state of its own; every call is a fresh query.
type ReportService interface {
	// TodayAll lists every attendance record for the given day across all
	// contractors, sorted by labour name.
	TodayAll(ctx context.Context, day time.Time) ([]TodayAttendanceRow, error)

	// TodayForContractor restricts TodayAll to one contractor's roster.
	// An empty roster short-circuits to an empty result.
	TodayForContractor(ctx context.Context, day time.Time, contractorID int64) ([]TodayAttendanceRow, error)
}

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	labour.LabourRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, labourRepo labour.LabourRepository) ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		LabourRepository:     labourRepo,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TodayAll implements ReportService.
func (s *ReportServiceImpl) TodayAll(ctx context.Context, day time.Time) ([]TodayAttendanceRow, error) {
	records, err := s.AttendanceRepository.ListByDate(ctx, truncateToDay(day))
	if err != nil {
		return nil, err
	}

	return s.buildRows(ctx, records)
}

// TodayForContractor implements ReportService.
func (s *ReportServiceImpl) TodayForContractor(ctx context.Context, day time.Time, contractorID int64) ([]TodayAttendanceRow, error) {
	roster, err := s.LabourRepository.ListByContractor(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return []TodayAttendanceRow{}, nil
	}

	labourIDs := make([]int64, 0, len(roster))
	for _, l := range roster {
		labourIDs = append(labourIDs, l.ID)
	}

	records, err := s.AttendanceRepository.ListByDateAndLabourIDs(ctx, truncateToDay(day), labourIDs)
	if err != nil {
		return nil, err
	}

	return s.buildRows(ctx, records)
}

// buildRows enriches raw records with labour names and sorts by name.
// The name cache lives for a single call only, so renames never go stale.
func (s *ReportServiceImpl) buildRows(ctx context.Context, records []attendance.Attendance) ([]TodayAttendanceRow, error) {
	rows := make([]TodayAttendanceRow, 0, len(records))
	nameCache := make(map[int64]string)

	for _, att := range records {
		name, ok := nameCache[att.LabourID]
		if !ok {
			l, err := s.LabourRepository.GetByID(ctx, att.LabourID)
			if err != nil {
				name = fmt.Sprintf("Labour #%d", att.LabourID)
			} else {
				name = l.Name
			}
			nameCache[att.LabourID] = name
		}

		// Stored status wins; a record without one shows PRESENT, since a
		// labourer with no record at all never reaches this loop.
		status := attendance.StatusPresent
		if att.Status != "" {
			status = att.Status
		}

		rows = append(rows, TodayAttendanceRow{
			LabourID:   att.LabourID,
			LabourName: name,
			Status:     status,
			CheckIn:    timePtrToString(att.TimeIn),
			CheckOut:   timePtrToString(att.TimeOut),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].LabourName < rows[j].LabourName
	})

	return rows, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
