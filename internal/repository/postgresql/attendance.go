package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hazari-app/hazari-backend-go/internal/domain/attendance"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// UpsertCheckIn implements attendance.AttendanceRepository.
// The unique index on (labour_id, date) makes concurrent check-ins for the
// same labourer converge on one row; the later write wins.
func (a *attendanceRepository) UpsertCheckIn(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (
			labour_id, date, time_in, in_photo_path, in_latitude, in_longitude, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (labour_id, date) DO UPDATE SET
			time_in       = EXCLUDED.time_in,
			in_photo_path = EXCLUDED.in_photo_path,
			in_latitude   = EXCLUDED.in_latitude,
			in_longitude  = EXCLUDED.in_longitude,
			updated_at    = NOW()
		RETURNING id, time_out, out_photo_path, out_latitude, out_longitude, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.LabourID,
		att.Date,
		att.TimeIn,
		att.InPhotoPath,
		att.InLatitude,
		att.InLongitude,
		att.Status,
	).Scan(
		&att.ID,
		&att.TimeOut,
		&att.OutPhotoPath,
		&att.OutLatitude,
		&att.OutLongitude,
		&att.Status,
		&att.CreatedAt,
		&att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert check-in: %w", err)
	}

	return att, nil
}

// GetByLabourAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByLabourAndDate(ctx context.Context, labourID int64, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, labour_id, date, time_in, time_out,
			   in_photo_path, out_photo_path,
			   in_latitude, in_longitude, out_latitude, out_longitude,
			   status, created_at, updated_at
		FROM attendance
		WHERE labour_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, labourID, date).Scan(
		&att.ID, &att.LabourID, &att.Date, &att.TimeIn, &att.TimeOut,
		&att.InPhotoPath, &att.OutPhotoPath,
		&att.InLatitude, &att.InLongitude, &att.OutLatitude, &att.OutLongitude,
		&att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by labour and date: %w", err)
	}

	return &att, nil
}

// UpdateCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateCheckOut(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance SET
			time_out       = $1,
			out_photo_path = $2,
			out_latitude   = $3,
			out_longitude  = $4,
			updated_at     = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query,
		att.TimeOut,
		att.OutPhotoPath,
		att.OutLatitude,
		att.OutLongitude,
		att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update check-out: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, labour_id, date, time_in, time_out,
			   in_photo_path, out_photo_path,
			   in_latitude, in_longitude, out_latitude, out_longitude,
			   status, created_at, updated_at
		FROM attendance
		WHERE date = $1
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListByDateAndLabourIDs implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDateAndLabourIDs(ctx context.Context, date time.Time, labourIDs []int64) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, labour_id, date, time_in, time_out,
			   in_photo_path, out_photo_path,
			   in_latitude, in_longitude, out_latitude, out_longitude,
			   status, created_at, updated_at
		FROM attendance
		WHERE date = $1
		  AND labour_id = ANY($2)
	`

	rows, err := q.Query(ctx, query, date, labourIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date and labour ids: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// CountDaysWorked implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountDaysWorked(ctx context.Context, labourID int64) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM attendance
		WHERE labour_id = $1
		  AND time_in IS NOT NULL
	`, labourID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count days worked: %w", err)
	}

	return count, nil
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.LabourID, &att.Date, &att.TimeIn, &att.TimeOut,
			&att.InPhotoPath, &att.OutPhotoPath,
			&att.InLatitude, &att.InLongitude, &att.OutLatitude, &att.OutLongitude,
			&att.Status, &att.CreatedAt, &att.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
