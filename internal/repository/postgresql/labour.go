package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazari-app/hazari-backend-go/internal/domain/labour"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type labourRepository struct {
	db *database.DB
}

func NewLabourRepository(db *database.DB) labour.LabourRepository {
	return &labourRepository{db: db}
}

// Create implements labour.LabourRepository.
func (r *labourRepository) Create(ctx context.Context, l labour.Labour) (labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO labours (
			name, phone, aadhaar_number, daily_rate, contractor_id, user_id, is_active, hire_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.Name,
		l.Phone,
		l.AadhaarNumber,
		l.DailyRate,
		l.ContractorID,
		l.UserID,
		l.IsActive,
		l.HireDate,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return labour.Labour{}, fmt.Errorf("failed to create labour: %w", err)
	}

	return l, nil
}

// GetByID implements labour.LabourRepository.
func (r *labourRepository) GetByID(ctx context.Context, id int64) (labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, aadhaar_number, daily_rate, contractor_id, user_id, is_active, hire_date, created_at, updated_at
		FROM labours
		WHERE id = $1
	`

	var l labour.Labour
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Phone, &l.AadhaarNumber, &l.DailyRate,
		&l.ContractorID, &l.UserID, &l.IsActive, &l.HireDate,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return labour.Labour{}, labour.ErrLabourNotFound
		}
		return labour.Labour{}, fmt.Errorf("failed to get labour by id: %w", err)
	}

	return l, nil
}

// GetByUserID implements labour.LabourRepository.
func (r *labourRepository) GetByUserID(ctx context.Context, userID int64) (*labour.Labour, error) {
	return r.getOptional(ctx, `
		SELECT id, name, phone, aadhaar_number, daily_rate, contractor_id, user_id, is_active, hire_date, created_at, updated_at
		FROM labours
		WHERE user_id = $1
		LIMIT 1
	`, userID)
}

// GetByPhone implements labour.LabourRepository.
func (r *labourRepository) GetByPhone(ctx context.Context, phone string) (*labour.Labour, error) {
	return r.getOptional(ctx, `
		SELECT id, name, phone, aadhaar_number, daily_rate, contractor_id, user_id, is_active, hire_date, created_at, updated_at
		FROM labours
		WHERE phone = $1
		LIMIT 1
	`, phone)
}

// ListByContractor implements labour.LabourRepository.
func (r *labourRepository) ListByContractor(ctx context.Context, contractorID int64) ([]labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, aadhaar_number, daily_rate, contractor_id, user_id, is_active, hire_date, created_at, updated_at
		FROM labours
		WHERE contractor_id = $1
	`

	rows, err := q.Query(ctx, query, contractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list labours by contractor: %w", err)
	}
	defer rows.Close()

	var labours []labour.Labour
	for rows.Next() {
		var l labour.Labour
		err := rows.Scan(
			&l.ID, &l.Name, &l.Phone, &l.AadhaarNumber, &l.DailyRate,
			&l.ContractorID, &l.UserID, &l.IsActive, &l.HireDate,
			&l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan labour row: %w", err)
		}
		labours = append(labours, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return labours, nil
}

func (r *labourRepository) getOptional(ctx context.Context, query string, arg interface{}) (*labour.Labour, error) {
	q := GetQuerier(ctx, r.db)

	var l labour.Labour
	err := q.QueryRow(ctx, query, arg).Scan(
		&l.ID, &l.Name, &l.Phone, &l.AadhaarNumber, &l.DailyRate,
		&l.ContractorID, &l.UserID, &l.IsActive, &l.HireDate,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get labour: %w", err)
	}

	return &l, nil
}
