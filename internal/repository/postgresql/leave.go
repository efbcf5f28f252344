package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazari-app/hazari-backend-go/internal/domain/leave"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (
			labour_id, contractor_id, start_date, end_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.LabourID,
		request.ContractorID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, labour_id, contractor_id, start_date, end_date, reason, status, created_at, updated_at
		FROM leaves
		WHERE id = $1
	`

	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.LabourID, &lr.ContractorID,
		&lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status,
		&lr.CreatedAt, &lr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by id: %w", err)
	}

	return lr, nil
}

// ListByStatus implements leave.LeaveRepository.
func (r *leaveRepository) ListByStatus(ctx context.Context, status leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, labour_id, contractor_id, start_date, end_date, reason, status, created_at, updated_at
		FROM leaves
		WHERE status = $1
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by status: %w", err)
	}
	defer rows.Close()

	return scanLeaveRows(rows)
}

// ListByContractorAndStatus implements leave.LeaveRepository.
func (r *leaveRepository) ListByContractorAndStatus(ctx context.Context, contractorID int64, status leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, labour_id, contractor_id, start_date, end_date, reason, status, created_at, updated_at
		FROM leaves
		WHERE contractor_id = $1
		  AND status = $2
	`

	rows, err := q.Query(ctx, query, contractorID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by contractor and status: %w", err)
	}
	defer rows.Close()

	return scanLeaveRows(rows)
}

// ListByLabour implements leave.LeaveRepository.
func (r *leaveRepository) ListByLabour(ctx context.Context, labourID int64) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, labour_id, contractor_id, start_date, end_date, reason, status, created_at, updated_at
		FROM leaves
		WHERE labour_id = $1
	`

	rows, err := q.Query(ctx, query, labourID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by labour: %w", err)
	}
	defer rows.Close()

	return scanLeaveRows(rows)
}

// DecideIfPending implements leave.LeaveRepository.
// The status predicate makes the decision atomic: of two concurrent
// approvals or rejections only one UPDATE matches the pending row.
func (r *leaveRepository) DecideIfPending(ctx context.Context, id int64, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE leaves SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, status, id, leave.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveAlreadyProcessed
	}

	return nil
}

func scanLeaveRows(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.LabourID, &lr.ContractorID,
			&lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status,
			&lr.CreatedAt, &lr.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
