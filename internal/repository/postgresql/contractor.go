package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazari-app/hazari-backend-go/internal/domain/contractor"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type contractorRepository struct {
	db *database.DB
}

func NewContractorRepository(db *database.DB) contractor.ContractorRepository {
	return &contractorRepository{db: db}
}

// GetByID implements contractor.ContractorRepository.
func (r *contractorRepository) GetByID(ctx context.Context, id int64) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, company_name, gst_number, address,
			   total_budget, project_id, is_active, contract_start_date,
			   created_at, updated_at
		FROM contractors
		WHERE id = $1
	`

	var c contractor.Contractor
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.CompanyName, &c.GSTNumber, &c.Address,
		&c.TotalBudget, &c.ProjectID, &c.IsActive, &c.ContractStartDate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contractor.Contractor{}, contractor.ErrContractorNotFound
		}
		return contractor.Contractor{}, fmt.Errorf("failed to get contractor by id: %w", err)
	}

	return c, nil
}
