package contractor

import "context"

// ContractorRepository defines data access for contractors.
type ContractorRepository interface {
	GetByID(ctx context.Context, id int64) (Contractor, error)
}
