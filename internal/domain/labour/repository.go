package labour

import "context"

// LabourRepository defines data access for the labour directory.
type LabourRepository interface {
	Create(ctx context.Context, l Labour) (Labour, error)
	GetByID(ctx context.Context, id int64) (Labour, error)
	GetByUserID(ctx context.Context, userID int64) (*Labour, error)
	GetByPhone(ctx context.Context, phone string) (*Labour, error)
	ListByContractor(ctx context.Context, contractorID int64) ([]Labour, error)
}
