package leave

import "context"

// LeaveRepository - data access for the leaves table
type LeaveRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	ListByStatus(ctx context.Context, status Status) ([]LeaveRequest, error)
	ListByContractorAndStatus(ctx context.Context, contractorID int64, status Status) ([]LeaveRequest, error)
	ListByLabour(ctx context.Context, labourID int64) ([]LeaveRequest, error)

	// DecideIfPending moves a pending request to the given status. It
	// returns ErrLeaveAlreadyProcessed when the request is no longer
	// pending, so two concurrent decisions cannot both win.
	DecideIfPending(ctx context.Context, id int64, status Status) error
}
