package leave

import "context"

// LeaveService defines the leave request lifecycle: PENDING at creation,
// then a single contractor decision to APPROVED or REJECTED.
type LeaveService interface {
	// CreateRequest stores a new request, defaulting status to PENDING when
	// the caller supplied none.
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveResponse, error)

	// ListPending returns pending requests, restricted to one contractor when
	// contractorID is non-nil. Unpaginated.
	ListPending(ctx context.Context, contractorID *int64) ([]LeaveResponse, error)

	// Approve moves a pending request to APPROVED.
	Approve(ctx context.Context, leaveID int64) (LeaveResponse, error)

	// Reject moves a pending request to REJECTED. The reason is echoed back
	// to the caller only; it is not persisted on the record.
	Reject(ctx context.Context, leaveID int64) (LeaveResponse, error)

	// ListByLabour returns every request for one labourer, any status.
	ListByLabour(ctx context.Context, labourID int64) ([]LeaveResponse, error)
}
