package labour

import "context"

// LabourService defines labour directory operations.
type LabourService interface {
	// AddLabour registers a worker and creates a linked login account with
	// the default password; both rows are written in one transaction.
	AddLabour(ctx context.Context, req AddLabourRequest) (AddLabourResponse, error)

	// GetProfile returns one labourer's directory entry.
	GetProfile(ctx context.Context, labourID int64) (LabourResponse, error)

	// ListByContractor returns a contractor's roster, each entry enriched
	// with the count of days worked from the attendance ledger.
	ListByContractor(ctx context.Context, contractorID int64) ([]LabourResponse, error)

	// EnsureForUser returns the labour row linked to a login account,
	// provisioning one when none exists. Idempotent; used at login for
	// accounts that predate the user/labour link.
	EnsureForUser(ctx context.Context, userID int64, username, phone string) (Labour, error)
}
