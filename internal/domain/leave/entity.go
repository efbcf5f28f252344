package leave

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// CanTransitionTo is the explicit transition table for the approval workflow.
// Only a pending request may move, and only to a decided state; re-approving
// or re-rejecting an already decided request is refused.
func (s Status) CanTransitionTo(target Status) bool {
	if s != StatusPending {
		return false
	}
	return target == StatusApproved || target == StatusRejected
}

// LeaveRequest is a labourer-initiated request for approved absence over a
// date range. Dates are immutable after creation; only the status changes.
type LeaveRequest struct {
	ID           int64
	LabourID     int64
	ContractorID int64

	StartDate time.Time
	EndDate   time.Time
	Reason    string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
