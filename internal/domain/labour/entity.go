package labour

import "time"

// Labour is a worker tracked for attendance and payment, owned by a
// contractor. UserID links the labourer to a login account.
type Labour struct {
	ID            int64
	Name          string
	Phone         string
	AadhaarNumber *string
	DailyRate     float64
	ContractorID  *int64
	UserID        *int64
	IsActive      bool
	HireDate      time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO, computed from the attendance ledger
	DaysWorked int64
}
