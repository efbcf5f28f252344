package contractor

import "time"

// Contractor is the managing authority who owns a roster of labourers and
// approves or rejects their leave.
type Contractor struct {
	ID                int64
	Name              string
	Phone             string
	CompanyName       *string
	GSTNumber         *string
	Address           *string
	TotalBudget       *float64
	ProjectID         *int64
	IsActive          bool
	ContractStartDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
