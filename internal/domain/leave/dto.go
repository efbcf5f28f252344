package leave

import (
	"github.com/hazari-app/hazari-backend-go/internal/pkg/validator"
)

// CreateLeaveRequestRequest carries a labourer's leave application.
// Start/end ordering is deliberately not checked; the contractor sees the
// raw request and decides.
type CreateLeaveRequestRequest struct {
	LabourID     int64  `json:"labourId"`
	ContractorID int64  `json:"contractorId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	Status       string `json:"status,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LabourID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "labourId",
			Message: "labourId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be a valid date (YYYY-MM-DD)",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID           int64  `json:"id"`
	LabourID     int64  `json:"labourId"`
	ContractorID int64  `json:"contractorId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}
