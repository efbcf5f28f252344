package labour

import (
	"github.com/hazari-app/hazari-backend-go/internal/pkg/validator"
)

// AddLabourRequest is submitted by a contractor to register a worker and
// provision a login account for them in one step.
type AddLabourRequest struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	AadhaarNumber *string  `json:"aadhaarNumber,omitempty"`
	DailyRate     *float64 `json:"dailyRate,omitempty"`
	ContractorID  *int64   `json:"contractorId"`
	HireDate      *string  `json:"hireDate,omitempty"`
}

func (r *AddLabourRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ContractorID == nil || *r.ContractorID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "contractorId",
			Message: "contractorId is required",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.AadhaarNumber != nil && !validator.IsValidAadhaar(*r.AadhaarNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "aadhaarNumber",
			Message: "aadhaarNumber must be a 12-digit number",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hireDate",
				Message: "hireDate must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LabourResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	AadhaarNumber *string `json:"aadhaarNumber,omitempty"`
	DailyRate     float64 `json:"dailyRate"`
	ContractorID  *int64  `json:"contractorId"`
	IsActive      bool    `json:"isActive"`
	HireDate      string  `json:"hireDate"`
	DaysWorked    int64   `json:"daysWorked"`
}

// AddLabourResponse includes the one-time login credentials the contractor
// hands to the labourer.
type AddLabourResponse struct {
	Labour   LabourResponse `json:"labour"`
	Username string         `json:"username"`
	Password string         `json:"password"`
}
