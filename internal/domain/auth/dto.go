package auth

import (
	"github.com/hazari-app/hazari-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !validator.IsInSlice(r.Role, []string{"CONTRACTOR", "LABOUR"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be CONTRACTOR or LABOUR",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ForgotPasswordRequest struct {
	Username    string `json:"username"`
	Phone       string `json:"phone"`
	NewPassword string `json:"newPassword"`
}

func (r *ForgotPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}
	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "newPassword is required",
		})
	} else if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "newPassword must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoginResponse carries the token plus the identifiers the app routes on.
// LabourID is set only for LABOUR accounts.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserID   int64  `json:"userId"`
	LabourID *int64 `json:"labourId,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
	Role    string `json:"role"`
}
