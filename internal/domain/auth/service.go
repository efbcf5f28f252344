package auth

import "context"

// AuthService issues tokens and manages the user accounts behind them.
type AuthService interface {
	// Login verifies credentials and returns a token. For LABOUR accounts it
	// also resolves (provisioning if necessary) the linked labour id.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Register creates a CONTRACTOR or LABOUR login account.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// ForgotPassword resets the password after matching username and phone.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
}
