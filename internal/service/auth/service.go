package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazari-app/hazari-backend-go/internal/domain/auth"
	"github.com/hazari-app/hazari-backend-go/internal/domain/labour"
	"github.com/hazari-app/hazari-backend-go/internal/domain/user"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	labourService labour.LabourService
	jwtService    jwt.Service
}

func NewAuthService(userRepo user.UserRepository, labourService labour.LabourService, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		labourService:  labourService,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	account, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	var labourID *int64
	if account.Role == user.RoleLabour {
		// The app routes LABOUR users by labour id; make sure one exists.
		l, err := s.labourService.EnsureForUser(ctx, account.ID, account.Username, account.Phone)
		if err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to resolve labour for user: %w", err)
		}
		labourID = &l.ID
	}

	token, _, err := s.jwtService.GenerateAccessToken(account.ID, account.Username, account.Role, labourID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.LoginResponse{
		Token:    token,
		Role:     string(account.Role),
		UserID:   account.ID,
		LabourID: labourID,
	}, nil
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	if _, err := s.UserRepository.GetByUsername(ctx, req.Username); err == nil {
		return auth.RegisterResponse{}, auth.ErrUsernameTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check username: %w", err)
	}

	taken, err := s.UserRepository.ExistsByPhone(ctx, req.Phone)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check phone: %w", err)
	}
	if taken {
		return auth.RegisterResponse{}, auth.ErrPhoneTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         user.Role(req.Role),
	})
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return auth.RegisterResponse{
		Message: "Registration successful",
		UserID:  created.ID,
		Role:    string(created.Role),
	}, nil
}

// ForgotPassword implements auth.AuthService.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	account, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		return err
	}

	if account.Phone != req.Phone {
		return auth.ErrPhoneMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UserRepository.UpdatePassword(ctx, account.ID, string(hashed))
}
