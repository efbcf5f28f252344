package contractor

import (
	"context"
	"errors"

	"github.com/hazari-app/hazari-backend-go/internal/domain/contractor"
	"github.com/hazari-app/hazari-backend-go/internal/domain/user"
)

// ContractorService exposes the contractor-facing profile and dashboard reads.
type ContractorService interface {
	// GetProfile resolves a profile for the id the app got at login.
	GetProfile(ctx context.Context, userID int64) (contractor.ProfileResponse, error)

	// Dashboard returns the contractor's summary card.
	Dashboard(ctx context.Context, contractorID int64) (contractor.DashboardResponse, error)
}

type ContractorServiceImpl struct {
	contractor.ContractorRepository
	user.UserRepository
}

func NewContractorService(contractorRepo contractor.ContractorRepository, userRepo user.UserRepository) ContractorService {
	return &ContractorServiceImpl{
		ContractorRepository: contractorRepo,
		UserRepository:       userRepo,
	}
}

// GetProfile implements ContractorService.
//
// Seeded contractors share their id with their login user; newly registered
// accounts may have only a user row. Resolution falls back accordingly so
// the app never sees a hard failure on the profile screen.
func (s *ContractorServiceImpl) GetProfile(ctx context.Context, userID int64) (contractor.ProfileResponse, error) {
	c, err := s.ContractorRepository.GetByID(ctx, userID)
	if err == nil {
		companyName := "N/A"
		if c.CompanyName != nil {
			companyName = *c.CompanyName
		}
		return contractor.ProfileResponse{
			ID:          c.ID,
			Name:        c.Name,
			Phone:       c.Phone,
			CompanyName: companyName,
			IsActive:    c.IsActive,
		}, nil
	}
	if !errors.Is(err, contractor.ErrContractorNotFound) {
		return contractor.ProfileResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err == nil {
		return contractor.ProfileResponse{
			ID:          u.ID,
			Name:        u.Username,
			Phone:       u.Phone,
			CompanyName: "N/A",
			IsActive:    true,
		}, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return contractor.ProfileResponse{}, err
	}

	return contractor.ProfileResponse{
		ID:          userID,
		Name:        "Unknown Contractor",
		Phone:       "",
		CompanyName: "N/A",
		IsActive:    false,
	}, nil
}

// Dashboard implements ContractorService.
func (s *ContractorServiceImpl) Dashboard(ctx context.Context, contractorID int64) (contractor.DashboardResponse, error) {
	c, err := s.ContractorRepository.GetByID(ctx, contractorID)
	if err != nil {
		return contractor.DashboardResponse{}, err
	}

	return contractor.DashboardResponse{
		Name:        c.Name,
		Company:     c.CompanyName,
		TotalBudget: c.TotalBudget,
		Active:      c.IsActive,
	}, nil
}
