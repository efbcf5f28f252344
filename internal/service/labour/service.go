package labour

import (
	"context"
	"fmt"
	"time"

	"github.com/hazari-app/hazari-backend-go/internal/domain/labour"
	"github.com/hazari-app/hazari-backend-go/internal/domain/user"
	"github.com/hazari-app/hazari-backend-go/internal/pkg/database"
	"github.com/hazari-app/hazari-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the one-time password a contractor hands to a newly
// registered labourer along with their username.
const DefaultPassword = "123456"

type LabourServiceImpl struct {
	db *database.DB
	labour.LabourRepository
	user.UserRepository
	attendanceCounter DaysWorkedCounter
}

// DaysWorkedCounter is the slice of the attendance ledger the directory
// needs for roster enrichment.
type DaysWorkedCounter interface {
	CountDaysWorked(ctx context.Context, labourID int64) (int64, error)
}

func NewLabourService(db *database.DB, labourRepo labour.LabourRepository, userRepo user.UserRepository, counter DaysWorkedCounter) labour.LabourService {
	return &LabourServiceImpl{
		db:                db,
		LabourRepository:  labourRepo,
		UserRepository:    userRepo,
		attendanceCounter: counter,
	}
}

// AddLabour implements labour.LabourService.
func (s *LabourServiceImpl) AddLabour(ctx context.Context, req labour.AddLabourRequest) (labour.AddLabourResponse, error) {
	if err := req.Validate(); err != nil {
		return labour.AddLabourResponse{}, err
	}

	taken, err := s.UserRepository.ExistsByPhone(ctx, req.Phone)
	if err != nil {
		return labour.AddLabourResponse{}, fmt.Errorf("failed to check phone: %w", err)
	}
	if taken {
		return labour.AddLabourResponse{}, labour.ErrPhoneAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return labour.AddLabourResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	dailyRate := 0.0
	if req.DailyRate != nil {
		dailyRate = *req.DailyRate
	}

	hireDate := time.Now()
	if req.HireDate != nil {
		hireDate, err = time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return labour.AddLabourResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
		}
	}

	var created labour.Labour
	// The login account and the labour row must land together.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		account, err := s.UserRepository.Create(txCtx, user.User{
			Username:     req.Phone, // phone doubles as the username
			PasswordHash: string(hashed),
			Phone:        req.Phone,
			Role:         user.RoleLabour,
		})
		if err != nil {
			return err
		}

		created, err = s.LabourRepository.Create(txCtx, labour.Labour{
			Name:          req.Name,
			Phone:         req.Phone,
			AadhaarNumber: req.AadhaarNumber,
			DailyRate:     dailyRate,
			ContractorID:  req.ContractorID,
			UserID:        &account.ID,
			IsActive:      true,
			HireDate:      hireDate,
		})
		return err
	})
	if err != nil {
		return labour.AddLabourResponse{}, err
	}

	return labour.AddLabourResponse{
		Labour:   mapLabourToResponse(created),
		Username: req.Phone,
		Password: DefaultPassword,
	}, nil
}

// GetProfile implements labour.LabourService.
func (s *LabourServiceImpl) GetProfile(ctx context.Context, labourID int64) (labour.LabourResponse, error) {
	l, err := s.LabourRepository.GetByID(ctx, labourID)
	if err != nil {
		return labour.LabourResponse{}, err
	}

	daysWorked, err := s.attendanceCounter.CountDaysWorked(ctx, l.ID)
	if err != nil {
		return labour.LabourResponse{}, err
	}

	resp := mapLabourToResponse(l)
	resp.DaysWorked = daysWorked
	return resp, nil
}

// ListByContractor implements labour.LabourService.
func (s *LabourServiceImpl) ListByContractor(ctx context.Context, contractorID int64) ([]labour.LabourResponse, error) {
	labours, err := s.LabourRepository.ListByContractor(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	responses := make([]labour.LabourResponse, 0, len(labours))
	for _, l := range labours {
		daysWorked, err := s.attendanceCounter.CountDaysWorked(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		l.DaysWorked = daysWorked
		responses = append(responses, mapLabourToResponse(l))
	}

	return responses, nil
}

// EnsureForUser implements labour.LabourService.
// Resolution order matches the login flow the mobile app depends on:
// by user id, then by phone for rows that predate the link, then a fresh
// provision so the app keeps working.
func (s *LabourServiceImpl) EnsureForUser(ctx context.Context, userID int64, username, phone string) (labour.Labour, error) {
	if l, err := s.LabourRepository.GetByUserID(ctx, userID); err != nil {
		return labour.Labour{}, err
	} else if l != nil {
		return *l, nil
	}

	if phone != "" {
		if l, err := s.LabourRepository.GetByPhone(ctx, phone); err != nil {
			return labour.Labour{}, err
		} else if l != nil {
			return *l, nil
		}
	}

	return s.LabourRepository.Create(ctx, labour.Labour{
		Name:     username,
		Phone:    username,
		UserID:   &userID,
		IsActive: true,
		HireDate: time.Now(),
	})
}

func mapLabourToResponse(l labour.Labour) labour.LabourResponse {
	return labour.LabourResponse{
		ID:            l.ID,
		Name:          l.Name,
		Phone:         l.Phone,
		AadhaarNumber: l.AadhaarNumber,
		DailyRate:     l.DailyRate,
		ContractorID:  l.ContractorID,
		IsActive:      l.IsActive,
		HireDate:      l.HireDate.Format("2006-01-02"),
		DaysWorked:    l.DaysWorked,
	}
}
