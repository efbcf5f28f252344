package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hazari-app/hazari-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	status := leave.Status(req.Status)
	if status == "" {
		status = leave.StatusPending
	}

	request := leave.LeaveRequest{
		LabourID:     req.LabourID,
		ContractorID: req.ContractorID,
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       req.Reason,
		Status:       status,
	}

	created, err := s.LeaveRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveToResponse(created), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context, contractorID *int64) ([]leave.LeaveResponse, error) {
	var (
		requests []leave.LeaveRequest
		err      error
	)
	if contractorID != nil {
		requests, err = s.LeaveRepository.ListByContractorAndStatus(ctx, *contractorID, leave.StatusPending)
	} else {
		requests, err = s.LeaveRepository.ListByStatus(ctx, leave.StatusPending)
	}
	if err != nil {
		return nil, err
	}

	return mapLeavesToResponses(requests), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, leaveID int64) (leave.LeaveResponse, error) {
	return s.transition(ctx, leaveID, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, leaveID int64) (leave.LeaveResponse, error) {
	return s.transition(ctx, leaveID, leave.StatusRejected)
}

func (s *LeaveServiceImpl) transition(ctx context.Context, leaveID int64, target leave.Status) (leave.LeaveResponse, error) {
	request, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !request.Status.CanTransitionTo(target) {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	// The repository re-checks the status inside the UPDATE, so a decision
	// racing this one cannot be overwritten.
	if err := s.LeaveRepository.DecideIfPending(ctx, leaveID, target); err != nil {
		return leave.LeaveResponse{}, err
	}

	request.Status = target
	return mapLeaveToResponse(request), nil
}

// ListByLabour implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByLabour(ctx context.Context, labourID int64) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.ListByLabour(ctx, labourID)
	if err != nil {
		return nil, err
	}

	return mapLeavesToResponses(requests), nil
}

func mapLeaveToResponse(lr leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           lr.ID,
		LabourID:     lr.LabourID,
		ContractorID: lr.ContractorID,
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		Reason:       lr.Reason,
		Status:       string(lr.Status),
	}
}

func mapLeavesToResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, mapLeaveToResponse(lr))
	}
	return responses
}
