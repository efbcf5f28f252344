package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hazari-app/hazari-backend-go/internal/domain/leave"
	"github.com/hazari-app/hazari-backend-go/internal/handler/http/response"
	contractorService "github.com/hazari-app/hazari-backend-go/internal/service/contractor"
	paymentService "github.com/hazari-app/hazari-backend-go/internal/service/payment"
	reportService "github.com/hazari-app/hazari-backend-go/internal/service/report"
)

type ContractorHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	PendingLeaves(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
	TodayAttendance(w http.ResponseWriter, r *http.Request)
	TodayAttendanceByPath(w http.ResponseWriter, r *http.Request)
	PaymentSummary(w http.ResponseWriter, r *http.Request)
}

type ContractorHandlerImpl struct {
	contractorService contractorService.ContractorService
	leaveService      leave.LeaveService
	reportService     reportService.ReportService
	paymentService    paymentService.PaymentService
}

func NewContractorHandler(
	contractorSvc contractorService.ContractorService,
	leaveService leave.LeaveService,
	reportSvc reportService.ReportService,
	paymentSvc paymentService.PaymentService,
) ContractorHandler {
	return &ContractorHandlerImpl{
		contractorService: contractorSvc,
		leaveService:      leaveService,
		reportService:     reportSvc,
		paymentService:    paymentSvc,
	}
}

// GetProfile implements ContractorHandler.
func (h *ContractorHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	contractorID, ok := parseIDParam(r, "contractorID")
	if !ok {
		response.BadRequest(w, "Invalid contractor id", nil)
		return
	}

	result, err := h.contractorService.GetProfile(r.Context(), contractorID)
	if err != nil {
		slog.Error("ContractorProfile service error", "error", err, "contractor_id", contractorID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Dashboard implements ContractorHandler.
func (h *ContractorHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	contractorID, ok := parseIDParam(r, "contractorID")
	if !ok {
		response.BadRequest(w, "Invalid contractor id", nil)
		return
	}

	result, err := h.contractorService.Dashboard(r.Context(), contractorID)
	if err != nil {
		slog.Error("ContractorDashboard service error", "error", err, "contractor_id", contractorID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PendingLeaves implements ContractorHandler. Without a contractorId query
// parameter it returns every pending request, which is what the approvals
// screen asks for.
func (h *ContractorHandlerImpl) PendingLeaves(w http.ResponseWriter, r *http.Request) {
	var contractorID *int64
	if raw := r.URL.Query().Get("contractorId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(w, "Invalid contractor id", nil)
			return
		}
		contractorID = &id
	}

	result, err := h.leaveService.ListPending(r.Context(), contractorID)
	if err != nil {
		slog.Error("PendingLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ApproveLeave implements ContractorHandler.
func (h *ContractorHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	leaveID, ok := parseIDParam(r, "leaveID")
	if !ok {
		response.BadRequest(w, "Invalid leave id", nil)
		return
	}

	result, err := h.leaveService.Approve(r.Context(), leaveID)
	if err != nil {
		slog.Error("ApproveLeave service error", "error", err, "leave_id", leaveID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave approved", "leave_id", leaveID)
	response.SuccessWithMessage(w, "Leave request approved", result)
}

// RejectLeave implements ContractorHandler. The optional reason query
// parameter is echoed back in the message; it is not persisted.
func (h *ContractorHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	leaveID, ok := parseIDParam(r, "leaveID")
	if !ok {
		response.BadRequest(w, "Invalid leave id", nil)
		return
	}

	result, err := h.leaveService.Reject(r.Context(), leaveID)
	if err != nil {
		slog.Error("RejectLeave service error", "error", err, "leave_id", leaveID)
		response.HandleError(w, err)
		return
	}

	message := "Leave request rejected"
	if reason := r.URL.Query().Get("reason"); reason != "" {
		message = fmt.Sprintf("Leave request rejected: %s", reason)
	}

	slog.Info("Leave rejected", "leave_id", leaveID)
	response.SuccessWithMessage(w, message, result)
}

// TodayAttendance implements ContractorHandler. With a contractorId query
// parameter the report is scoped to that contractor's roster; without one
// it covers every labour on record.
func (h *ContractorHandlerImpl) TodayAttendance(w http.ResponseWriter, r *http.Request) {
	day := time.Now()

	if raw := r.URL.Query().Get("contractorId"); raw != "" {
		contractorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || contractorID <= 0 {
			response.BadRequest(w, "Invalid contractor id", nil)
			return
		}

		result, err := h.reportService.TodayForContractor(r.Context(), day, contractorID)
		if err != nil {
			slog.Error("TodayAttendance service error", "error", err, "contractor_id", contractorID)
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.reportService.TodayAll(r.Context(), day)
	if err != nil {
		slog.Error("TodayAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TodayAttendanceByPath implements ContractorHandler for the path-scoped
// variant of the daily report.
func (h *ContractorHandlerImpl) TodayAttendanceByPath(w http.ResponseWriter, r *http.Request) {
	contractorID, ok := parseIDParam(r, "contractorID")
	if !ok {
		response.BadRequest(w, "Invalid contractor id", nil)
		return
	}

	result, err := h.reportService.TodayForContractor(r.Context(), time.Now(), contractorID)
	if err != nil {
		slog.Error("TodayAttendanceByPath service error", "error", err, "contractor_id", contractorID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PaymentSummary implements ContractorHandler.
func (h *ContractorHandlerImpl) PaymentSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(r, "userID")
	if !ok {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	result, err := h.paymentService.GetSummary(r.Context(), userID)
	if err != nil {
		slog.Error("PaymentSummary service error", "error", err, "user_id", userID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
