package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hazari-app/hazari-backend-go/internal/domain/attendance"
	"github.com/hazari-app/hazari-backend-go/internal/domain/labour"
	"github.com/hazari-app/hazari-backend-go/internal/domain/leave"
	"github.com/hazari-app/hazari-backend-go/internal/handler/http/response"
)

type LabourHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	ListByContractor(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	CreateLeave(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
}

type LabourHandlerImpl struct {
	labourService     labour.LabourService
	attendanceService attendance.AttendanceService
	leaveService      leave.LeaveService
}

func NewLabourHandler(labourService labour.LabourService, attendanceService attendance.AttendanceService, leaveService leave.LeaveService) LabourHandler {
	return &LabourHandlerImpl{
		labourService:     labourService,
		attendanceService: attendanceService,
		leaveService:      leaveService,
	}
}

func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// Add implements LabourHandler.
func (h *LabourHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var addReq labour.AddLabourRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("AddLabour decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := addReq.Validate(); err != nil {
		slog.Error("AddLabour validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.labourService.AddLabour(r.Context(), addReq)
	if err != nil {
		slog.Error("AddLabour service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Labour added", "labour_id", result.Labour.ID)
	response.Created(w, "Labour added successfully", result)
}

// GetProfile implements LabourHandler.
func (h *LabourHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	labourID, ok := parseIDParam(r, "labourID")
	if !ok {
		response.BadRequest(w, "Invalid labour id", nil)
		return
	}

	result, err := h.labourService.GetProfile(r.Context(), labourID)
	if err != nil {
		slog.Error("GetProfile service error", "error", err, "labour_id", labourID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByContractor implements LabourHandler.
func (h *LabourHandlerImpl) ListByContractor(w http.ResponseWriter, r *http.Request) {
	contractorID, ok := parseIDParam(r, "contractorID")
	if !ok {
		response.BadRequest(w, "Invalid contractor id", nil)
		return
	}

	result, err := h.labourService.ListByContractor(r.Context(), contractorID)
	if err != nil {
		slog.Error("ListByContractor service error", "error", err, "contractor_id", contractorID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Dashboard implements LabourHandler. The labour dashboard shows the same
// profile card the mobile app renders, days worked included.
func (h *LabourHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	labourID, ok := parseIDParam(r, "labourID")
	if !ok {
		response.BadRequest(w, "Invalid labour id", nil)
		return
	}

	result, err := h.labourService.GetProfile(r.Context(), labourID)
	if err != nil {
		slog.Error("Dashboard service error", "error", err, "labour_id", labourID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckIn implements LabourHandler.
func (h *LabourHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq attendance.CheckInRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := checkInReq.Validate(); err != nil {
		slog.Error("CheckIn validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service. The request wall clock is the check-in moment; the
	// service derives the ledger date from it.
	result, err := h.attendanceService.CheckIn(r.Context(), time.Now(), checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err, "labour_id", checkInReq.LabourID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Labour checked in", "labour_id", checkInReq.LabourID)
	response.SuccessWithMessage(w, "Check-in recorded", result)
}

// CheckOut implements LabourHandler.
func (h *LabourHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	labourID, ok := parseIDParam(r, "labourID")
	if !ok {
		response.BadRequest(w, "Invalid labour id", nil)
		return
	}

	var checkOutReq attendance.CheckOutRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	checkOutReq.LabourID = labourID

	// Validate DTO
	if err := checkOutReq.Validate(); err != nil {
		slog.Error("CheckOut validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.attendanceService.CheckOut(r.Context(), time.Now(), checkOutReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err, "labour_id", labourID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Labour checked out", "labour_id", labourID)
	response.SuccessWithMessage(w, "Check-out recorded", result)
}

// TodayStatus implements LabourHandler.
func (h *LabourHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	labourID, ok := parseIDParam(r, "labourID")
	if !ok {
		response.BadRequest(w, "Invalid labour id", nil)
		return
	}

	result, err := h.attendanceService.TodayStatus(r.Context(), time.Now(), labourID)
	if err != nil {
		slog.Error("TodayStatus service error", "error", err, "labour_id", labourID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateLeave implements LabourHandler.
func (h *LabourHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	labourID, ok := parseIDParam(r, "labourID")
	if !ok {
		response.BadRequest(w, "Invalid labour id", nil)
		return
	}

	var leaveReq leave.CreateLeaveRequestRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&leaveReq); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	leaveReq.LabourID = labourID

	// Validate DTO
	if err := leaveReq.Validate(); err != nil {
		slog.Error("CreateLeave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.leaveService.CreateRequest(r.Context(), leaveReq)
	if err != nil {
		slog.Error("CreateLeave service error", "error", err, "labour_id", labourID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave requested", "labour_id", labourID, "leave_id", result.ID)
	response.Created(w, "Leave request submitted", result)
}

// ListLeaves implements LabourHandler.
func (h *LabourHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	labourID, ok := parseIDParam(r, "labourID")
	if !ok {
		response.BadRequest(w, "Invalid labour id", nil)
		return
	}

	result, err := h.leaveService.ListByLabour(r.Context(), labourID)
	if err != nil {
		slog.Error("ListLeaves service error", "error", err, "labour_id", labourID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
