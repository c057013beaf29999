package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deeraj1899/EMS/internal/domain/leave"
	"github.com/deeraj1899/EMS/internal/handler/http/middleware"
	"github.com/deeraj1899/EMS/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetMyLeaves(w http.ResponseWriter, r *http.Request)
	ListOrganizationLeaves(w http.ResponseWriter, r *http.Request)
	ListDepartmentLeaves(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	resp, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update leave status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "requestID")

	ledger, err := h.leaveService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave status updated", ledger)
}

// GetMyLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyLeaves(w http.ResponseWriter, r *http.Request) {
	filter := leave.RequestFilter(r.URL.Query().Get("filter"))
	switch filter {
	case leave.FilterNone, leave.FilterMonthly, leave.FilterWeekly:
	default:
		response.BadRequest(w, "Filter must be monthly or weekly", nil)
		return
	}

	resp, err := h.leaveService.GetEmployeeLeaves(r.Context(), middleware.EmployeeID(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListOrganizationLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) ListOrganizationLeaves(w http.ResponseWriter, r *http.Request) {
	ledgers, err := h.leaveService.ListOrganizationLeaves(r.Context(), middleware.OrganizationID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ledgers)
}

// ListDepartmentLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) ListDepartmentLeaves(w http.ResponseWriter, r *http.Request) {
	organizationID := chi.URLParam(r, "organizationID")
	if organizationID == "" {
		response.BadRequest(w, "Organization ID is required", nil)
		return
	}

	ledgers, err := h.leaveService.ListDepartmentLeaves(r.Context(), organizationID, middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ledgers)
}
